package battleship

import "testing"

func TestPositionMove(t *testing.T) {
	starts := []Position{NewPosition(0, 0), NewPosition(5, 5), NewPosition(-3, 7), NewPosition(9, -1)}

	for _, p := range starts {
		for _, o := range Orientations() {
			moved := p.Move(o)
			dx, dy := o.ToVector()

			if moved.X-p.X != dx || moved.Y-p.Y != dy {
				t.Fatalf("%s moved %s expected delta: (%d, %d)\t got: %s", p, o, dx, dy, moved)
			}

			changedX := moved.X != p.X
			changedY := moved.Y != p.Y
			if changedX == changedY {
				t.Fatalf("%s moved %s must change exactly one axis\t got: %s", p, o, moved)
			}
		}
	}
}

func TestPositionAsMapKey(t *testing.T) {
	m := map[Position]int{NewPosition(1, 2): 1}
	if _, prs := m[Position{X: 1, Y: 2}]; !prs {
		t.Fatal("expected equal positions to share a map key")
	}
	if NewPosition(1, 2).String() != "(1, 2)" {
		t.Fatalf("expected: (1, 2)\t got: %s", NewPosition(1, 2))
	}
}

func TestGridString(t *testing.T) {
	grid := NewGrid(3)
	grid[0][0] = PositionStateShip
	grid[2][2] = PositionStateSunk

	expected := "..X\n...\nO.."
	if grid.String() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, grid.String())
	}
}
