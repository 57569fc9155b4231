package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("new screen cell at (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got != (Cell{Rune: 'X', Color: ColorRed}) {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), '#', ColorBlue)
	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("after Clear String() = %q", got)
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextWithColor(2, 0, "50%", ColorDim)

	if got := s.Row(0); got != "  50%     " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(3, 0).Color != ColorDim {
		t.Errorf("text color = %v, expected ColorDim", s.GetCell(3, 0).Color)
	}

	// Multi-byte runes occupy one cell each
	s.Clear()
	s.DrawText(0, 0, "█▒x")
	if got := s.Row(0); !strings.HasPrefix(got, "█▒x ") {
		t.Errorf("Row(0) = %q, expected multi-byte prefix", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	tests := []struct {
		name  string
		heavy bool
		want  string
	}{
		{"light", false, "┌──┐\n│  │\n└──┘"},
		{"heavy", true, "┏━━┓\n┃  ┃\n┗━━┛"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 3)
			s.DrawBox(NewRect(0, 0, 4, 3), ColorFrame, tc.heavy)
			if got := s.String(); got != tc.want {
				t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, tc.want)
			}
			if s.GetCell(0, 0).Color != ColorFrame {
				t.Error("box should use the given color")
			}
		})
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("content inside the new bounds should be preserved")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content cut by a shrink should not reappear")
	}
	if s.Get(1, 1) != 'A' {
		t.Error("content should survive growing")
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, -2)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}

	s.Resize(4, 2)
	s.Set(3, 1, 'Z')
	s.Resize(-1, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 0x5", s.Width(), s.Height())
	}
}
