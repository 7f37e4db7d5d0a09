package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}

	// Out of bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '@', ColorOrange)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorOrange {
		t.Errorf("GetCell = %+v, want '@' in orange", cell)
	}

	if cell := s.GetCell(99, 99); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, want default space", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(0, 0, 'x', ColorRed)

	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if row := s.Row(1); row != "  hi      " {
		t.Errorf("row = %q", row)
	}

	// Text is clipped at the right edge.
	s.DrawText(8, 0, "long")
	if row := s.Row(0); row != "        lo" {
		t.Errorf("clipped row = %q", row)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '*')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '*' {
		t.Errorf("content lost on grow: %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '*' {
		t.Errorf("content lost on shrink: %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected single newline, got %d", strings.Count(got, "\n"))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 0, 4, '=')
	if row := s.Row(0); row != " ==== " {
		t.Errorf("row = %q", row)
	}
}
