package syntax

import (
	"strings"
	"testing"
)

func TestSourcePositions(t *testing.T) {
	src := newSource("test", strings.NewReader("a\nbc"), nil)

	want := []struct {
		ch        rune
		line, col uint32
	}{
		{'a', 1, 1},
		{'\n', 1, 2},
		{'b', 2, 1},
		{'c', 2, 2},
		{-1, 2, 3},
	}
	for i, w := range want {
		if i > 0 {
			src.nextch()
		}
		if src.ch != w.ch || src.line != w.line || src.col != w.col {
			t.Errorf("step %d: got ch=%q pos=%d:%d, want ch=%q pos=%d:%d",
				i, src.ch, src.line, src.col, w.ch, w.line, w.col)
		}
	}
}

func TestSourcePeek(t *testing.T) {
	src := newSource("test", strings.NewReader("-1"), nil)
	if src.ch != '-' || src.peekch() != '1' {
		t.Fatalf("ch=%q peek=%q, want '-' and '1'", src.ch, src.peekch())
	}
	src.nextch()
	if src.peekch() != -1 {
		t.Errorf("peekch at last char = %q, want -1", src.peekch())
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", strings.NewReader(""), nil)
	if src.ch != -1 {
		t.Errorf("ch = %q, want -1 for empty input", src.ch)
	}
}

func TestSourceInvalidUTF8(t *testing.T) {
	var msgs []string
	errh := func(line, col uint32, msg string) { msgs = append(msgs, msg) }
	newSource("test", strings.NewReader("\xff"), errh)
	if len(msgs) != 1 || !strings.Contains(msgs[0], "UTF-8") {
		t.Errorf("errors = %v, want one UTF-8 error", msgs)
	}
}
