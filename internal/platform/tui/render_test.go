package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/superrun/internal/core"
)

func TestRenderScreenPlainProfile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(8, 2)
	s.DrawTextColored(0, 0, "##", core.ColorBrown)
	s.DrawText(2, 0, "ok")
	s.DrawTextColored(4, 1, "$$$$", core.ColorBrightYellow)

	got := RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
	if n := strings.Count(got, "\n"); n != 1 {
		t.Errorf("expected 1 line break, got %d", n)
	}
}

func TestStyleSpanDefaultIsPlain(t *testing.T) {
	if got := styleSpan(core.ColorDefault, "abc"); got != "abc" {
		t.Errorf("styleSpan(default) = %q", got)
	}
}

func TestPaletteCoversStyles(t *testing.T) {
	if len(cellStyles) != len(palette) {
		t.Fatalf("cellStyles has %d entries, palette has %d", len(cellStyles), len(palette))
	}
	if _, ok := cellStyles[core.ColorDefault]; ok {
		t.Error("default color must not be styled")
	}
}
