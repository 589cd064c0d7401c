package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestContentHeightMatchesRenderedBars(t *testing.T) {
	header := RenderHeader("Browse", 2, 1, MinWidth)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, MinWidth)

	if got := lipgloss.Height(header); got != HeaderHeight {
		t.Errorf("rendered header height = %d, want %d", got, HeaderHeight)
	}
	if got := lipgloss.Height(footer); got != FooterHeight {
		t.Errorf("rendered footer height = %d, want %d", got, FooterHeight)
	}

	want := MinHeight - HeaderHeight - FooterHeight
	if got := ContentHeight(MinHeight); got != want {
		t.Errorf("ContentHeight(%d) = %d, want %d", MinHeight, got, want)
	}
}

func TestContentHeightNeverNegative(t *testing.T) {
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	cases := []struct {
		width, height int
		want          bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
	}
	for _, c := range cases {
		if got := IsTooSmall(c.width, c.height); got != c.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", c.width, c.height, got, c.want)
		}
	}
}
