package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/pengelbrecht/sum/internal/calculator"
)

func TestRenderResultPlain(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(true) })

	got := RenderResult(calculator.Int(2), calculator.Float(3.5), calculator.Float(5.5))
	want := "2 + 3.5 = 5.5 [float]"
	if got != want {
		t.Errorf("RenderResult() = %q, want %q", got, want)
	}
}

func TestRenderPassPlain(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(true) })

	if got := RenderPass(true); got != "✓" {
		t.Errorf("RenderPass(true) = %q", got)
	}
	if got := RenderPass(false); got != "✗" {
		t.Errorf("RenderPass(false) = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  int
	}{
		{"pads ascii", "abc", 6, 6},
		{"leaves wide input", "abcdef", 3, 6},
		{"ignores escapes", "\x1b[1mab\x1b[0m", 4, 4},
		{"counts wide runes", "✓", 3, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PadRight(tc.in, tc.width)
			if w := ansi.StringWidth(got); w != tc.want {
				t.Errorf("PadRight(%q, %d) width = %d, want %d", tc.in, tc.width, w, tc.want)
			}
		})
	}
}
