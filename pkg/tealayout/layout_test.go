package tealayout

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func demoLayout(w, h int) Layout {
	return NewBuilder(w, h).
		Top("toolbar", 1).
		Bottom("footer", 1).
		Right("panel", 36).
		Rest("canvas").
		Build()
}

// ── Builder ──

func TestBuilderCutsInOrder(t *testing.T) {
	l := demoLayout(100, 30)
	tests := []struct {
		name string
		want image.Rectangle
	}{
		{"toolbar", image.Rect(0, 0, 100, 1)},
		{"footer", image.Rect(0, 29, 100, 30)},
		{"panel", image.Rect(64, 1, 100, 29)},
		{"canvas", image.Rect(0, 1, 64, 29)},
	}
	for _, tc := range tests {
		if got := l.Get(tc.name).Rect; got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
	if l.Bounds != image.Rect(0, 0, 100, 30) {
		t.Errorf("bounds: expected 100x30, got %v", l.Bounds)
	}
}

func TestBuilderRegionsDoNotOverlap(t *testing.T) {
	regions := demoLayout(100, 30).Regions()
	if len(regions) != 4 {
		t.Fatalf("expected 4 regions, got %d", len(regions))
	}
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Rect.Overlaps(regions[j].Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					regions[i].Name, regions[i].Rect, regions[j].Name, regions[j].Rect)
			}
		}
	}
}

func TestBuilderClampsOversizedCuts(t *testing.T) {
	l := NewBuilder(20, 5).
		Top("toolbar", 3).
		Bottom("footer", 10).
		Right("panel", 30).
		Rest("canvas").
		Build()

	if got := l.Get("footer").Rect; got != image.Rect(0, 3, 20, 5) {
		t.Errorf("footer: expected the 2 remaining rows, got %v", got)
	}
	if got := l.Get("panel").Rect; got != (image.Rectangle{}) {
		t.Errorf("panel: expected empty, got %v", got)
	}
	if got := l.Get("canvas").Rect; got != (image.Rectangle{}) {
		t.Errorf("canvas: expected empty, got %v", got)
	}
}

func TestBuilderZeroSize(t *testing.T) {
	l := NewBuilder(-4, 0).Top("toolbar", 1).Rest("canvas").Build()
	if !l.Get("canvas").Rect.Empty() || !l.Get("toolbar").Rect.Empty() {
		t.Errorf("expected empty regions, got %v", l.Regions())
	}
}

func TestBuilderIn(t *testing.T) {
	panel := image.Rect(64, 1, 100, 29)
	l := NewBuilderIn(panel).
		Top("targets", 8).
		Bottom("help", 9).
		Left("gutter", 1).
		Rest("log").
		Build()

	if got := l.Get("targets").Rect; got != image.Rect(64, 1, 100, 9) {
		t.Errorf("targets: expected (64,1)-(100,9), got %v", got)
	}
	if got := l.Get("help").Rect; got != image.Rect(64, 20, 100, 29) {
		t.Errorf("help: expected (64,20)-(100,29), got %v", got)
	}
	if got := l.Get("log").Rect; got != image.Rect(65, 9, 100, 20) {
		t.Errorf("log: expected (65,9)-(100,20), got %v", got)
	}
}

func TestGetMissing(t *testing.T) {
	if r := demoLayout(80, 24).Get("missing"); r.Name != "" || !r.Rect.Empty() {
		t.Errorf("expected zero region, got %v", r)
	}
}

// ── Layers ──

func TestFillLayer(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(10, 5, 30, 15)}
	layer := FillLayer(r, lipgloss.NewStyle(), "bg", 0)
	if layer.GetID() != "bg" {
		t.Errorf("ID: expected bg, got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
	content := layer.GetContent()
	if w, h := lipgloss.Width(content), lipgloss.Height(content); w != 20 || h != 10 {
		t.Errorf("size: expected 20x10, got %dx%d", w, h)
	}
}

func TestFillLayerEmpty(t *testing.T) {
	layer := FillLayer(Region{}, lipgloss.NewStyle(), "bg", 0)
	if layer.GetContent() != "" {
		t.Error("empty region should have no content")
	}
}

func TestBlockLayerPadsAndCuts(t *testing.T) {
	r := Region{Rect: image.Rect(2, 3, 12, 6)}
	lines := []string{"short", "a line that is much too long", "third", "dropped"}
	layer := BlockLayer(r, lines, lipgloss.NewStyle(), "block", 1)

	rows := strings.Split(layer.GetContent(), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 10 {
			t.Errorf("row %d: expected width 10, got %d (%q)", i, w, row)
		}
	}
	if strings.Contains(layer.GetContent(), "dropped") {
		t.Error("line past the region bottom was kept")
	}
	if layer.GetX() != 2 || layer.GetY() != 3 || layer.GetZ() != 1 {
		t.Errorf("placement: got (%d,%d) z=%d", layer.GetX(), layer.GetY(), layer.GetZ())
	}
}

func TestSeparatorLayer(t *testing.T) {
	layer := SeparatorLayer(63, 1, 4, lipgloss.NewStyle(), "sep")
	if got := strings.Count(layer.GetContent(), "│"); got != 4 {
		t.Errorf("expected 4 rule cells, got %d", got)
	}
}

func TestModalLayerCentered(t *testing.T) {
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(20).Padding(1, 2)
	layer := ModalLayer("edit", 80, 24, box, "modal")
	if layer.GetZ() != 100 {
		t.Errorf("Z: expected 100, got %d", layer.GetZ())
	}
	if x := layer.GetX(); x < 20 || x > 40 {
		t.Errorf("X not centered: %d", x)
	}
	if y := layer.GetY(); y < 5 || y > 15 {
		t.Errorf("Y not centered: %d", y)
	}

	tiny := ModalLayer("edit", 4, 2, box, "modal")
	if tiny.GetX() != 0 || tiny.GetY() != 0 {
		t.Errorf("oversized modal: expected (0,0), got (%d,%d)", tiny.GetX(), tiny.GetY())
	}
}
