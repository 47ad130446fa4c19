package guide

import (
	"testing"

	"github.com/abhisek/lingoleap/internal/catalog"
	"github.com/abhisek/lingoleap/internal/llm"
	"github.com/abhisek/lingoleap/internal/studygen"
)

func newReadyGuide() *GuideScreen {
	g := New(KindStudy, studygen.NewService(llm.NewMockProvider()), catalog.Languages[0])
	g.phase = phaseReady
	g.content = "# Greetings\n\nSome useful phrases."
	return g
}

func TestRendererReusedAcrossFrames(t *testing.T) {
	g := newReadyGuide()

	g.View(100, 30)
	first := g.renderer
	if first == nil {
		t.Fatal("expected a renderer after the first frame")
	}

	g.View(100, 30)
	if g.renderer != first {
		t.Error("same width should reuse the renderer")
	}
}

func TestRendererRebuiltOnResize(t *testing.T) {
	g := newReadyGuide()

	g.View(100, 30)
	first := g.renderer

	g.View(80, 30)
	if g.renderer == first {
		t.Error("a width change should rebuild the renderer")
	}
}

func TestCapturingTextOnlyDuringTopicEntry(t *testing.T) {
	g := New(KindGrammar, studygen.NewService(llm.NewMockProvider()), catalog.Languages[0])

	if !g.CapturingText() {
		t.Error("topic entry should capture text")
	}

	g.phase = phaseLoading
	if g.CapturingText() {
		t.Error("loading phase should not capture text")
	}

	g.phase = phaseReady
	if g.CapturingText() {
		t.Error("ready phase should not capture text")
	}
}
