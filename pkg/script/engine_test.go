package script

import (
	"strings"
	"testing"
)

// asNumber widens whatever numeric type the runtime exported.
func asNumber(t *testing.T, v any) float64 {
	t.Helper()
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	t.Fatalf("exported value %v (%T) is not a number", v, v)
	return 0
}

func TestSceneScriptBuildsAndLaysOut(t *testing.T) {
	e := New()
	src := `
		const root = scene.node().setWidth(300).setHeight(100).setDirection("row");
		const a = scene.node().setGrow(1);
		const b = scene.node().setGrow(2);
		root.add(a).add(b);
		scene.layout(root, 300, 100, "ltr");
		var aw = a.width();
		var bx = b.left();
	`
	if err := e.Run(src); err != nil {
		t.Fatalf("run: %v", err)
	}
	root, ok := e.Root()
	if !ok {
		t.Fatal("no root after layout")
	}
	if got := root.LayoutWidth(); got != 300 {
		t.Errorf("root width = %v, want 300", got)
	}
	if got := root.Child(0).LayoutWidth(); got != 100 {
		t.Errorf("a width = %v, want 100", got)
	}
	if got := root.Child(1).LayoutLeft(); got != 100 {
		t.Errorf("b left = %v, want 100", got)
	}
	if aw := asNumber(t, e.Global("aw")); aw != 100 {
		t.Errorf("script-side a.width() = %v, want 100", aw)
	}
	if bx := asNumber(t, e.Global("bx")); bx != 100 {
		t.Errorf("script-side b.left() = %v, want 100", bx)
	}
}

func TestSceneScriptChainsStyleSetters(t *testing.T) {
	e := New()
	src := `
		const root = scene.node()
			.setWidth(100).setHeight(100)
			.setDirection("row")
			.setJustify("center")
			.setAlignItems("center")
			.setPadding("all", 5);
		const child = scene.node().setWidth(20).setHeight(20);
		root.add(child);
		scene.layout(root, -1, -1, "ltr");
	`
	if err := e.Run(src); err != nil {
		t.Fatalf("run: %v", err)
	}
	root, _ := e.Root()
	child := root.Child(0)
	if got := child.LayoutLeft(); got != 40 {
		t.Errorf("child left = %v, want 40", got)
	}
	if got := child.LayoutTop(); got != 40 {
		t.Errorf("child top = %v, want 40", got)
	}
}

func TestSceneScriptBadEnumIsError(t *testing.T) {
	e := New()
	err := e.Run(`scene.node().setJustify("sideways");`)
	if err == nil {
		t.Fatal("expected error for unknown justify value")
	}
	if !strings.Contains(err.Error(), "sideways") {
		t.Errorf("error %q does not name the bad value", err)
	}
}

func TestSceneScriptLayoutRequiresRoot(t *testing.T) {
	e := New()
	if err := e.Run(`scene.layout(null, 100, 100, "ltr");`); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestSceneScriptTextNodeMeasures(t *testing.T) {
	e := New()
	src := `
		const root = scene.node().setWidth(30);
		const label = scene.text("aa bb cc");
		root.add(label);
		scene.layout(root, -1, -1, "ltr");
		var h = label.height();
	`
	if err := e.Run(src); err != nil {
		t.Fatalf("run: %v", err)
	}
	// The 12px estimator wraps "aa bb cc" at 30 into three lines of 14.4.
	h := asNumber(t, e.Global("h"))
	if h < 43 || h > 44 {
		t.Errorf("label height = %v, want about 43.2", h)
	}
}

func TestGlobalUnsetIsNil(t *testing.T) {
	e := New()
	if v := e.Global("nope"); v != nil {
		t.Errorf("Global(nope) = %v, want nil", v)
	}
}
