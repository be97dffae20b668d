// Package script evaluates scene scripts: small JavaScript programs that
// build a node tree, lay it out, and read back the computed boxes. It is the
// scripting surface used by the boxflex command line tools.
//
// A scene script works against two globals: scene, which creates nodes and
// runs layout, and console for diagnostics.
//
//	const root = scene.node().setWidth(300).setHeight(100).setDirection("row");
//	const a = scene.node().setGrow(1);
//	root.add(a);
//	scene.layout(root, 300, 100, "ltr");
//	console.log(a.width());
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"boxflex/pkg/flex"
	"boxflex/pkg/text"
)

// Engine executes scene scripts against a private arena.
type Engine struct {
	vm    *goja.Runtime
	arena *flex.Arena

	fontPath string
	fontSize float64

	root flex.Node
	laid bool
}

// New creates an engine with a fresh goja runtime and an empty arena.
func New() *Engine {
	vm := goja.New()
	vm.SetFieldNameMapper(goja.UncapFieldNameMapper())

	e := &Engine{vm: vm, arena: flex.NewArena(), fontSize: 12}
	newConsole().register(vm)
	e.register()
	return e
}

func (e *Engine) register() {
	scene := e.vm.NewObject()
	scene.Set("node", e.makeNode)
	scene.Set("text", e.makeText)
	scene.Set("font", e.setFont)
	scene.Set("layout", e.layout)
	e.vm.Set("scene", scene)
}

// Run evaluates a scene script. Script exceptions come back as errors.
func (e *Engine) Run(src string) error {
	if _, err := e.vm.RunString(src); err != nil {
		return fmt.Errorf("scene script: %w", err)
	}
	return nil
}

// Root returns the most recently laid-out root node.
func (e *Engine) Root() (flex.Node, bool) {
	return e.root, e.laid
}

// Arena returns the engine's node arena.
func (e *Engine) Arena() *flex.Arena {
	return e.arena
}

// Global exports a script global for inspection, or nil if unset.
func (e *Engine) Global(name string) any {
	v := e.vm.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.Export()
}

func (e *Engine) makeNode() *SceneNode {
	return &SceneNode{e: e, n: e.arena.NewNode()}
}

func (e *Engine) makeText(content string) *SceneNode {
	s := e.makeNode()
	m := text.NewMeasurer(e.fontPath, e.fontSize)
	if err := m.Attach(s.n, content); err != nil {
		panic(e.vm.NewGoError(err))
	}
	return s
}

func (e *Engine) setFont(path string, size float64) {
	e.fontPath = path
	if size > 0 {
		e.fontSize = size
	}
}

// layout solves the tree under root. Negative or NaN available sizes mean
// "let content decide".
func (e *Engine) layout(root *SceneNode, width, height float64, direction string) {
	if root == nil {
		panic(e.vm.NewTypeError("scene.layout: root is required"))
	}
	if width < 0 {
		width = flex.Undefined
	}
	if height < 0 {
		height = flex.Undefined
	}
	dir, err := parseDirection(direction)
	if err != nil {
		panic(e.vm.NewTypeError(err.Error()))
	}
	if err := root.n.CalculateLayout(width, height, dir); err != nil {
		panic(e.vm.NewGoError(err))
	}
	e.root = root.n
	e.laid = true
}
