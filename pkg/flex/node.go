package flex

import "fmt"

// Size is the result of a measure callback.
type Size struct {
	Width  float64
	Height float64
}

// MeasureFunc supplies the intrinsic content size of a leaf. It runs inside
// CalculateLayout on the calling goroutine; it may read unrelated state via
// the node's owner but must not mutate the layout tree it is invoked from.
type MeasureFunc func(node Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) (Size, error)

// BaselineFunc supplies the baseline offset of a node given its resolved
// size. Same execution contract as MeasureFunc.
type BaselineFunc func(node Node, width, height float64) (float64, error)

// Node is a lightweight view of an arena slot: all engine operations are
// expressed on it. Copies are cheap and all alias the same record. Plain
// accessors panic with ErrStaleHandle when the node has been freed;
// lifecycle and tree operations return the error instead.
type Node struct {
	arena  *Arena
	handle Handle
}

// Handle returns the node's stable identifier.
func (n Node) Handle() Handle { return n.handle }

// Arena returns the owning arena.
func (n Node) Arena() *Arena { return n.arena }

func (n Node) must() *nodeRecord {
	return n.arena.mustResolve(n.handle)
}

// Free releases the node's slot. The node must have no children; freeing a
// parent out from under its children would corrupt the tree, so that is an
// invariant violation and nothing is changed.
func (n Node) Free() error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	if len(rec.children) > 0 {
		return fmt.Errorf("%w: cannot free %v: it still has %d children", ErrInvariantViolation, n.handle, len(rec.children))
	}
	if rec.parent != (Handle{}) {
		if parent, perr := n.arena.resolve(rec.parent); perr == nil {
			removeHandle(&parent.children, n.handle)
			n.arena.markDirty(parent)
		}
	}
	n.arena.release(n.handle)
	return nil
}

// Reset returns an orphaned node to its freshly created state, keeping its
// handle and config.
func (n Node) Reset() error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	if len(rec.children) > 0 {
		return fmt.Errorf("%w: cannot reset %v: it still has children", ErrInvariantViolation, n.handle)
	}
	if rec.parent != (Handle{}) {
		return fmt.Errorf("%w: cannot reset %v: it is still attached to a parent", ErrInvariantViolation, n.handle)
	}
	config := rec.config
	self := rec.self
	*rec = nodeRecord{
		self:         self,
		style:        defaultStyle,
		layout:       defaultLayoutState,
		config:       config,
		hasNewLayout: true,
		resolvedDims: [2]Value{valueUndefined, valueUndefined},
	}
	return nil
}

// SoftReset drops the node's cached layout and marks it for recomputation
// without touching tree structure or style, for same-identity reuse across
// frames.
func (n Node) SoftReset() {
	rec := n.must()
	rec.layout = defaultLayoutState
	n.arena.markDirty(rec)
}

// InsertChild attaches child at the given index. The child must be detached
// and the receiver must not carry a measure function.
func (n Node) InsertChild(child Node, idx int) error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	childRec, err := n.arena.resolve(child.handle)
	if err != nil {
		return err
	}
	if childRec.parent != (Handle{}) {
		return fmt.Errorf("%w: child %v already has a parent", ErrInvariantViolation, child.handle)
	}
	if rec.measure != nil {
		return fmt.Errorf("%w: node %v has a measure function and cannot have children", ErrInvariantViolation, n.handle)
	}
	if idx < 0 || idx > len(rec.children) {
		return fmt.Errorf("%w: child index %d out of range [0,%d]", ErrInvariantViolation, idx, len(rec.children))
	}
	rec.children = append(rec.children, Handle{})
	copy(rec.children[idx+1:], rec.children[idx:])
	rec.children[idx] = child.handle
	childRec.parent = n.handle
	n.arena.markDirty(rec)
	return nil
}

// AddChild appends child to the children list.
func (n Node) AddChild(child Node) error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	return n.InsertChild(child, len(rec.children))
}

// RemoveChild detaches child, invalidating its cached layout. Removing a
// node that is not a child is a no-op.
func (n Node) RemoveChild(child Node) error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	childRec, err := n.arena.resolve(child.handle)
	if err != nil {
		return err
	}
	if !removeHandle(&rec.children, child.handle) {
		return nil
	}
	childRec.parent = Handle{}
	childRec.layout = defaultLayoutState
	n.arena.markDirty(rec)
	return nil
}

// RemoveAllChildren detaches every child in one pass.
func (n Node) RemoveAllChildren() error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	if len(rec.children) == 0 {
		return nil
	}
	for _, h := range rec.children {
		if childRec, cerr := n.arena.resolve(h); cerr == nil {
			childRec.parent = Handle{}
			childRec.layout = defaultLayoutState
		}
	}
	rec.children = rec.children[:0]
	n.arena.markDirty(rec)
	return nil
}

// ChildCount returns the number of children.
func (n Node) ChildCount() int {
	return len(n.must().children)
}

// Child returns the i-th child.
func (n Node) Child(i int) Node {
	rec := n.must()
	return Node{arena: n.arena, handle: rec.children[i]}
}

// Parent returns the parent node, if attached.
func (n Node) Parent() (Node, bool) {
	rec := n.must()
	if rec.parent == (Handle{}) {
		return Node{}, false
	}
	return Node{arena: n.arena, handle: rec.parent}, true
}

// SetOwner attaches the external element that created this node; it is handed
// back to measure/baseline callbacks and carries no ownership.
func (n Node) SetOwner(owner any) {
	n.must().owner = owner
}

// Owner returns the owner reference, or nil.
func (n Node) Owner() any {
	return n.must().owner
}

// SetConfig points the node at a different shared config.
func (n Node) SetConfig(config *Config) {
	rec := n.must()
	if config == nil {
		config = n.arena.config
	}
	rec.config = config
}

// Config returns the node's shared config.
func (n Node) Config() *Config {
	return n.must().config
}

// SetMeasureFunc attaches an intrinsic sizing callback. Measure nodes are
// leaves: attaching to a node with children is an invariant violation.
// Attaching or clearing invalidates the node's cached measurements.
func (n Node) SetMeasureFunc(measure MeasureFunc) error {
	rec, err := n.arena.resolve(n.handle)
	if err != nil {
		return err
	}
	if measure != nil && len(rec.children) > 0 {
		return fmt.Errorf("%w: node %v has children and cannot take a measure function", ErrInvariantViolation, n.handle)
	}
	rec.measure = measure
	if measure == nil {
		rec.nodeType = NodeTypeDefault
	} else {
		rec.nodeType = NodeTypeText
	}
	invalidateMeasureCache(&rec.layout)
	n.arena.markDirty(rec)
	return nil
}

// SetBaselineFunc attaches a baseline callback used by baseline alignment.
func (n Node) SetBaselineFunc(baseline BaselineFunc) {
	rec := n.must()
	rec.baseline = baseline
	n.arena.markDirty(rec)
}

// SetNodeType overrides the node type used for text-aware pixel rounding.
func (n Node) SetNodeType(t NodeType) {
	n.must().nodeType = t
}

// NodeType returns the node's type.
func (n Node) NodeType() NodeType {
	return n.must().nodeType
}

func invalidateMeasureCache(ls *layoutState) {
	ls.nextCachedMeasurementsIndex = 0
	ls.cachedLayout = defaultLayoutState.cachedLayout
}

func removeHandle(list *[]Handle, h Handle) bool {
	for i, c := range *list {
		if c == h {
			copy((*list)[i:], (*list)[i+1:])
			*list = (*list)[:len(*list)-1]
			return true
		}
	}
	return false
}
