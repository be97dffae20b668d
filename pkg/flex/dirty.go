package flex

// markDirty sets the dirty bit on a node and propagates it to every ancestor,
// invalidating the cached flex basis along the way. Propagation stops at the
// first ancestor that is already dirty, which keeps repeated marks O(1)
// amortized.
func (a *Arena) markDirty(rec *nodeRecord) {
	if rec.isDirty {
		return
	}
	rec.isDirty = true
	rec.layout.computedFlexBasis = Undefined
	if rec.parent == (Handle{}) {
		return
	}
	if parent, err := a.resolve(rec.parent); err == nil {
		a.markDirty(parent)
	}
}

// MarkDirty flags the node's cached layout as stale. Style setters call this
// automatically; it is exposed for nodes whose measure output changed for
// reasons the engine cannot see (new text content, a loaded image).
func (n Node) MarkDirty() {
	n.arena.markDirty(n.must())
}

// IsDirty reports whether the node needs recomputation.
func (n Node) IsDirty() bool {
	return n.must().isDirty
}

// HasNewLayout reports whether the node's committed box changed in a layout
// pass the caller has not yet acknowledged. It is independent of IsDirty.
func (n Node) HasNewLayout() bool {
	return n.must().hasNewLayout
}

// MarkLayoutSeen acknowledges the node's current layout. Only this call
// clears HasNewLayout; the solver never does.
func (n Node) MarkLayoutSeen() {
	n.must().hasNewLayout = false
}

// CopyStyle copies src's style block onto n. Identical styles are a no-op so
// callers can re-apply styles every frame without forcing recomputation.
func (n Node) CopyStyle(src Node) {
	dst := n.must()
	srcRec := src.must()
	if styleEqual(&dst.style, &srcRec.style) {
		return
	}
	dst.style = srcRec.style
	n.arena.markDirty(dst)
}
