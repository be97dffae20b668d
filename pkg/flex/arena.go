package flex

import "fmt"

// Handle identifies a node slot in an Arena. It is an index plus a generation
// stamp: when a slot is recycled the generation changes, so handles left over
// from a freed node are detected instead of silently aliasing the new
// occupant.
type Handle struct {
	index uint32
	gen   uint32
}

func (h Handle) String() string {
	return fmt.Sprintf("node(%d@%d)", h.index, h.gen)
}

// nodeRecord is the full per-node state. Records live only inside the arena;
// everything outside works through Node views.
type nodeRecord struct {
	self Handle

	style    Style
	layout   layoutState
	computed Computed

	parent    Handle // zero Handle means detached
	children  []Handle
	lineIndex int

	config   *Config
	owner    any
	measure  MeasureFunc
	baseline BaselineFunc
	nodeType NodeType

	isDirty      bool
	hasNewLayout bool

	resolvedDims [2]Value
}

type slot struct {
	gen  uint32
	live bool
	node nodeRecord
}

// Arena owns every node record. It hands out generation-stamped handles and
// is the only writer of computed layout data. An arena (and the trees inside
// it) must be confined to one goroutine at a time; independent arenas need no
// coordination.
type Arena struct {
	slots []slot
	free  []uint32
	live  int

	config *Config

	// generation counts CalculateLayout passes; per-node caches are stamped
	// with it so each dirty node is revisited at least once per pass.
	generation uint32
}

// NewArena returns an empty arena with a fresh default config.
func NewArena() *Arena {
	return &Arena{config: NewConfig(), generation: 1}
}

// Config returns the arena's default config, shared by nodes created with
// NewNode.
func (a *Arena) Config() *Config { return a.config }

// Len returns the number of live nodes.
func (a *Arena) Len() int { return a.live }

// NewNode allocates a node with default style and the arena's config.
func (a *Arena) NewNode() Node {
	return a.NewNodeWithConfig(a.config)
}

// NewNodeWithConfig allocates a node referencing the given shared config.
func (a *Arena) NewNodeWithConfig(config *Config) Node {
	if config == nil {
		config = a.config
	}
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		// Slot generations start at 1 so the zero Handle is never valid.
		a.slots = append(a.slots, slot{gen: 1})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.live = true
	h := Handle{index: idx, gen: s.gen}
	s.node = nodeRecord{
		self:         h,
		style:        defaultStyle,
		layout:       defaultLayoutState,
		config:       config,
		hasNewLayout: true,
		resolvedDims: [2]Value{valueUndefined, valueUndefined},
	}
	a.live++
	return Node{arena: a, handle: h}
}

// NodeFromHandle reconstructs a Node view, failing if the handle is stale.
func (a *Arena) NodeFromHandle(h Handle) (Node, error) {
	if _, err := a.resolve(h); err != nil {
		return Node{}, err
	}
	return Node{arena: a, handle: h}, nil
}

func (a *Arena) resolve(h Handle) (*nodeRecord, error) {
	if int(h.index) >= len(a.slots) {
		return nil, staleHandleError(h)
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, staleHandleError(h)
	}
	return &s.node, nil
}

// mustResolve backs the plain accessors, where a stale handle is a contract
// violation rather than a recoverable condition.
func (a *Arena) mustResolve(h Handle) *nodeRecord {
	rec, err := a.resolve(h)
	if err != nil {
		panic(err)
	}
	return rec
}

// release returns a slot to the free list and bumps its generation so all
// outstanding handles to the old occupant become stale.
func (a *Arena) release(h Handle) {
	s := &a.slots[h.index]
	s.live = false
	s.gen++
	s.node = nodeRecord{}
	a.free = append(a.free, h.index)
	a.live--
}
