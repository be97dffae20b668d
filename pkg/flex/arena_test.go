package flex

import (
	"errors"
	"testing"
)

func TestHandleStaleAfterFree(t *testing.T) {
	arena := NewArena()
	node := arena.NewNode()
	h := node.Handle()

	if err := node.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if _, err := arena.NodeFromHandle(h); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("NodeFromHandle after free: err = %v, want ErrStaleHandle", err)
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	arena := NewArena()
	first := arena.NewNode()
	old := first.Handle()
	if err := first.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}

	second := arena.NewNode()
	if second.Handle() == old {
		t.Fatal("recycled slot reused the old generation")
	}
	// The old handle must not alias the new occupant.
	if _, err := arena.NodeFromHandle(old); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("old handle resolved after recycle: want ErrStaleHandle")
	}
	if _, err := arena.NodeFromHandle(second.Handle()); err != nil {
		t.Fatalf("new handle: %v", err)
	}
}

func TestAccessorPanicsOnStaleHandle(t *testing.T) {
	arena := NewArena()
	node := arena.NewNode()
	if err := node.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Width on freed node: want panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrStaleHandle) {
			t.Fatalf("panic value = %v, want ErrStaleHandle", r)
		}
	}()
	node.Width()
}

func TestFreeWithChildrenIsInvariantViolation(t *testing.T) {
	arena := NewArena()
	parent := arena.NewNode()
	child := arena.NewNode()
	mustAdd(t, parent, child)

	if err := parent.Free(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("Free with children: err = %v, want ErrInvariantViolation", err)
	}
	// Nothing was released.
	if arena.Len() != 2 {
		t.Fatalf("Len = %d, want 2", arena.Len())
	}

	if err := parent.RemoveChild(child); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if err := parent.Free(); err != nil {
		t.Fatalf("Free after detach: %v", err)
	}
	if arena.Len() != 1 {
		t.Fatalf("Len = %d, want 1", arena.Len())
	}
}

func TestFreeDetachesFromParent(t *testing.T) {
	arena := NewArena()
	parent := arena.NewNode()
	child := arena.NewNode()
	mustAdd(t, parent, child)

	if err := child.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if parent.ChildCount() != 0 {
		t.Fatalf("ChildCount = %d, want 0", parent.ChildCount())
	}
	if !parent.IsDirty() {
		t.Fatal("parent not dirtied by child free")
	}
}

func TestInsertChildOrderAndReparentGuard(t *testing.T) {
	arena := NewArena()
	parent := arena.NewNode()
	a := arena.NewNode()
	b := arena.NewNode()
	c := arena.NewNode()
	mustAdd(t, parent, a)
	mustAdd(t, parent, c)
	if err := parent.InsertChild(b, 1); err != nil {
		t.Fatalf("InsertChild: %v", err)
	}

	want := []Handle{a.Handle(), b.Handle(), c.Handle()}
	for i, w := range want {
		if got := parent.Child(i).Handle(); got != w {
			t.Errorf("child %d = %v, want %v", i, got, w)
		}
	}

	other := arena.NewNode()
	if err := other.AddChild(b); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("reparent without detach: err = %v, want ErrInvariantViolation", err)
	}
}

func TestMeasureNodeRejectsChildren(t *testing.T) {
	arena := NewArena()
	leaf := arena.NewNode()
	if err := leaf.SetMeasureFunc(func(Node, float64, MeasureMode, float64, MeasureMode) (Size, error) {
		return Size{}, nil
	}); err != nil {
		t.Fatalf("SetMeasureFunc: %v", err)
	}

	child := arena.NewNode()
	if err := leaf.AddChild(child); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("AddChild to measure node: err = %v, want ErrInvariantViolation", err)
	}

	parent := arena.NewNode()
	mustAdd(t, parent, child)
	if err := child.SetMeasureFunc(nil); err != nil {
		t.Fatalf("clearing measure func: %v", err)
	}
	grand := arena.NewNode()
	mustAdd(t, child, grand)
	if err := child.SetMeasureFunc(func(Node, float64, MeasureMode, float64, MeasureMode) (Size, error) {
		return Size{}, nil
	}); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("SetMeasureFunc with children: err = %v, want ErrInvariantViolation", err)
	}
}

func TestResetRequiresOrphan(t *testing.T) {
	arena := NewArena()
	parent := arena.NewNode()
	child := arena.NewNode()
	mustAdd(t, parent, child)

	if err := child.Reset(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("Reset while attached: err = %v, want ErrInvariantViolation", err)
	}
	if err := parent.RemoveChild(child); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}

	child.SetWidth(42)
	if err := child.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := child.Width(); got.Unit != UnitAuto {
		t.Fatalf("width after reset = %v, want auto", got)
	}
}

func TestZeroHandleIsNeverValid(t *testing.T) {
	arena := NewArena()
	arena.NewNode()
	if _, err := arena.NodeFromHandle(Handle{}); !errors.Is(err, ErrStaleHandle) {
		t.Fatalf("zero handle resolved: want ErrStaleHandle")
	}
}
