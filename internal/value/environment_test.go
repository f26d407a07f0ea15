package value

import (
	"bytes"
	"testing"
)

func TestEnvironmentInsertAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Insert("x", IntValue{Value: 1})

	got, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if !Equal(got, IntValue{Value: 1}) {
		t.Errorf("Get(x) = %s, want Int(1)", got)
	}
	if !env.Contains("x") {
		t.Error("Contains(x) = false, want true")
	}
	if env.Contains("y") {
		t.Error("Contains(y) = true, want false")
	}
}

func TestEnvironmentSetDontShadow(t *testing.T) {
	// §8 invariant 2 / §9: `set` inside a nested scope must mutate the
	// outer binding if one exists, not shadow it in the new scope.
	env := NewEnvironment()
	env.Insert("x", IntValue{Value: 1})
	depthBefore := env.Depth()

	env.Push()
	env.Insert("x", IntValue{Value: 2})
	env.Pop()

	if env.Depth() != depthBefore {
		t.Errorf("Depth() = %d after push/pop, want unchanged %d", env.Depth(), depthBefore)
	}
	got, _ := env.Get("x")
	if !Equal(got, IntValue{Value: 2}) {
		t.Errorf("Get(x) = %s after nested set, want Int(2) (set must not shadow)", got)
	}
}

func TestEnvironmentInsertInNewScopeWhenUnbound(t *testing.T) {
	env := NewEnvironment()
	env.Push()
	env.Insert("local", IntValue{Value: 9})
	env.Pop()

	if env.Contains("local") {
		t.Error("a name first bound inside a pushed scope must not survive Pop")
	}
}

func TestEnvironmentPopNeverEmptiesScopeStack(t *testing.T) {
	env := NewEnvironment()
	if env.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 for a fresh environment", env.Depth())
	}
	env.Pop()
	if env.Depth() != 1 {
		t.Errorf("Depth() = %d after Pop on a single-scope environment, want 1", env.Depth())
	}
}

func TestEnvironmentReturnChannelSnapshotRestore(t *testing.T) {
	env := NewEnvironment()
	point := env.CurrentReturnIndex()

	env.PushReturn(IntValue{Value: 5})
	env.PushReturn(IntValue{Value: 6})

	got := env.PopReturnFrom(point)
	if !Equal(got, IntValue{Value: 6}) {
		t.Errorf("PopReturnFrom returned %s, want the most recently pushed value Int(6)", got)
	}
	if env.CurrentReturnIndex() != point {
		t.Errorf("CurrentReturnIndex() = %d after PopReturnFrom, want restored to %d", env.CurrentReturnIndex(), point)
	}
}

func TestEnvironmentExtendMergesIntoTopScope(t *testing.T) {
	env := NewEnvironment()
	env.Push()
	env.Extend(map[string]Value{"a": IntValue{Value: 1}})

	if !env.Contains("a") {
		t.Fatal("Extend must bind its entries into the current scope")
	}
	env.Pop()
	if env.Contains("a") {
		t.Error("Extend must bind into the top scope, not the global scope (DESIGN.md §9 decision)")
	}
}

func TestEnvironmentTopBindingsSnapshotsCurrentScope(t *testing.T) {
	env := NewEnvironment()
	env.Insert("a", IntValue{Value: 1})
	env.Insert("b", IntValue{Value: 2})

	bindings := env.TopBindings()
	if len(bindings) != 2 {
		t.Fatalf("TopBindings() has %d entries, want 2", len(bindings))
	}
	bindings["a"] = IntValue{Value: 999}
	got, _ := env.Get("a")
	if Equal(got, IntValue{Value: 999}) {
		t.Error("TopBindings() must return a copy, not a live view of the scope map")
	}
}

func TestEnvironmentOutputDefaultsAndIsOverridable(t *testing.T) {
	env := NewEnvironment()
	if env.Output() == nil {
		t.Fatal("Output() must never be nil")
	}

	var buf bytes.Buffer
	env.SetOutput(&buf)
	if env.Output() != &buf {
		t.Error("SetOutput must redirect Output()")
	}
}
