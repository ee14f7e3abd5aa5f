package maybe

import "testing"

func TestSome(t *testing.T) {
	m := Some(42)

	if !m.Has() {
		t.Error("expected a value to be present")
	}
	if m.Value() != 42 {
		t.Errorf("expected 42, got %v", m.Value())
	}
	if m.ValueOr(7) != 42 {
		t.Error("expected ValueOr to prefer the contained value")
	}
}

func TestNone(t *testing.T) {
	m := None[string]()

	if m.Has() {
		t.Error("expected no value")
	}
	if m.ValueOr("fallback") != "fallback" {
		t.Error("expected ValueOr to return the fallback")
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var m Maybe[int]

	if m.Has() {
		t.Error("expected the zero Maybe to be empty")
	}
}

func TestSetClear(t *testing.T) {
	var m Maybe[int]

	m.Set(3)
	if !m.Has() || m.Value() != 3 {
		t.Error("expected Set to store the value")
	}

	m.Clear()
	if m.Has() {
		t.Error("expected Clear to empty the Maybe")
	}
}

func TestRelease(t *testing.T) {
	m := Some("held")

	v := m.Release()
	if v != "held" {
		t.Errorf("expected the released value, got %q", v)
	}
	if m.Has() {
		t.Error("expected the Maybe to be empty after release")
	}
}

func TestEmptyAccessPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected accessing an empty Maybe to panic")
		}
	}()

	None[int]().Value()
}
