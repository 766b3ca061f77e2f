package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestModeZeroValueIsCreate(t *testing.T) {
	var m Mode
	if !m.IsCreate() {
		t.Fatal("zero Mode should be create mode")
	}
	if _, ok := m.PinID(); ok {
		t.Fatal("create mode should not carry a pin id")
	}
}

func TestViewModeCarriesID(t *testing.T) {
	id := uuid.New()
	m := ViewMode(id)

	if m.IsCreate() {
		t.Fatal("view mode reported as create")
	}
	got, ok := m.PinID()
	if !ok || got != id {
		t.Fatalf("PinID() = %s, %v; want %s, true", got, ok, id)
	}
}

// uuid.Nil is still a view of a specific (missing) record, not create mode.
func TestViewModeWithNilID(t *testing.T) {
	if ViewMode(uuid.Nil).IsCreate() {
		t.Fatal("ViewMode(uuid.Nil) should stay in view mode")
	}
}
