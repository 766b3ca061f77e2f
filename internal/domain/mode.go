package domain

import "github.com/google/uuid"

// Mode tells the detail flow whether the user is placing a new pin or
// looking at one that was saved earlier. The zero value is create mode.
type Mode struct {
	pinID uuid.UUID
	view  bool
}

func CreateMode() Mode { return Mode{} }

func ViewMode(id uuid.UUID) Mode { return Mode{pinID: id, view: true} }

func (m Mode) IsCreate() bool { return !m.view }

// PinID returns the pin being viewed; ok is false in create mode.
func (m Mode) PinID() (id uuid.UUID, ok bool) {
	return m.pinID, m.view
}

func (m Mode) String() string {
	if m.view {
		return "view(" + m.pinID.String() + ")"
	}
	return "create"
}
