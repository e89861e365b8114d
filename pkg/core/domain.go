// StickyNote is the central entity of the domain.
package core

import "fmt"

// Position is the on-screen location of a sticky note.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the on-screen dimensions of a sticky note.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// StickyNote is a user-created, freeform annotation object.
// The JSON field names are the wire format shared with the front-end and with
// files persisted by earlier releases; they must not change.
// InkData and IsPinned are optional on the wire and serialize as null when unset.
type StickyNote struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	InkData     *string  `json:"inkData"`
	Mode        string   `json:"mode"`
	IsMinimized bool     `json:"isMinimized"`
	IsPinned    *bool    `json:"isPinned"`
	Position    Position `json:"position"`
	Size        Size     `json:"size"`
	ZIndex      int64    `json:"zIndex"`
	Color       string   `json:"color"`
}

// RecordKind distinguishes the two persisted record families.
type RecordKind string

const (
	KindChart RecordKind = "chart"
	KindNotes RecordKind = "notes"
)

// EventType represents the type of change observed in the data root.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a persisted record.
type Event struct {
	Type      EventType
	Kind      RecordKind
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s/%s", e.Type, e.Kind, e.ID)
}
