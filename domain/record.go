// Package domain contains the core concepts of the chat router.
// No storage, network, or UI logic should be added here.
package domain

import "strings"

// Slot categories. A slot is one categorized attribute of a connection,
// encoded as "{category}_{value}" and stored as a single row.
const (
	CategoryUsername = "username"
	CategoryRoom     = "room"

	slotSeparator = "_"
)

// UsernameSlot encodes a username attribute. The empty name is the
// "not yet logged in" sentinel written at connect time.
func UsernameSlot(name string) string {
	return CategoryUsername + slotSeparator + name
}

// RoomSlot encodes a room-membership attribute. Holding this slot is what
// makes a connection a member of the room; there is no separate room entity.
func RoomSlot(room string) string {
	return CategoryRoom + slotSeparator + room
}

// SplitSlot breaks a raw slot into its category and value, splitting on the
// first separator so values may themselves contain underscores.
func SplitSlot(slot string) (category, value string, ok bool) {
	category, value, ok = strings.Cut(slot, slotSeparator)
	return category, value, ok
}

// ConnectionRecord is the typed view of every row held by one connection.
// The directory builds it from raw slots; raw slot strings never travel
// further up.
type ConnectionRecord struct {
	// Username is empty until login completes.
	Username string
	// Room is the current room name; empty means no membership.
	Room string
}

// LoggedIn reports whether the connection has completed login. A missing or
// malformed username row reads as not logged in, by design: a crash between
// the two steps of a rename must never surface as an error to readers.
func (r ConnectionRecord) LoggedIn() bool {
	return r.Username != ""
}

// InRoom reports whether the connection currently holds a room slot.
func (r ConnectionRecord) InRoom() bool {
	return r.Room != ""
}

// RecordFromSlots derives the typed record from raw slots. Later slots of the
// same category win, matching the single-row-per-category invariant; under a
// concurrent rename both orders are transient states the store allows.
func RecordFromSlots(slots []string) ConnectionRecord {
	var rec ConnectionRecord
	for _, slot := range slots {
		category, value, ok := SplitSlot(slot)
		if !ok {
			continue
		}
		switch category {
		case CategoryUsername:
			rec.Username = value
		case CategoryRoom:
			rec.Room = value
		}
	}
	return rec
}
