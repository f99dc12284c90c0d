//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_directory.go -package=mocks
// Package directory owns connection lifecycle, identity and room membership
// on top of the record store. The store is the sole source of truth: there is
// no in-process cache, and multi-row sequences (rename, delete-all,
// quit-before-join) are not atomic. A concurrent operation on the same
// connection or room can observe the intermediate state; this matches the
// store's capability and is accepted.
package directory

import (
	"chat-relay/domain"
	"chat-relay/repositories"
	"log/slog"

	"github.com/samber/lo"
)

type IDirectory interface {
	CreateConnection(id string) error
	DeleteConnection(id string)
	SetUsername(id, oldName, newName string) error
	SetRoom(id, room string) error
	RemoveRoom(id, room string) error
	ListRooms() ([]string, error)
	ConnectionIDsByRoom(room string) ([]string, error)
	Record(id string) (domain.ConnectionRecord, error)
	Usernames(ids []string) []string
}

type Directory struct {
	store repositories.IRecordStore
	log   *slog.Logger
}

func NewDirectory(store repositories.IRecordStore, log *slog.Logger) Directory {
	return Directory{store: store, log: log}
}

// CreateConnection writes the empty-username stub for a fresh connection.
// The first message on the connection becomes the username and rewrites it.
// Calling it twice for the same id just refreshes the row's TTL.
func (d Directory) CreateConnection(id string) error {
	d.log.Info("Connection created", "connection_id", id)
	return d.store.Put(id, domain.UsernameSlot(""))
}

// DeleteConnection removes every row held by the connection, each delete
// independent of the others. Cleanup runs on the disconnect path and must
// never block the transport layer, so failures are logged and swallowed.
func (d Directory) DeleteConnection(id string) {
	slots, err := d.store.GetAll(id)
	if err != nil {
		d.log.Error("Connection cleanup aborted", "connection_id", id, "error", err)
		return
	}
	for _, slot := range slots {
		if err := d.store.Delete(id, slot); err != nil {
			d.log.Error("Connection cleanup skipped a row",
				"connection_id", id, "slot", slot, "error", err)
		}
	}
	d.log.Info("Connection deleted", "connection_id", id, "rows", len(slots))
}

// SetUsername replaces the username row. The name is part of the key, so the
// old row is deleted and a new one written rather than updated in place. The
// two steps are not atomic: a crash in between leaves zero username rows,
// which readers treat as "not logged in".
func (d Directory) SetUsername(id, oldName, newName string) error {
	if err := d.store.Delete(id, domain.UsernameSlot(oldName)); err != nil {
		return err
	}
	d.log.Info("Username set", "connection_id", id, "username", newName)
	return d.store.Put(id, domain.UsernameSlot(newName))
}

// SetRoom adds room membership. Callers switching rooms must remove the old
// membership first (quit-before-join); SetRoom itself never touches other
// room rows.
func (d Directory) SetRoom(id, room string) error {
	return d.store.Put(id, domain.RoomSlot(room))
}

// RemoveRoom drops the membership row for the given room.
func (d Directory) RemoveRoom(id, room string) error {
	return d.store.Delete(id, domain.RoomSlot(room))
}

// ListRooms scans the whole table for distinct room names. A room exists iff
// someone is in it. O(table size); acceptable while the table only holds
// live connections.
func (d Directory) ListRooms() ([]string, error) {
	rows, err := d.store.ScanAll()
	if err != nil {
		return nil, err
	}
	rooms := lo.FilterMap(rows, func(row repositories.Row, _ int) (string, bool) {
		category, value, ok := domain.SplitSlot(row.Slot)
		return value, ok && category == domain.CategoryRoom
	})
	return lo.Uniq(rooms), nil
}

// ConnectionIDsByRoom resolves the broadcast fan-out list for a room from
// the reverse index.
func (d Directory) ConnectionIDsByRoom(room string) ([]string, error) {
	return d.store.FindBySlot(domain.RoomSlot(room))
}

// Record loads the typed attribute record for a connection.
func (d Directory) Record(id string) (domain.ConnectionRecord, error) {
	slots, err := d.store.GetAll(id)
	if err != nil {
		return domain.ConnectionRecord{}, err
	}
	return domain.RecordFromSlots(slots), nil
}

// Usernames resolves the nicknames behind a list of connection ids,
// preserving order. Ids whose record cannot be read are skipped.
func (d Directory) Usernames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		rec, err := d.Record(id)
		if err != nil {
			d.log.Error("Member lookup failed", "connection_id", id, "error", err)
			continue
		}
		names = append(names, rec.Username)
	}
	return names
}
