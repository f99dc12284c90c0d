//go:generate go run go.uber.org/mock/mockgen -source=record.go -destination=../mocks/mock_record_store.go -package=mocks
package repositories

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// IRecordStore is the single logical table behind the connection directory.
// Rows are identified by a (connection id, slot) pair and expire passively.
// Every operation is individually atomic; there are no cross-row
// transactions, and callers must not assume serializability across rows.
type IRecordStore interface {
	Put(connectionID, slot string) error
	Delete(connectionID, slot string) error
	GetAll(connectionID string) ([]string, error)
	FindBySlot(slot string) ([]string, error)
	ScanAll() ([]Row, error)
}

// Row is one (connection id, slot) pair as returned by a full scan.
type Row struct {
	ConnectionID string
	Slot         string
}

// BadgerRecordStore keeps rows in BadgerDB. Each row is written twice inside
// one transaction: a primary entry under the connection id and a reverse
// index entry under the slot, so that "who holds slot X" is a prefix seek
// instead of a table scan. Both entries carry the same TTL.
//
// Key layout:
//
//	conn:{connection_id}:{slot}
//	idx:{slot}:{connection_id}
//
// Slot values embed user input (nicknames, room names) and may themselves
// contain ':', so the slot component is escaped before it enters a key;
// a room named "a:b" never satisfies a lookup for room "a". Connection ids
// must not contain ':'; the transport adapter issues UUIDs, which satisfy
// this.
type BadgerRecordStore struct {
	db  *badger.DB
	ttl time.Duration
	log *slog.Logger
}

const (
	rowPrefix   = "conn:"
	indexPrefix = "idx:"
)

func NewBadgerRecordStore(db *badger.DB, ttl time.Duration, log *slog.Logger) BadgerRecordStore {
	return BadgerRecordStore{db: db, ttl: ttl, log: log}
}

// rowMeta is the row value. The slot itself lives in the key; the value only
// records when the row was last rewritten, which the inspect tooling renders.
type rowMeta struct {
	RefreshedAt time.Time `json:"refreshed_at"`
}

// ':' separates key components, so it must never occur unescaped inside the
// slot component. '%' is escaped too so the mapping stays reversible.
var (
	slotEscaper   = strings.NewReplacer("%", "%25", ":", "%3a")
	slotUnescaper = strings.NewReplacer("%25", "%", "%3a", ":")
)

func rowKey(connectionID, slot string) []byte {
	return []byte(rowPrefix + connectionID + ":" + slotEscaper.Replace(slot))
}

func indexKey(slot, connectionID string) []byte {
	return []byte(indexPrefix + slotEscaper.Replace(slot) + ":" + connectionID)
}

// Put writes the row and its reverse index entry with a fresh TTL.
// Rewriting an existing row only refreshes its expiry.
func (s BadgerRecordStore) Put(connectionID, slot string) error {
	value, err := json.Marshal(rowMeta{RefreshedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("%w: encoding row: %v", errors.ErrStore, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(badger.NewEntry(rowKey(connectionID, slot), value).WithTTL(s.ttl)); err != nil {
			return err
		}
		return txn.SetEntry(badger.NewEntry(indexKey(slot, connectionID), value).WithTTL(s.ttl))
	})
	if err != nil {
		return fmt.Errorf("%w: put %s/%s: %v", errors.ErrStore, connectionID, slot, err)
	}
	return nil
}

// Delete removes the row and its reverse index entry. Deleting a row that is
// already gone is not an error.
func (s BadgerRecordStore) Delete(connectionID, slot string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(rowKey(connectionID, slot)); err != nil {
			return err
		}
		return txn.Delete(indexKey(slot, connectionID))
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", errors.ErrStore, connectionID, slot, err)
	}
	return nil
}

// GetAll returns every slot currently held by the connection.
func (s BadgerRecordStore) GetAll(connectionID string) ([]string, error) {
	prefix := []byte(rowPrefix + connectionID + ":")
	var slots []string
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			slots = append(slots, slotUnescaper.Replace(string(it.Item().Key()[len(prefix):])))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get all %s: %v", errors.ErrStore, connectionID, err)
	}
	return slots, nil
}

// FindBySlot returns every connection id holding exactly the given slot.
// This is the hot path for room broadcast, answered from the reverse index
// in a single prefix seek.
func (s BadgerRecordStore) FindBySlot(slot string) ([]string, error) {
	prefix := []byte(indexPrefix + slotEscaper.Replace(slot) + ":")
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: find by slot %s: %v", errors.ErrStore, slot, err)
	}
	s.log.Debug("Reverse lookup", "slot", slot, "connections", len(ids))
	return ids, nil
}

// ScanAll walks the whole primary range. O(table size); fine while the table
// holds live chat connections only, documented as not scaling past that.
func (s BadgerRecordStore) ScanAll() ([]Row, error) {
	prefix := []byte(rowPrefix)
	var rows []Row
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rest := string(it.Item().Key()[len(prefix):])
			id, slot, ok := strings.Cut(rest, ":")
			if !ok {
				continue
			}
			rows = append(rows, Row{ConnectionID: id, Slot: slotUnescaper.Replace(slot)})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scan: %v", errors.ErrStore, err)
	}
	return rows, nil
}
