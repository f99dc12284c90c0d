package directory

import (
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/repositories"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectory(t *testing.T) Directory {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := repositories.NewBadgerRecordStore(db, 10*time.Minute, slog.Default())
	return NewDirectory(store, slog.Default())
}

func Test_Create_Connection_Starts_Unidentified(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	req.NoError(dir.CreateConnection("c1"))

	rec, err := dir.Record("c1")
	req.NoError(err)
	req.Empty(rec.Username)
	req.False(rec.LoggedIn())
	req.False(rec.InRoom())
}

func Test_Create_Connection_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	req.NoError(dir.CreateConnection("c1"))
	req.NoError(dir.CreateConnection("c1"))

	rec, err := dir.Record("c1")
	req.NoError(err)
	req.Empty(rec.Username)
}

func Test_Set_Username(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	req.NoError(dir.CreateConnection("c1"))
	req.NoError(dir.SetUsername("c1", "", "alice"))

	rec, err := dir.Record("c1")
	req.NoError(err)
	req.Equal("alice", rec.Username)

	t.Run("rename replaces the single username row", func(t *testing.T) {
		req.NoError(dir.SetUsername("c1", "alice", "bob"))
		rec, err := dir.Record("c1")
		req.NoError(err)
		req.Equal("bob", rec.Username)
	})
}

func Test_Room_Membership(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	req.NoError(dir.CreateConnection("c1"))
	req.NoError(dir.SetRoom("c1", "lobby"))

	ids, err := dir.ConnectionIDsByRoom("lobby")
	req.NoError(err)
	req.Contains(ids, "c1")

	rec, err := dir.Record("c1")
	req.NoError(err)
	req.Equal("lobby", rec.Room)

	req.NoError(dir.RemoveRoom("c1", "lobby"))

	ids, err = dir.ConnectionIDsByRoom("lobby")
	req.NoError(err)
	req.NotContains(ids, "c1")
}

func Test_List_Rooms_Deduplicates(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	for _, id := range []string{"c1", "c2", "c3"} {
		req.NoError(dir.CreateConnection(id))
	}
	req.NoError(dir.SetRoom("c1", "lobby"))
	req.NoError(dir.SetRoom("c2", "lobby"))
	req.NoError(dir.SetRoom("c3", "kitchen"))

	rooms, err := dir.ListRooms()
	req.NoError(err)
	req.ElementsMatch([]string{"lobby", "kitchen"}, rooms)
}

func Test_Delete_Connection_Removes_Every_Row(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	req.NoError(dir.CreateConnection("c1"))
	req.NoError(dir.SetUsername("c1", "", "alice"))
	req.NoError(dir.SetRoom("c1", "lobby"))

	dir.DeleteConnection("c1")

	rec, err := dir.Record("c1")
	req.NoError(err)
	req.False(rec.LoggedIn())
	req.False(rec.InRoom())

	ids, err := dir.ConnectionIDsByRoom("lobby")
	req.NoError(err)
	req.Empty(ids)
}

func Test_Read_Paths_Propagate_Store_Errors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIRecordStore(ctrl)
	dir := NewDirectory(store, slog.Default())
	storeErr := fmt.Errorf("%w: badger down", errors.ErrStore)

	store.EXPECT().GetAll("c1").Return(nil, storeErr)
	_, err := dir.Record("c1")
	req.ErrorIs(err, errors.ErrStore)

	store.EXPECT().FindBySlot("room_lobby").Return(nil, storeErr)
	_, err = dir.ConnectionIDsByRoom("lobby")
	req.ErrorIs(err, errors.ErrStore)

	store.EXPECT().ScanAll().Return(nil, storeErr)
	_, err = dir.ListRooms()
	req.ErrorIs(err, errors.ErrStore)
}

// Cleanup is best-effort: one row failing must neither stop the remaining
// rows nor surface to the caller.
func Test_Delete_Connection_Swallows_Row_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockIRecordStore(ctrl)
	dir := NewDirectory(store, slog.Default())
	storeErr := fmt.Errorf("%w: badger down", errors.ErrStore)

	store.EXPECT().GetAll("c1").Return([]string{"username_alice", "room_lobby"}, nil)
	store.EXPECT().Delete("c1", "username_alice").Return(storeErr)
	store.EXPECT().Delete("c1", "room_lobby").Return(nil)

	dir.DeleteConnection("c1")
}

func Test_Usernames_Resolution(t *testing.T) {
	req := require.New(t)
	dir := newTestDirectory(t)

	req.NoError(dir.CreateConnection("c1"))
	req.NoError(dir.SetUsername("c1", "", "alice"))
	req.NoError(dir.CreateConnection("c2"))
	req.NoError(dir.SetUsername("c2", "", "bob"))

	names := dir.Usernames([]string{"c1", "c2"})
	req.Equal([]string{"alice", "bob"}, names)
}
