package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Slot_Round_Trip(t *testing.T) {
	req := require.New(t)

	category, value, ok := SplitSlot(UsernameSlot("alice"))
	req.True(ok)
	req.Equal(CategoryUsername, category)
	req.Equal("alice", value)

	category, value, ok = SplitSlot(RoomSlot("lobby"))
	req.True(ok)
	req.Equal(CategoryRoom, category)
	req.Equal("lobby", value)
}

func Test_Slot_Value_May_Contain_Separator(t *testing.T) {
	req := require.New(t)

	_, value, ok := SplitSlot(RoomSlot("war_room"))
	req.True(ok)
	req.Equal("war_room", value)
}

func Test_Record_From_Slots(t *testing.T) {
	t.Run("fresh connection has empty username and no room", func(t *testing.T) {
		req := require.New(t)
		rec := RecordFromSlots([]string{UsernameSlot("")})
		req.False(rec.LoggedIn())
		req.False(rec.InRoom())
	})

	t.Run("logged in member", func(t *testing.T) {
		req := require.New(t)
		rec := RecordFromSlots([]string{UsernameSlot("alice"), RoomSlot("lobby")})
		req.True(rec.LoggedIn())
		req.Equal("alice", rec.Username)
		req.Equal("lobby", rec.Room)
	})

	t.Run("malformed slots are skipped", func(t *testing.T) {
		req := require.New(t)
		rec := RecordFromSlots([]string{"garbage", UsernameSlot("bob")})
		req.Equal("bob", rec.Username)
	})

	t.Run("no username row reads as not logged in", func(t *testing.T) {
		req := require.New(t)
		rec := RecordFromSlots([]string{RoomSlot("lobby")})
		req.False(rec.LoggedIn())
	})
}
