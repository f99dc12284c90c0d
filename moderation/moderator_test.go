package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Sanitize_Masks_Listed_Words(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"troll"}, '*')
	req.NoError(err)

	out, masked := moderator.Sanitize("what a troll move")
	req.True(masked)
	req.Equal("what a ***** move", out)
}

func Test_Sanitize_Ignores_Clean_Text(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"troll"}, '*')
	req.NoError(err)

	out, masked := moderator.Sanitize("hello lobby")
	req.False(masked)
	req.Equal("hello lobby", out)
}

func Test_Sanitize_Defeats_Leet_And_Spacing(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"troll"}, '*')
	req.NoError(err)

	t.Run("leet substitution", func(t *testing.T) {
		out, masked := moderator.Sanitize("tr0ll")
		req.True(masked)
		req.Equal("*****", out)
	})

	t.Run("case", func(t *testing.T) {
		out, masked := moderator.Sanitize("TROLL")
		req.True(masked)
		req.Equal("*****", out)
	})
}

func Test_Empty_Word_List_Disables_Moderation(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator(nil, '*')
	req.NoError(err)
	req.False(moderator.Enabled())

	out, masked := moderator.Sanitize("troll")
	req.False(masked)
	req.Equal("troll", out)
}

func Test_Language_Detection(t *testing.T) {
	req := require.New(t)
	code := Language("the quick brown fox jumps over the lazy dog")
	req.Equal("en", code)
}
