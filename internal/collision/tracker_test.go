package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vbsp/errs"
	"github.com/arloliu/vbsp/internal/hash"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("light", hash.ID("light")))
	require.NoError(t, tracker.Track("light_spot", hash.ID("light_spot")))

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"light", "light_spot"}, tracker.Names())

	name, ok := tracker.Lookup(hash.ID("light_spot"))
	require.True(t, ok)
	require.Equal(t, "light_spot", name)

	_, ok = tracker.Lookup(hash.ID("worldspawn"))
	require.False(t, ok)
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrEmptyName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("func_door", 0x1234567890abcdef))

	err := tracker.Track("func_door", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateName)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("func_door", 0x1234567890abcdef))

	err := tracker.Track("func_door_rotating", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrHashCollision)
	require.Contains(t, err.Error(), "func_door_rotating")
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	// the first owner keeps the hash
	name, ok := tracker.Lookup(0x1234567890abcdef)
	require.True(t, ok)
	require.Equal(t, "func_door", name)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 1))
	require.Error(t, tracker.Track("b", 1))
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	_, ok := tracker.Lookup(1)
	require.False(t, ok)
	require.NoError(t, tracker.Track("b", 1))
}
