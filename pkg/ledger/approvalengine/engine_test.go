package approvalengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/serializer/v2/stream"
)

func TestEngine_SetOverwrites(t *testing.T) {
	engine := New()

	engine.Set(101, "alice", "bob", 100)
	remaining, exists := engine.Remaining(101, "alice", "bob")
	require.True(t, exists)
	require.EqualValues(t, 100, remaining)

	// Re-approval replaces the allowance instead of topping it up.
	engine.Set(101, "alice", "bob", 30)
	remaining, exists = engine.Remaining(101, "alice", "bob")
	require.True(t, exists)
	require.EqualValues(t, 30, remaining)

	// A zero approval removes the entry.
	engine.Set(101, "alice", "bob", 0)
	_, exists = engine.Remaining(101, "alice", "bob")
	require.False(t, exists)
	require.Equal(t, 0, engine.Size())
}

func TestEngine_Spend(t *testing.T) {
	engine := New()
	engine.Set(101, "alice", "bob", 100)

	engine.Spend(101, "alice", "bob", 60)
	remaining, exists := engine.Remaining(101, "alice", "bob")
	require.True(t, exists)
	require.EqualValues(t, 40, remaining)

	// Spending down to zero removes the entry.
	engine.Spend(101, "alice", "bob", 40)
	_, exists = engine.Remaining(101, "alice", "bob")
	require.False(t, exists)
}

func TestEngine_Cancel(t *testing.T) {
	engine := New()
	engine.Set(101, "alice", "bob", 100)

	require.True(t, engine.Cancel(101, "alice", "bob"))
	_, exists := engine.Remaining(101, "alice", "bob")
	require.False(t, exists)

	require.False(t, engine.Cancel(101, "alice", "bob"))
}

func TestEngine_ClearAsset(t *testing.T) {
	engine := New()
	engine.Set(101, "alice", "bob", 100)
	engine.Set(101, "alice", "carol", 50)
	engine.Set(102, "alice", "bob", 25)

	require.Equal(t, 2, engine.CountForAsset(101))

	engine.ClearAsset(101)
	require.Equal(t, 0, engine.CountForAsset(101))
	require.Equal(t, 1, engine.CountForAsset(102))

	remaining, exists := engine.Remaining(102, "alice", "bob")
	require.True(t, exists)
	require.EqualValues(t, 25, remaining)
}

func TestEngine_SnapshotRoundTrip(t *testing.T) {
	engine := New()
	engine.Set(101, "alice", "bob", 100)
	engine.Set(102, "carol", "dave", 7)

	byteBuffer := stream.NewByteBuffer()
	require.NoError(t, engine.Export(byteBuffer))

	bytes, err := byteBuffer.Bytes()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.Import(stream.NewByteReader(bytes)))

	require.Equal(t, engine.Size(), restored.Size())
	remaining, exists := restored.Remaining(101, "alice", "bob")
	require.True(t, exists)
	require.EqualValues(t, 100, remaining)
	remaining, exists = restored.Remaining(102, "carol", "dave")
	require.True(t, exists)
	require.EqualValues(t, 7, remaining)
}
