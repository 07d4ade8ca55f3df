package transcript

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 10, 22, 9, 30, 0, 0, time.UTC)

func exchange(i int, user, claude string) Exchange {
	return Exchange{Timestamp: base.Add(time.Duration(i) * time.Minute), User: user, Claude: claude}
}

func TestStoreAppendKeepsOrder(t *testing.T) {
	s := NewStore()
	s.Append(exchange(0, "first", "one"))
	s.Append(exchange(1, "second", "two"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].User)
	assert.Equal(t, "second", all[1].User)
	assert.Equal(t, 2, s.Len())
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(exchange(0, "a", "b"))

	all := s.All()
	all[0].User = "mutated"
	assert.Equal(t, "a", s.All()[0].User)
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Append(exchange(0, "a", "b"))
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())

	s.Append(exchange(1, "c", "d"))
	assert.Equal(t, 1, s.Len())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "claude_conversation_20241022_093000.json", FileName(base))
}

func TestSaveWritesSnapshotInOrder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "chats")
	snap := Snapshot{
		SessionID:    "abc",
		SessionStart: base,
		SessionEnd:   base.Add(time.Hour),
		Model:        "claude-test",
		Messages: []Exchange{
			exchange(0, "What is 2+2?", "4"),
			exchange(1, "<b>html</b> & ünïcode", "ok"),
		},
	}

	path, err := Save(dir, snap)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "claude_conversation_20241022_103000.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(raw))
	assert.Contains(t, string(raw), "<b>html</b> & ünïcode")

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	for _, key := range []string{"session_start", "session_end", "model", "messages"} {
		assert.Contains(t, generic, key)
	}
	first := generic["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "What is 2+2?", first["user"])
	assert.Equal(t, "4", first["claude"])
	assert.Contains(t, first, "timestamp")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "claude-test", loaded.Model)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, snap.Messages[0].User, loaded.Messages[0].User)
	assert.Equal(t, snap.Messages[1].User, loaded.Messages[1].User)
	assert.True(t, snap.Messages[1].Timestamp.Equal(loaded.Messages[1].Timestamp))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestSaveEmptyWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chats")
	_, err := Save(dir, Snapshot{SessionStart: base, SessionEnd: base})
	require.ErrorIs(t, err, ErrEmpty)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveReportsPersistenceError(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Save(filepath.Join(blocker, "sub"), Snapshot{
		SessionEnd: base,
		Messages:   []Exchange{exchange(0, "a", "b")},
	})
	require.Error(t, err)
	var persistErr *PersistenceError
	require.True(t, errors.As(err, &persistErr))
	assert.Contains(t, persistErr.Path, "claude_conversation_")
}
