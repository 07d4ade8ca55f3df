package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileTimeLayout = "20060102_150405"

// ErrEmpty is returned by Save when there is nothing to persist.
var ErrEmpty = errors.New("no conversation to save")

// Snapshot is the on-disk form of a session transcript.
type Snapshot struct {
	SessionID    string     `json:"session_id,omitempty"`
	SessionStart time.Time  `json:"session_start"`
	SessionEnd   time.Time  `json:"session_end"`
	Model        string     `json:"model"`
	Messages     []Exchange `json:"messages"`
}

// PersistenceError reports a failed snapshot write.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// FileName returns the snapshot file name for a save made at t.
func FileName(t time.Time) string {
	return "claude_conversation_" + t.Format(fileTimeLayout) + ".json"
}

// Save writes snap into dir as FileName(snap.SessionEnd) and returns the file path.
// dir is created if absent. The file is written to a temporary name first and
// renamed into place, so a failed save never leaves a partial file behind.
func Save(dir string, snap Snapshot) (string, error) {
	if len(snap.Messages) == 0 {
		return "", ErrEmpty
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(snap.SessionEnd))

	data, err := encode(snap)
	if err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".claude_conversation_*.tmp")
	if err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", &PersistenceError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", &PersistenceError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return "", &PersistenceError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", &PersistenceError{Path: path, Err: err}
	}
	return path, nil
}

// Load reads a snapshot previously written by Save.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return snap, nil
}

func encode(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
