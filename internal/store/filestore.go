package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ecotrace/carbontrack/internal/calc"
)

// FileStoreVersion is the current schema version for the history file.
const FileStoreVersion = 1

// fileStoreData is the serialized form of the history file.
type fileStoreData struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// FileStore is a Store backed by a JSON file. An in-process RWMutex guards
// the record slice and a cross-process advisory lockfile coordinates
// concurrent CLI invocations.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
	records  []Record
}

// NewFileStore creates a FileStore backed by the given file path.
// If filePath is empty, it defaults to ~/.carbontrack/history.json.
// The file is read lazily on first use.
func NewFileStore(filePath string) (*FileStore, error) {
	if filePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, ".carbontrack", "history.json")
	}

	return &FileStore{filePath: filePath}, nil
}

// Save appends a result to the history file and returns its new ID.
func (s *FileStore) Save(ctx context.Context, result calc.Result) (string, error) {
	unlock, err := s.acquireFileLock()
	if err != nil {
		return "", fmt.Errorf("acquiring history lock: %w", err)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-read under the lock so concurrent processes don't lose records.
	if err := s.loadLocked(); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	record := Record{
		ID:        ulid.Make().String(),
		Timestamp: time.Now().UTC(),
		Result:    result,
	}
	s.records = append(s.records, record)

	if err := s.saveLocked(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return "", err
	}

	return record.ID, nil
}

// List returns all saved records, oldest first.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock, err := s.acquireFileLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring history lock: %w", err)
	}
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// loadLocked reads the history file. Caller must hold mu and the file lock.
// A missing file starts an empty history; a corrupted one is an error.
func (s *FileStore) loadLocked() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = nil
			return nil
		}
		return fmt.Errorf("reading emission history: %w", err)
	}

	var stored fileStoreData
	if unmarshalErr := json.Unmarshal(data, &stored); unmarshalErr != nil {
		return fmt.Errorf("%w: %w", ErrStoreCorrupted, unmarshalErr)
	}

	if stored.Version != FileStoreVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)",
			ErrStoreCorrupted, stored.Version, FileStoreVersion)
	}

	s.records = stored.Records
	return nil
}

// saveLocked writes the history file atomically via a temp file.
// Caller must hold mu and the file lock.
func (s *FileStore) saveLocked() error {
	data, err := json.MarshalIndent(fileStoreData{
		Version: FileStoreVersion,
		Records: s.records,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling emission history: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(s.filePath), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating history directory: %w", mkdirErr)
	}

	tmpPath := s.filePath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing history temp file: %w", writeErr)
	}

	if renameErr := os.Rename(tmpPath, s.filePath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming history temp file: %w", renameErr)
	}

	return nil
}

// lockFilePath returns the path to the cross-process lockfile.
func (s *FileStore) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock acquires a cross-process advisory lockfile.
// Returns a cleanup function that releases the lock.
func (s *FileStore) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	const maxRetries = 10
	const retryDelay = 100 * time.Millisecond
	const staleLockAge = 30 * time.Second

	for range maxRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			// Write PID for stale lock detection
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}

		if removeStaleLock(lockPath, staleLockAge) {
			continue
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock checks if a lock file is stale and removes it if so.
// Returns true if the lock was removed (caller should retry).
func removeStaleLock(lockPath string, staleLockAge time.Duration) bool {
	info, statErr := os.Stat(lockPath)
	if statErr != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}

	if isLockHeldByLiveProcess(lockPath) {
		return false
	}

	// PID not readable, not parseable, or process dead — remove stale lock
	_ = os.Remove(lockPath)
	return true
}

// isLockHeldByLiveProcess reads the PID from a lock file and checks if that
// process is still alive.
func isLockHeldByLiveProcess(lockPath string) bool {
	pidData, readErr := os.ReadFile(lockPath)
	if readErr != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	return processExists(pid) == nil
}

// processExists checks whether a process with the given PID is still alive.
// Returns nil if the process exists, an error otherwise.
func processExists(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	// Signal 0 tests process existence without actually sending a signal
	return proc.Signal(syscall.Signal(0))
}
