package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/sheetbridge/internal/core/ports/driven"
	"github.com/custodia-labs/sheetbridge/internal/logger"
)

// Session is the process-wide authenticated state: the two backend clients
// plus the working folder. The client handles are never reassigned after
// the session is established, so a *Session may be read concurrently
// without locking.
type Session struct {
	Sheets driven.SheetsBackend
	Drive  driven.DriveBackend
	// FolderID is the Drive working folder, empty when unset.
	FolderID string
}

// SessionManager owns the lazily-initialised Session. Authentication runs
// at most once per process: concurrent first calls collapse into a single
// in-flight resolution, and every later call returns the established
// session without I/O.
//
// A failed resolution leaves no state behind — the next Ensure re-runs the
// full credential chain. There is no negative caching and no backoff;
// callers should expect repeated authentication latency under sustained
// failure.
type SessionManager struct {
	connector driven.BackendConnector
	folderID  string

	mu      sync.Mutex
	current atomic.Pointer[Session]
}

// NewSessionManager creates a session manager around the given connector.
// folderID is the configured Drive working folder, set once and immutable.
func NewSessionManager(connector driven.BackendConnector, folderID string) *SessionManager {
	return &SessionManager{
		connector: connector,
		folderID:  folderID,
	}
}

// Ensure returns the authenticated session, establishing it on first use.
func (m *SessionManager) Ensure(ctx context.Context) (*Session, error) {
	if s := m.current.Load(); s != nil {
		return s, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have finished while we waited on the lock.
	if s := m.current.Load(); s != nil {
		return s, nil
	}

	sheets, drive, err := m.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Sheets:   sheets,
		Drive:    drive,
		FolderID: m.folderID,
	}
	m.current.Store(s)
	logger.Debug("session established (folder: %s)", folderOrDefault(m.folderID))
	return s, nil
}

// Authenticated reports whether a session has been established.
func (m *SessionManager) Authenticated() bool {
	return m.current.Load() != nil
}

func folderOrDefault(folderID string) string {
	if folderID == "" {
		return "root"
	}
	return folderID
}
