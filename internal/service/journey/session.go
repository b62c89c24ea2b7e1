package journey

import (
	"sync"

	"github.com/agrilync/farmtrack/internal/domain/models"
)

// SessionManager holds the last-known-good farm per open journey session,
// keyed by farmer id. Mutations replace the cached farm only after the store
// acknowledges, and a store response arriving after the session was closed is
// discarded.
type SessionManager struct {
	sessions map[string]*models.Farm
	mu       sync.RWMutex
}

// NewSessionManager creates an empty session cache.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*models.Farm),
	}
}

// Open starts (or refreshes) a session for a farmer. A nil farm marks an open
// session for a farmer without a provisioned farm yet.
func (sm *SessionManager) Open(farmerID string, farm *models.Farm) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[farmerID] = farm
}

// Current returns the cached farm for an open session. The second return
// value distinguishes a closed session from an open one without a farm.
func (sm *SessionManager) Current(farmerID string) (*models.Farm, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	farm, open := sm.sessions[farmerID]
	return farm, open
}

// Apply swaps in the post-mutation farm. It reports false, leaving the cache
// untouched, when the session has been torn down in the meantime.
func (sm *SessionManager) Apply(farmerID string, farm *models.Farm) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, open := sm.sessions[farmerID]; !open {
		return false
	}
	sm.sessions[farmerID] = farm
	return true
}

// Close tears down a farmer's session.
func (sm *SessionManager) Close(farmerID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, farmerID)
}
