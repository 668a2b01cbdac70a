package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishisahayak/krishibot-api/internal/domain"
)

// MaxTurns is the per-session history cap: 10 user/model pairs.
const MaxTurns = 20

// Registry holds every active conversation for the lifetime of the
// process. Sessions are created lazily and whole sessions are never
// evicted, so the map grows with the number of distinct session ids.
// TODO: add an LRU cap before any long-lived deployment.
type Registry struct {
	mu       sync.Mutex
	sessions map[string][]domain.Turn
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string][]domain.Turn)}
}

// NewSessionID generates a session token of the form
// session_<unix-ms>_<random>. Uniqueness rests entirely on the random
// fragment; collisions are negligible but not formally impossible.
func NewSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Resolve returns the session id and a snapshot of its history,
// creating an empty session when the id is blank or not yet known. A
// client-supplied id is kept as-is on first reference.
func (r *Registry) Resolve(id string) (string, []domain.Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(id) == "" {
		id = NewSessionID()
	}
	turns, ok := r.sessions[id]
	if !ok {
		r.sessions[id] = nil
		return id, nil
	}
	return id, copyTurns(turns)
}

// Append adds one turn to the end of the session's history.
func (r *Registry) Append(id string, turn domain.Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = append(r.sessions[id], turn)
}

// Replace swaps the session's history wholesale. Used after trimming.
func (r *Registry) Replace(id string, turns []domain.Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = copyTurns(turns)
}

// History returns a snapshot of the session's turns, empty when the id
// is unknown. It never creates a session.
func (r *Registry) History(id string) []domain.Turn {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyTurns(r.sessions[id])
}

// Clear removes the session entirely. Clearing an unknown id is a
// no-op.
func (r *Registry) Clear(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// TrimTurns keeps only the most recent MaxTurns turns.
func TrimTurns(turns []domain.Turn) []domain.Turn {
	if len(turns) <= MaxTurns {
		return turns
	}
	return turns[len(turns)-MaxTurns:]
}

func copyTurns(turns []domain.Turn) []domain.Turn {
	if len(turns) == 0 {
		return nil
	}
	out := make([]domain.Turn, len(turns))
	copy(out, turns)
	return out
}
