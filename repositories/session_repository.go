package repositories

import (
	"encoding/json"

	"store-admin/models"
	"store-admin/storage"
)

const sessionKeyPrefix = "auth_state:"

type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Load returns the persisted session for a visitor. Missing, unparsable or
// inconsistent blobs yield the anonymous state.
func (r *SessionRepository) Load(sessionID string) models.AuthState {
	raw, err := r.store.Get(sessionKeyPrefix + sessionID)
	if err != nil {
		return models.AnonymousState()
	}

	var state models.AuthState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return models.AnonymousState()
	}

	// authenticated iff both identity and token are present
	if !state.IsAuthenticated || state.User == nil || state.Token == nil {
		return models.AnonymousState()
	}
	return state
}

func (r *SessionRepository) Save(sessionID string, state models.AuthState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.store.Set(sessionKeyPrefix+sessionID, string(raw))
}
