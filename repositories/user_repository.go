package repositories

import (
	"encoding/json"

	"store-admin/models"
	"store-admin/storage"
)

const usersKey = "registered_users"

// UserRepository owns the registered-user list, persisted as a single JSON
// array blob.
type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) All() []models.StoredUser {
	raw, err := r.store.Get(usersKey)
	if err != nil {
		return []models.StoredUser{}
	}

	var users []models.StoredUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return []models.StoredUser{}
	}
	return users
}

func (r *UserRepository) FindByEmail(email string) *models.StoredUser {
	for _, user := range r.All() {
		if user.Email == email {
			return &user
		}
	}
	return nil
}

func (r *UserRepository) Create(user models.StoredUser) error {
	users := append(r.All(), user)
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(usersKey, string(raw))
}
