package repositories

import (
	"testing"

	"store-admin/models"
	"store-admin/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())

	assert.Nil(t, repo.FindByEmail("a@gmail.com"))

	require.NoError(t, repo.Create(models.StoredUser{Email: "a@gmail.com", Password: "hash-a"}))
	require.NoError(t, repo.Create(models.StoredUser{Email: "b@gmail.com", Password: "hash-b"}))

	found := repo.FindByEmail("b@gmail.com")
	require.NotNil(t, found)
	assert.Equal(t, "hash-b", found.Password)
	assert.Len(t, repo.All(), 2)
}

func TestUserRepository_CorruptRegistry(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewUserRepository(store)

	require.NoError(t, store.Set("registered_users", "not json"))
	assert.Empty(t, repo.All())
	assert.Nil(t, repo.FindByEmail("a@gmail.com"))

	// a corrupt registry is replaced on the next write
	require.NoError(t, repo.Create(models.StoredUser{Email: "a@gmail.com", Password: "h"}))
	assert.Len(t, repo.All(), 1)
}

func TestSessionRepository_SaveLoad(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemoryStore())

	token := "some-token"
	state := models.AuthState{
		IsAuthenticated: true,
		Token:           &token,
		User:            &models.AuthUser{Email: "a@gmail.com", Role: models.RoleUser},
	}
	require.NoError(t, repo.Save("sid", state))
	assert.Equal(t, state, repo.Load("sid"))

	// a different visitor stays anonymous
	assert.Equal(t, models.AnonymousState(), repo.Load("other"))
}
