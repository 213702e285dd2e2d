package services

import (
	"testing"

	"store-admin/libs"
	"store-admin/models"
	"store-admin/repositories"
	"store-admin/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewAuthService(
		repositories.NewUserRepository(store),
		repositories.NewSessionRepository(store),
		nil,
		libs.NewNopLogger(),
		"admin@gmail.com", "admin123",
	)
	return svc, store
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Register("user@gmail.com", "abc"))

	// duplicate email conflicts
	assert.ErrorIs(t, svc.Register("user@gmail.com", "abc"), ErrUserExists)

	// non-gmail address rejected
	var vErr *ValidationError
	err := svc.Register("user@yahoo.com", "abc")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	// password shorter than 3 after trim rejected
	err = svc.Register("other@gmail.com", "ab")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)

	err = svc.Register("other@gmail.com", "  ab  ")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)
}

func TestAuthService_RegisterDoesNotLogIn(t *testing.T) {
	svc, _ := newAuthService(t)

	require.NoError(t, svc.Register("user@gmail.com", "abc"))
	state := svc.Session("sid")
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Nil(t, state.Token)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	svc, _ := newAuthService(t)

	// admin resolves regardless of registry contents
	state, err := svc.Login("sid", "admin@gmail.com", "admin123")
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, models.RoleAdmin, state.User.Role)
	assert.Equal(t, "admin@gmail.com", state.User.Email)
	require.NotNil(t, state.Token)

	// and the session is persisted
	assert.Equal(t, state, svc.Session("sid"))
}

func TestAuthService_LoginRegisteredUser(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("user@gmail.com", "abc"))

	state, err := svc.Login("sid", "user@gmail.com", "abc")
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, models.RoleUser, state.User.Role)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := newAuthService(t)
	require.NoError(t, svc.Register("user@gmail.com", "abc"))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"wrong password", "user@gmail.com", "wrong", ErrInvalidCredentials},
		{"unknown email", "ghost@gmail.com", "abc", ErrInvalidCredentials},
		{"wrong admin password", "admin@gmail.com", "nope", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := svc.Login("sid", tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, state.IsAuthenticated)

			// failed login leaves the stored session anonymous
			stored := svc.Session("sid")
			assert.False(t, stored.IsAuthenticated)
			assert.Nil(t, stored.User)
		})
	}

	var vErr *ValidationError
	_, err := svc.Login("sid", "user@yahoo.com", "abc")
	assert.ErrorAs(t, err, &vErr)
}

func TestAuthService_LoginFailureKeepsExistingSession(t *testing.T) {
	svc, _ := newAuthService(t)

	state, err := svc.Login("sid", "admin@gmail.com", "admin123")
	require.NoError(t, err)

	_, err = svc.Login("sid", "admin@gmail.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// the previously stored session is untouched
	assert.Equal(t, state, svc.Session("sid"))
}

func TestAuthService_Logout(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("sid", "admin@gmail.com", "admin123")
	require.NoError(t, err)

	state := svc.Logout("sid")
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Nil(t, state.Token)
	assert.Equal(t, state, svc.Session("sid"))

	// logout from anonymous is also fine
	state = svc.Logout("sid")
	assert.False(t, state.IsAuthenticated)
}

func TestAuthService_SessionCorruptBlob(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", "!!!"},
		{"token without user", `{"isAuthenticated": true, "token": "abc", "user": null}`},
		{"user without token", `{"isAuthenticated": true, "token": null, "user": {"email":"a@gmail.com","role":"user"}}`},
		{"flag off with identity", `{"isAuthenticated": false, "token": "abc", "user": {"email":"a@gmail.com","role":"user"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newAuthService(t)
			require.NoError(t, store.Set("auth_state:sid", tt.blob))

			state := svc.Session("sid")
			assert.False(t, state.IsAuthenticated)
			assert.Nil(t, state.User)
			assert.Nil(t, state.Token)
		})
	}
}

func TestAuthService_CaseInsensitiveGmailPattern(t *testing.T) {
	svc, _ := newAuthService(t)
	assert.NoError(t, svc.Register("User@GMAIL.com", "abc"))
}
