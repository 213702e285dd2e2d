package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type AuthUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthState is a visitor's session aggregate. IsAuthenticated is true exactly
// when both User and Token are present.
type AuthState struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	Token           *string   `json:"token"`
	User            *AuthUser `json:"user"`
}

func AnonymousState() AuthState {
	return AuthState{}
}

// StoredUser is one record of the registered-user list. Password holds the
// argon2 encoding of the password chosen at registration.
type StoredUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
