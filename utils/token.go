package utils

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// TokenClaims is the payload of the opaque session token. The token is plain
// base64 over this JSON with no signature and no expiry: it marks a session
// as logged in and must not be treated as a security credential.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Ts    int64  `json:"ts"`
}

func GenerateToken(email, role string) string {
	payload, _ := json.Marshal(TokenClaims{
		Email: email,
		Role:  role,
		Ts:    time.Now().UnixMilli(),
	})
	return base64.StdEncoding.EncodeToString(payload)
}

func ParseToken(token string) (*TokenClaims, error) {
	payload, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var claims TokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
