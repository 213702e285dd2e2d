package services

import (
	"regexp"
	"strings"

	"store-admin/libs"
	"store-admin/models"
	"store-admin/repositories"
	"store-admin/utils"
)

var gmailPattern = regexp.MustCompile(`(?i)^[^\s@]+@gmail\.com$`)

// AuthService owns the session aggregate and the registered-user list. The
// administrator account is fixed by configuration and never lives in the
// registry.
type AuthService struct {
	users         *repositories.UserRepository
	sessions      *repositories.SessionRepository
	mailer        *EmailService
	log           *libs.Logger
	adminEmail    string
	adminPassword string
}

func NewAuthService(
	users *repositories.UserRepository,
	sessions *repositories.SessionRepository,
	mailer *EmailService,
	log *libs.Logger,
	adminEmail, adminPassword string,
) *AuthService {
	return &AuthService{
		users:         users,
		sessions:      sessions,
		mailer:        mailer,
		log:           log,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Register validates and appends a new user record. It never logs the user in.
func (s *AuthService) Register(email, password string) error {
	if !gmailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Email must be a @gmail.com address"}
	}
	if len(strings.TrimSpace(password)) < 3 {
		return &ValidationError{Field: "password", Message: "Password must be at least 3 characters"}
	}
	if s.users.FindByEmail(email) != nil {
		return ErrUserExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.users.Create(models.StoredUser{Email: email, Password: hash}); err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(email); err != nil {
			s.log.Warn("welcome email failed", "email", email, "error", err)
		}
	}
	return nil
}

// Login resolves credentials against the fixed admin first, then the
// registry. On failure the stored session is left untouched.
func (s *AuthService) Login(sessionID, email, password string) (models.AuthState, error) {
	if !gmailPattern.MatchString(email) {
		return models.AnonymousState(), &ValidationError{Field: "email", Message: "Email must be a @gmail.com address"}
	}

	var user *models.AuthUser
	if email == s.adminEmail && password == s.adminPassword {
		user = &models.AuthUser{Email: email, Role: models.RoleAdmin}
	} else if stored := s.users.FindByEmail(email); stored != nil {
		if ok, _ := utils.VerifyPassword(stored.Password, password); ok {
			user = &models.AuthUser{Email: email, Role: models.RoleUser}
		}
	}
	if user == nil {
		return models.AnonymousState(), ErrInvalidCredentials
	}

	token := utils.GenerateToken(user.Email, user.Role)
	state := models.AuthState{IsAuthenticated: true, Token: &token, User: user}
	s.persist(sessionID, state)
	return state, nil
}

// Logout unconditionally clears the session.
func (s *AuthService) Logout(sessionID string) models.AuthState {
	state := models.AnonymousState()
	s.persist(sessionID, state)
	return state
}

func (s *AuthService) Session(sessionID string) models.AuthState {
	return s.sessions.Load(sessionID)
}

func (s *AuthService) persist(sessionID string, state models.AuthState) {
	if err := s.sessions.Save(sessionID, state); err != nil {
		s.log.Warn("session persist failed", "session_id", sessionID, "error", err)
	}
}
