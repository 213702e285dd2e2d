package middleware

import (
	"net/http"
	"strings"

	"store-admin/models"
	"store-admin/services"
	"store-admin/utils"

	"github.com/gin-gonic/gin"
)

// Decision is the route guard outcome for a session against a required-role
// set.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionLogin
	DecisionUnauthorized
)

// Authorize decides whether a session may reach a protected route. An
// anonymous session is always sent to login; an authenticated session whose
// role is outside the required set is sent to unauthorized. The default role
// set admits both admin and user.
func Authorize(state models.AuthState, requiredRoles []string) Decision {
	if !state.IsAuthenticated || state.User == nil {
		return DecisionLogin
	}

	if len(requiredRoles) == 0 {
		requiredRoles = []string{models.RoleAdmin, models.RoleUser}
	}
	for _, role := range requiredRoles {
		if state.User.Role == role {
			return DecisionAllow
		}
	}
	return DecisionUnauthorized
}

// RequireAuth gates a route group on the session aggregate. A bearer token,
// when supplied, must decode and agree with the stored session identity.
func RequireAuth(auth *services.AuthService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		state := auth.Session(sessionID)

		switch Authorize(state, roles) {
		case DecisionLogin:
			redirectLogin(c)
			return
		case DecisionUnauthorized:
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success:  false,
				Message:  "Access denied",
				Redirect: "/unauthorized",
			})
			c.Abort()
			return
		}

		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				redirectLogin(c)
				return
			}
			claims, err := utils.ParseToken(parts[1])
			if err != nil || claims.Email != state.User.Email || claims.Role != state.User.Role {
				redirectLogin(c)
				return
			}
		}

		c.Set("user_email", state.User.Email)
		c.Set("user_role", state.User.Role)
		c.Next()
	}
}

func redirectLogin(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Success:  false,
		Message:  "Authentication required",
		Redirect: "/login",
		From:     c.Request.URL.Path,
	})
	c.Abort()
}
