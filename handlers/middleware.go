// handlers/middleware.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/utils"
)

// extractAccessToken pulls the bearer token from the Authorization header,
// falling back to the session cookie.
func extractAccessToken(c *gin.Context) string {
	authorization := strings.TrimSpace(c.GetHeader("Authorization"))
	if authorization != "" {
		parts := strings.Fields(authorization)
		if len(parts) >= 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.Join(parts[1:], " ")
		}
	}

	cookie, err := c.Cookie(utils.AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}

// RequireAuth resolves the caller's identity and aborts with 401 when no
// valid credential is present.
func RequireAuth(c *gin.Context) {
	if devUserID, bypass := handlerServices.AuthService.DevBypass(); bypass {
		c.Set(userIDKey, devUserID)
		c.Next()
		return
	}

	userID, err := handlerServices.AuthService.VerifyToken(extractAccessToken(c))
	if err != nil {
		utils.HandleError(c, err)
		c.Abort()
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}
