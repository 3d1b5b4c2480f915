// handlers/auth_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripkit/tripkit-backend/models"
	"github.com/tripkit/tripkit-backend/utils"
)

const sessionCookieMaxAge = 60 * 60 * 24 * 7

// CreateSession verifies an access token and mirrors it into an HTTP-only
// cookie so browser requests authenticate without a header.
func CreateSession(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return
	}

	userID, err := handlerServices.AuthService.VerifyToken(req.AccessToken)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AccessTokenCookie, req.AccessToken, sessionCookieMaxAge, "/", "", false, true)

	utils.HandleSuccess(c, gin.H{"userId": userID})
}

// DeleteSession clears the session cookie
func DeleteSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AccessTokenCookie, "", -1, "/", "", false, true)

	utils.HandleSuccess(c, gin.H{"success": true})
}
