// services/auth_service.go
package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tripkit/tripkit-backend/config"
	"github.com/tripkit/tripkit-backend/utils"
)

// AuthService verifies Supabase access tokens. The token issuer itself is an
// external collaborator; this service only asks it who a token belongs to.
type AuthService struct {
	supabaseURL string
	anonKey     string
	devBypass   bool
	devUserID   string
	client      *http.Client
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg config.Config) *AuthService {
	if cfg.AuthDevBypass {
		utils.Logger.Warn("auth dev bypass enabled, all requests run as the test user")
	}
	return &AuthService{
		supabaseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		anonKey:     cfg.SupabaseAnonKey,
		devBypass:   cfg.AuthDevBypass,
		devUserID:   cfg.DevBypassUser,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// DevBypass reports whether authentication is bypassed for development.
func (s *AuthService) DevBypass() (string, bool) {
	if s.devBypass {
		return s.devUserID, true
	}
	return "", false
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken resolves an access token to a user id, or an Unauthorized
// error.
func (s *AuthService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", utils.NewUnauthorizedError()
	}
	if s.supabaseURL == "" {
		utils.Logger.Error("SUPABASE_URL not configured, cannot verify tokens")
		return "", utils.NewUnauthorizedError()
	}

	req, err := http.NewRequest(http.MethodGet, s.supabaseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", utils.NewInternalError("Failed to verify token")
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := s.client.Do(req)
	if err != nil {
		utils.Logger.Errorw("token verification request failed", "err", err)
		return "", utils.NewInternalError("Failed to verify token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", utils.NewUnauthorizedError()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", utils.NewInternalError("Failed to verify token")
	}

	var user supabaseUser
	if err := json.Unmarshal(body, &user); err != nil || user.ID == "" {
		return "", utils.NewUnauthorizedError()
	}
	return user.ID, nil
}
