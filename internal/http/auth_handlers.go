package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"viralalchemy-backend-go/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresAt    int64    `json:"expiresAt"`
	User         *UserDTO `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Register creates the session-scoped account and signs it in immediately.
// Accounts live only in memory; there is no email verification step.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	name := trimString(req.Name, 120)
	if name == "" {
		name = email
	}
	hash, err := s.Tokens.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	user, err := s.Users.Register(name, email, hash)
	if mapServiceError(w, err) {
		return
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.writeTokenResponse(w, user)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Authentication failed")
		return
	}
	user, exists := s.Users.FindByEmail(email)
	if !exists {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	if !s.Tokens.VerifyPassword(req.Password, user.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	s.Users.SetLastLogin(user.ID)
	s.writeTokenResponse(w, user)
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Authentication failed")
		return
	}
	token, claims, err := s.Tokens.ParseToken(req.RefreshToken)
	if err != nil || !token.Valid || claims["typ"] != "refresh" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	userID, _ := claims["sub"].(string)
	user, exists := s.Users.FindByID(userID)
	if !exists {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	s.writeTokenResponse(w, user)
}

// Logout tears the account down entirely. Nothing survives the session.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.Users.Delete(CurrentUserID(r))
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, exists := s.Users.FindByID(CurrentUserID(r))
	if !exists {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	WriteJSON(w, http.StatusOK, buildUserDTO(user))
}

func (s *Server) writeTokenResponse(w http.ResponseWriter, user models.User) {
	access, exp, err := s.Tokens.CreateAccessToken(user.ID, user.Email, user.Roles)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	refresh, err := s.Tokens.CreateRefreshToken(user.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	dto := buildUserDTO(user)
	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    exp,
		User:         &dto,
	})
}
