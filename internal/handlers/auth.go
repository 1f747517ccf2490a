// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/auth"
	"newsdesk/internal/store"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	users  *store.UserStore
	tokens *auth.Manager
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users *store.UserStore, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. Unknown emails and wrong passwords
// produce the same 401 so the endpoint does not leak which accounts
// exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("failed login attempt", "email", req.Email)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		slog.Error("issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if err := h.users.TouchLastLogin(user.ID); err != nil {
		slog.Warn("touch last login", "user_id", user.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"user": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
