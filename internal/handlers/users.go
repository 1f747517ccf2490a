// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/models"
	"newsdesk/internal/store"
)

// UserHandler serves the public author listing and the admin account
// CRUD. Passwords arrive in plaintext over TLS and are hashed here;
// hashes never leave the store layer in responses.
type UserHandler struct {
	users *store.UserStore
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// userSummary is the public projection of an account.
type userSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// List handles GET /api/users. Anonymous callers get the summary
// projection; admins get the full records (minus password hashes).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List()
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	out := make([]userSummary, 0, len(items))
	for _, u := range items {
		out = append(out, userSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	writeJSON(w, http.StatusOK, out)
}

// ListFull handles GET /api/admin/users with complete account records.
func (h *UserHandler) ListFull(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List()
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if items == nil {
		items = []models.User{}
	}
	writeJSON(w, http.StatusOK, items)
}

type createUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Create handles POST /api/admin/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validateName(req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleAdmin
	}
	if err := validateRole(req.Role); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hash password", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	created, err := h.users.Create(&models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a user with this email already exists")
			return
		}
		slog.Error("create user", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/admin/users/{id}. Sending a password field
// rotates the credential; omitting it keeps the current hash.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		slog.Error("load user for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	for key, dst := range map[string]any{
		"name":  &user.Name,
		"email": &user.Email,
		"role":  &user.Role,
	} {
		if raw, present := fields[key]; present {
			if err := json.Unmarshal(raw, dst); err != nil {
				writeError(w, http.StatusBadRequest, "invalid value for "+key)
				return
			}
		}
	}
	if raw, present := fields["password"]; present {
		var password string
		if err := json.Unmarshal(raw, &password); err != nil || len(password) < 8 {
			writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("hash password", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update user")
			return
		}
		user.PasswordHash = string(hash)
	}

	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if err := validateName(user.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if err := validateRole(user.Role); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.users.Update(user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "a user with this email already exists")
			return
		}
		slog.Error("update user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/admin/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		slog.Error("load user for delete", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := h.users.Delete(id); err != nil {
		slog.Error("delete user", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
