package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"bookworm/internal/api/httpx"
	jwtutil "bookworm/internal/security/jwt"
	"bookworm/internal/security/password"
	"bookworm/internal/store/users"
)

const minUsernameLen = 3

type Handler struct {
	Store UserStore
}

func New(store UserStore) *Handler {
	return &Handler{Store: store}
}

// Register creates a user account and returns a session token with the
// public user view.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if len(req.Password) < password.MinLen {
		httpx.Error(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}
	if len(req.Username) < minUsernameLen {
		httpx.Error(w, http.StatusBadRequest, "Username must be at least 3 characters long")
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Printf("[auth] hash failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	u, err := h.Store.Create(r.Context(), req.Username, req.Email, hash, avatarURL(req.Username))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			httpx.Error(w, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, users.ErrUsernameTaken):
			httpx.Error(w, http.StatusBadRequest, "Username already exists")
		default:
			log.Printf("[auth] create user failed: %v", err)
			httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	token, err := jwtutil.SignAccess(string(u.ID), jwtutil.DefaultAccessTTL())
	if err != nil {
		log.Printf("[auth] sign token failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpx.Created(w, AuthResponse{Token: token, User: u.Public()})
}

// Login checks credentials and returns a fresh session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	u, err := h.Store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			httpx.Error(w, http.StatusBadRequest, "User not found")
			return
		}
		log.Printf("[auth] find user failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ok, needsRehash, err := password.Verify(req.Password, u.PasswordHash)
	if err != nil {
		log.Printf("[auth] verify failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "Invalid password")
		return
	}
	if needsRehash {
		if newPHC, err := password.Hash(req.Password); err == nil {
			_ = h.Store.UpdatePasswordHash(r.Context(), u.ID, newPHC)
		}
	}

	token, err := jwtutil.SignAccess(string(u.ID), jwtutil.DefaultAccessTTL())
	if err != nil {
		log.Printf("[auth] sign token failed: %v", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpx.OK(w, AuthResponse{Token: token, User: u.Public()})
}

// avatarURL derives the avatar deterministically from the username.
func avatarURL(username string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(username)
}
