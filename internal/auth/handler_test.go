package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookworm/internal/auth"
	"bookworm/internal/models"
	jwtutil "bookworm/internal/security/jwt"
	"bookworm/internal/security/password"
	"bookworm/internal/store/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	createErr error
	created   []models.User
	byEmail   map[string]models.User
}

func (f *fakeStore) Create(_ context.Context, username, email, hash, profileImage string) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	u := models.User{
		ID:           "u-1",
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		ProfileImage: profileImage,
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, users.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UpdatePasswordHash(context.Context, models.UserID, string) error { return nil }

func doPost(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.Message
}

func TestRegister_OK(t *testing.T) {
	store := &fakeStore{}
	h := auth.New(store)

	rec := doPost(t, h.Register, `{"username":"alice","email":"alice@example.com","password":"sekret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserID("u-1"), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Contains(t, resp.User.ProfileImage, "seed=alice")

	claims, err := jwtutil.ParseAccess(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)

	// hash is stored, plaintext never is
	require.Len(t, store.created, 1)
	assert.NotEqual(t, "sekret1", store.created[0].PasswordHash)
	assert.True(t, strings.HasPrefix(store.created[0].PasswordHash, "$argon2id$"))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"username":"alice"}`, "All fields are required"},
		{"bad json", `{`, "All fields are required"},
		{"short password", `{"username":"alice","email":"a@b.c","password":"123"}`, "Password must be at least 6 characters long"},
		{"short username", `{"username":"al","email":"a@b.c","password":"sekret1"}`, "Username must be at least 3 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			rec := doPost(t, auth.New(store).Register, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, message(t, rec))
			assert.Empty(t, store.created, "no user may be created on validation failure")
		})
	}
}

func TestRegister_Conflicts(t *testing.T) {
	for _, tt := range []struct {
		err  error
		want string
	}{
		{users.ErrEmailTaken, "Email already exists"},
		{users.ErrUsernameTaken, "Username already exists"},
	} {
		store := &fakeStore{createErr: tt.err}
		rec := doPost(t, auth.New(store).Register, `{"username":"alice","email":"a@b.c","password":"sekret1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, tt.want, message(t, rec))
	}
}

func TestLogin(t *testing.T) {
	hash, err := password.Hash("sekret1")
	require.NoError(t, err)

	store := &fakeStore{byEmail: map[string]models.User{
		"alice@example.com": {ID: "u-1", Username: "alice", Email: "alice@example.com", PasswordHash: hash},
	}}
	h := auth.New(store)

	t.Run("ok", func(t *testing.T) {
		rec := doPost(t, h.Login, `{"email":"alice@example.com","password":"sekret1"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp auth.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		claims, err := jwtutil.ParseAccess(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.Subject)
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := doPost(t, h.Login, `{"email":"nobody@example.com","password":"sekret1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User not found", message(t, rec))
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doPost(t, h.Login, `{"email":"alice@example.com","password":"wrong-one"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid password", message(t, rec))
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doPost(t, h.Login, `{"email":"alice@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "All fields are required", message(t, rec))
	})

	t.Run("corrupt stored hash", func(t *testing.T) {
		broken := &fakeStore{byEmail: map[string]models.User{
			"bob@example.com": {ID: "u-2", Username: "bob", Email: "bob@example.com", PasswordHash: "not-a-phc-string"},
		}}
		rec := doPost(t, auth.New(broken).Login, `{"email":"bob@example.com","password":"sekret1"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", message(t, rec))
	})
}
