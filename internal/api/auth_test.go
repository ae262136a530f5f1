package api_test

import (
	"net/http"
	"testing"

	"store_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesCustomer(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))

	w := doRequest(r, http.MethodPost, "/signup", "", map[string]any{
		"name":             "Asha",
		"email":            "asha@example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user domain.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&user).Error)
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "secret1", user.Password, "password must be stored hashed")
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))
	createUser(t, db, "Asha", "asha@example.com", "secret1", "customer")

	w := doRequest(r, http.MethodPost, "/signup", "", map[string]any{
		"name":             "Impostor",
		"email":            "asha@example.com",
		"password":         "secret2",
		"confirm_password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Where("email = ?", "asha@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count, "no duplicate user may be created")
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing fields", map[string]any{"email": "a@b.com"}},
		{"password too short", map[string]any{
			"name": "A", "email": "a@b.com", "password": "abc", "confirm_password": "abc",
		}},
		{"confirmation mismatch", map[string]any{
			"name": "A", "email": "a@b.com", "password": "secret1", "confirm_password": "secret2",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/signup", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no user may be created by invalid signups")
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))
	createUser(t, db, "Asha", "asha@example.com", "secret1", "customer")

	w := doRequest(r, http.MethodPost, "/login", "", map[string]any{
		"email":    "asha@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "customer", body["role"])
}

func TestLoginUniformErrorMessage(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))
	createUser(t, db, "Asha", "asha@example.com", "secret1", "customer")

	// Wrong password for an existing user.
	wrongPass := doRequest(r, http.MethodPost, "/login", "", map[string]any{
		"email": "asha@example.com", "password": "nope",
	})
	// Login attempt against an account that does not exist.
	noUser := doRequest(r, http.MethodPost, "/login", "", map[string]any{
		"email": "ghost@example.com", "password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	// The response must not leak whether the account exists.
	assert.Equal(t, decodeBody(t, wrongPass)["error"], decodeBody(t, noUser)["error"])
}

func TestLogoutRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db, testConfig(t))

	w := doRequest(r, http.MethodGet, "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := createUser(t, db, "Asha", "asha@example.com", "secret1", "customer")
	w = doRequest(r, http.MethodGet, "/logout", tokenFor(t, user), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
