package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/linguanest/lingua-back/internal/models"
)

func testUser() models.AdminUser {
	return models.AdminUser{
		ID:       "u-1",
		Username: "admin",
		Email:    "admin@linguanest.local",
		Role:     "admin",
	}
}

// authServer fakes the auth endpoints: login accepts one credential pair,
// every handler records the Authorization header it saw.
func authServer(t *testing.T, lastAuth *string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		*lastAuth = r.Header.Get("Authorization")

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "admin" || creds["password"] != "correctpass" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(LoginResult{Token: "T", User: testUser()})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		*lastAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(testUser())
	})
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		*lastAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Course{})
	})
	return httptest.NewServer(mux)
}

func TestLoginFailureLeavesSessionUnauthenticated(t *testing.T) {
	var lastAuth string
	srv := authServer(t, &lastAuth)
	defer srv.Close()

	store := NewMemStore()
	sess := NewSession(srv.URL, store, zap.NewNop())

	err := sess.Login(context.Background(), "admin", "wrongpass")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.Token())
	_, ok := store.Get("adminToken")
	require.False(t, ok)
}

func TestLoginSuccessPersistsTokenAndUser(t *testing.T) {
	var lastAuth string
	srv := authServer(t, &lastAuth)
	defer srv.Close()

	store := NewMemStore()
	sess := NewSession(srv.URL, store, zap.NewNop())

	require.NoError(t, sess.Login(context.Background(), "admin", "correctpass"))
	require.True(t, sess.IsAuthenticated())
	require.Equal(t, "admin", sess.User().Username)

	token, ok := store.Get("adminToken")
	require.True(t, ok)
	require.Equal(t, "T", token)

	rawUser, ok := store.Get("adminUser")
	require.True(t, ok)
	var user models.AdminUser
	require.NoError(t, json.Unmarshal([]byte(rawUser), &user))
	require.Equal(t, "admin", user.Username)

	// Subsequent requests carry the bearer token.
	_, err := sess.Client().Courses(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer T", lastAuth)
}

func TestLogoutClearsStoreAndDetachesToken(t *testing.T) {
	var lastAuth string
	srv := authServer(t, &lastAuth)
	defer srv.Close()

	store := NewMemStore()
	sess := NewSession(srv.URL, store, zap.NewNop())
	require.NoError(t, sess.Login(context.Background(), "admin", "correctpass"))

	sess.Logout()

	require.False(t, sess.IsAuthenticated())
	_, ok := store.Get("adminToken")
	require.False(t, ok)
	_, ok = store.Get("adminUser")
	require.False(t, ok)

	// No Authorization header after logout.
	_, err := sess.Client().Courses(context.Background())
	require.NoError(t, err)
	require.Empty(t, lastAuth)
}

func TestSessionHydratesFromStore(t *testing.T) {
	store := NewMemStore()
	store.Set("adminToken", "T")
	rawUser, _ := json.Marshal(testUser())
	store.Set("adminUser", string(rawUser))

	sess := NewSession("http://unused.invalid", store, zap.NewNop())

	require.True(t, sess.IsAuthenticated())
	require.Equal(t, "T", sess.Token())
	require.Equal(t, "admin", sess.User().Username)
}

func TestSessionClearsOnCorruptStoredUser(t *testing.T) {
	store := NewMemStore()
	store.Set("adminToken", "T")
	store.Set("adminUser", "{not json")

	sess := NewSession("http://unused.invalid", store, zap.NewNop())

	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.Token())
	_, ok := store.Get("adminToken")
	require.False(t, ok)
}

func TestResolveKeepsTokenOnFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewMemStore()
	store.Set("adminToken", "T")

	sess := NewSession(srv.URL, store, zap.NewNop())
	require.NoError(t, sess.Resolve(context.Background()))

	// Not authenticated without a user, but the token survives: it may still
	// be valid and the failure may have been transient.
	require.False(t, sess.IsAuthenticated())
	require.Equal(t, "T", sess.Token())
	token, ok := store.Get("adminToken")
	require.True(t, ok)
	require.Equal(t, "T", token)
}

func TestResolveFetchesAndPersistsUser(t *testing.T) {
	var lastAuth string
	srv := authServer(t, &lastAuth)
	defer srv.Close()

	store := NewMemStore()
	store.Set("adminToken", "T")

	sess := NewSession(srv.URL, store, zap.NewNop())
	require.NoError(t, sess.Resolve(context.Background()))

	require.True(t, sess.IsAuthenticated())
	require.Equal(t, "Bearer T", lastAuth)
	_, ok := store.Get("adminUser")
	require.True(t, ok)
}
