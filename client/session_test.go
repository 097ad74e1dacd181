package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// fakeAPI is a minimal stand-in for the dashboard server: it issues access
// tokens on login, rotates them on refresh and guards one protected route.
type fakeAPI struct {
	mu           sync.Mutex
	tokenSeq     int
	currentToken string
	refreshToken string
	refreshDead  bool

	loginCalls   int
	refreshCalls int
	logoutCalls  int
}

func (f *fakeAPI) nextToken() string {
	f.tokenSeq++
	return fmt.Sprintf("access-%d", f.tokenSeq)
}

func (f *fakeAPI) counters() (login, refresh, logout int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginCalls, f.refreshCalls, f.logoutCalls
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"data":    data,
	})
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.loginCalls++

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "Passw0rd!" {
			writeEnvelope(w, http.StatusUnauthorized, nil)
			return
		}

		f.currentToken = f.nextToken()
		f.refreshToken = "refresh-1"
		http.SetCookie(w, &http.Cookie{
			Name: "refresh_token", Value: f.refreshToken, Path: "/auth", HttpOnly: true,
		})
		writeEnvelope(w, http.StatusOK, map[string]string{
			"accessToken": f.currentToken,
			"role":        "customer",
			"username":    body["username"],
		})
	})

	mux.HandleFunc("/auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.refreshCalls++

		cookie, err := r.Cookie("refresh_token")
		if f.refreshDead || err != nil || cookie.Value != f.refreshToken {
			writeEnvelope(w, http.StatusUnauthorized, nil)
			return
		}

		f.currentToken = f.nextToken()
		f.refreshToken = fmt.Sprintf("refresh-%d", f.tokenSeq)
		http.SetCookie(w, &http.Cookie{
			Name: "refresh_token", Value: f.refreshToken, Path: "/auth", HttpOnly: true,
		})
		writeEnvelope(w, http.StatusOK, map[string]string{
			"accessToken": f.currentToken,
			"role":        "customer",
			"username":    "budi",
		})
	})

	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.logoutCalls++
		writeEnvelope(w, http.StatusOK, nil)
	})

	mux.HandleFunc("/jobs/my-jobs", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		token := f.currentToken
		f.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+token {
			writeEnvelope(w, http.StatusUnauthorized, nil)
			return
		}
		writeEnvelope(w, http.StatusOK, []models.Job{{Pickup: "Jl. Sudirman 1"}})
	})

	return mux
}

func newTestSession(t *testing.T) (*Session, *fakeAPI, *CredStore) {
	t.Helper()

	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	store := NewCredStore(filepath.Join(t.TempDir(), "credentials.json"))
	session, err := NewSession(server.URL, store)
	require.NoError(t, err)

	return session, api, store
}

func TestSessionLogin(t *testing.T) {
	session, _, store := newTestSession(t)

	identity, err := session.Login(context.Background(), "budi", "Passw0rd!")

	require.NoError(t, err)
	assert.Equal(t, "budi", identity.Username)
	assert.Equal(t, models.RoleCustomer, identity.Role)

	// The credentials survived to disk.
	saved, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "access-1", saved.AccessToken)
}

func TestSessionLogin_BadPassword(t *testing.T) {
	session, _, store := newTestSession(t)

	_, err := session.Login(context.Background(), "budi", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Nil(t, session.Identity())

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestSessionDo_RenewalIsInvisible(t *testing.T) {
	session, api, store := newTestSession(t)

	_, err := session.Login(context.Background(), "budi", "Passw0rd!")
	require.NoError(t, err)

	// Expire the access token server side; the refresh cookie stays good.
	api.mu.Lock()
	api.currentToken = api.nextToken()
	api.mu.Unlock()

	jobs, err := session.ListJobs(context.Background(), ScopeMine, "")

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Jl. Sudirman 1", jobs[0].Pickup)
	_, refreshes, _ := api.counters()
	assert.Equal(t, 1, refreshes)

	// The renewed token replaced the stored one.
	saved, err := store.Load()
	require.NoError(t, err)
	assert.NotEqual(t, "access-1", saved.AccessToken)
}

func TestSessionDo_SecondRejectionTearsDown(t *testing.T) {
	session, api, store := newTestSession(t)

	_, err := session.Login(context.Background(), "budi", "Passw0rd!")
	require.NoError(t, err)

	// Kill both credentials: the access token is stale and the refresh
	// token is revoked.
	api.mu.Lock()
	api.currentToken = api.nextToken()
	api.refreshDead = true
	api.mu.Unlock()

	_, err = session.ListJobs(context.Background(), ScopeMine, "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, session.Identity())

	saved, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, saved)
}

func TestSessionDo_WithoutLogin(t *testing.T) {
	session, _, _ := newTestSession(t)

	_, err := session.ListJobs(context.Background(), ScopeMine, "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionLogout(t *testing.T) {
	session, api, store := newTestSession(t)

	_, err := session.Login(context.Background(), "budi", "Passw0rd!")
	require.NoError(t, err)

	require.NoError(t, session.Logout(context.Background()))
	assert.Nil(t, session.Identity())
	_, _, logouts := api.counters()
	assert.Equal(t, 1, logouts)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)

	// Logging out again is a no-op and hits the server no further.
	require.NoError(t, session.Logout(context.Background()))
	_, _, logouts = api.counters()
	assert.Equal(t, 1, logouts)
}

func TestSessionRestore_NoStoredCredentials(t *testing.T) {
	session, api, _ := newTestSession(t)

	identity, err := session.Restore(context.Background())

	require.NoError(t, err)
	assert.Nil(t, identity)
	_, refreshes, _ := api.counters()
	assert.Equal(t, 0, refreshes)
}

func TestSessionRestore_ReturnsStoredIdentity(t *testing.T) {
	session, api, store := newTestSession(t)

	// Credentials left behind by a previous run.
	require.NoError(t, store.Save(&Credentials{
		AccessToken: "stored", Role: models.RoleCustomer, Username: "budi",
	}))

	identity, err := session.Restore(context.Background())

	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "budi", identity.Username)
	assert.Equal(t, models.RoleCustomer, identity.Role)

	// Restore is offline friendly; validation waits for the first call.
	_, refreshes, _ := api.counters()
	assert.Equal(t, 0, refreshes)
}

func TestSessionRestore_StaleCredentialsFailClosed(t *testing.T) {
	session, _, store := newTestSession(t)

	// The stored token no longer matches anything server side and the
	// cookie jar is empty, so the first call exhausts the renewal path.
	require.NoError(t, store.Save(&Credentials{
		AccessToken: "stale", Role: models.RoleCustomer, Username: "budi",
	}))
	_, err := session.Restore(context.Background())
	require.NoError(t, err)

	_, err = session.ListJobs(context.Background(), ScopeMine, "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Nil(t, session.Identity())

	saved, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, saved)
}

func TestSessionSubscribe(t *testing.T) {
	session, _, _ := newTestSession(t)

	ch := session.Subscribe()

	_, err := session.Login(context.Background(), "budi", "Passw0rd!")
	require.NoError(t, err)

	identity := <-ch
	require.NotNil(t, identity)
	assert.Equal(t, "budi", identity.Username)

	require.NoError(t, session.Logout(context.Background()))
	assert.Nil(t, <-ch)

	session.Unsubscribe(ch)
	_, open := <-ch
	assert.False(t, open)
}

func TestSessionSubscribe_LatestWins(t *testing.T) {
	session, _, _ := newTestSession(t)

	ch := session.Subscribe()

	_, err := session.Login(context.Background(), "budi", "Passw0rd!")
	require.NoError(t, err)
	require.NoError(t, session.Logout(context.Background()))

	// The subscriber never read the login snapshot; only the final state
	// is left in the channel.
	assert.Nil(t, <-ch)
	select {
	case <-ch:
		t.Fatal("expected a single buffered snapshot")
	default:
	}
}
