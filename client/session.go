package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

const refreshPath = "/auth/refresh-token"

// Session owns the credential lifecycle for one user of the dashboard API.
// It attaches the bearer token to outgoing requests, renews it behind the
// caller's back on a 401 and keeps the durable store in sync.
type Session struct {
	baseURL    string
	httpClient *http.Client
	store      *CredStore

	mu    sync.RWMutex
	creds *Credentials

	// renewMu collapses concurrent renewals into one round-trip. Renewal
	// is idempotent server side, the mutex only avoids redundant calls.
	renewMu sync.Mutex

	subMu       sync.Mutex
	subscribers map[chan *Identity]struct{}
}

// NewSession creates a session talking to the API at baseURL. The refresh
// cookie is held by the client's cookie jar and never touched directly.
func NewSession(baseURL string, store *CredStore) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Session{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		store:       store,
		subscribers: make(map[chan *Identity]struct{}),
	}, nil
}

// Identity returns a snapshot of the authenticated identity, or nil when
// the session holds no credentials.
func (s *Session) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds == nil {
		return nil
	}
	return &Identity{Username: s.creds.Username, Role: s.creds.Role}
}

// Login authenticates and installs the returned credentials.
func (s *Session) Login(ctx context.Context, username, password string) (*Identity, error) {
	payload := map[string]string{"username": username, "password": password}
	creds, err := s.postAuth(ctx, "/auth/login", payload)
	if err != nil {
		return nil, err
	}

	if err := s.installCredentials(creds); err != nil {
		return nil, err
	}
	return &Identity{Username: creds.Username, Role: creds.Role}, nil
}

// Register creates a customer account. It does not log the caller in.
func (s *Session) Register(ctx context.Context, name, username, password string) error {
	payload := map[string]string{"name": name, "username": username, "password": password}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/auth/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return decodeAPIError(resp)
	}
	return nil
}

// Logout invalidates the session. The server call is best effort; local
// state is cleared no matter what. Logging out twice is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	if s.Identity() == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/auth/logout", nil)
	if err == nil {
		if resp, doErr := s.httpClient.Do(req); doErr == nil {
			resp.Body.Close()
		}
	}

	return s.teardown()
}

// Restore brings a previous session back at process start. Stored
// credentials are installed as-is; the server validates them on the first
// call and the usual renewal path takes over from there. No round-trip
// happens here, so restoring while offline still works.
func (s *Session) Restore(ctx context.Context) (*Identity, error) {
	creds, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()
	s.notify()

	return s.Identity(), nil
}

// Do performs an authorized request. On a 401 the session renews the
// credential and replays the request exactly once; a second 401 tears the
// session down. The replay is invisible to the caller.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	s.mu.RLock()
	creds := s.creds
	s.mu.RUnlock()

	if creds == nil {
		return nil, ErrUnauthenticated
	}

	token := creds.AccessToken
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	isRefreshCall := strings.HasSuffix(req.URL.Path, refreshPath)
	if resp.StatusCode != http.StatusUnauthorized || isRefreshCall {
		return resp, nil
	}
	resp.Body.Close()

	if err := s.renew(req.Context(), token); err != nil {
		return nil, err
	}

	replay, err := cloneRequest(req)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	renewed := s.creds
	s.mu.RUnlock()
	if renewed == nil {
		return nil, ErrUnauthenticated
	}
	replay.Header.Set("Authorization", "Bearer "+renewed.AccessToken)

	resp, err = s.httpClient.Do(replay)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	// Renewed credential was rejected too; the session is dead.
	if err := s.teardown(); err != nil {
		return nil, err
	}
	return nil, ErrUnauthenticated
}

// Subscribe returns a channel that receives identity snapshots on login,
// refresh and logout. Sends are non-blocking; a slow subscriber sees the
// latest snapshot, not every intermediate one.
func (s *Session) Subscribe() <-chan *Identity {
	ch := make(chan *Identity, 1)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	return ch
}

// Unsubscribe detaches a channel returned by Subscribe and closes it.
func (s *Session) Unsubscribe(ch <-chan *Identity) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for sub := range s.subscribers {
		if sub == ch {
			delete(s.subscribers, sub)
			close(sub)
			return
		}
	}
}

// renew runs the renewal protocol: exchange the refresh cookie for a fresh
// access token. staleToken identifies the credential the caller saw fail,
// so renewals that already happened are not repeated.
func (s *Session) renew(ctx context.Context, staleToken string) error {
	s.renewMu.Lock()
	defer s.renewMu.Unlock()

	// Someone else renewed while we waited for the lock.
	s.mu.RLock()
	current := s.creds
	s.mu.RUnlock()
	if current != nil && current.AccessToken != staleToken {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+refreshPath, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := s.teardown(); err != nil {
			return err
		}
		return ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	creds, err := decodeCredentials(resp.Body)
	if err != nil {
		return err
	}
	return s.installCredentials(creds)
}

// installCredentials atomically replaces the in-memory and durable state.
func (s *Session) installCredentials(creds *Credentials) error {
	if err := s.store.Save(creds); err != nil {
		return err
	}

	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()

	s.notify()
	return nil
}

// teardown clears all session state, durable and in-memory.
func (s *Session) teardown() error {
	s.mu.Lock()
	s.creds = nil
	s.mu.Unlock()

	err := s.store.Clear()
	s.notify()
	return err
}

func (s *Session) notify() {
	identity := s.Identity()

	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		// Latest wins: drop the stale snapshot if the subscriber has
		// not consumed it yet.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- identity:
		default:
		}
	}
}

func (s *Session) postAuth(ctx context.Context, path string, payload interface{}) (*Credentials, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	return decodeCredentials(resp.Body)
}

func decodeCredentials(r io.Reader) (*Credentials, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(env.Data, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}
	if creds.AccessToken == "" || !creds.Role.Valid() {
		return nil, fmt.Errorf("auth response missing token or role")
	}

	return &creds, nil
}

func cloneRequest(req *http.Request) (*http.Request, error) {
	replay := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		replay.Body = body
	}
	return replay, nil
}
