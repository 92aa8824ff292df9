package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAuthenticated is returned by Supply when the guard holds no token.
var ErrNotAuthenticated = errors.New("realtime: not authenticated")

// DefaultRefreshLead is how close to expiry a token must be before Supply
// refreshes it.
const DefaultRefreshLead = 5 * time.Minute

// TokenGuard keeps an access/refresh token pair fresh. Supply returns the
// current access token, refreshing it through the API when it is within the
// lead window of expiring. At most one refresh is in flight at a time;
// concurrent callers wait for it and reuse the rotated pair.
type TokenGuard struct {
	baseURL    string
	httpClient *http.Client
	lead       time.Duration
	now        func() time.Time

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	inflight     chan struct{}
}

// GuardOption configures a TokenGuard.
type GuardOption func(*TokenGuard)

// WithGuardHTTPClient sets a custom HTTP client for refresh requests.
func WithGuardHTTPClient(c *http.Client) GuardOption {
	return func(g *TokenGuard) {
		g.httpClient = c
	}
}

// WithRefreshLead overrides the refresh lead window.
func WithRefreshLead(d time.Duration) GuardOption {
	return func(g *TokenGuard) {
		g.lead = d
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) GuardOption {
	return func(g *TokenGuard) {
		g.now = now
	}
}

// NewTokenGuard creates a guard around an existing token pair.
func NewTokenGuard(baseURL, accessToken, refreshToken string, opts ...GuardOption) *TokenGuard {
	g := &TokenGuard{
		baseURL:      baseURL,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		lead:         DefaultRefreshLead,
		now:          time.Now,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetTokens replaces the stored pair, e.g. after a fresh login.
func (g *TokenGuard) SetTokens(accessToken, refreshToken string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accessToken = accessToken
	g.refreshToken = refreshToken
}

// Supply returns an access token suitable for connecting. When the stored
// token expires within the lead window it attempts a refresh first; if the
// refresh fails the current token is returned unchanged so the caller can
// still try it. Tokens whose expiry cannot be determined are returned as-is.
//
// The lock is never held across the refresh round trip: callers arriving
// while a refresh is in flight wait for its outcome (or their own ctx) and
// pick up whatever pair it stored.
func (g *TokenGuard) Supply(ctx context.Context) (string, error) {
	g.mu.Lock()

	if g.accessToken == "" {
		g.mu.Unlock()
		return "", ErrNotAuthenticated
	}

	token := g.accessToken
	exp, ok := tokenExpiry(token)
	if !ok || exp.Sub(g.now()) >= g.lead {
		g.mu.Unlock()
		return token, nil
	}

	if g.inflight != nil {
		done := g.inflight
		g.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return "", ctx.Err()
		}

		g.mu.Lock()
		token = g.accessToken
		g.mu.Unlock()
		return token, nil
	}

	done := make(chan struct{})
	g.inflight = done
	refreshToken := g.refreshToken
	g.mu.Unlock()

	pair, err := g.refresh(ctx, refreshToken)

	g.mu.Lock()
	if err == nil {
		g.accessToken = pair.AccessToken
		g.refreshToken = pair.RefreshToken
	}
	// A failed refresh keeps the stored pair; the old token may still have
	// a few minutes of life in it.
	token = g.accessToken
	g.inflight = nil
	g.mu.Unlock()
	close(done)

	return token, nil
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type refreshResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    tokenPair `json:"data"`
}

func (g *TokenGuard) refresh(ctx context.Context, refreshToken string) (*tokenPair, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, fmt.Errorf("marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/api/auth/refresh-token", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refresh rejected: status=%d", resp.StatusCode)
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}
	if !out.Success || out.Data.AccessToken == "" {
		return nil, fmt.Errorf("refresh rejected: %s", out.Message)
	}

	return &out.Data, nil
}

// tokenExpiry extracts the exp claim without verifying the signature. The
// server is the authority on validity; the client only needs the deadline.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
