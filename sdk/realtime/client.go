package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Client connects to the realtime websocket endpoint and keeps the
// connection alive across failures.
type Client struct {
	baseURL string
	guard   *TokenGuard
	policy  *ReconnectPolicy
	dialer  *websocket.Dialer

	// OnConnected is called after each successful connection.
	OnConnected func()
	// OnDisconnected is called when an established connection drops.
	OnDisconnected func(err error)
	// OnReconnecting is called before each reconnection wait.
	OnReconnecting func(attempt int, delay time.Duration)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithReconnectPolicy overrides the reconnect delay policy.
func WithReconnectPolicy(p *ReconnectPolicy) ClientOption {
	return func(c *Client) {
		c.policy = p
	}
}

// WithDialer sets a custom websocket dialer.
func WithDialer(d *websocket.Dialer) ClientOption {
	return func(c *Client) {
		c.dialer = d
	}
}

// NewClient creates a realtime client.
//
// Parameters:
//   - baseURL: the API base URL (e.g. "https://api.example.com")
//   - guard: the token guard holding the user's token pair
func NewClient(baseURL string, guard *TokenGuard, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		guard:   guard,
		policy:  NewReconnectPolicy(nil),
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes a single websocket connection. The caller owns the
// returned Conn and must Close it. Most callers want Run instead.
func (c *Client) Connect(ctx context.Context) (*Conn, error) {
	token, err := c.guard.Supply(ctx)
	if err != nil {
		return nil, fmt.Errorf("supply token: %w", err)
	}

	wsURL, err := c.buildWSURL(token)
	if err != nil {
		return nil, fmt.Errorf("build websocket url: %w", err)
	}

	conn, resp, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("websocket dial failed: status=%d, err=%w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	return newConn(conn), nil
}

// Run connects and processes events until ctx is canceled, reconnecting on
// failure per the policy. handler is invoked for every server event on the
// connection's read goroutine.
func (c *Client) Run(ctx context.Context, handler func(ev *Envelope)) error {
	var attempt int

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		connected, err := c.runOnce(ctx, handler)
		if connected {
			// Each disconnect episode runs the delay schedule from the start.
			attempt = 0
		}
		if err == nil || errors.Is(err, ErrNotAuthenticated) {
			// Authentication failures are not retried; the guard has no
			// token to offer and reconnecting cannot fix that.
			return err
		}

		if c.OnDisconnected != nil {
			c.OnDisconnected(err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		delay := c.policy.Delay(attempt)
		if c.OnReconnecting != nil {
			c.OnReconnecting(attempt, delay)
		}
		if err := c.policy.Wait(ctx, attempt); err != nil {
			return err
		}
		attempt++
	}
}

func (c *Client) runOnce(ctx context.Context, handler func(ev *Envelope)) (bool, error) {
	conn, err := c.Connect(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	if c.OnConnected != nil {
		c.OnConnected()
	}

	return true, conn.Run(ctx, handler)
}

func (c *Client) buildWSURL(token string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		u.Scheme = "wss"
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
