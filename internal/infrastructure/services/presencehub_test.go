package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradepost/internal/application/realtime/dto"
	"tradepost/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}

func (l nopLogger) With(args ...any) logger.Interface  { return l }
func (l nopLogger) Named(name string) logger.Interface { return l }

func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestHub() *PresenceHub {
	return NewPresenceHub(nopLogger{})
}

func drain(ch chan *dto.Envelope) []*dto.Envelope {
	var out []*dto.Envelope
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestPresenceHub_RegisterUnregisterTransitions(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	c2 := NewConn(7, 8)

	assert.True(t, hub.Register(c1), "first connection should flip the user online")
	assert.False(t, hub.Register(c2), "second connection is not an online transition")
	assert.True(t, hub.IsOnline(7))

	assert.False(t, hub.Unregister(c1), "one connection remains")
	assert.True(t, hub.IsOnline(7))
	assert.True(t, hub.Unregister(c2), "last connection should flip the user offline")
	assert.False(t, hub.IsOnline(7))
}

func TestPresenceHub_ChatLastWriterWins(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	c2 := NewConn(7, 8)
	hub.Register(c1)
	hub.Register(c2)

	delivered := hub.PushToChat(7, dto.NewEnvelope(dto.EventReceiveMessage, nil))

	require.True(t, delivered)
	assert.Empty(t, drain(c1.Send), "evicted connection must not receive chat frames")
	assert.Len(t, drain(c2.Send), 1, "newest connection owns the chat role")
}

func TestPresenceHub_StaleChatUnregisterIsNoop(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	c2 := NewConn(7, 8)
	hub.Register(c1)
	hub.Register(c2)

	// c1 lost its chat role to c2; tearing it down must not break c2's mapping.
	hub.Unregister(c1)

	require.True(t, hub.PushToChat(7, dto.NewEnvelope(dto.EventReceiveMessage, nil)))
	assert.Len(t, drain(c2.Send), 1)
}

func TestPresenceHub_EvictionKeepsNotifyRole(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	c2 := NewConn(7, 8)
	hub.Register(c1)
	hub.Register(c2)

	// c2 took over the chat role, but c1 still receives notifications.
	delivered := hub.PushToNotify(7, dto.NewEnvelope(dto.EventReceiveNotification, nil))

	assert.Equal(t, 2, delivered)
	assert.Len(t, drain(c1.Send), 1, "eviction ends only the chat role")
	assert.Len(t, drain(c2.Send), 1)
}

func TestPresenceHub_NotifyFansOutToAllConnections(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	c2 := NewConn(7, 8)
	hub.Register(c1)
	hub.Register(c2)

	delivered := hub.PushToNotify(7, dto.NewEnvelope(dto.EventReceiveNotification, nil))

	assert.Equal(t, 2, delivered)
	assert.Len(t, drain(c1.Send), 1)
	assert.Len(t, drain(c2.Send), 1)
}

func TestPresenceHub_PushToOfflineUser(t *testing.T) {
	hub := newTestHub()

	assert.False(t, hub.PushToChat(7, dto.NewEnvelope(dto.EventReceiveMessage, nil)))
	assert.Zero(t, hub.PushToNotify(7, dto.NewEnvelope(dto.EventReceiveNotification, nil)))
}

func TestPresenceHub_PushToClosedConnection(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	hub.Register(c1)
	c1.CloseSend()

	assert.False(t, hub.PushToChat(7, dto.NewEnvelope(dto.EventReceiveMessage, nil)))
	assert.Zero(t, hub.PushToNotify(7, dto.NewEnvelope(dto.EventReceiveNotification, nil)))
}

func TestPresenceHub_FullQueueDropsFrame(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 1)
	hub.Register(c1)

	require.True(t, hub.PushToChat(7, dto.NewEnvelope(dto.EventReceiveMessage, nil)))
	assert.False(t, hub.PushToChat(7, dto.NewEnvelope(dto.EventReceiveMessage, nil)),
		"full queue must drop rather than block")
}

func TestPresenceHub_Broadcast(t *testing.T) {
	hub := newTestHub()

	c1 := NewConn(7, 8)
	c2 := NewConn(9, 8)
	hub.Register(c1)
	hub.Register(c2)

	hub.Broadcast(dto.NewEnvelope(dto.EventUserConnected, dto.PresencePayload{UserID: 11}))

	assert.Len(t, drain(c1.Send), 1)
	assert.Len(t, drain(c2.Send), 1)
}

func TestPresenceHub_OnlineUserIDs(t *testing.T) {
	hub := newTestHub()

	hub.Register(NewConn(7, 8))
	hub.Register(NewConn(9, 8))

	ids := hub.OnlineUserIDs()
	assert.ElementsMatch(t, []uint{7, 9}, ids)
}
