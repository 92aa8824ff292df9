package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconnectPolicy_DelayTable(t *testing.T) {
	p := NewReconnectPolicy(nil)

	want := []time.Duration{
		0,
		2 * time.Second,
		5 * time.Second,
		10 * time.Second,
		30 * time.Second,
		30 * time.Second, // last entry repeats
		30 * time.Second,
	}

	for attempt, expected := range want {
		assert.Equal(t, expected, p.Delay(attempt), "attempt %d", attempt)
	}
}

func TestReconnectPolicy_NegativeAttempt(t *testing.T) {
	p := NewReconnectPolicy(nil)
	assert.Equal(t, time.Duration(0), p.Delay(-1))
}

func TestReconnectPolicy_CustomTable(t *testing.T) {
	p := NewReconnectPolicy([]time.Duration{time.Second, 3 * time.Second})

	assert.Equal(t, time.Second, p.Delay(0))
	assert.Equal(t, 3*time.Second, p.Delay(1))
	assert.Equal(t, 3*time.Second, p.Delay(5))
}

func TestReconnectPolicy_WaitUsesAttemptDelay(t *testing.T) {
	var slept []time.Duration
	p := NewReconnectPolicy(nil, WithSleepFunc(func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}))

	for attempt := 0; attempt < 6; attempt++ {
		require.NoError(t, p.Wait(context.Background(), attempt))
	}

	assert.Equal(t, []time.Duration{
		0,
		2 * time.Second,
		5 * time.Second,
		10 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}, slept)
}

func TestReconnectPolicy_WaitCancelable(t *testing.T) {
	p := NewReconnectPolicy([]time.Duration{time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Wait(ctx, 0)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after context cancellation")
	}
}

func TestReconnectPolicy_ZeroDelayReturnsImmediately(t *testing.T) {
	p := NewReconnectPolicy(nil)

	start := time.Now()
	require.NoError(t, p.Wait(context.Background(), 0))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
