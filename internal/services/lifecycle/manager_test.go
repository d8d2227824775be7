package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown_ReverseOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	m.Register("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.Register("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestShutdown_RunsOnce(t *testing.T) {
	m := New(time.Second, nil)

	calls := 0
	m.Register("db", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, 1, calls, "hooks must run exactly once")
}

func TestShutdown_CollectsErrors(t *testing.T) {
	m := New(time.Second, nil)

	boom := errors.New("boom")
	ran := false
	m.Register("broken", func(context.Context) error { return boom })
	m.Register("fine", func(context.Context) error {
		ran = true
		return nil
	})

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.True(t, ran, "a failing hook must not stop the others")
}
