package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("default level", func(t *testing.T) {
		cfg := &Config{}
		l, err := NewLogger(context.Background(), cfg)
		require.NoError(t, err)
		require.NotNil(t, l.Zerolog())
		assert.Equal(t, "info", cfg.Level)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := NewLogger(context.Background(), &Config{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("human friendly output", func(t *testing.T) {
		l, err := NewLogger(context.Background(), &Config{HumanFriendly: true, NoColoredOutput: true, Level: "debug"})
		require.NoError(t, err)
		require.NotNil(t, l.Zerolog())
	})
}
