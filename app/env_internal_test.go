package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseEnvironmentRoutes(t *testing.T) {
	env := BaseEnvironment{Routes: []string{" admin", "", "private ", "admin", "  "}}
	require.Equal(t, []string{"admin", "private"}, env.routes())

	require.Empty(t, BaseEnvironment{}.routes())
}
