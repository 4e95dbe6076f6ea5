package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sheetbridge/internal/adapters/driven/config/file"
)

func TestServeCmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("port"))
}

func TestBuildServer(t *testing.T) {
	// No Google call happens at build time, so an empty config is enough.
	server, err := buildServer(&file.Config{})
	require.NoError(t, err)
	assert.NotNil(t, server)
}
