package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakewatch/stakewatch/config"
)

func TestGet_SameRecord(t *testing.T) {
	// Get resolves from os.Args; substitute a valid command line for the
	// duration of the test. The process-wide cache makes later calls return
	// the identical record regardless of argument changes.
	orig := os.Args
	os.Args = []string{"stakewatch", "westend"}
	t.Cleanup(func() { os.Args = orig })

	first, err := config.Get()
	require.NoError(t, err)
	assert.Equal(t, "wss://westend-rpc.polkadot.io", first.SubstrateWSURL)

	second, err := config.Get()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
