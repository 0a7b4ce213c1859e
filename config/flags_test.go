package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakewatch/stakewatch/config"
)

func TestRegisterFlags_Surface(t *testing.T) {
	fs := pflag.NewFlagSet("stakewatch", pflag.ContinueOnError)
	config.RegisterFlags(fs)

	for name, shorthand := range map[string]string{
		"config-path":                     "c",
		"substrate-ws-url":                "w",
		"stashes":                         "s",
		"error-interval":                  "",
		"debug":                           "",
		"short":                           "",
		"hook-new-session-path":           "",
		"hook-active-next-era-path":       "",
		"hook-inactive-next-era-path":     "",
		"matrix-user":                     "",
		"matrix-bot-user":                 "",
		"matrix-bot-password":             "",
		"disable-matrix":                  "",
		"disable-public-matrix-room":      "",
		"disable-matrix-bot-display-name": "",
	} {
		f := fs.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, shorthand, f.Shorthand, name)
	}
}

func TestRegisterFlags_Defaults(t *testing.T) {
	fs := pflag.NewFlagSet("stakewatch", pflag.ContinueOnError)
	config.RegisterFlags(fs)

	assert.Equal(t, ".env", fs.Lookup("config-path").DefValue)
	assert.Equal(t, "30", fs.Lookup("error-interval").DefValue)
	assert.Equal(t, "./hooks/active_next_era.sh", fs.Lookup("hook-active-next-era-path").DefValue)
	assert.Equal(t, "./hooks/inactive_next_era.sh", fs.Lookup("hook-inactive-next-era-path").DefValue)
}
