package config

import "github.com/spf13/pflag"

// RegisterFlags defines the stakewatch flag surface on fs. The same set backs
// the cobra command and the standalone Resolve pipeline, so help text and
// defaults cannot drift between the two.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config-path", "c", DefaultConfigPath,
		"custom config file path; the file holds KEY=VALUE configuration variables")
	fs.StringP("substrate-ws-url", "w", "",
		"substrate websocket endpoint to connect to, e.g. wss://kusama-rpc.polkadot.io (takes precedence over the chain argument)")
	fs.StringP("stashes", "s", "",
		"validator stash addresses to watch; comma-separated for more than one, e.g. stash_1,stash_2")
	fs.Uint64("error-interval", DefaultErrorInterval,
		"seconds to wait before restarting after a critical error")

	fs.Bool("debug", false, "print debug information verbosely")
	fs.Bool("short", false, "send only essential notifications")

	fs.String("hook-new-session-path", "",
		"path of the script called on every new session")
	fs.String("hook-active-next-era-path", DefaultHookActiveNextEraPath,
		"path of the script called on the last session of an era when the stash is not active but keys are queued for the next era")
	fs.String("hook-inactive-next-era-path", DefaultHookInactiveNextEraPath,
		"path of the script called on the last session of an era when the stash is active but keys are not queued for the next era")

	fs.String("matrix-user", "",
		"regular matrix account that receives notifications, e.g. @you:matrix.org")
	fs.String("matrix-bot-user", "",
		"matrix bot account that sends the notifications, e.g. @your-bot:matrix.org")
	fs.String("matrix-bot-password", "",
		"password for the matrix bot account")
	fs.Bool("disable-matrix", false,
		"disable the matrix bot entirely; no notifications are sent")
	fs.Bool("disable-public-matrix-room", false,
		"disable notifications to public matrix rooms")
	fs.Bool("disable-matrix-bot-display-name", false,
		"do not update the matrix bot display name")
}
