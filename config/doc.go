// Package config resolves the runtime configuration for the stakewatch agent.
//
// Configuration is merged from layered sources into a single validated Config
// record. The record is computed at most once per process and is immutable
// afterwards.
//
// # Precedence
//
// Values are picked per field in this order (highest wins):
//
//  1. Explicitly set CLI flags
//  2. The well-known endpoint derived from the positional chain argument
//  3. Environment variables (STAKEWATCH_ prefix)
//  4. The optional KEY=VALUE config file
//  5. Compiled-in defaults
//
// The process environment is only ever read; all merging happens in memory.
//
// # Config file
//
// The file location is taken from the --config-path flag if set, else from
// STAKEWATCH_CONFIG_FILENAME, else ".env". Lines are plain KEY=VALUE with the
// STAKEWATCH_ prefix, for example:
//
//	STAKEWATCH_SUBSTRATE_WS_URL=wss://kusama-rpc.polkadot.io
//	STAKEWATCH_STASHES=stash_1,stash_2
//	STAKEWATCH_INTERVAL=21600
//
// The file is optional. A missing or malformed file is skipped silently and
// resolution falls through to the remaining layers.
//
// # Environment variables
//
// Every config key maps to an environment variable with the STAKEWATCH_
// prefix:
//   - substrate_ws_url → STAKEWATCH_SUBSTRATE_WS_URL
//   - error_interval → STAKEWATCH_ERROR_INTERVAL
//   - matrix_bot_user → STAKEWATCH_MATRIX_BOT_USER
//
// # Usage
//
//	cfg, err := config.Get()
//	if err != nil {
//	    // missing endpoint, coercion failure: there is no partial
//	    // configuration to fall back to
//	    log.Fatal(err)
//	}
//
// Get parses os.Args; embedding contexts and tests use Load or Resolve
// directly, which are pure and take explicit inputs.
//
// # Validation
//
// The websocket endpoint is required and must be a URL; resolution fails if
// no layer supplies it. All other fields fall back to their default or zero
// value. Stash lists are split on commas; blank entries are dropped.
package config
