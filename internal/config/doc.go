// Package config loads navvec settings.
//
// Settings are layered in increasing precedence:
//
//  1. Default()
//  2. A config file, decoded as TOML (.toml) or YAML (.yaml, .yml)
//  3. NAVVEC_LOG_LEVEL, NAVVEC_TIMEOUT, NAVVEC_PRECISION, NAVVEC_WATCH_DEBOUNCE
//
// A config file looks like:
//
//	[log]
//	level = "debug"
//
//	[sandbox]
//	timeout = "2s"
//
//	[display]
//	precision = 4
//
//	[watch]
//	debounce = "250ms"
package config
