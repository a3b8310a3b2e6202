// Package config loads runtime configuration for the volunteer client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     path of the SQLite data file
//	-l string     log level: debug, info, warn, error
//	-f string     log format: text or json
//	-t duration   timeout for a single storage operation
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Missing keys keep their previous values:
//
//	{
//	  "data_path": "data/volunteer.db",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "storage_timeout": "3s"
//	}
package config
