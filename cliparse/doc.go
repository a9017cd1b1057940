// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: listen address (default: 0.0.0.0)
  - Port: server listen port (default: 10000)
  - DatabaseURL: connection string (required)
  - DatabaseType: "postgres" (default) or "sqlite"
  - LogFormat: "json" for JSON logs, anything else for text

# CLI Flags

	-host      Listen address
	-p         Server port
	-d         Database URL
	-t         Database type
	-env-file  Dotenv file (default .env)

# Environment Variables

Before falling back to the environment, ParseFlags loads the dotenv file.
Variables already present in the process environment are not overwritten,
and a missing file is ignored.

	HOST          → -host
	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_FORMAT

CLI flags take precedence over environment variables.
*/
package cliparse
