// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the equb registry API server.

An equb is a rotating-savings group: members contribute each period and one
member is drawn to receive the pool. The server keeps the member list, records
each draw's winner, and resets the cycle once everyone has won.

# Starting the Server

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 10000 -d "postgres://..."

A .env file in the working directory is read at startup; variables already
set in the environment take precedence.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 10000)
  - HOST (-host): listen address (default: 0.0.0.0)
  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - LOG_FORMAT: "json" switches slog to the JSON handler

# Architecture

  - handlers: HTTP request handlers for members and draws
  - store: the SQL statements over equb_members
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, recovery, JSON helpers
  - models: request/response and domain types
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
