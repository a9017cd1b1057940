// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the equb registry API.

# MemberHandler

MemberHandler is built over anything that implements MemberStore:

	memberHandler := handlers.NewMemberHandler(store.New(conn, cfg.DatabaseType))

Each handler makes exactly one store call:

	GET  /members     → ListPending  → [{id, full_name}]
	GET  /winners     → ListWinners  → [{full_name, draw_date}]
	POST /mark-winner → MarkWinner   → {message}
	POST /add-member  → AddMember    → {message}
	POST /reset-cycle → ResetCycle   → {message}

# Errors

Request bodies are not validated. A body that is not JSON gets 400; an empty
body counts as {}. Any store failure returns 500 with the store's error text
as {"error": "..."}.
*/
package handlers
