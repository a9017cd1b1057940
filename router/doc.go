// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the equb registry API.

# Route Registration

NewRouter returns the full handler, mux wrapped in CORS and panic recovery:

	handler := router.NewRouter(memberStore)

# Endpoints

Health:

	GET /health

Members:

	GET  /members     - Members who have not won this cycle
	GET  /winners     - This cycle's winners, latest draw first
	POST /mark-winner - Record a draw for {id}
	POST /add-member  - Register {full_name}
	POST /reset-cycle - Clear all winners

List responses are compressed when the client sends Accept-Encoding.
*/
package router
