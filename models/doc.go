// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - MarkWinnerRequest: id
  - AddMemberRequest: full_name

Fields are pointers so an absent field reaches the database as NULL.

# Response Types

  - PendingMember: id, full_name (GET /members)
  - Winner: full_name, draw_date (GET /winners)
  - MessageResponse: message (mutating endpoints)
  - ErrorResponse: error

# Domain Types

  - Member: a row of equb_members
  - Win: the draw that made a member a winner, nil while pending
*/
package models
