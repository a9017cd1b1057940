package models

import "time"

// Confirmation messages returned by the mutating endpoints
const (
	MessageWinnerMarked = "Winner marked successfully"
	MessageMemberAdded  = "Member added successfully"
	MessageCycleReset   = "Cycle reset successfully"
)

// Request types

// MarkWinnerRequest is the body of POST /mark-winner. The id is bound to
// the query as whatever JSON value arrived; the database coerces or rejects
// it. A missing id is NULL, which matches no row.
type MarkWinnerRequest struct {
	ID any `json:"id"`
}

// AddMemberRequest is the body of POST /add-member. A missing full_name is
// passed as NULL and rejected by the table's NOT NULL constraint.
type AddMemberRequest struct {
	FullName any `json:"full_name"`
}

// Response types

type PendingMember struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type Winner struct {
	FullName string     `json:"full_name"`
	DrawDate *time.Time `json:"draw_date"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

// Win records that a member was drawn. The has_won flag and draw_date column
// are one value here. DrawDate is nil only for rows flagged has_won outside
// this service with no date set.
type Win struct {
	DrawDate *time.Time
}

type Member struct {
	ID       int64
	FullName string
	Win      *Win
}

// HasWon reports whether the member has been drawn in the current cycle.
func (m Member) HasWon() bool {
	return m.Win != nil
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
