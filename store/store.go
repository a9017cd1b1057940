// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/equb-registry/cliparse"
	"github.com/danielhkuo/equb-registry/models"
)

// MemberStore runs the registry's statements against equb_members.
// Each method issues exactly one statement and returns driver errors as-is.
type MemberStore struct {
	db           *sql.DB
	databaseType string
	now          func() time.Time
}

// New wraps an open pool. databaseType selects the placeholder style.
func New(db *sql.DB, databaseType string) *MemberStore {
	return &MemberStore{
		db:           db,
		databaseType: databaseType,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used for draw dates.
func (s *MemberStore) WithClock(now func() time.Time) *MemberStore {
	s.now = now
	return s
}

// Close releases the underlying pool.
func (s *MemberStore) Close() error {
	return s.db.Close()
}

// ListPending returns members that have not won in the current cycle.
func (s *MemberStore) ListPending(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, full_name FROM equb_members WHERE has_won = FALSE
	`))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.FullName); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// ListWinners returns members drawn in the current cycle, most recent first.
func (s *MemberStore) ListWinners(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT full_name, draw_date FROM equb_members
		WHERE has_won = TRUE
		ORDER BY draw_date DESC
	`))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		var drawDate sql.NullTime
		if err := rows.Scan(&m.FullName, &drawDate); err != nil {
			return nil, err
		}
		m.Win = &models.Win{}
		if drawDate.Valid {
			m.Win.DrawDate = &drawDate.Time
		} else {
			slog.Warn("winner has no draw date", "full_name", m.FullName)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// MarkWinner flags the member as drawn now. id is bound as given, so the
// database decides whether a string or float id is acceptable. A nil or
// unknown id matches no row and is not an error; the number of rows changed
// is returned.
func (s *MemberStore) MarkWinner(ctx context.Context, id any) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.bind(`
		UPDATE equb_members SET has_won = TRUE, draw_date = $1 WHERE id = $2
	`), s.now(), id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// AddMember inserts a pending member. Names are not checked for type,
// emptiness or uniqueness; a nil name fails the NOT NULL constraint.
func (s *MemberStore) AddMember(ctx context.Context, fullName any) error {
	_, err := s.db.ExecContext(ctx, s.bind(`
		INSERT INTO equb_members (full_name) VALUES ($1)
	`), fullName)
	return err
}

// ResetCycle clears every member's win and returns the number of rows touched.
func (s *MemberStore) ResetCycle(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.bind(`
		UPDATE equb_members SET has_won = FALSE, draw_date = NULL
	`))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// bind rewrites Postgres-style $N placeholders for drivers that expect ?.
func (s *MemberStore) bind(query string) string {
	if s.databaseType != cliparse.DatabaseSQLite {
		return query
	}
	return rebindQuestion(query)
}

func rebindQuestion(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c == '$' && i+1 < len(query) && isDigit(query[i+1]) {
			b.WriteByte('?')
			for i+1 < len(query) && isDigit(query[i+1]) {
				i++
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
