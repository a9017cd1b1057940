// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/equb-registry/cliparse"
	"github.com/danielhkuo/equb-registry/models"
	"github.com/danielhkuo/equb-registry/testutil"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *MemberStore {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })
	return New(db, cliparse.DatabaseSQLite).WithClock(testutil.FixedClock(testStart))
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func pendingNames(members []models.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.FullName)
	}
	return names
}

func TestAddMemberAppearsPendingOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))
	require.NoError(t, s.AddMember(ctx, strPtr("Hana")))

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Abel", "Hana"}, pendingNames(pending))

	for _, m := range pending {
		assert.NotZero(t, m.ID)
		assert.False(t, m.HasWon())
	}
}

func TestAddMemberAcceptsDuplicatesAndEmptyNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))
	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))
	require.NoError(t, s.AddMember(ctx, strPtr("")))

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestAddMemberNilNameFails(t *testing.T) {
	s := newTestStore(t)

	err := s.AddMember(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT NULL")
}

func TestListEmptyTableReturnsEmptySlices(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	assert.NotNil(t, pending)
	assert.Empty(t, pending)

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	assert.NotNil(t, winners)
	assert.Empty(t, winners)
}

func TestMarkWinnerMovesMemberToWinners(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))
	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	id := pending[0].ID

	n, err := s.MarkWinner(ctx, &id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	pending, err = s.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "Abel", winners[0].FullName)
	require.True(t, winners[0].HasWon())
	require.NotNil(t, winners[0].Win.DrawDate)
	assert.True(t, winners[0].Win.DrawDate.Equal(testStart))
}

func TestMarkWinnerUsesCurrentTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := New(db, cliparse.DatabaseSQLite)
	ctx := context.Background()

	id := testutil.AddTestMember(t, db, "Abel")
	before := time.Now().Add(-time.Second)

	_, err := s.MarkWinner(ctx, &id)
	require.NoError(t, err)

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	drawn := winners[0].Win.DrawDate
	require.NotNil(t, drawn)
	assert.False(t, drawn.Before(before), "draw date %v before %v", drawn, before)
	assert.False(t, drawn.After(time.Now()), "draw date %v is in the future", drawn)
}

func TestMarkWinnerUnknownOrMissingID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))

	n, err := s.MarkWinner(ctx, int64Ptr(9999))
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = s.MarkWinner(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestMarkWinnerTwiceUpdatesDrawDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))
	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	id := pending[0].ID

	_, err = s.MarkWinner(ctx, &id)
	require.NoError(t, err)
	_, err = s.MarkWinner(ctx, &id)
	require.NoError(t, err)

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.True(t, winners[0].Win.DrawDate.Equal(testStart.Add(time.Second)))
}

func TestListWinnersOrderedByDrawDateDescending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Abel", "Hana", "Dawit"} {
		require.NoError(t, s.AddMember(ctx, strPtr(name)))
	}
	pending, err := s.ListPending(ctx)
	require.NoError(t, err)

	ids := map[string]int64{}
	for _, m := range pending {
		ids[m.FullName] = m.ID
	}

	// Draw order: Hana, Abel, Dawit
	for _, name := range []string{"Hana", "Abel", "Dawit"} {
		id := ids[name]
		_, err := s.MarkWinner(ctx, &id)
		require.NoError(t, err)
	}

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dawit", "Abel", "Hana"}, pendingNames(winners))

	for i := 1; i < len(winners); i++ {
		assert.False(t, winners[i].Win.DrawDate.After(*winners[i-1].Win.DrawDate))
	}
}

func TestListWinnersReadsStoredRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := New(db, cliparse.DatabaseSQLite)

	older := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 5, 9, 30, 0, 0, time.UTC)
	testutil.AddTestWinner(t, db, "Hana", older)
	testutil.AddTestWinner(t, db, "Dawit", newer)
	testutil.AddTestMember(t, db, "Abel")

	winners, err := s.ListWinners(context.Background())
	require.NoError(t, err)
	require.Len(t, winners, 2)
	assert.Equal(t, "Dawit", winners[0].FullName)
	assert.True(t, winners[0].Win.DrawDate.Equal(newer))
	assert.Equal(t, "Hana", winners[1].FullName)
	assert.True(t, winners[1].Win.DrawDate.Equal(older))

	pending, err := s.ListPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Abel"}, pendingNames(pending))
}

func TestListWinnersKeepsMissingDrawDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := New(db, cliparse.DatabaseSQLite)

	_, err := db.Exec(`INSERT INTO equb_members (full_name, has_won, draw_date) VALUES ('Hana', TRUE, NULL)`)
	require.NoError(t, err)

	winners, err := s.ListWinners(context.Background())
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "Hana", winners[0].FullName)
	require.True(t, winners[0].HasWon())
	assert.Nil(t, winners[0].Win.DrawDate)
}

func TestMarkWinnerStringID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := New(db, cliparse.DatabaseSQLite)
	ctx := context.Background()

	id := testutil.AddTestMember(t, db, "Abel")

	n, err := s.MarkWinner(ctx, fmt.Sprint(id))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestAddMemberNumericName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, int64(123)))

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, pendingNames(pending))
}

func TestResetCycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Abel", "Hana", "Dawit"} {
		require.NoError(t, s.AddMember(ctx, strPtr(name)))
	}
	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	for _, m := range pending[:2] {
		id := m.ID
		_, err := s.MarkWinner(ctx, &id)
		require.NoError(t, err)
	}

	n, err := s.ResetCycle(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	assert.Empty(t, winners)

	pending, err = s.ListPending(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Abel", "Hana", "Dawit"}, pendingNames(pending))
}

func TestAbelScenario(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddMember(ctx, strPtr("Abel")))

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Abel", pending[0].FullName)
	n := pending[0].ID

	_, err = s.MarkWinner(ctx, &n)
	require.NoError(t, err)

	pending, err = s.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	winners, err := s.ListWinners(ctx)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, "Abel", winners[0].FullName)

	_, err = s.ResetCycle(ctx)
	require.NoError(t, err)

	pending, err = s.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, n, pending[0].ID)

	winners, err = s.ListWinners(ctx)
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestQueriesFailOnClosedPool(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	ctx := context.Background()

	_, err := s.ListPending(ctx)
	assert.Error(t, err)
	_, err = s.ListWinners(ctx)
	assert.Error(t, err)
	_, err = s.MarkWinner(ctx, int64Ptr(1))
	assert.Error(t, err)
	assert.Error(t, s.AddMember(ctx, strPtr("Abel")))
	_, err = s.ResetCycle(ctx)
	assert.Error(t, err)
}

func TestRebindQuestion(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"WHERE id = $1", "WHERE id = ?"},
		{"SET a = $1, b = $2 WHERE id = $10", "SET a = ?, b = ? WHERE id = ?"},
		{"SELECT '$' || name", "SELECT '$' || name"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, rebindQuestion(tc.in))
	}
}

func TestBindLeavesPostgresQueriesAlone(t *testing.T) {
	s := &MemberStore{databaseType: cliparse.DatabasePostgres}
	assert.Equal(t, "WHERE id = $1", s.bind("WHERE id = $1"))
}
