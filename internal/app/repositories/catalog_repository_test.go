package repositories

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/clubr/internal/seed"
)

// fakeRows replays canned rows through the pgx.Rows interface.
type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.i-1], nil }

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.data[r.i-1], dest)
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d targets", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(target.Type()) {
			val = val.Convert(target.Type())
		}
		target.Set(val)
	}
	return nil
}

// fakeDB answers a query with the first canned result whose key is a substring of the SQL.
type fakeDB struct {
	rows    map[string][][]any
	row     []any
	rowErr  error
	queries []string
	failOn  string
	failErr error
}

func (db *fakeDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	db.queries = append(db.queries, sql)
	if db.failOn != "" && strings.Contains(sql, db.failOn) {
		return nil, db.failErr
	}
	for key, data := range db.rows {
		if strings.Contains(sql, key) {
			return &fakeRows{data: data}, nil
		}
	}
	return &fakeRows{}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	db.queries = append(db.queries, sql)
	return fakeRow{values: db.row, err: db.rowErr}
}

func ptrTime(t time.Time) *time.Time { return &t }

var fixedNow = time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)

func newFakeDB() *fakeDB {
	return &fakeDB{rows: map[string][][]any{
		"FROM clubs c": {
			{int64(1), "Queen's Journal", "Student newspaper", "Media", int64(3)},
			{int64(9), "Chess Club", "", "", int64(0)},
		},
		"FROM clubmembership": {
			{int64(1), int64(7), "admin"},
			{int64(1), int64(8), "member"},
			{int64(9), int64(8), "Admin"},
			{int64(42), int64(7), "admin"},
		},
		"FROM posts p": {
			{int64(5), int64(1), "Queen's Journal", "Issue 12", "Out now", ptrTime(fixedNow.Add(-3 * time.Hour))},
			{int64(2), int64(9), "Chess Club", "", "Blitz night", nil},
		},
		"FROM events e": {
			{int64(3), int64(9), "Chess Club", "Simul", "", ptrTime(time.Date(2025, 11, 20, 18, 30, 0, 0, time.UTC)), "JDUC"},
		},
		"FROM usertags": {{"Media"}},
		"FROM tags": {{"Media"}, {"Games"}},
	}}
}

func newTestRepository(db *fakeDB, email string) *CatalogRepository {
	repo := NewCatalogRepository(db, seed.NewFixtureSource(), email, zerolog.Nop())
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func TestCatalogRepository_LoadWithoutUser(t *testing.T) {
	db := newFakeDB()
	c, err := newTestRepository(db, "").Load(context.Background())
	require.NoError(t, err)

	require.Len(t, c.Clubs, 2)
	journal := c.Clubs[0]
	assert.Equal(t, "1", journal.ID)
	assert.Equal(t, "Media", journal.Category)
	assert.Equal(t, 3, journal.MemberCount)
	assert.Equal(t, []string{"7"}, journal.Admins)
	assert.False(t, journal.IsFollowing)
	assert.Equal(t, seed.Clubs()[0].CoverImage, journal.CoverImage, "cover borrowed from the fixture with the same name")

	chess := c.Clubs[1]
	assert.Equal(t, []string{"8"}, chess.Admins)
	assert.Empty(t, chess.CoverImage)

	require.Len(t, c.Posts, 2)
	assert.Equal(t, "p5", c.Posts[0].ID)
	assert.Equal(t, "Issue 12\n\nOut now", c.Posts[0].Content)
	assert.Equal(t, "3 hours ago", c.Posts[0].CreatedAt)
	assert.Equal(t, journal.CoverImage, c.Posts[0].ClubAvatar)
	assert.Equal(t, "Blitz night", c.Posts[1].Content)
	assert.Empty(t, c.Posts[1].CreatedAt)

	require.Len(t, c.Events, 1)
	assert.Equal(t, "e3", c.Events[0].ID)
	assert.Equal(t, "2025-11-20", c.Events[0].Date)
	assert.Equal(t, "6:30 PM", c.Events[0].Time)

	assert.Equal(t, []string{"Media", "Games"}, c.Interests)

	assert.Equal(t, seed.CurrentUserID, c.User.ID)
	assert.Equal(t, []string{"1"}, c.User.AdminClubs, "fixture admin clubs missing from the database are dropped")
	for _, chat := range c.Chats {
		assert.Equal(t, "1", chat.ClubID)
	}

	for _, q := range db.queries {
		assert.NotContains(t, strings.ToUpper(q), "INSERT")
		assert.NotContains(t, strings.ToUpper(q), "UPDATE")
	}
}

func TestCatalogRepository_LoadForDatabaseUser(t *testing.T) {
	db := newFakeDB()
	db.row = []any{int64(8), "Jordan Lee", "jordan@queensu.ca", "Chess fan"}

	c, err := newTestRepository(db, "jordan@queensu.ca").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8", c.User.ID)
	assert.Equal(t, "Jordan Lee", c.User.Name)
	assert.Equal(t, "Chess fan", c.User.Bio)
	assert.Equal(t, []string{"Media"}, c.User.Interests)
	assert.Equal(t, []string{"9"}, c.User.AdminClubs)
	assert.True(t, c.Clubs[0].IsFollowing)
	assert.True(t, c.Clubs[1].IsFollowing)
}

func TestCatalogRepository_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		db := newFakeDB()
		db.rowErr = pgx.ErrNoRows
		_, err := newTestRepository(db, "ghost@queensu.ca").Load(context.Background())
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.ErrorContains(t, err, "ghost@queensu.ca")
	})

	t.Run("missing schema", func(t *testing.T) {
		db := newFakeDB()
		db.failOn = "FROM events e"
		db.failErr = &pgconn.PgError{Code: "42P01", Message: `relation "events" does not exist`}
		_, err := newTestRepository(db, "").Load(context.Background())
		assert.ErrorContains(t, err, "catalog schema is missing")
	})

	t.Run("query failure", func(t *testing.T) {
		db := newFakeDB()
		db.failOn = "FROM clubs c"
		db.failErr = errors.New("connection reset")
		_, err := newTestRepository(db, "").Load(context.Background())
		assert.ErrorContains(t, err, "failed to read clubs")
	})
}

func TestCatalogRepository_ClubsQuery(t *testing.T) {
	repo := newTestRepository(newFakeDB(), "")
	sql, args, err := repo.clubsQuery().ToSql()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, sql, "LEFT JOIN clubtags ct ON ct.clubid = c.clubid")
	assert.Contains(t, sql, "COUNT(DISTINCT m.userid)")
	assert.Contains(t, sql, "ORDER BY c.clubid")
}
