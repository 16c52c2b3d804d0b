package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/yigit/clubr/internal/app/catalog"
	"github.com/yigit/clubr/internal/app/models"
	"github.com/yigit/clubr/internal/pkg/dberrors"
	"github.com/yigit/clubr/internal/pkg/helpers"
)

const roleAdmin = "admin"

// Querier is the subset of *pgxpool.Pool the repository reads through
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepository reads clubs, posts, events and tags from Postgres. The
// demo user, chats and anything missing from the database come from base.
// Nothing is ever written.
type CatalogRepository struct {
	db        Querier
	sb        squirrel.StatementBuilderType
	base      catalog.Source
	userEmail string
	now       func() time.Time
	logger    zerolog.Logger
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db Querier, base catalog.Source, userEmail string, logger zerolog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:        db,
		sb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		base:      base,
		userEmail: userEmail,
		now:       time.Now,
		logger:    logger,
	}
}

// Load implements catalog.Source
func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	c, err := r.base.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load base catalog: %w", err)
	}
	covers := make(map[string]string, len(c.Clubs))
	for _, club := range c.Clubs {
		covers[strings.ToLower(club.Name)] = club.CoverImage
	}

	var userID string
	if r.userEmail != "" {
		if err := r.loadUser(ctx, &c.User); err != nil {
			return nil, wrapQueryError("user", err)
		}
		userID = c.User.ID
	}

	clubs, err := r.loadClubs(ctx, userID, covers)
	if err != nil {
		return nil, wrapQueryError("clubs", err)
	}
	posts, err := r.loadPosts(ctx, clubs)
	if err != nil {
		return nil, wrapQueryError("posts", err)
	}
	events, err := r.loadEvents(ctx)
	if err != nil {
		return nil, wrapQueryError("events", err)
	}
	tags, err := r.loadTags(ctx)
	if err != nil {
		return nil, wrapQueryError("tags", err)
	}

	c.Clubs = clubs
	c.Posts = posts
	c.Events = events
	if len(tags) > 0 {
		c.Interests = tags
	}

	known := make(map[string]bool, len(clubs))
	for _, club := range clubs {
		known[club.ID] = true
	}
	if userID != "" {
		c.User.AdminClubs = adminClubsOf(clubs, userID)
	} else {
		c.User.AdminClubs = filterKnown(c.User.AdminClubs, known)
	}
	chats := c.Chats[:0]
	for _, chat := range c.Chats {
		if known[chat.ClubID] {
			chats = append(chats, chat)
		}
	}
	c.Chats = chats

	r.logger.Info().
		Int("clubs", len(c.Clubs)).
		Int("posts", len(c.Posts)).
		Int("events", len(c.Events)).
		Msg("Catalog loaded from database")
	return c, nil
}

func wrapQueryError(what string, err error) error {
	if dberrors.IsSchemaError(err) {
		return fmt.Errorf("catalog schema is missing or outdated while reading %s: %w", what, err)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}

func (r *CatalogRepository) loadUser(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Select("userid", "COALESCE(name, '')", "email", "COALESCE(profiledescription, '')").
		From("users").
		Where(squirrel.Eq{"email": r.userEmail}).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &user.Name, &user.Email, &user.Bio); err != nil {
		if dberrors.IsNoRows(err) {
			return fmt.Errorf("no user with email %q: %w", r.userEmail, err)
		}
		return err
	}
	user.ID = strconv.FormatInt(id, 10)

	sql, args, err = r.sb.Select("t.tagname").
		From("usertags ut").
		Join("tags t ON t.tagid = ut.tagid").
		Where(squirrel.Eq{"ut.userid": id}).
		OrderBy("t.tagid").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user tags query: %w", err)
	}
	interests, err := r.queryStrings(ctx, sql, args)
	if err != nil {
		return err
	}
	user.Interests = interests
	return nil
}

func (r *CatalogRepository) clubsQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.clubid",
		"c.clubname",
		"COALESCE(c.description, '')",
		"COALESCE((array_agg(t.tagname ORDER BY t.tagid) FILTER (WHERE t.tagid IS NOT NULL))[1], '')",
		"COUNT(DISTINCT m.userid)",
	).
		From("clubs c").
		LeftJoin("clubtags ct ON ct.clubid = c.clubid").
		LeftJoin("tags t ON t.tagid = ct.tagid").
		LeftJoin("clubmembership m ON m.clubid = c.clubid").
		GroupBy("c.clubid", "c.clubname", "c.description").
		OrderBy("c.clubid")
}

func (r *CatalogRepository) loadClubs(ctx context.Context, userID string, covers map[string]string) ([]models.Club, error) {
	sql, args, err := r.clubsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build clubs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := make([]models.Club, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id      int64
			club    models.Club
			members int64
		)
		if err := rows.Scan(&id, &club.Name, &club.Description, &club.Category, &members); err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		club.ID = strconv.FormatInt(id, 10)
		club.MemberCount = int(members)
		club.CoverImage = covers[strings.ToLower(club.Name)]
		club.Admins = []string{}
		index[club.ID] = len(clubs)
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.applyMemberships(ctx, clubs, index, userID); err != nil {
		return nil, err
	}
	return clubs, nil
}

// applyMemberships fills club admins and, for a database user, the following flags.
func (r *CatalogRepository) applyMemberships(ctx context.Context, clubs []models.Club, index map[string]int, userID string) error {
	sql, args, err := r.sb.Select("clubid", "userid", "COALESCE(role, '')").
		From("clubmembership").
		OrderBy("clubid", "userid").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build membership query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var clubID, memberID int64
		var role string
		if err := rows.Scan(&clubID, &memberID, &role); err != nil {
			return fmt.Errorf("failed to scan membership: %w", err)
		}
		i, ok := index[strconv.FormatInt(clubID, 10)]
		if !ok {
			continue
		}
		member := strconv.FormatInt(memberID, 10)
		if strings.EqualFold(role, roleAdmin) {
			clubs[i].Admins = append(clubs[i].Admins, member)
		}
		if userID != "" && member == userID {
			clubs[i].IsFollowing = true
		}
	}
	return rows.Err()
}

func (r *CatalogRepository) loadPosts(ctx context.Context, clubs []models.Club) ([]models.Post, error) {
	covers := make(map[string]string, len(clubs))
	for _, club := range clubs {
		covers[club.ID] = club.CoverImage
	}

	sql, args, err := r.sb.Select("p.postid", "p.clubid", "c.clubname", "COALESCE(p.title, '')", "COALESCE(p.content, '')", "p.timestamp").
		From("posts p").
		Join("clubs c ON c.clubid = p.clubid").
		OrderBy("p.timestamp DESC NULLS LAST", "p.postid DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := r.now()
	posts := make([]models.Post, 0)
	for rows.Next() {
		var (
			id, clubID     int64
			post           models.Post
			title, content string
			postedAt       *time.Time
		)
		if err := rows.Scan(&id, &clubID, &post.ClubName, &title, &content, &postedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		post.ID = "p" + strconv.FormatInt(id, 10)
		post.ClubID = strconv.FormatInt(clubID, 10)
		post.ClubAvatar = covers[post.ClubID]
		post.Content = joinPostText(title, content)
		if postedAt != nil {
			post.CreatedAt = helpers.DisplayAge(now, *postedAt)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *CatalogRepository) loadEvents(ctx context.Context) ([]models.Event, error) {
	sql, args, err := r.sb.Select("e.eventid", "e.clubid", "c.clubname", "COALESCE(e.title, '')", "COALESCE(e.description, '')", "e.startdatetime", "COALESCE(e.location, '')").
		From("events e").
		Join("clubs c ON c.clubid = e.clubid").
		OrderBy("e.startdatetime NULLS LAST", "e.eventid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var (
			id, clubID int64
			event      models.Event
			startsAt   *time.Time
		)
		if err := rows.Scan(&id, &clubID, &event.ClubName, &event.Title, &event.Description, &startsAt, &event.Location); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.ID = "e" + strconv.FormatInt(id, 10)
		event.ClubID = strconv.FormatInt(clubID, 10)
		if startsAt != nil {
			event.Date = startsAt.Format("2006-01-02")
			event.Time = startsAt.Format("3:04 PM")
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *CatalogRepository) loadTags(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("tagname").From("tags").OrderBy("tagid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build tags query: %w", err)
	}
	return r.queryStrings(ctx, sql, args)
}

func (r *CatalogRepository) queryStrings(ctx context.Context, sql string, args []any) ([]string, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func joinPostText(title, content string) string {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	switch {
	case title == "":
		return content
	case content == "":
		return title
	default:
		return title + "\n\n" + content
	}
}

func adminClubsOf(clubs []models.Club, userID string) []string {
	out := make([]string, 0)
	for _, club := range clubs {
		for _, admin := range club.Admins {
			if admin == userID {
				out = append(out, club.ID)
				break
			}
		}
	}
	return out
}

func filterKnown(ids []string, known map[string]bool) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out
}
