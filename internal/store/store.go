package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"geoconnect-backend-go/internal/models"
)

// Store is the persistence gateway: the only component that issues queries
// against the database. Every method is a single round trip except
// RegisterForEvent, which is one transaction.
type Store interface {
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, in models.InsertUser, passwordHash string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in models.UpdateUser) (*models.User, error)

	GetForumCategories(ctx context.Context) ([]models.ForumCategory, error)
	CreateForumCategory(ctx context.Context, in models.InsertForumCategory) (*models.ForumCategory, error)
	GetForumPosts(ctx context.Context, categoryID *int64) ([]models.ForumPostListItem, error)
	GetForumPost(ctx context.Context, id int64) (*models.ForumPostDetail, error)
	CreateForumPost(ctx context.Context, in models.InsertForumPost) (*models.ForumPost, error)
	GetForumReplies(ctx context.Context, postID int64) ([]models.ForumReplyDetail, error)
	CreateForumReply(ctx context.Context, in models.InsertForumReply) (*models.ForumReply, error)

	GetJobs(ctx context.Context, limit int) ([]models.JobDetail, error)
	GetJob(ctx context.Context, id int64) (*models.JobDetail, error)
	CreateJob(ctx context.Context, in models.InsertJob) (*models.Job, error)

	GetResources(ctx context.Context, category string) ([]models.ResourceDetail, error)
	GetResource(ctx context.Context, id int64) (*models.ResourceDetail, error)
	CreateResource(ctx context.Context, in models.InsertResource) (*models.Resource, error)
	IncrementDownloadCount(ctx context.Context, id int64) error
	DeleteResource(ctx context.Context, id int64) error

	GetEvents(ctx context.Context, limit int) ([]models.EventDetail, error)
	GetEvent(ctx context.Context, id int64) (*models.EventDetail, error)
	CreateEvent(ctx context.Context, in models.InsertEvent) (*models.Event, error)
	RegisterForEvent(ctx context.Context, in models.InsertEventRegistration) (*models.EventRegistration, error)
	IsUserRegisteredForEvent(ctx context.Context, eventID, userID int64) (bool, error)

	GetMessages(ctx context.Context, userID int64) ([]models.MessageDetail, error)
	CreateMessage(ctx context.Context, in models.InsertMessage) (*models.Message, error)
	MarkMessageAsRead(ctx context.Context, id int64) error

	Search(ctx context.Context, term string, limit int) ([]models.SearchResult, error)

	CreateMediaAsset(ctx context.Context, asset models.MediaAsset) error
	GetMediaAsset(ctx context.Context, id string) (*models.MediaAsset, error)

	InsertMetricSample(ctx context.Context, id string, sample models.MetricSample) error
	LatestMetricSamples(ctx context.Context, limit int) ([]models.MetricSample, error)
}

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record does not exist")
)

// PgStore implements Store over a PostgreSQL pool.
type PgStore struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// translate maps driver errors onto the gateway error taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w (%s)", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w (%s)", ErrForeignKey, pgErr.ConstraintName)
		}
	}
	return err
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns aliases the public columns of a joined users row so sqlx can
// scan them into a nested User. password_hash is deliberately not selected.
func userColumns(tableAlias, fieldPrefix string) string {
	cols := []string{
		"id", "username", "email", "full_name", "bio", "field_experience",
		"skills", "education", "location", "availability", "profile_picture",
		"created_at",
	}
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, fmt.Sprintf(`%s.%s AS "%s.%s"`, tableAlias, col, fieldPrefix, col))
	}
	return strings.Join(parts, ", ")
}
