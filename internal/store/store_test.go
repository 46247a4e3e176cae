package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(sql.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("query: %w", sql.ErrNoRows)), ErrNotFound)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	err := translate(dup)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "users_email_key")

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "forum_posts_category_id_fkey"}
	assert.ErrorIs(t, translate(fk), ErrForeignKey)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}

func TestForumPostsQuery(t *testing.T) {
	query, args, err := forumPostsQuery(nil).ToSql()
	assert.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
	assert.Contains(t, query, "count(r.id) AS reply_count")
	assert.Contains(t, query, "LEFT JOIN forum_replies r ON r.post_id = p.id")
	assert.Contains(t, query, "ORDER BY p.created_at DESC")

	id := int64(4)
	query, args, err = forumPostsQuery(&id).ToSql()
	assert.NoError(t, err)
	assert.Contains(t, query, "WHERE p.category_id = $1")
	assert.Equal(t, []interface{}{int64(4)}, args)
}

func TestResourcesQuery(t *testing.T) {
	query, args, err := resourcesQuery("").ToSql()
	assert.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
	assert.Contains(t, query, "ORDER BY r.created_at DESC")

	query, args, err = resourcesQuery("maps").ToSql()
	assert.NoError(t, err)
	assert.Contains(t, query, "WHERE r.category = $1")
	assert.Equal(t, []interface{}{"maps"}, args)
}

func TestUserColumnsOmitsPasswordHash(t *testing.T) {
	cols := userColumns("a", "author")
	assert.NotContains(t, cols, "password_hash")
	assert.Contains(t, cols, `a.id AS "author.id"`)
	assert.Contains(t, cols, `a.full_name AS "author.full_name"`)
	assert.Contains(t, cols, `a.skills AS "author.skills"`)
}
