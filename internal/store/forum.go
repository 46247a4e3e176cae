package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"geoconnect-backend-go/internal/models"
)

func categoryColumns(tableAlias, fieldPrefix string) string {
	cols := []string{"id", "name", "description", "icon", "color", "created_at"}
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, fmt.Sprintf(`%s.%s AS "%s.%s"`, tableAlias, col, fieldPrefix, col))
	}
	return strings.Join(parts, ", ")
}

func (s *PgStore) GetForumCategories(ctx context.Context) ([]models.ForumCategory, error) {
	categories := []models.ForumCategory{}
	err := s.db.SelectContext(ctx, &categories, `SELECT * FROM forum_categories ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return categories, nil
}

func (s *PgStore) CreateForumCategory(ctx context.Context, in models.InsertForumCategory) (*models.ForumCategory, error) {
	var category models.ForumCategory
	err := s.db.GetContext(ctx, &category, `
INSERT INTO forum_categories (name, description, icon, color)
VALUES ($1,$2,$3,$4)
RETURNING *
`, in.Name, in.Description, in.Icon, in.Color)
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func forumPostsQuery(categoryID *int64) sq.SelectBuilder {
	b := psql.Select(
		"p.id", "p.title", "p.content", "p.author_id", "p.category_id",
		"p.created_at", "p.updated_at",
		userColumns("a", "author"),
		categoryColumns("c", "category"),
		"count(r.id) AS reply_count",
	).
		From("forum_posts p").
		Join("users a ON a.id = p.author_id").
		Join("forum_categories c ON c.id = p.category_id").
		LeftJoin("forum_replies r ON r.post_id = p.id").
		GroupBy("p.id", "a.id", "c.id").
		OrderBy("p.created_at DESC")
	if categoryID != nil {
		b = b.Where("p.category_id = ?", *categoryID)
	}
	return b
}

func (s *PgStore) GetForumPosts(ctx context.Context, categoryID *int64) ([]models.ForumPostListItem, error) {
	query, args, err := forumPostsQuery(categoryID).ToSql()
	if err != nil {
		return nil, err
	}
	posts := []models.ForumPostListItem{}
	if err := s.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (s *PgStore) GetForumPost(ctx context.Context, id int64) (*models.ForumPostDetail, error) {
	query := `
SELECT p.id, p.title, p.content, p.author_id, p.category_id, p.created_at, p.updated_at,
       ` + userColumns("a", "author") + `,
       ` + categoryColumns("c", "category") + `
FROM forum_posts p
JOIN users a ON a.id = p.author_id
JOIN forum_categories c ON c.id = p.category_id
WHERE p.id = $1
`
	var post models.ForumPostDetail
	if err := s.db.GetContext(ctx, &post, query, id); err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *PgStore) CreateForumPost(ctx context.Context, in models.InsertForumPost) (*models.ForumPost, error) {
	var post models.ForumPost
	err := s.db.GetContext(ctx, &post, `
INSERT INTO forum_posts (title, content, author_id, category_id)
VALUES ($1,$2,$3,$4)
RETURNING *
`, in.Title, in.Content, in.AuthorID, in.CategoryID)
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *PgStore) GetForumReplies(ctx context.Context, postID int64) ([]models.ForumReplyDetail, error) {
	query := `
SELECT r.id, r.content, r.author_id, r.post_id, r.created_at,
       ` + userColumns("a", "author") + `
FROM forum_replies r
JOIN users a ON a.id = r.author_id
WHERE r.post_id = $1
ORDER BY r.created_at ASC
`
	replies := []models.ForumReplyDetail{}
	if err := s.db.SelectContext(ctx, &replies, query, postID); err != nil {
		return nil, translate(err)
	}
	return replies, nil
}

func (s *PgStore) CreateForumReply(ctx context.Context, in models.InsertForumReply) (*models.ForumReply, error) {
	var reply models.ForumReply
	err := s.db.GetContext(ctx, &reply, `
INSERT INTO forum_replies (content, author_id, post_id)
VALUES ($1,$2,$3)
RETURNING *
`, in.Content, in.AuthorID, in.PostID)
	if err != nil {
		return nil, translate(err)
	}
	return &reply, nil
}
