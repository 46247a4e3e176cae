package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"geoconnect-backend-go/internal/models"
)

func resourcesQuery(category string) sq.SelectBuilder {
	b := psql.Select(
		"r.id", "r.title", "r.description", "r.category", "r.file_url",
		"r.file_name", "r.file_size", "r.uploaded_by_id", "r.download_count",
		"r.created_at",
		userColumns("u", "uploaded_by"),
	).
		From("resources r").
		Join("users u ON u.id = r.uploaded_by_id").
		OrderBy("r.created_at DESC")
	if category != "" {
		b = b.Where("r.category = ?", category)
	}
	return b
}

func (s *PgStore) GetResources(ctx context.Context, category string) ([]models.ResourceDetail, error) {
	query, args, err := resourcesQuery(category).ToSql()
	if err != nil {
		return nil, err
	}
	resources := []models.ResourceDetail{}
	if err := s.db.SelectContext(ctx, &resources, query, args...); err != nil {
		return nil, translate(err)
	}
	return resources, nil
}

func (s *PgStore) GetResource(ctx context.Context, id int64) (*models.ResourceDetail, error) {
	query := `
SELECT r.id, r.title, r.description, r.category, r.file_url, r.file_name, r.file_size,
       r.uploaded_by_id, r.download_count, r.created_at,
       ` + userColumns("u", "uploaded_by") + `
FROM resources r
JOIN users u ON u.id = r.uploaded_by_id
WHERE r.id = $1
`
	var resource models.ResourceDetail
	if err := s.db.GetContext(ctx, &resource, query, id); err != nil {
		return nil, translate(err)
	}
	return &resource, nil
}

func (s *PgStore) CreateResource(ctx context.Context, in models.InsertResource) (*models.Resource, error) {
	var resource models.Resource
	err := s.db.GetContext(ctx, &resource, `
INSERT INTO resources (title, description, category, file_url, file_name, file_size, uploaded_by_id)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING *
`, in.Title, in.Description, in.Category, in.FileURL, in.FileName, in.FileSize, in.UploadedByID)
	if err != nil {
		return nil, translate(err)
	}
	return &resource, nil
}

// IncrementDownloadCount bumps the counter in SQL so concurrent downloads
// are never lost to a read-modify-write race.
func (s *PgStore) IncrementDownloadCount(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
UPDATE resources SET download_count = download_count + 1 WHERE id = $1
`, id)
	return translate(err)
}

// DeleteResource is a no-op when the id does not exist.
func (s *PgStore) DeleteResource(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	return translate(err)
}
