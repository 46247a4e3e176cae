package store

import (
	"context"
	"strings"

	"geoconnect-backend-go/internal/models"
)

// Search matches resources and jobs by title or description in one query.
// The term is expected to be normalized already (see services.CleanSearchTerm).
func (s *PgStore) Search(ctx context.Context, term string, limit int) ([]models.SearchResult, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	like := "%" + strings.ToLower(term) + "%"
	query := `
SELECT id, title, type FROM (
  SELECT id, title, created_at, 'RESOURCE' AS type
  FROM resources
  WHERE lower(title) LIKE $1 OR lower(coalesce(description, '')) LIKE $1
  UNION ALL
  SELECT id, title, created_at, 'JOB' AS type
  FROM jobs
  WHERE lower(title) LIKE $1 OR lower(description) LIKE $1
) hits
ORDER BY created_at DESC
LIMIT $2
`
	results := []models.SearchResult{}
	if err := s.db.SelectContext(ctx, &results, query, like, limit); err != nil {
		return nil, translate(err)
	}
	return results, nil
}
