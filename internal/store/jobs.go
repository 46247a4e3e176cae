package store

import (
	"context"

	"geoconnect-backend-go/internal/models"
)

const defaultListLimit = 50

func (s *PgStore) GetJobs(ctx context.Context, limit int) ([]models.JobDetail, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := `
SELECT j.id, j.title, j.company, j.location, j.type, j.description, j.requirements,
       j.salary, j.contact_email, j.posted_by_id, j.created_at, j.expires_at,
       ` + userColumns("u", "posted_by") + `
FROM jobs j
JOIN users u ON u.id = j.posted_by_id
ORDER BY j.created_at DESC
LIMIT $1
`
	jobs := []models.JobDetail{}
	if err := s.db.SelectContext(ctx, &jobs, query, limit); err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}

func (s *PgStore) GetJob(ctx context.Context, id int64) (*models.JobDetail, error) {
	query := `
SELECT j.id, j.title, j.company, j.location, j.type, j.description, j.requirements,
       j.salary, j.contact_email, j.posted_by_id, j.created_at, j.expires_at,
       ` + userColumns("u", "posted_by") + `
FROM jobs j
JOIN users u ON u.id = j.posted_by_id
WHERE j.id = $1
`
	var job models.JobDetail
	if err := s.db.GetContext(ctx, &job, query, id); err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *PgStore) CreateJob(ctx context.Context, in models.InsertJob) (*models.Job, error) {
	var job models.Job
	err := s.db.GetContext(ctx, &job, `
INSERT INTO jobs (title, company, location, type, description, requirements, salary, contact_email, posted_by_id, expires_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING *
`, in.Title, in.Company, in.Location, in.Type, in.Description, in.Requirements,
		in.Salary, in.ContactEmail, in.PostedByID, in.ExpiresAt)
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}
