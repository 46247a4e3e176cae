package store

import (
	"context"

	"geoconnect-backend-go/internal/models"
)

func (s *PgStore) GetEvents(ctx context.Context, limit int) ([]models.EventDetail, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := `
SELECT e.id, e.title, e.description, e.location, e.date, e.image_url, e.max_attendees,
       e.registration_count, e.organizer_id, e.created_at,
       ` + userColumns("u", "organizer") + `
FROM events e
JOIN users u ON u.id = e.organizer_id
ORDER BY e.date ASC
LIMIT $1
`
	events := []models.EventDetail{}
	if err := s.db.SelectContext(ctx, &events, query, limit); err != nil {
		return nil, translate(err)
	}
	return events, nil
}

func (s *PgStore) GetEvent(ctx context.Context, id int64) (*models.EventDetail, error) {
	query := `
SELECT e.id, e.title, e.description, e.location, e.date, e.image_url, e.max_attendees,
       e.registration_count, e.organizer_id, e.created_at,
       ` + userColumns("u", "organizer") + `
FROM events e
JOIN users u ON u.id = e.organizer_id
WHERE e.id = $1
`
	var event models.EventDetail
	if err := s.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (s *PgStore) CreateEvent(ctx context.Context, in models.InsertEvent) (*models.Event, error) {
	var event models.Event
	err := s.db.GetContext(ctx, &event, `
INSERT INTO events (title, description, location, date, image_url, max_attendees, organizer_id)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING *
`, in.Title, in.Description, in.Location, in.Date, in.ImageURL, in.MaxAttendees, in.OrganizerID)
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// RegisterForEvent inserts the registration row and bumps the event counter
// in one transaction. The UNIQUE (event_id, user_id) constraint is the
// authority on duplicates; a violation surfaces as ErrDuplicate and leaves
// the counter untouched.
func (s *PgStore) RegisterForEvent(ctx context.Context, in models.InsertEventRegistration) (*models.EventRegistration, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var registration models.EventRegistration
	err = tx.GetContext(ctx, &registration, `
INSERT INTO event_registrations (event_id, user_id)
VALUES ($1,$2)
RETURNING *
`, in.EventID, in.UserID)
	if err != nil {
		return nil, translate(err)
	}
	_, err = tx.ExecContext(ctx, `
UPDATE events SET registration_count = registration_count + 1 WHERE id = $1
`, in.EventID)
	if err != nil {
		return nil, translate(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &registration, nil
}

func (s *PgStore) IsUserRegisteredForEvent(ctx context.Context, eventID, userID int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `
SELECT EXISTS(SELECT 1 FROM event_registrations WHERE event_id = $1 AND user_id = $2)
`, eventID, userID)
	return exists, translate(err)
}
