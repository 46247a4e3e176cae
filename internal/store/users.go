package store

import (
	"context"

	"geoconnect-backend-go/internal/models"
)

func (s *PgStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PgStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PgStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE lower(email) = lower($1)`, email)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PgStore) CreateUser(ctx context.Context, in models.InsertUser, passwordHash string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `
INSERT INTO users (username, email, password_hash, full_name, bio, field_experience, skills, education, location, availability, profile_picture)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING *
`, in.Username, in.Email, passwordHash, in.FullName, in.Bio, in.FieldExperience,
		in.Skills, in.Education, in.Location, in.Availability, in.ProfilePicture)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *PgStore) UpdateUser(ctx context.Context, id int64, in models.UpdateUser) (*models.User, error) {
	if in.Empty() {
		return s.GetUser(ctx, id)
	}
	b := psql.Update("users").Where("id = ?", id).Suffix("RETURNING *")
	if in.FullName != nil {
		b = b.Set("full_name", *in.FullName)
	}
	if in.Bio != nil {
		b = b.Set("bio", *in.Bio)
	}
	if in.FieldExperience != nil {
		b = b.Set("field_experience", *in.FieldExperience)
	}
	if in.Skills != nil {
		b = b.Set("skills", *in.Skills)
	}
	if in.Education != nil {
		b = b.Set("education", *in.Education)
	}
	if in.Location != nil {
		b = b.Set("location", *in.Location)
	}
	if in.Availability != nil {
		b = b.Set("availability", *in.Availability)
	}
	if in.ProfilePicture != nil {
		b = b.Set("profile_picture", *in.ProfilePicture)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.GetContext(ctx, &user, query, args...); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
