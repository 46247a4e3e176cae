package store

import (
	"context"

	"geoconnect-backend-go/internal/models"
)

func (s *PgStore) CreateMediaAsset(ctx context.Context, asset models.MediaAsset) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO media_assets (id, owner_user_id, storage_key, filename, content_type, size_bytes, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, asset.ID, asset.OwnerUserID, asset.StorageKey, asset.Filename, asset.ContentType, asset.SizeBytes, asset.CreatedAt)
	return translate(err)
}

func (s *PgStore) GetMediaAsset(ctx context.Context, id string) (*models.MediaAsset, error) {
	var asset models.MediaAsset
	if err := s.db.GetContext(ctx, &asset, `SELECT * FROM media_assets WHERE id = $1`, id); err != nil {
		return nil, translate(err)
	}
	return &asset, nil
}
