package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"geoconnect-backend-go/internal/models"
	"geoconnect-backend-go/internal/store"
)

const maxUploadBytes = 50 << 20

// SaveMediaAsset streams an uploaded file to disk under storagePath and
// records it in media_assets. Returns the asset id and the serving URL.
func SaveMediaAsset(ctx context.Context, st store.Store, storagePath, contentType, filename string, ownerID int64, reader io.Reader) (string, string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", "", err
	}
	assetID := uuid.NewString()
	storageKey := assetID + sanitizeExtension(filename)
	path := filepath.Join(storagePath, storageKey)

	file, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	written, err := io.Copy(file, io.LimitReader(reader, maxUploadBytes+1))
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", "", err
	}
	if written > maxUploadBytes {
		_ = os.Remove(path)
		return "", "", ErrBadRequest("File exceeds the upload limit")
	}
	if written == 0 {
		_ = os.Remove(path)
		return "", "", ErrBadRequest("File is empty")
	}

	asset := models.MediaAsset{
		ID:          assetID,
		OwnerUserID: &ownerID,
		StorageKey:  storageKey,
		Filename:    nullableString(filename),
		ContentType: contentType,
		SizeBytes:   written,
		CreatedAt:   time.Now().UTC(),
	}
	if err := st.CreateMediaAsset(ctx, asset); err != nil {
		_ = os.Remove(path)
		return "", "", err
	}
	return assetID, BuildAssetURL(assetID), nil
}

// ResolveMediaAsset looks up an asset and the on-disk path it is served from.
func ResolveMediaAsset(ctx context.Context, st store.Store, storagePath, assetID string) (*models.MediaAsset, string, error) {
	asset, err := st.GetMediaAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", ErrNotFound("Media not found")
		}
		return nil, "", WrapError(err, "load media asset")
	}
	return asset, filepath.Join(storagePath, asset.StorageKey), nil
}

func BuildAssetURL(assetID string) string {
	return "/api/media/assets/" + assetID + "/content"
}

// FormatFileSize renders a byte count the way the resource cards display it.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return strconv.FormatInt(bytes>>20, 10) + " MB"
	case bytes >= 1<<10:
		return strconv.FormatInt(bytes>>10, 10) + " KB"
	default:
		return strconv.FormatInt(bytes, 10) + " B"
	}
}

func sanitizeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

func nullableString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
