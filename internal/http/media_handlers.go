package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"geoconnect-backend-go/internal/services"
)

type UploadResponse struct {
	AssetID  string `json:"assetId"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize string `json:"fileSize"`
}

func (s *Server) UploadResourceFile(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "File is empty")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "File is empty")
		return
	}
	defer file.Close()
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	assetID, url, err := services.SaveMediaAsset(r.Context(), s.Store, s.Config.MediaStoragePath, contentType, header.Filename, identity.UserID, file)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, UploadResponse{
		AssetID:  assetID,
		URL:      url,
		FileName: header.Filename,
		FileSize: services.FormatFileSize(header.Size),
	})
}

func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	asset, path, err := services.ResolveMediaAsset(r.Context(), s.Store, s.Config.MediaStoragePath, assetID)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if asset.Filename != nil {
		w.Header().Set("Content-Disposition", "inline; filename=\""+*asset.Filename+"\"")
	}
	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	http.ServeFile(w, r, path)
}
