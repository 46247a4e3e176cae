package httpapi

import (
	"encoding/json"
	"net/http"

	"geoconnect-backend-go/internal/models"
)

func (s *Server) ForumCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Store.GetForumCategories(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, categories)
}

func (s *Server) ForumPosts(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id := int64(parseInt(raw, 0))
		if id > 0 {
			categoryID = &id
		}
	}
	posts, err := s.Store.GetForumPosts(r.Context(), categoryID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, posts)
}

func (s *Server) ForumPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Post not found")
		return
	}
	post, err := s.Store.GetForumPost(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Post not found")
		return
	}
	WriteJSON(w, http.StatusOK, post)
}

func (s *Server) CreateForumPost(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	var req models.InsertForumPost
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.AuthorID = identity.UserID
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}
	post, err := s.Store.CreateForumPost(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "Category not found")
		return
	}
	WriteJSON(w, http.StatusOK, post)
}

func (s *Server) ForumReplies(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Post not found")
		return
	}
	replies, err := s.Store.GetForumReplies(r.Context(), postID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	WriteJSON(w, http.StatusOK, replies)
}

func (s *Server) CreateForumReply(w http.ResponseWriter, r *http.Request) {
	identity := CurrentIdentity(r)
	postID, ok := pathID(r, "postId")
	if !ok {
		WriteError(w, http.StatusNotFound, "Post not found")
		return
	}
	var req models.InsertForumReply
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	req.AuthorID = identity.UserID
	req.PostID = postID
	if err := req.Validate(); err != nil {
		WriteValidationError(w, err)
		return
	}
	reply, err := s.Store.CreateForumReply(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, "Post not found")
		return
	}
	WriteJSON(w, http.StatusOK, reply)
}
