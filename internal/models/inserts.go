package models

import (
	"errors"
	"strings"
	"time"
)

// Insert shapes: what a client may supply when creating an entity. Server
// assigned fields (id, createdAt, counters) are absent. Validation is
// structural only; referential integrity is left to the database.

type InsertUser struct {
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	FullName        string     `json:"fullName"`
	Bio             *string    `json:"bio"`
	FieldExperience *string    `json:"fieldExperience"`
	Skills          StringList `json:"skills"`
	Education       *string    `json:"education"`
	Location        *string    `json:"location"`
	Availability    *string    `json:"availability"`
	ProfilePicture  *string    `json:"profilePicture"`
}

func (in InsertUser) Validate() error {
	return firstError(
		requireText("username", in.Username),
		requireText("email", in.Email),
		requireText("password", in.Password),
		requireText("fullName", in.FullName),
	)
}

// UpdateUser is the partial profile-edit shape; nil fields are left untouched.
type UpdateUser struct {
	FullName        *string     `json:"fullName"`
	Bio             *string     `json:"bio"`
	FieldExperience *string     `json:"fieldExperience"`
	Skills          *StringList `json:"skills"`
	Education       *string     `json:"education"`
	Location        *string     `json:"location"`
	Availability    *string     `json:"availability"`
	ProfilePicture  *string     `json:"profilePicture"`
}

func (in UpdateUser) Empty() bool {
	return in.FullName == nil && in.Bio == nil && in.FieldExperience == nil &&
		in.Skills == nil && in.Education == nil && in.Location == nil &&
		in.Availability == nil && in.ProfilePicture == nil
}

type InsertForumCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func (in InsertForumCategory) Validate() error {
	return firstError(
		requireText("name", in.Name),
		requireText("description", in.Description),
		requireText("icon", in.Icon),
		requireText("color", in.Color),
	)
}

type InsertForumPost struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"authorId"`
	CategoryID int64  `json:"categoryId"`
}

func (in InsertForumPost) Validate() error {
	return firstError(
		requireText("title", in.Title),
		requireText("content", in.Content),
		requireID("authorId", in.AuthorID),
		requireID("categoryId", in.CategoryID),
	)
}

type InsertForumReply struct {
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
	PostID   int64  `json:"postId"`
}

func (in InsertForumReply) Validate() error {
	return firstError(
		requireText("content", in.Content),
		requireID("authorId", in.AuthorID),
		requireID("postId", in.PostID),
	)
}

type InsertJob struct {
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`
	Description  string     `json:"description"`
	Requirements StringList `json:"requirements"`
	Salary       *string    `json:"salary"`
	ContactEmail string     `json:"contactEmail"`
	PostedByID   int64      `json:"postedById"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

func (in InsertJob) Validate() error {
	return firstError(
		requireText("title", in.Title),
		requireText("company", in.Company),
		requireText("location", in.Location),
		requireText("type", in.Type),
		requireText("description", in.Description),
		requireText("contactEmail", in.ContactEmail),
		requireID("postedById", in.PostedByID),
	)
}

type InsertResource struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Category     string  `json:"category"`
	FileURL      *string `json:"fileUrl"`
	FileName     *string `json:"fileName"`
	FileSize     *string `json:"fileSize"`
	UploadedByID int64   `json:"uploadedById"`
}

func (in InsertResource) Validate() error {
	return firstError(
		requireText("title", in.Title),
		requireText("category", in.Category),
		requireID("uploadedById", in.UploadedByID),
	)
}

type InsertEvent struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Date         time.Time `json:"date"`
	ImageURL     *string   `json:"imageUrl"`
	MaxAttendees *int      `json:"maxAttendees"`
	OrganizerID  int64     `json:"organizerId"`
}

func (in InsertEvent) Validate() error {
	if err := firstError(
		requireText("title", in.Title),
		requireText("description", in.Description),
		requireText("location", in.Location),
		requireID("organizerId", in.OrganizerID),
	); err != nil {
		return err
	}
	if in.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

type InsertEventRegistration struct {
	EventID int64 `json:"eventId"`
	UserID  int64 `json:"userId"`
}

func (in InsertEventRegistration) Validate() error {
	return firstError(
		requireID("eventId", in.EventID),
		requireID("userId", in.UserID),
	)
}

type InsertMessage struct {
	SenderID   int64  `json:"senderId"`
	ReceiverID int64  `json:"receiverId"`
	Subject    string `json:"subject"`
	Content    string `json:"content"`
}

func (in InsertMessage) Validate() error {
	return firstError(
		requireID("senderId", in.SenderID),
		requireID("receiverId", in.ReceiverID),
		requireText("subject", in.Subject),
		requireText("content", in.Content),
	)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(field + " is required")
	}
	return nil
}

func requireID(field string, value int64) error {
	if value <= 0 {
		return errors.New(field + " is required")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
