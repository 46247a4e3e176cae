package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validInsertUser() InsertUser {
	return InsertUser{
		Username: "mariner",
		Email:    "mariner@example.com",
		Password: "secret123",
		FullName: "Marin Ionescu",
	}
}

func TestInsertUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InsertUser)
		wantErr string
	}{
		{"valid", func(in *InsertUser) {}, ""},
		{"missing username", func(in *InsertUser) { in.Username = "  " }, "username is required"},
		{"missing email", func(in *InsertUser) { in.Email = "" }, "email is required"},
		{"missing password", func(in *InsertUser) { in.Password = "" }, "password is required"},
		{"missing full name", func(in *InsertUser) { in.FullName = "" }, "fullName is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInsertUser()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateUserEmpty(t *testing.T) {
	assert.True(t, UpdateUser{}.Empty())

	name := "New Name"
	assert.False(t, UpdateUser{FullName: &name}.Empty())

	skills := StringList{"mapping"}
	assert.False(t, UpdateUser{Skills: &skills}.Empty())
}

func TestInsertForumPostValidate(t *testing.T) {
	valid := InsertForumPost{Title: "Garnet zoning", Content: "Observations", AuthorID: 1, CategoryID: 2}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		in      InsertForumPost
		wantErr string
	}{
		{"missing title", InsertForumPost{Content: "c", AuthorID: 1, CategoryID: 1}, "title is required"},
		{"missing content", InsertForumPost{Title: "t", AuthorID: 1, CategoryID: 1}, "content is required"},
		{"missing author", InsertForumPost{Title: "t", Content: "c", CategoryID: 1}, "authorId is required"},
		{"missing category", InsertForumPost{Title: "t", Content: "c", AuthorID: 1}, "categoryId is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.in.Validate(), tt.wantErr)
		})
	}
}

func TestInsertForumReplyValidate(t *testing.T) {
	assert.NoError(t, InsertForumReply{Content: "agreed", AuthorID: 3, PostID: 9}.Validate())
	assert.EqualError(t, InsertForumReply{AuthorID: 3, PostID: 9}.Validate(), "content is required")
	assert.EqualError(t, InsertForumReply{Content: "x", PostID: 9}.Validate(), "authorId is required")
}

func TestInsertJobValidate(t *testing.T) {
	valid := InsertJob{
		Title:        "Field Geologist",
		Company:      "TerraCore",
		Location:     "Denver, CO",
		Type:         "full-time",
		Description:  "Mapping and sampling",
		ContactEmail: "jobs@terracore.example",
		PostedByID:   4,
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.ContactEmail = ""
	assert.EqualError(t, invalid.Validate(), "contactEmail is required")

	invalid = valid
	invalid.PostedByID = 0
	assert.EqualError(t, invalid.Validate(), "postedById is required")
}

func TestInsertResourceValidate(t *testing.T) {
	assert.NoError(t, InsertResource{Title: "Core log template", Category: "templates", UploadedByID: 2}.Validate())
	assert.EqualError(t, InsertResource{Category: "templates", UploadedByID: 2}.Validate(), "title is required")
	assert.EqualError(t, InsertResource{Title: "t", UploadedByID: 2}.Validate(), "category is required")
	assert.EqualError(t, InsertResource{Title: "t", Category: "c"}.Validate(), "uploadedById is required")
}

func TestInsertEventValidate(t *testing.T) {
	valid := InsertEvent{
		Title:       "Rockhound meetup",
		Description: "Quarry walk",
		Location:    "Cluj",
		Date:        time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		OrganizerID: 7,
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.Date = time.Time{}
	assert.EqualError(t, invalid.Validate(), "date is required")

	invalid = valid
	invalid.OrganizerID = 0
	assert.EqualError(t, invalid.Validate(), "organizerId is required")
}

func TestInsertEventRegistrationValidate(t *testing.T) {
	assert.NoError(t, InsertEventRegistration{EventID: 1, UserID: 2}.Validate())
	assert.EqualError(t, InsertEventRegistration{UserID: 2}.Validate(), "eventId is required")
	assert.EqualError(t, InsertEventRegistration{EventID: 1}.Validate(), "userId is required")
}

func TestInsertMessageValidate(t *testing.T) {
	valid := InsertMessage{SenderID: 1, ReceiverID: 2, Subject: "Hi", Content: "Question about your talk"}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.ReceiverID = -1
	assert.EqualError(t, invalid.Validate(), "receiverId is required")

	invalid = valid
	invalid.Subject = " "
	assert.EqualError(t, invalid.Validate(), "subject is required")
}
