package models

import "time"

type User struct {
	ID              int64      `db:"id" json:"id"`
	Username        string     `db:"username" json:"username"`
	Email           string     `db:"email" json:"email"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	FullName        string     `db:"full_name" json:"fullName"`
	Bio             *string    `db:"bio" json:"bio"`
	FieldExperience *string    `db:"field_experience" json:"fieldExperience"`
	Skills          StringList `db:"skills" json:"skills"`
	Education       *string    `db:"education" json:"education"`
	Location        *string    `db:"location" json:"location"`
	Availability    *string    `db:"availability" json:"availability"`
	ProfilePicture  *string    `db:"profile_picture" json:"profilePicture"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
}

type ForumCategory struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Icon        string    `db:"icon" json:"icon"`
	Color       string    `db:"color" json:"color"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type ForumPost struct {
	ID         int64     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	AuthorID   int64     `db:"author_id" json:"authorId"`
	CategoryID int64     `db:"category_id" json:"categoryId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type ForumReply struct {
	ID        int64     `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	AuthorID  int64     `db:"author_id" json:"authorId"`
	PostID    int64     `db:"post_id" json:"postId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Job struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Company      string     `db:"company" json:"company"`
	Location     string     `db:"location" json:"location"`
	Type         string     `db:"type" json:"type"`
	Description  string     `db:"description" json:"description"`
	Requirements StringList `db:"requirements" json:"requirements"`
	Salary       *string    `db:"salary" json:"salary"`
	ContactEmail string     `db:"contact_email" json:"contactEmail"`
	PostedByID   int64      `db:"posted_by_id" json:"postedById"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	ExpiresAt    *time.Time `db:"expires_at" json:"expiresAt"`
}

type Resource struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description"`
	Category      string    `db:"category" json:"category"`
	FileURL       *string   `db:"file_url" json:"fileUrl"`
	FileName      *string   `db:"file_name" json:"fileName"`
	FileSize      *string   `db:"file_size" json:"fileSize"`
	UploadedByID  int64     `db:"uploaded_by_id" json:"uploadedById"`
	DownloadCount int       `db:"download_count" json:"downloadCount"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type Event struct {
	ID                int64     `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	Description       string    `db:"description" json:"description"`
	Location          string    `db:"location" json:"location"`
	Date              time.Time `db:"date" json:"date"`
	ImageURL          *string   `db:"image_url" json:"imageUrl"`
	MaxAttendees      *int      `db:"max_attendees" json:"maxAttendees"`
	RegistrationCount int       `db:"registration_count" json:"registrationCount"`
	OrganizerID       int64     `db:"organizer_id" json:"organizerId"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}

type EventRegistration struct {
	ID        int64     `db:"id" json:"id"`
	EventID   int64     `db:"event_id" json:"eventId"`
	UserID    int64     `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Message struct {
	ID         int64     `db:"id" json:"id"`
	SenderID   int64     `db:"sender_id" json:"senderId"`
	ReceiverID int64     `db:"receiver_id" json:"receiverId"`
	Subject    string    `db:"subject" json:"subject"`
	Content    string    `db:"content" json:"content"`
	IsRead     bool      `db:"is_read" json:"isRead"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type MediaAsset struct {
	ID          string    `db:"id" json:"id"`
	OwnerUserID *int64    `db:"owner_user_id" json:"ownerUserId"`
	StorageKey  string    `db:"storage_key" json:"-"`
	Filename    *string   `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"contentType"`
	SizeBytes   int64     `db:"size_bytes" json:"sizeBytes"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Joined projections returned by the list and detail queries. The nested
// user records never carry a password hash; the columns are simply not
// selected by the gateway.

type ForumPostDetail struct {
	ForumPost
	Author   User          `db:"author" json:"author"`
	Category ForumCategory `db:"category" json:"category"`
}

type ForumPostListItem struct {
	ForumPostDetail
	ReplyCount int64 `db:"reply_count" json:"replyCount"`
}

type ForumReplyDetail struct {
	ForumReply
	Author User `db:"author" json:"author"`
}

type JobDetail struct {
	Job
	PostedBy User `db:"posted_by" json:"postedBy"`
}

type ResourceDetail struct {
	Resource
	UploadedBy User `db:"uploaded_by" json:"uploadedBy"`
}

type EventDetail struct {
	Event
	Organizer User `db:"organizer" json:"organizer"`
}

type MessageDetail struct {
	Message
	Sender   User `db:"sender" json:"sender"`
	Receiver User `db:"receiver" json:"receiver"`
}

type SearchResult struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Type  string `db:"type" json:"type"`
}

type MetricSample struct {
	CapturedAt        time.Time `db:"captured_at" json:"capturedAt"`
	HeapUsedBytes     int64     `db:"heap_used_bytes" json:"heapUsedBytes"`
	HeapMaxBytes      int64     `db:"heap_max_bytes" json:"heapMaxBytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes" json:"systemMemoryTotalBytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes" json:"systemMemoryUsedBytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes" json:"diskTotalBytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes" json:"diskUsedBytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load" json:"processCpuLoad"`
	SystemCpuLoad     float64   `db:"system_cpu_load" json:"systemCpuLoad"`
}
