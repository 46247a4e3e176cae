package store

import (
	"context"

	"geoconnect-backend-go/internal/models"
)

func (s *PgStore) GetMessages(ctx context.Context, userID int64) ([]models.MessageDetail, error) {
	query := `
SELECT m.id, m.sender_id, m.receiver_id, m.subject, m.content, m.is_read, m.created_at,
       ` + userColumns("snd", "sender") + `,
       ` + userColumns("rcv", "receiver") + `
FROM messages m
JOIN users snd ON snd.id = m.sender_id
JOIN users rcv ON rcv.id = m.receiver_id
WHERE m.receiver_id = $1
ORDER BY m.created_at DESC
`
	messages := []models.MessageDetail{}
	if err := s.db.SelectContext(ctx, &messages, query, userID); err != nil {
		return nil, translate(err)
	}
	return messages, nil
}

func (s *PgStore) CreateMessage(ctx context.Context, in models.InsertMessage) (*models.Message, error) {
	var message models.Message
	err := s.db.GetContext(ctx, &message, `
INSERT INTO messages (sender_id, receiver_id, subject, content)
VALUES ($1,$2,$3,$4)
RETURNING *
`, in.SenderID, in.ReceiverID, in.Subject, in.Content)
	if err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (s *PgStore) MarkMessageAsRead(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	return translate(err)
}
