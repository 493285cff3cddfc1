package schema

import (
	"encoding/json"
	"time"
)

// Email is the message body consumed by the mailer.
type Email struct {
	ID        string    `json:"id"`
	UserID    *int64    `json:"user_id,omitempty"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Email) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Email) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}
