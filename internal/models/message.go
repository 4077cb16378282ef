package models

import "time"

type MessageAuthor string

const (
	AuthorCustomer MessageAuthor = "customer"
	AuthorAdmin    MessageAuthor = "admin"
)

// Message ids are unique within their order's thread, assigned sequentially
// starting at 1.
type Message struct {
	ID        uint          `json:"id"`
	Author    MessageAuthor `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	Read      bool          `json:"read"`
}
