package models

import "time"

// Comment belongs to exactly one ticket and references its author. Comments
// are listed by creation time ascending and are destroyed with their ticket.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Content   string    `json:"content" bson:"content"`
	TicketID  string    `json:"ticketId" bson:"ticketId"`
	AuthorID  string    `json:"authorId" bson:"authorId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CommentCreateRequest is the payload for adding a comment to a ticket.
type CommentCreateRequest struct {
	Content  string `json:"content" binding:"required"`
	AuthorID string `json:"authorId" binding:"required"`
}

// CommentUpdateRequest replaces the comment content.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the client-facing shape with the author embedded.
type CommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	TicketID  string        `json:"ticketId"`
	Author    *UserResponse `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
