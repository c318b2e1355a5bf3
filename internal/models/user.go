package models

import "time"

// User is referenced by tickets (assignee, reporter) and comments (author)
// but never owned by them. Username and email are globally unique.
type User struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Username    string    `json:"username" bson:"username"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"displayName" bson:"displayName"`
	AvatarURL   string    `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// UserCreateRequest is the payload for registering a user.
type UserCreateRequest struct {
	Username    string `json:"username" binding:"required,max=50"`
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
	AvatarURL   string `json:"avatarUrl"`
}

// UserUpdateRequest replaces the display name and avatar URL. An absent
// avatarUrl clears the stored one.
type UserUpdateRequest struct {
	DisplayName string  `json:"displayName" binding:"required,max=100"`
	AvatarURL   *string `json:"avatarUrl"`
}

// UserResponse is the client-facing shape.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ErrorResponse is the error payload returned by all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
