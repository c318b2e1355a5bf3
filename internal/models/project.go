package models

import "time"

// Project is a container for board columns and tickets. The key is a short
// uppercase identifier ("DEMO") that is unique across all projects.
type Project struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Key         string    `json:"key" bson:"key"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProjectCreateRequest is the payload for creating a project. The key is
// normalized to uppercase before the uniqueness check.
type ProjectCreateRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Key         string `json:"key" binding:"required,min=2,max=10,alphanum"`
	Description string `json:"description"`
}

// ProjectUpdateRequest replaces the two mutable project fields.
type ProjectUpdateRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

// ProjectResponse is the client-facing shape. Columns is populated for
// single-project reads and left nil in list views.
type ProjectResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Key         string           `json:"key"`
	Description string           `json:"description,omitempty"`
	Columns     []ColumnResponse `json:"columns,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
