package models

// Column is a board column inside a project. Position is assigned at
// creation time (append at the end of the project's column sequence) and is
// never reassigned afterwards.
type Column struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Position  int    `json:"position" bson:"position"`
	Color     string `json:"color,omitempty" bson:"color,omitempty"`
	ProjectID string `json:"projectId" bson:"projectId"`
}

// ColumnCreateRequest is the payload for creating a column.
type ColumnCreateRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Color     string `json:"color"`
	ProjectID string `json:"projectId" binding:"required"`
}

// ColumnUpdateRequest replaces the column name; the color is replaced only
// when supplied.
type ColumnUpdateRequest struct {
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Color *string `json:"color"`
}

// ColumnResponse is the client-facing shape. Tickets is populated for board
// reads and left nil when a project is listed without its board.
type ColumnResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Position  int              `json:"position"`
	Color     string           `json:"color,omitempty"`
	ProjectID string           `json:"projectId"`
	Tickets   []TicketResponse `json:"tickets"`
}
