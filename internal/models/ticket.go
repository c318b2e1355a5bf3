package models

import "time"

// Priority is the ticket priority level.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// TicketType classifies a ticket.
type TicketType string

const (
	TypeStory   TicketType = "STORY"
	TypeBug     TicketType = "BUG"
	TypeTask    TicketType = "TASK"
	TypeEpic    TicketType = "EPIC"
	TypeSubtask TicketType = "SUBTASK"
)

// Ticket is a work item. It belongs to exactly one project and one column;
// Position orders it within its column. Assignee and reporter are weak user
// references and may point at users that no longer exist.
type Ticket struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Priority    Priority   `json:"priority" bson:"priority"`
	Type        TicketType `json:"ticketType" bson:"ticketType"`
	Position    int        `json:"position" bson:"position"`
	StoryPoints *int       `json:"storyPoints,omitempty" bson:"storyPoints,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	ProjectID   string     `json:"projectId" bson:"projectId"`
	ColumnID    string     `json:"columnId" bson:"columnId"`
	AssigneeID  string     `json:"assigneeId,omitempty" bson:"assigneeId,omitempty"`
	ReporterID  string     `json:"reporterId,omitempty" bson:"reporterId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// TicketCreateRequest is the payload for creating a ticket. Priority and
// type fall back to MEDIUM/TASK when absent. DueDate uses the 2006-01-02
// date format.
type TicketCreateRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=200"`
	Description string      `json:"description"`
	Priority    *Priority   `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Type        *TicketType `json:"ticketType" binding:"omitempty,oneof=STORY BUG TASK EPIC SUBTASK"`
	StoryPoints *int        `json:"storyPoints"`
	DueDate     *string     `json:"dueDate"`
	ProjectID   string      `json:"projectId" binding:"required"`
	ColumnID    string      `json:"columnId" binding:"required"`
	AssigneeID  *string     `json:"assigneeId"`
	ReporterID  *string     `json:"reporterId"`
}

// TicketUpdateRequest carries the full ticket field set for update. Pointer
// fields distinguish "supplied" from "absent": priority and type are only
// overwritten when supplied, an absent assigneeId clears the assignee while
// an absent reporterId leaves the reporter unchanged.
type TicketUpdateRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=200"`
	Description string      `json:"description"`
	Priority    *Priority   `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Type        *TicketType `json:"ticketType" binding:"omitempty,oneof=STORY BUG TASK EPIC SUBTASK"`
	StoryPoints *int        `json:"storyPoints"`
	DueDate     *string     `json:"dueDate"`
	ColumnID    *string     `json:"columnId"`
	AssigneeID  *string     `json:"assigneeId"`
	ReporterID  *string     `json:"reporterId"`
}

// TicketMoveRequest relocates a ticket to a column at a given position.
// Position is a pointer so that 0 survives the required check.
type TicketMoveRequest struct {
	ColumnID string `json:"columnId" binding:"required"`
	Position *int   `json:"position" binding:"required,min=0"`
}

// TicketResponse is the client-facing shape, enriched with the project key,
// column name and embedded assignee/reporter users.
type TicketResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Priority    Priority      `json:"priority"`
	Type        TicketType    `json:"ticketType"`
	Position    int           `json:"position"`
	StoryPoints *int          `json:"storyPoints,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	ProjectID   string        `json:"projectId"`
	ProjectKey  string        `json:"projectKey"`
	ColumnID    string        `json:"columnId"`
	ColumnName  string        `json:"columnName"`
	Assignee    *UserResponse `json:"assignee"`
	Reporter    *UserResponse `json:"reporter"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
