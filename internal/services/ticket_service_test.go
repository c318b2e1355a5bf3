package services

import (
	"context"
	"errors"
	"testing"

	"issueboard-be/internal/models"
)

func TestTicketCreateAppendsToColumn(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	first, err := fx.ticketSvc.Create(ctx, models.TicketCreateRequest{
		Title:     "first",
		ProjectID: project.ID,
		ColumnID:  column.ID,
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.Position != 0 {
		t.Errorf("first position = %d, want 0", first.Position)
	}

	second, err := fx.ticketSvc.Create(ctx, models.TicketCreateRequest{
		Title:     "second",
		ProjectID: project.ID,
		ColumnID:  column.ID,
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Position != 1 {
		t.Errorf("second position = %d, want 1", second.Position)
	}
}

func TestTicketCreateDefaults(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	resp, err := fx.ticketSvc.Create(ctx, models.TicketCreateRequest{
		Title:     "plain",
		ProjectID: project.ID,
		ColumnID:  column.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want %q", resp.Priority, models.PriorityMedium)
	}
	if resp.Type != models.TypeTask {
		t.Errorf("type = %q, want %q", resp.Type, models.TypeTask)
	}

	prio := models.PriorityCritical
	typ := models.TypeBug
	resp, err = fx.ticketSvc.Create(ctx, models.TicketCreateRequest{
		Title:     "urgent",
		Priority:  &prio,
		Type:      &typ,
		ProjectID: project.ID,
		ColumnID:  column.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Priority != models.PriorityCritical || resp.Type != models.TypeBug {
		t.Errorf("got %s/%s, want CRITICAL/BUG", resp.Priority, resp.Type)
	}
}

func TestTicketCreateParsesDueDate(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	resp, err := fx.ticketSvc.Create(ctx, models.TicketCreateRequest{
		Title:     "dated",
		DueDate:   strptr("2026-03-15"),
		ProjectID: project.ID,
		ColumnID:  column.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.DueDate == nil {
		t.Fatal("due date not set")
	}
	if got := resp.DueDate.Format("2006-01-02"); got != "2026-03-15" {
		t.Errorf("due date = %s, want 2026-03-15", got)
	}
}

func TestTicketCreateMissingReferences(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	tests := []struct {
		name     string
		req      models.TicketCreateRequest
		resource string
	}{
		{
			name:     "unknown project",
			req:      models.TicketCreateRequest{Title: "x", ProjectID: "nope", ColumnID: column.ID},
			resource: "Project",
		},
		{
			name:     "unknown column",
			req:      models.TicketCreateRequest{Title: "x", ProjectID: project.ID, ColumnID: "nope"},
			resource: "Column",
		},
		{
			name:     "unknown assignee",
			req:      models.TicketCreateRequest{Title: "x", ProjectID: project.ID, ColumnID: column.ID, AssigneeID: strptr("nope")},
			resource: "User",
		},
		{
			name:     "unknown reporter",
			req:      models.TicketCreateRequest{Title: "x", ProjectID: project.ID, ColumnID: column.ID, ReporterID: strptr("nope")},
			resource: "User",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.ticketSvc.Create(ctx, tc.req)
			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("err = %v, want NotFoundError", err)
			}
			if nf.Resource != tc.resource {
				t.Errorf("resource = %q, want %q", nf.Resource, tc.resource)
			}
		})
	}
}

func TestTicketMoveForwardInSameColumn(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	a := fx.seedTicket(t, project.ID, column.ID, "a", 0)
	b := fx.seedTicket(t, project.ID, column.ID, "b", 1)
	c := fx.seedTicket(t, project.ID, column.ID, "c", 2)

	moved, err := fx.ticketSvc.Move(ctx, a.ID, models.TicketMoveRequest{
		ColumnID: column.ID,
		Position: intptr(2),
	})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.Position != 2 {
		t.Errorf("moved position = %d, want 2", moved.Position)
	}

	// Only c sat at or after the target slot, so only c shifts. b stays at 1
	// and position 0 is left as a gap.
	assertPosition(t, fx, a.ID, 2)
	assertPosition(t, fx, b.ID, 1)
	assertPosition(t, fx, c.ID, 3)
}

func TestTicketMoveBackwardInSameColumn(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	a := fx.seedTicket(t, project.ID, column.ID, "a", 0)
	b := fx.seedTicket(t, project.ID, column.ID, "b", 1)
	c := fx.seedTicket(t, project.ID, column.ID, "c", 2)

	if _, err := fx.ticketSvc.Move(ctx, c.ID, models.TicketMoveRequest{
		ColumnID: column.ID,
		Position: intptr(0),
	}); err != nil {
		t.Fatalf("move: %v", err)
	}

	// Everything at or after position 0 shifts up; nothing is ever shifted
	// down to close c's old slot.
	assertPosition(t, fx, c.ID, 0)
	assertPosition(t, fx, a.ID, 1)
	assertPosition(t, fx, b.ID, 2)
}

func TestTicketMoveAcrossColumns(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	todo := fx.seedColumn(t, project.ID, "To Do", 0)
	done := fx.seedColumn(t, project.ID, "Done", 1)

	a := fx.seedTicket(t, project.ID, todo.ID, "a", 0)
	b := fx.seedTicket(t, project.ID, todo.ID, "b", 1)
	x := fx.seedTicket(t, project.ID, done.ID, "x", 0)
	y := fx.seedTicket(t, project.ID, done.ID, "y", 1)

	moved, err := fx.ticketSvc.Move(ctx, b.ID, models.TicketMoveRequest{
		ColumnID: done.ID,
		Position: intptr(0),
	})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.ColumnID != done.ID || moved.Position != 0 {
		t.Errorf("moved to %s@%d, want %s@0", moved.ColumnID, moved.Position, done.ID)
	}

	// Target column siblings shift; the source column keeps b's old slot as
	// a gap.
	assertPosition(t, fx, x.ID, 1)
	assertPosition(t, fx, y.ID, 2)
	assertPosition(t, fx, a.ID, 0)
}

func TestTicketMovePastEndLeavesGap(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	todo := fx.seedColumn(t, project.ID, "To Do", 0)
	done := fx.seedColumn(t, project.ID, "Done", 1)

	a := fx.seedTicket(t, project.ID, todo.ID, "a", 0)
	x := fx.seedTicket(t, project.ID, done.ID, "x", 0)

	moved, err := fx.ticketSvc.Move(ctx, a.ID, models.TicketMoveRequest{
		ColumnID: done.ID,
		Position: intptr(5),
	})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.Position != 5 {
		t.Errorf("position = %d, want 5 as supplied", moved.Position)
	}
	assertPosition(t, fx, x.ID, 0)
}

func TestTicketMoveUnknownTargets(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	a := fx.seedTicket(t, project.ID, column.ID, "a", 0)

	var nf *NotFoundError
	_, err := fx.ticketSvc.Move(ctx, "nope", models.TicketMoveRequest{ColumnID: column.ID, Position: intptr(0)})
	if !errors.As(err, &nf) || nf.Resource != "Ticket" {
		t.Errorf("unknown ticket: err = %v, want Ticket NotFoundError", err)
	}

	_, err = fx.ticketSvc.Move(ctx, a.ID, models.TicketMoveRequest{ColumnID: "nope", Position: intptr(0)})
	if !errors.As(err, &nf) || nf.Resource != "Column" {
		t.Errorf("unknown column: err = %v, want Column NotFoundError", err)
	}
}

func TestTicketUpdateReplacesFields(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	ticket := fx.seedTicket(t, project.ID, column.ID, "before", 0)
	ticket.StoryPoints = intptr(5)
	if err := fx.tickets.Update(ctx, ticket); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	resp, err := fx.ticketSvc.Update(ctx, ticket.ID, models.TicketUpdateRequest{
		Title:       "after",
		Description: "new text",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Title != "after" || resp.Description != "new text" {
		t.Errorf("got %q/%q", resp.Title, resp.Description)
	}
	// Story points travel with the full field set; absent means cleared.
	if resp.StoryPoints != nil {
		t.Errorf("story points = %v, want cleared", *resp.StoryPoints)
	}
	// Priority and type were not supplied and keep their values.
	if resp.Priority != models.PriorityMedium || resp.Type != models.TypeTask {
		t.Errorf("got %s/%s, want MEDIUM/TASK preserved", resp.Priority, resp.Type)
	}
}

func TestTicketUpdatePriorityOnlyWhenSupplied(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	ticket := fx.seedTicket(t, project.ID, column.ID, "t", 0)

	prio := models.PriorityHigh
	resp, err := fx.ticketSvc.Update(ctx, ticket.ID, models.TicketUpdateRequest{
		Title:    "t",
		Priority: &prio,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Priority != models.PriorityHigh {
		t.Errorf("priority = %s, want HIGH", resp.Priority)
	}

	resp, err = fx.ticketSvc.Update(ctx, ticket.ID, models.TicketUpdateRequest{Title: "t"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Priority != models.PriorityHigh {
		t.Errorf("priority = %s, want HIGH kept when absent", resp.Priority)
	}
}

func TestTicketUpdateAssigneeClearsReporterKeeps(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	alice := fx.seedUser(t, "alice")
	bob := fx.seedUser(t, "bob")

	ticket := fx.seedTicket(t, project.ID, column.ID, "t", 0)
	ticket.AssigneeID = alice.ID
	ticket.ReporterID = bob.ID
	if err := fx.tickets.Update(ctx, ticket); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	resp, err := fx.ticketSvc.Update(ctx, ticket.ID, models.TicketUpdateRequest{Title: "t"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Assignee != nil {
		t.Errorf("assignee = %v, want cleared when absent", resp.Assignee)
	}
	if resp.Reporter == nil || resp.Reporter.ID != bob.ID {
		t.Errorf("reporter = %v, want %s kept when absent", resp.Reporter, bob.ID)
	}
}

func TestTicketUpdateColumnSwapDoesNotShift(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	todo := fx.seedColumn(t, project.ID, "To Do", 0)
	done := fx.seedColumn(t, project.ID, "Done", 1)

	a := fx.seedTicket(t, project.ID, todo.ID, "a", 0)
	x := fx.seedTicket(t, project.ID, done.ID, "x", 0)

	resp, err := fx.ticketSvc.Update(ctx, a.ID, models.TicketUpdateRequest{
		Title:    "a",
		ColumnID: &done.ID,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.ColumnID != done.ID {
		t.Errorf("column = %s, want %s", resp.ColumnID, done.ID)
	}
	// The reference swaps but nobody's position changes, even though a and x
	// now collide at 0.
	assertPosition(t, fx, a.ID, 0)
	assertPosition(t, fx, x.ID, 0)
}

func TestTicketDeleteCascadesCommentsOnly(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	author := fx.seedUser(t, "alice")

	a := fx.seedTicket(t, project.ID, column.ID, "a", 0)
	b := fx.seedTicket(t, project.ID, column.ID, "b", 1)
	c := fx.seedTicket(t, project.ID, column.ID, "c", 2)

	if _, err := fx.commentSvc.Create(ctx, b.ID, models.CommentCreateRequest{Content: "note", AuthorID: author.ID}); err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	if err := fx.ticketSvc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	comments, err := fx.comments.FindByTicket(ctx, b.ID)
	if err != nil {
		t.Fatalf("find comments: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comments remaining = %d, want 0", len(comments))
	}

	// Sibling positions are not compacted.
	assertPosition(t, fx, a.ID, 0)
	assertPosition(t, fx, c.ID, 2)
}

func TestTicketFindByProjectOrdersByBoard(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	todo := fx.seedColumn(t, project.ID, "To Do", 0)
	done := fx.seedColumn(t, project.ID, "Done", 1)

	fx.seedTicket(t, project.ID, done.ID, "d1", 0)
	fx.seedTicket(t, project.ID, todo.ID, "t2", 1)
	fx.seedTicket(t, project.ID, todo.ID, "t1", 0)

	got, err := fx.ticketSvc.FindByProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	titles := make([]string, len(got))
	for i, r := range got {
		titles[i] = r.Title
	}
	want := []string{"t1", "t2", "d1"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}
}

func TestTicketResponseEnrichment(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	alice := fx.seedUser(t, "alice")

	ticket := fx.seedTicket(t, project.ID, column.ID, "t", 0)
	ticket.AssigneeID = alice.ID
	if err := fx.tickets.Update(ctx, ticket); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	resp, err := fx.ticketSvc.FindByID(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if resp.ProjectKey != "DEMO" {
		t.Errorf("project key = %q, want DEMO", resp.ProjectKey)
	}
	if resp.ColumnName != "To Do" {
		t.Errorf("column name = %q, want To Do", resp.ColumnName)
	}
	if resp.Assignee == nil || resp.Assignee.Username != "alice" {
		t.Errorf("assignee = %v, want alice embedded", resp.Assignee)
	}
	if resp.Reporter != nil {
		t.Errorf("reporter = %v, want nil", resp.Reporter)
	}
}

func TestTicketResponseToleratesDanglingReferences(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)
	alice := fx.seedUser(t, "alice")

	ticket := fx.seedTicket(t, project.ID, column.ID, "t", 0)
	ticket.AssigneeID = alice.ID
	if err := fx.tickets.Update(ctx, ticket); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	if err := fx.users.Delete(ctx, alice.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if err := fx.columns.Delete(ctx, column.ID); err != nil {
		t.Fatalf("delete column: %v", err)
	}

	resp, err := fx.ticketSvc.FindByID(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if resp.Assignee != nil {
		t.Errorf("assignee = %v, want nil for deleted user", resp.Assignee)
	}
	if resp.ColumnName != "" {
		t.Errorf("column name = %q, want empty for deleted column", resp.ColumnName)
	}
}

func TestTicketSearch(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	fx.seedTicket(t, project.ID, column.ID, "Café login crash", 0)
	fx.seedTicket(t, project.ID, column.ID, "Update readme", 1)

	results, err := fx.ticketSvc.Search(ctx, project.ID, "cafe login", 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Title != "Café login crash" {
		t.Errorf("match = %q", results[0].Title)
	}
}

func TestTicketSearchLimit(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()
	project := fx.seedProject(t, "Demo", "DEMO")
	column := fx.seedColumn(t, project.ID, "To Do", 0)

	fx.seedTicket(t, project.ID, column.ID, "task one", 0)
	fx.seedTicket(t, project.ID, column.ID, "task two", 1)
	fx.seedTicket(t, project.ID, column.ID, "task three", 2)

	results, err := fx.ticketSvc.Search(ctx, project.ID, "task", 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("results = %d, want 2", len(results))
	}
}
