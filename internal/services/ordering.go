package services

import "context"

// Position maintenance for the two ordered collections: columns within a
// project and tickets within a column. Creation always appends; only tickets
// can be relocated afterwards.

// nextColumnPosition returns the append position for a new column: the
// current count of columns in the project.
func nextColumnPosition(ctx context.Context, columns ColumnStore, projectID string) (int, error) {
	count, err := columns.CountByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// nextTicketPosition returns the append position for a new ticket: one past
// the highest position in the column, or 0 when the column is empty.
func nextTicketPosition(ctx context.Context, tickets TicketStore, columnID string) (int, error) {
	max, err := tickets.MaxPositionInColumn(ctx, columnID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// shiftForInsert makes room at position in the target column by incrementing
// every ticket at or after it, skipping the moving ticket itself.
//
// The shift is one-directional. A same-column move to an earlier position
// never decrements the tickets between the old and new slot, and the moving
// ticket's old position is left as a gap: it is excluded by identity, not by
// position. Each sibling update is an independent persisted write.
func shiftForInsert(ctx context.Context, tickets TicketStore, columnID, movingID string, position int) error {
	siblings, err := tickets.FindByColumn(ctx, columnID)
	if err != nil {
		return err
	}

	for _, t := range siblings {
		if t.ID == movingID || t.Position < position {
			continue
		}
		if err := tickets.UpdatePosition(ctx, t.ID, t.Position+1); err != nil {
			return err
		}
	}
	return nil
}
