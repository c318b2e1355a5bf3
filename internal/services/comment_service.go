package services

import (
	"context"
	"errors"

	"issueboard-be/internal/models"
	"issueboard-be/internal/repository"
	"issueboard-be/internal/utils"
)

// CommentService handles the comments owned by a ticket.
type CommentService struct {
	comments CommentStore
	tickets  TicketStore
	users    UserStore
}

func NewCommentService(comments CommentStore, tickets TicketStore, users UserStore) *CommentService {
	return &CommentService{comments: comments, tickets: tickets, users: users}
}

// FindByTicket returns the ticket's comments ordered by creation time
// ascending.
func (s *CommentService) FindByTicket(ctx context.Context, ticketID string) ([]models.CommentResponse, error) {
	comments, err := s.comments.FindByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	authors := map[string]*models.User{}
	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		author, err := cached(ctx, authors, comments[i].AuthorID, s.users.FindByID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *commentResponse(&comments[i], author))
	}
	return responses, nil
}

func (s *CommentService) Create(ctx context.Context, ticketID string, req models.CommentCreateRequest) (*models.CommentResponse, error) {
	if _, err := s.tickets.FindByID(ctx, ticketID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Ticket", ID: ticketID}
		}
		return nil, err
	}

	author, err := s.users.FindByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "User", ID: req.AuthorID}
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:  utils.SanitizeHTML(req.Content),
		TicketID: ticketID,
		AuthorID: author.ID,
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}
	return commentResponse(comment, author), nil
}

func (s *CommentService) Update(ctx context.Context, id string, req models.CommentUpdateRequest) (*models.CommentResponse, error) {
	comment, err := s.getComment(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Content = utils.SanitizeHTML(req.Content)
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	// The author is a weak reference; it may be gone by now.
	author, err := cached(ctx, map[string]*models.User{}, comment.AuthorID, s.users.FindByID)
	if err != nil {
		return nil, err
	}
	return commentResponse(comment, author), nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if _, err := s.getComment(ctx, id); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id)
}

func (s *CommentService) getComment(ctx context.Context, id string) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Comment", ID: id}
		}
		return nil, err
	}
	return comment, nil
}

func commentResponse(comment *models.Comment, author *models.User) *models.CommentResponse {
	return &models.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		TicketID:  comment.TicketID,
		Author:    userResponse(author),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
