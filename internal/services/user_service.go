package services

import (
	"context"
	"errors"

	"issueboard-be/internal/models"
	"issueboard-be/internal/repository"
)

// UserService handles user CRUD. Users are weakly referenced by tickets and
// comments; deleting a referenced user is not guarded against.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.UserResponse, len(users))
	for i := range users {
		responses[i] = *userResponse(&users[i])
	}
	return responses, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

func (s *UserService) Create(ctx context.Context, req models.UserCreateRequest) (*models.UserResponse, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "username already taken"}
	}

	registered, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, &ConflictError{Message: "email already registered"}
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

func (s *UserService) Update(ctx context.Context, id string, req models.UserUpdateRequest) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.DisplayName = req.DisplayName
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	} else {
		user.AvatarURL = ""
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.getUser(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) getUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "User", ID: id}
		}
		return nil, err
	}
	return user, nil
}

// userResponse shapes a user for the client. A nil user maps to nil so that
// unset assignee/reporter references project cleanly.
func userResponse(user *models.User) *models.UserResponse {
	if user == nil {
		return nil
	}
	return &models.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
	}
}
