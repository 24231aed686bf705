package service

import (
	"context"
	"errors"

	"github.com/GunarsK-portfolio/user-service/internal/models"
	"github.com/GunarsK-portfolio/user-service/internal/repository"
)

// UpdateUserRequest carries the optional fields of a user update. Nil
// pointers mean "leave unchanged".
type UpdateUserRequest struct {
	Name     *string
	Email    *string
	Password *string
	Role     *models.Role
}

// UserService implements the account CRUD operations, consulting Policy
// before every privileged action.
type UserService interface {
	// Register creates an account without prior authentication. The stored
	// role is always "user".
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	// AdminCreate lets an admin provision an account. The stored role is
	// still "user"; roles are only assigned via Update.
	AdminCreate(ctx context.Context, actor *models.User, name, email, password string) (*models.User, error)
	Get(ctx context.Context, actor *models.User, id int64) (*models.User, error)
	List(ctx context.Context, actor *models.User) ([]models.User, error)
	Update(ctx context.Context, actor *models.User, id int64, req UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	policy   Policy
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return s.create(ctx, name, email, password)
}

func (s *userService) AdminCreate(ctx context.Context, actor *models.User, name, email, password string) (*models.User, error) {
	if err := s.policy.CanProvision(actor); err != nil {
		return nil, err
	}
	return s.create(ctx, name, email, password)
}

func (s *userService) create(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         s.policy.RegistrationRole(),
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, actor *models.User, id int64) (*models.User, error) {
	// Existence is checked before permissions, matching the response
	// contract: a missing target is 404 even for actors who could not have
	// viewed it.
	target, err := s.findTarget(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanView(actor, target.ID); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *userService) List(ctx context.Context, actor *models.User) ([]models.User, error) {
	if err := s.policy.CanList(actor); err != nil {
		return nil, err
	}
	return s.userRepo.FindAll(ctx)
}

func (s *userService) Update(ctx context.Context, actor *models.User, id int64, req UpdateUserRequest) (*models.User, error) {
	target, err := s.findTarget(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanUpdateProfile(actor, target.ID); err != nil {
		return nil, err
	}
	// The role check runs before any mutation and fires even when the
	// submitted role equals the current one.
	if req.Role != nil {
		if err := s.policy.CanChangeRole(actor); err != nil {
			return nil, err
		}
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Email != nil {
		target.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		target.PasswordHash = hash
	}
	if req.Role != nil {
		target.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, target); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return target, nil
}

func (s *userService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if err := s.policy.CanDelete(actor, id); err != nil {
		return err
	}

	target, err := s.findTarget(ctx, id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, target)
}

func (s *userService) findTarget(ctx context.Context, id int64) (*models.User, error) {
	target, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return target, nil
}
