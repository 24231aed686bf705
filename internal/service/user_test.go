package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GunarsK-portfolio/user-service/internal/models"
	"github.com/GunarsK-portfolio/user-service/internal/repository"
)

func strPtr(s string) *string { return &s }

func rolePtr(r models.Role) *models.Role { return &r }

// =============================================================================
// Register / AdminCreate Tests
// =============================================================================

func TestRegister_StoresHashedPasswordAndUserRole(t *testing.T) {
	var created *models.User
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	userService := NewUserService(repo)

	user, err := userService.Register(context.Background(), "Taro", "taro@example.com", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if user.ID != 1 {
		t.Errorf("ID = %d, want 1", user.ID)
	}
	if created.Role != models.RoleUser {
		t.Errorf("stored role = %q, want %q", created.Role, models.RoleUser)
	}
	if !created.Active {
		t.Error("stored account is not active")
	}
	if created.PasswordHash == "password123" || created.PasswordHash == "" {
		t.Error("password was not hashed before storage")
	}
	if !VerifyPassword("password123", created.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) error {
			return repository.ErrDuplicateEmail
		},
	}
	userService := NewUserService(repo)

	_, err := userService.Register(context.Background(), "Taro", "taken@example.com", "password123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() error = %v, want %v", err, ErrEmailTaken)
	}
}

func TestAdminCreate(t *testing.T) {
	tests := []struct {
		name    string
		actor   *models.User
		wantErr error
	}{
		{name: "admin actor", actor: testActor(1, models.RoleAdmin), wantErr: nil},
		{name: "non-admin actor", actor: testActor(5, models.RoleUser), wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *models.User
			repo := &mockUserRepository{
				createFunc: func(ctx context.Context, user *models.User) error {
					user.ID = 9
					created = user
					return nil
				},
			}
			userService := NewUserService(repo)

			_, err := userService.AdminCreate(context.Background(), tt.actor, "New", "new@example.com", "password123")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AdminCreate() error = %v, want %v", err, tt.wantErr)
			}
			// Provisioned accounts are never created with elevated roles.
			if tt.wantErr == nil && created.Role != models.RoleUser {
				t.Errorf("stored role = %q, want %q", created.Role, models.RoleUser)
			}
		})
	}
}

// =============================================================================
// Get / List Tests
// =============================================================================

func TestGet(t *testing.T) {
	target := &models.User{ID: 7, Name: "Target", Email: "target@example.com", Role: models.RoleUser, Active: true}

	tests := []struct {
		name    string
		actor   *models.User
		id      int64
		found   bool
		wantErr error
	}{
		{name: "own profile", actor: testActor(7, models.RoleUser), id: 7, found: true, wantErr: nil},
		{name: "admin reads any", actor: testActor(1, models.RoleAdmin), id: 7, found: true, wantErr: nil},
		{name: "user reads other", actor: testActor(5, models.RoleUser), id: 7, found: true, wantErr: ErrForbidden},
		// Not-found wins over forbidden: existence is checked first.
		{name: "user reads missing", actor: testActor(5, models.RoleUser), id: 99, found: false, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
					if tt.found && id == target.ID {
						return target, nil
					}
					return nil, repository.ErrNotFound
				},
			}
			userService := NewUserService(repo)

			_, err := userService.Get(context.Background(), tt.actor, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestList(t *testing.T) {
	repo := &mockUserRepository{
		findAllFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1}, {ID: 2}}, nil
		},
	}
	userService := NewUserService(repo)

	users, err := userService.List(context.Background(), testActor(1, models.RoleAdmin))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("List() returned %d users, want 2", len(users))
	}

	if _, err := userService.List(context.Background(), testActor(5, models.RoleUser)); !errors.Is(err, ErrForbidden) {
		t.Errorf("List() error = %v, want %v", err, ErrForbidden)
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUpdate_ProfileFields(t *testing.T) {
	target := &models.User{ID: 5, Name: "Old", Email: "old@example.com", PasswordHash: "old-hash", Role: models.RoleUser, Active: true}
	var saved *models.User
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return target, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			saved = user
			return nil
		},
	}
	userService := NewUserService(repo)

	updated, err := userService.Update(context.Background(), testActor(5, models.RoleUser), 5, UpdateUserRequest{
		Name:     strPtr("New Name"),
		Email:    strPtr("new@example.com"),
		Password: strPtr("new-password"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "New Name" || updated.Email != "new@example.com" {
		t.Errorf("Update() = %+v, fields not applied", updated)
	}
	if saved.PasswordHash == "old-hash" {
		t.Error("password hash unchanged")
	}
	if !VerifyPassword("new-password", saved.PasswordHash) {
		t.Error("new password does not verify against stored hash")
	}
	if saved.Role != models.RoleUser {
		t.Errorf("role = %q, changed without a role update", saved.Role)
	}
}

func TestUpdate_RoleChange(t *testing.T) {
	tests := []struct {
		name     string
		actor    *models.User
		role     models.Role
		wantErr  error
		wantRole models.Role
	}{
		{name: "admin promotes user", actor: testActor(1, models.RoleAdmin), role: models.RoleAdmin, wantErr: nil, wantRole: models.RoleAdmin},
		{name: "non-admin sets role", actor: testActor(5, models.RoleUser), role: models.RoleAdmin, wantErr: ErrForbidden},
		// Forbidden even when the submitted role equals the current value.
		{name: "non-admin sets unchanged role", actor: testActor(5, models.RoleUser), role: models.RoleUser, wantErr: ErrForbidden},
		{name: "admin sets unknown role", actor: testActor(1, models.RoleAdmin), role: models.Role("superuser"), wantErr: ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &models.User{ID: 5, Name: "Target", Email: "t@example.com", Role: models.RoleUser, Active: true}
			var saved *models.User
			repo := &mockUserRepository{
				findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
					return target, nil
				},
				updateFunc: func(ctx context.Context, user *models.User) error {
					saved = user
					return nil
				},
			}
			userService := NewUserService(repo)

			_, err := userService.Update(context.Background(), tt.actor, 5, UpdateUserRequest{Role: rolePtr(tt.role)})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && saved != nil {
				t.Error("Update() persisted changes despite rejection")
			}
			if tt.wantErr == nil && saved.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", saved.Role, tt.wantRole)
			}
		})
	}
}

func TestUpdate_NotFoundBeforePermission(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, repository.ErrNotFound
		},
	}
	userService := NewUserService(repo)

	_, err := userService.Update(context.Background(), testActor(5, models.RoleUser), 99, UpdateUserRequest{Name: strPtr("x")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrUserNotFound)
	}
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	target := &models.User{ID: 5, Email: "old@example.com", Role: models.RoleUser, Active: true}
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return target, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			return repository.ErrDuplicateEmail
		},
	}
	userService := NewUserService(repo)

	_, err := userService.Update(context.Background(), testActor(5, models.RoleUser), 5, UpdateUserRequest{Email: strPtr("taken@example.com")})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Update() error = %v, want %v", err, ErrEmailTaken)
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		actor      *models.User
		id         int64
		found      bool
		wantErr    error
		wantDelete bool
	}{
		{name: "admin deletes other", actor: testActor(1, models.RoleAdmin), id: 7, found: true, wantErr: nil, wantDelete: true},
		{name: "non-admin", actor: testActor(5, models.RoleUser), id: 7, found: true, wantErr: ErrForbidden},
		// The self-delete rule fires before the target lookup.
		{name: "admin deletes self", actor: testActor(1, models.RoleAdmin), id: 1, found: true, wantErr: ErrSelfDelete},
		{name: "missing target", actor: testActor(1, models.RoleAdmin), id: 99, found: false, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			repo := &mockUserRepository{
				findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
					if tt.found && id == tt.id {
						return &models.User{ID: id, Role: models.RoleUser, Active: true}, nil
					}
					return nil, repository.ErrNotFound
				},
				deleteFunc: func(ctx context.Context, user *models.User) error {
					deleted = true
					return nil
				},
			}
			userService := NewUserService(repo)

			err := userService.Delete(context.Background(), tt.actor, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}
			if deleted != tt.wantDelete {
				t.Errorf("deleted = %v, want %v", deleted, tt.wantDelete)
			}
		})
	}
}
