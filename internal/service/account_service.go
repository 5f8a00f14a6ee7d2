// Package service contains business logic that spans repositories.
package service

import (
	"context"

	"inkspot/internal/models"
	"inkspot/internal/repository"
	"inkspot/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles operations on the caller's own account.
type AccountService struct {
	userRepo repository.UserRepository
}

// UpdateAccountInput is a sparse patch. Nil means "leave unchanged", so a
// present empty name clears the field instead of being ignored.
type UpdateAccountInput struct {
	UserID   uint
	Name     *string
	Email    *string
	Password *string
}

// NewAccountService returns a new AccountService.
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// GetUser returns the user record for the given id.
func (s *AccountService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateAccount applies a sparse patch to the caller's own record. A new
// email is re-checked for uniqueness against other users; a new password is
// hashed before storage.
func (s *AccountService) UpdateAccount(ctx context.Context, in UpdateAccountInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}

	if in.Email != nil && *in.Email != user.Email {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != in.UserID {
			return nil, models.NewValidationError("Email already in use")
		}
		user.Email = *in.Email
	}

	if in.Password != nil {
		if *in.Password == "" {
			return nil, models.NewValidationError("Password cannot be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the caller's record. Dependent records are removed
// by the schema's cascading foreign keys.
func (s *AccountService) DeleteAccount(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
