package service

import (
	"errors"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) List(role string, limit int) ([]model.User, error) {
	return s.UserRepo.FindAll(role, clampLimit(limit, util.DefaultListLimit))
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	return s.UserRepo.FindByID(id)
}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	normalized, ok := util.NormalizeEmail(email)
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return s.UserRepo.FindByEmail(normalized)
}

// Create provisions an account directly, bypassing the registration flow.
// Admin-facing; the caller picks the role.
func (s *UserService) Create(email, password, name string, role model.UserRole) (*model.User, error) {
	normalized, ok := util.NormalizeEmail(email)
	if !ok {
		return nil, util.ErrInvalidCredentials
	}
	if err := util.CheckPasswordPolicy(password); err != nil {
		return nil, err
	}

	_, err := s.UserRepo.FindByEmail(normalized)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    normalized,
		Name:     name,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserUpdate carries the mutable profile fields. Nil means "leave unchanged".
type UserUpdate struct {
	Name      *string
	AvatarURL *string
}

func (s *UserService) UpdateProfile(id string, patch UserUpdate, claims *util.Claims) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := util.RequireOwner(claims, user.ID); err != nil {
		return nil, err
	}

	if patch.Name == nil && patch.AvatarURL == nil {
		return nil, util.ErrNoFieldsToUpdate
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = *patch.AvatarURL
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > util.MaxListLimit {
		return util.MaxListLimit
	}
	return limit
}
