package service

import (
	"errors"

	"studyshare_backend/internal/config"
	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// TokenResponse is the wire shape returned by register and login.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"`
	User        *model.User `json:"user"`
}

func (s *AuthService) Register(email, password, name string, role model.UserRole) (*TokenResponse, error) {
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

	return s.issueToken(user)
}

func (s *AuthService) Login(email, password string) (*TokenResponse, error) {
	normalized, ok := util.NormalizeEmail(email)
	if !ok {
		return nil, util.ErrInvalidCredentials
	}

	user, err := s.UserRepo.FindByEmail(normalized)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (*TokenResponse, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.Cfg.JWT.ExpireTime.Seconds()),
		User:        user,
	}, nil
}

// GetCurrentUser resolves the profile behind already-verified claims.
func (s *AuthService) GetCurrentUser(claims *util.Claims) (*model.User, error) {
	if claims == nil {
		return nil, util.ErrUserNotFound
	}
	return s.UserRepo.FindByID(claims.UserID)
}

func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	if err := util.CheckPasswordPolicy(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.UpdatePassword(userID, string(hashed))
}
