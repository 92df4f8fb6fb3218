package services

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"postable/config"
	"postable/models"
	"postable/repositories"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdatePassword(userID, password string) (*models.User, error)
	DeleteUser(userID string) error
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, cfg: cfg}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	// Duplicate checks come before the bcrypt work so a taken username
	// costs nothing and never leaves a partial record.
	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, models.DuplicateError(models.CodeUserExists, "username already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.DataStoreError("failed to look up username", err)
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.DuplicateError(models.CodeEmailExists, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.DataStoreError("failed to look up email", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, models.DataStoreError("failed to hash password", err)
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, models.DataStoreError("failed to create user", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, models.DataStoreError("failed to issue token", err)
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.AuthenticationError(models.CodeInvalidCredentials, "invalid credentials")
		}
		return nil, models.DataStoreError("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.AuthenticationError(models.CodeInvalidCredentials, "invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, models.DataStoreError("failed to issue token", err)
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError(models.CodeUserNotFound, "user not found")
		}
		return nil, models.DataStoreError("failed to load user", err)
	}
	return user, nil
}

func (s *authService) UpdatePassword(userID, password string) (*models.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, models.DataStoreError("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(userID, string(hashedPassword)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError(models.CodeUserNotFound, "user not found")
		}
		return nil, models.DataStoreError("failed to update password", err)
	}

	return s.GetUserByID(userID)
}

func (s *authService) DeleteUser(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFoundError(models.CodeUserNotFound, "user not found")
		}
		return models.DataStoreError("failed to delete user", err)
	}
	return nil
}

// validatePassword enforces the complexity policy: at least one upper,
// one lower, one digit and one special character. Length bounds are
// checked by the request schema.
func validatePassword(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return models.ValidationError("password must contain an uppercase letter, a lowercase letter, a digit and a special character")
	}
	return nil
}
