// internal/domain/user/service.go
package user

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles account registration and authentication
type Service struct {
	db     *gorm.DB
	jwt    *auth.JWTService
	logger *logrus.Logger
	config *config.Config
}

// NewService creates a new user service
func NewService(db *gorm.DB, jwtService *auth.JWTService, logger *logrus.Logger, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		jwt:    jwtService,
		logger: logger,
		config: cfg,
	}
}

// RegisterRequest represents account creation data
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued tokens and the account
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest represents profile changes
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Register creates a new customer account and issues tokens
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	var existing User
	if result := s.db.Where("email = ?", email).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("account with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password, s.config.Security.BcryptCost)
	if err != nil {
		return nil, err
	}

	account := User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         RoleCustomer,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.WithField("user_id", account.ID).Info("Account registered")
	return s.issueTokens(&account)
}

// Login authenticates credentials and issues tokens
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	var account User
	result := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&account)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to retrieve account: %w", result.Error)
	}

	if !auth.CheckPassword(req.Password, account.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueTokens(&account)
}

// Refresh validates a refresh token and issues a new token pair
func (s *Service) Refresh(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.GetUser(claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(account)
}

// GetUser retrieves an account by ID
func (s *Service) GetUser(id uint) (*User, error) {
	var account User
	if result := s.db.First(&account, id); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("account not found")
		}
		return nil, fmt.Errorf("failed to retrieve account: %w", result.Error)
	}
	return &account, nil
}

// UpdateProfile changes the account's name or phone
func (s *Service) UpdateProfile(id uint, req *UpdateProfileRequest) (*User, error) {
	account, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	return s.GetUser(id)
}

func (s *Service) issueTokens(account *User) (*AuthResponse, error) {
	accessToken, err := s.jwt.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
