package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/metrics"
	"community-board-api/internal/repository"
	"community-board-api/internal/response"
)

// UserService defines the interface for user registration and lookup
type UserService interface {
	CreateUser(ctx context.Context, req *dto.UserCreateRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo repository.UserRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, m *metrics.Metrics, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		metrics:  m,
		logger:   logger,
	}
}

// CreateUser registers a user after checking username and email uniqueness
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.UserCreateRequest) (*dto.UserResponse, error) {
	if !req.Role.IsValid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid role", "role="+string(req.Role))
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	}
	if taken {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already in use", "username="+req.Username)
	}

	taken, err = s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}
	if taken {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email already in use", "email="+req.Email)
	}

	user := &domain.User{
		Username: req.Username,
		Nickname: req.Nickname,
		Email:    req.Email,
		Role:     req.Role,
		Enabled:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementUserCreated()
	}
	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return s.toUserResponse(user), nil
}

// GetUser retrieves a user by id
func (s *userServiceImpl) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return s.toUserResponse(user), nil
}

// toUserResponse converts domain.User to dto.UserResponse
func (s *userServiceImpl) toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Role:      user.Role,
		Enabled:   user.Enabled,
		CreatedAt: user.CreatedAt,
	}
}
