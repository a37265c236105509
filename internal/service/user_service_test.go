package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/response"
)

func newTestUserService(userRepo *MockUserRepository) UserService {
	logger, _ := zap.NewDevelopment()
	return NewUserService(userRepo, nil, logger)
}

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		req           *dto.UserCreateRequest
		usernameTaken bool
		emailTaken    bool
		wantErr       bool
		wantErrCode   string
	}{
		{
			name: "성공: 일반 사용자 등록",
			req:  &dto.UserCreateRequest{Username: "hong", Nickname: "홍길동", Email: "hong@example.com", Role: domain.RoleGeneral},
		},
		{
			name: "성공: 관리자 등록",
			req:  &dto.UserCreateRequest{Username: "admin", Nickname: "관리자", Email: "admin@example.com", Role: domain.RoleAdmin},
		},
		{
			name:        "실패: 알 수 없는 역할",
			req:         &dto.UserCreateRequest{Username: "x", Nickname: "x", Email: "x@example.com", Role: "SUPERUSER"},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:          "실패: 이미 사용 중인 username",
			req:           &dto.UserCreateRequest{Username: "hong", Nickname: "홍길동", Email: "new@example.com", Role: domain.RoleGeneral},
			usernameTaken: true,
			wantErr:       true,
			wantErrCode:   response.ErrCodeAlreadyExists,
		},
		{
			name:        "실패: 이미 사용 중인 email",
			req:         &dto.UserCreateRequest{Username: "new", Nickname: "신규", Email: "hong@example.com", Role: domain.RoleGeneral},
			emailTaken:  true,
			wantErr:     true,
			wantErrCode: response.ErrCodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			mockUserRepo := &MockUserRepository{
				ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
					return tt.usernameTaken, nil
				},
				ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
					return tt.emailTaken, nil
				},
				CreateFunc: func(ctx context.Context, user *domain.User) error {
					created = true
					user.ID = 1
					return nil
				},
			}
			svc := newTestUserService(mockUserRepo)

			got, err := svc.CreateUser(context.Background(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				appErr, ok := err.(*response.AppError)
				if !ok {
					t.Fatalf("Expected AppError, got %T", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Errorf("Expected error code %s, got %s", tt.wantErrCode, appErr.Code)
				}
				if created {
					t.Error("User must not be persisted when registration fails")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.ID != 1 {
				t.Errorf("Expected user id 1, got %d", got.ID)
			}
			if !got.Enabled {
				t.Error("Expected new user to be enabled")
			}
			if got.Role != tt.req.Role {
				t.Errorf("Expected role %s, got %s", tt.req.Role, got.Role)
			}
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("성공: 조회", func(t *testing.T) {
		mockUserRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return testUser(id, domain.RoleCompany), nil
			},
		}
		svc := newTestUserService(mockUserRepo)

		got, err := svc.GetUser(context.Background(), 3)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.ID != 3 || got.Role != domain.RoleCompany {
			t.Errorf("Expected user 3 with role COMPANY, got id=%d role=%s", got.ID, got.Role)
		}
	})

	t.Run("실패: 사용자가 존재하지 않음", func(t *testing.T) {
		mockUserRepo := &MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newTestUserService(mockUserRepo)

		_, err := svc.GetUser(context.Background(), 404)
		appErr, ok := err.(*response.AppError)
		if !ok {
			t.Fatalf("Expected AppError, got %T", err)
		}
		if appErr.Code != response.ErrCodeNotFound {
			t.Errorf("Expected error code %s, got %s", response.ErrCodeNotFound, appErr.Code)
		}
	})
}
