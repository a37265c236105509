package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/domain"
	"community-board-api/internal/response"
)

func newTestLikeService(likeRepo *MockBoardLikeRepository, boardRepo *MockBoardRepository) BoardLikeService {
	logger, _ := zap.NewDevelopment()
	return NewBoardLikeService(likeRepo, boardRepo, nil, nil, logger)
}

func TestBoardLikeService_ToggleLike(t *testing.T) {
	t.Run("성공: 좋아요 추가", func(t *testing.T) {
		// Given: 아직 좋아요하지 않은 사용자
		mockBoardRepo := &MockBoardRepository{
			FindByIDFunc: func(ctx context.Context, id int64) (*domain.Board, error) {
				return testBoard(id, domain.BoardTypeFree, 1), nil
			},
		}
		var created *domain.BoardLike
		mockLikeRepo := &MockBoardLikeRepository{
			FindByBoardAndUserFunc: func(ctx context.Context, boardID int64, userIdentifier string) (*domain.BoardLike, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFunc: func(ctx context.Context, like *domain.BoardLike) error {
				created = like
				like.ID = 1
				return nil
			},
			CountByBoardIDFunc: func(ctx context.Context, boardID int64) (int64, error) {
				return 1, nil
			},
		}
		svc := newTestLikeService(mockLikeRepo, mockBoardRepo)

		// When
		got, err := svc.ToggleLike(context.Background(), 5, "user-42")

		// Then
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !got.Liked {
			t.Error("Expected liked=true after first toggle")
		}
		if got.LikeCount != 1 {
			t.Errorf("Expected like count 1, got %d", got.LikeCount)
		}
		if created == nil || created.BoardID != 5 || created.UserIdentifier != "user-42" {
			t.Errorf("Expected like row for board 5 / user-42, got %+v", created)
		}
	})

	t.Run("성공: 좋아요 취소", func(t *testing.T) {
		// Given: 이미 좋아요한 사용자
		mockBoardRepo := &MockBoardRepository{
			FindByIDFunc: func(ctx context.Context, id int64) (*domain.Board, error) {
				return testBoard(id, domain.BoardTypeFree, 1), nil
			},
		}
		var deletedID int64
		mockLikeRepo := &MockBoardLikeRepository{
			FindByBoardAndUserFunc: func(ctx context.Context, boardID int64, userIdentifier string) (*domain.BoardLike, error) {
				return &domain.BoardLike{
					BaseModel:      domain.BaseModel{ID: 33, CreatedAt: time.Now()},
					BoardID:        boardID,
					UserIdentifier: userIdentifier,
				}, nil
			},
			DeleteFunc: func(ctx context.Context, id int64) error {
				deletedID = id
				return nil
			},
			CountByBoardIDFunc: func(ctx context.Context, boardID int64) (int64, error) {
				return 0, nil
			},
		}
		svc := newTestLikeService(mockLikeRepo, mockBoardRepo)

		// When
		got, err := svc.ToggleLike(context.Background(), 5, "user-42")

		// Then
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got.Liked {
			t.Error("Expected liked=false after second toggle")
		}
		if got.LikeCount != 0 {
			t.Errorf("Expected like count 0, got %d", got.LikeCount)
		}
		if deletedID != 33 {
			t.Errorf("Expected like row 33 removed, got %d", deletedID)
		}
	})

	t.Run("실패: 게시글이 존재하지 않음", func(t *testing.T) {
		mockBoardRepo := &MockBoardRepository{
			FindByIDFunc: func(ctx context.Context, id int64) (*domain.Board, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newTestLikeService(&MockBoardLikeRepository{}, mockBoardRepo)

		_, err := svc.ToggleLike(context.Background(), 404, "user-42")
		appErr, ok := err.(*response.AppError)
		if !ok {
			t.Fatalf("Expected AppError, got %T", err)
		}
		if appErr.Code != response.ErrCodeNotFound {
			t.Errorf("Expected error code %s, got %s", response.ErrCodeNotFound, appErr.Code)
		}
	})
}

func TestBoardLikeService_GetLikeStatus(t *testing.T) {
	mockLikeRepo := &MockBoardLikeRepository{
		ExistsByBoardAndUserFunc: func(ctx context.Context, boardID int64, userIdentifier string) (bool, error) {
			return userIdentifier == "fan", nil
		},
		CountByBoardIDFunc: func(ctx context.Context, boardID int64) (int64, error) {
			return 12, nil
		},
	}
	svc := newTestLikeService(mockLikeRepo, &MockBoardRepository{})

	got, err := svc.GetLikeStatus(context.Background(), 5, "fan")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Liked || got.LikeCount != 12 {
		t.Errorf("Expected liked=true count=12, got liked=%v count=%d", got.Liked, got.LikeCount)
	}

	got, err = svc.GetLikeStatus(context.Background(), 5, "stranger")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Liked {
		t.Error("Expected liked=false for a user without a like row")
	}
}

func TestBoardLikeService_GetLikeCount(t *testing.T) {
	// 캐시가 없으면 항상 DB 집계를 사용한다
	calls := 0
	mockLikeRepo := &MockBoardLikeRepository{
		CountByBoardIDFunc: func(ctx context.Context, boardID int64) (int64, error) {
			calls++
			return 8, nil
		},
	}
	svc := newTestLikeService(mockLikeRepo, &MockBoardRepository{})

	count, err := svc.GetLikeCount(context.Background(), 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 8 {
		t.Errorf("Expected count 8, got %d", count)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one repository count call, got %d", calls)
	}
}
