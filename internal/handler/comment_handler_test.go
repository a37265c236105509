package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
)

func setupCommentRouter(svc *MockCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)

	router := gin.New()
	boards := router.Group("/api/v1/boards")
	{
		boards.POST("/:boardId/comments", h.CreateComment)
		boards.GET("/:boardId/comments", h.GetComments)
		boards.GET("/:boardId/comments/count", h.CountComments)
		boards.PUT("/:boardId/comments/:commentId", h.UpdateComment)
		boards.DELETE("/:boardId/comments/:commentId", h.DeleteComment)
	}
	return router
}

func TestCommentHandler_CreateComment(t *testing.T) {
	t.Run("성공: 루트 댓글 생성은 201", func(t *testing.T) {
		// Given
		var gotBoardID, gotAuthorID int64
		svc := &MockCommentService{
			CreateCommentFunc: func(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error) {
				gotBoardID, gotAuthorID = boardID, authorID
				return &dto.CommentResponse{ID: 1, BoardID: boardID, AuthorID: authorID, Content: req.Content, Children: []dto.CommentResponse{}}, nil
			},
		}
		router := setupCommentRouter(svc)
		body, _ := json.Marshal(dto.CommentCreateRequest{Content: "첫 댓글"})

		// When
		req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/1/comments?authorId=7", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(1), gotBoardID)
		assert.Equal(t, int64(7), gotAuthorID)
	})

	t.Run("성공: parentId를 지정하면 대댓글로 생성된다", func(t *testing.T) {
		// Given
		var gotParentID *int64
		svc := &MockCommentService{
			CreateCommentFunc: func(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error) {
				gotParentID = req.ParentID
				return &dto.CommentResponse{ID: 2, BoardID: boardID, AuthorID: authorID, Content: req.Content, ParentID: req.ParentID, Children: []dto.CommentResponse{}}, nil
			},
		}
		router := setupCommentRouter(svc)
		parentID := int64(1)
		body, _ := json.Marshal(dto.CommentCreateRequest{Content: "대댓글", ParentID: &parentID})

		// When
		req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/1/comments?authorId=7", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotNil(t, gotParentID)
		assert.Equal(t, int64(1), *gotParentID)
	})

	t.Run("실패: authorId가 없으면 400", func(t *testing.T) {
		// Given
		svc := &MockCommentService{}
		router := setupCommentRouter(svc)
		body, _ := json.Marshal(dto.CommentCreateRequest{Content: "댓글"})

		// When
		req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/1/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("실패: 빈 내용은 400", func(t *testing.T) {
		// Given
		svc := &MockCommentService{}
		router := setupCommentRouter(svc)

		// When
		req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/1/comments?authorId=7", bytes.NewReader([]byte(`{"content":""}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("실패: 부모 댓글이 없으면 404", func(t *testing.T) {
		// Given
		svc := &MockCommentService{
			CreateCommentFunc: func(ctx context.Context, boardID, authorID int64, req *dto.CommentCreateRequest) (*dto.CommentResponse, error) {
				return nil, response.NewNotFoundError("Parent comment not found", "")
			},
		}
		router := setupCommentRouter(svc)
		parentID := int64(999)
		body, _ := json.Marshal(dto.CommentCreateRequest{Content: "대댓글", ParentID: &parentID})

		// When
		req := httptest.NewRequest(http.MethodPost, "/api/v1/boards/1/comments?authorId=7", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_GetComments(t *testing.T) {
	t.Run("성공: 댓글 트리를 중첩 구조로 반환한다", func(t *testing.T) {
		// Given
		parentID := int64(1)
		svc := &MockCommentService{
			GetCommentsByBoardFunc: func(ctx context.Context, boardID int64) ([]dto.CommentResponse, error) {
				return []dto.CommentResponse{
					{
						ID: 1, BoardID: boardID, Content: "루트 댓글",
						Children: []dto.CommentResponse{
							{ID: 2, BoardID: boardID, Content: "대댓글", ParentID: &parentID, Children: []dto.CommentResponse{}},
						},
					},
				}, nil
			},
		}
		router := setupCommentRouter(svc)

		// When
		req := httptest.NewRequest(http.MethodGet, "/api/v1/boards/1/comments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w.Body)
		data := envelope["data"].([]interface{})
		assert.Len(t, data, 1)
		root := data[0].(map[string]interface{})
		children := root["children"].([]interface{})
		assert.Len(t, children, 1)
	})

	t.Run("실패: 존재하지 않는 게시글은 404", func(t *testing.T) {
		// Given
		svc := &MockCommentService{
			GetCommentsByBoardFunc: func(ctx context.Context, boardID int64) ([]dto.CommentResponse, error) {
				return nil, response.NewNotFoundError("Board not found", "")
			},
		}
		router := setupCommentRouter(svc)

		// When
		req := httptest.NewRequest(http.MethodGet, "/api/v1/boards/999/comments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_UpdateComment(t *testing.T) {
	t.Run("성공: 댓글 내용 수정", func(t *testing.T) {
		// Given
		svc := &MockCommentService{
			UpdateCommentFunc: func(ctx context.Context, commentID int64, req *dto.CommentUpdateRequest) (*dto.CommentResponse, error) {
				return &dto.CommentResponse{ID: commentID, Content: req.Content, Children: []dto.CommentResponse{}}, nil
			},
		}
		router := setupCommentRouter(svc)
		body, _ := json.Marshal(dto.CommentUpdateRequest{Content: "수정된 내용"})

		// When
		req := httptest.NewRequest(http.MethodPut, "/api/v1/boards/1/comments/2", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("실패: 잘못된 댓글 ID는 400", func(t *testing.T) {
		// Given
		svc := &MockCommentService{}
		router := setupCommentRouter(svc)
		body, _ := json.Marshal(dto.CommentUpdateRequest{Content: "수정"})

		// When
		req := httptest.NewRequest(http.MethodPut, "/api/v1/boards/1/comments/abc", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	t.Run("성공: 댓글과 서브트리 삭제", func(t *testing.T) {
		// Given
		var gotCommentID int64
		svc := &MockCommentService{
			DeleteCommentFunc: func(ctx context.Context, commentID int64) error {
				gotCommentID = commentID
				return nil
			},
		}
		router := setupCommentRouter(svc)

		// When
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/boards/1/comments/2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(2), gotCommentID)
	})

	t.Run("실패: 존재하지 않는 댓글은 404", func(t *testing.T) {
		// Given
		svc := &MockCommentService{
			DeleteCommentFunc: func(ctx context.Context, commentID int64) error {
				return response.NewNotFoundError("Comment not found", "")
			},
		}
		router := setupCommentRouter(svc)

		// When
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/boards/1/comments/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_CountComments(t *testing.T) {
	t.Run("성공: 모든 깊이의 댓글 수를 반환한다", func(t *testing.T) {
		// Given
		svc := &MockCommentService{
			CountCommentsByBoardFunc: func(ctx context.Context, boardID int64) (int64, error) {
				return 42, nil
			},
		}
		router := setupCommentRouter(svc)

		// When
		req := httptest.NewRequest(http.MethodGet, "/api/v1/boards/1/comments/count", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// Then
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w.Body)
		assert.Equal(t, float64(42), envelope["data"])
	})
}
