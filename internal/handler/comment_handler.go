package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

// CommentHandler exposes the threaded comment tree over HTTP
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler instance
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment godoc
// @Summary      댓글 생성
// @Description  게시글에 댓글을 생성합니다. parentId가 있으면 해당 댓글의 대댓글로 생성됩니다.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Param        authorId query int true "작성자 ID"
// @Param        request body dto.CommentCreateRequest true "댓글 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글, 작성자 또는 부모 댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	authorID, err := strconv.ParseInt(c.Query("authorId"), 10, 64)
	if err != nil || authorID <= 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid authorId")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), boardID, authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// GetComments godoc
// @Summary      게시글 댓글 트리 조회
// @Description  게시글의 루트 댓글을 작성 시각 순으로, 각 댓글의 대댓글을 재귀적으로 포함하여 조회합니다.
// @Tags         comments
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CommentResponse} "댓글 트리 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시글 ID"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/comments [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	comments, err := h.commentService.GetCommentsByBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comments)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  댓글 내용을 수정합니다. 구조(게시글, 부모)는 변경되지 않습니다.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Param        commentId path int true "댓글 ID"
// @Param        request body dto.CommentUpdateRequest true "댓글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	if _, ok := parseIDParam(c, "boardId"); !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  댓글과 그 아래 모든 대댓글 서브트리를 함께 삭제합니다.
// @Tags         comments
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Param        commentId path int true "댓글 ID"
// @Success      200 {object} response.SuccessResponse "댓글 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 ID"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if _, ok := parseIDParam(c, "boardId"); !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// CountComments godoc
// @Summary      게시글 댓글 수 조회
// @Description  게시글의 전체 댓글 수를 조회합니다. 모든 깊이의 대댓글이 포함됩니다.
// @Tags         comments
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Success      200 {object} response.SuccessResponse{data=int64} "댓글 수 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시글 ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/comments/count [get]
func (h *CommentHandler) CountComments(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	count, err := h.commentService.CountCommentsByBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, count)
}
