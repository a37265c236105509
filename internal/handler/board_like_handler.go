package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

// BoardLikeHandler exposes board like toggling and counting over HTTP
type BoardLikeHandler struct {
	likeService service.BoardLikeService
}

// NewBoardLikeHandler creates a new BoardLikeHandler instance
func NewBoardLikeHandler(likeService service.BoardLikeService) *BoardLikeHandler {
	return &BoardLikeHandler{
		likeService: likeService,
	}
}

// ToggleLike godoc
// @Summary      좋아요 토글
// @Description  게시글 좋아요를 토글합니다. 같은 userIdentifier로 다시 호출하면 취소됩니다.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Param        request body dto.LikeToggleRequest true "좋아요 토글 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeStatusResponse} "토글 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/likes/toggle [post]
func (h *BoardLikeHandler) ToggleLike(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.LikeToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	status, err := h.likeService.ToggleLike(c.Request.Context(), boardID, req.UserIdentifier)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, status)
}

// GetLikeStatus godoc
// @Summary      좋아요 상태 조회
// @Description  한 사용자의 게시글 좋아요 여부와 현재 좋아요 수를 조회합니다.
// @Tags         likes
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Param        userIdentifier query string true "사용자 식별자"
// @Success      200 {object} response.SuccessResponse{data=dto.LikeStatusResponse} "상태 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/likes [get]
func (h *BoardLikeHandler) GetLikeStatus(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	userIdentifier := strings.TrimSpace(c.Query("userIdentifier"))
	if userIdentifier == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "userIdentifier is required")
		return
	}

	status, err := h.likeService.GetLikeStatus(c.Request.Context(), boardID, userIdentifier)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, status)
}

// GetLikeCount godoc
// @Summary      좋아요 수 조회
// @Description  게시글의 좋아요 수를 조회합니다. Redis가 구성된 경우 캐시를 경유합니다.
// @Tags         likes
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Success      200 {object} response.SuccessResponse{data=int64} "좋아요 수 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시글 ID"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId}/likes/count [get]
func (h *BoardLikeHandler) GetLikeCount(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	count, err := h.likeService.GetLikeCount(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, count)
}
