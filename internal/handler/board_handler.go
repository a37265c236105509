package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/domain"
	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

// BoardHandler exposes the board aggregate over HTTP
type BoardHandler struct {
	boardService service.BoardService
}

// NewBoardHandler creates a new BoardHandler instance
func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// parseBoardType validates the boardType path parameter
func parseBoardType(c *gin.Context) (domain.BoardType, bool) {
	boardType := domain.BoardType(c.Param("boardType"))
	if !boardType.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board type")
		return "", false
	}
	return boardType, true
}

// parseUserIDQuery validates the userId query parameter
func parseUserIDQuery(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil || userID <= 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid userId")
		return 0, false
	}
	return userID, true
}

// CreateBoard godoc
// @Summary      게시글 생성
// @Description  게시글을 생성합니다. 작성자의 역할이 해당 게시판 타입의 작성 권한을 가져야 합니다.
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        request body dto.BoardCreateRequest true "게시글 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "게시글 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "작성 권한 없음"
// @Failure      404 {object} response.ErrorResponse "작성자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.BoardCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if !req.BoardType.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board type")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetAllBoards godoc
// @Summary      전체 게시글 목록 조회
// @Description  모든 게시글을 최신순으로 조회합니다 (페이징 없음).
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse} "게시글 목록 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [get]
func (h *BoardHandler) GetAllBoards(c *gin.Context) {
	boards, err := h.boardService.GetAllBoards(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoard godoc
// @Summary      게시글 단건 조회
// @Description  게시글을 좋아요 수, 댓글 수와 함께 조회합니다.
// @Tags         boards
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "게시글 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시글 ID"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// GetBoardsPaged godoc
// @Summary      게시글 페이징 조회
// @Description  전체 게시판의 게시글을 최신순으로 페이징 조회합니다. page는 0부터 시작합니다.
// @Tags         boards
// @Produce      json
// @Param        page query int false "페이지 번호 (기본 0)"
// @Param        size query int false "페이지 크기 (기본 10)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardPageResponse} "페이징 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 페이징 파라미터"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/page [get]
func (h *BoardHandler) GetBoardsPaged(c *gin.Context) {
	page, size, ok := parsePagingParams(c)
	if !ok {
		return
	}

	result, err := h.boardService.GetBoardsPaged(c.Request.Context(), page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetBoardsPagedSecured godoc
// @Summary      권한 필터링 게시글 페이징 조회
// @Description  사용자 역할이 읽을 수 있는 게시판 타입만 페이징 조회합니다. GENERAL 역할은 COMPANY 게시판을 볼 수 없습니다.
// @Tags         boards
// @Produce      json
// @Param        userId query int true "사용자 ID"
// @Param        page query int false "페이지 번호 (기본 0)"
// @Param        size query int false "페이지 크기 (기본 10)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardPageResponse} "페이징 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 파라미터"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/page/secured [get]
func (h *BoardHandler) GetBoardsPagedSecured(c *gin.Context) {
	userID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}
	page, size, ok := parsePagingParams(c)
	if !ok {
		return
	}

	result, err := h.boardService.GetBoardsPagedForUser(c.Request.Context(), userID, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetBoardsByType godoc
// @Summary      게시판 타입별 전체 목록 조회
// @Description  한 게시판 타입의 모든 게시글을 최신순으로 조회합니다 (페이징 없음). 권한 검사는 하지 않습니다.
// @Tags         boards
// @Produce      json
// @Param        boardType path string true "게시판 타입 (NOTICE, COMPANY, FREE, QNA)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse} "목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시판 타입"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/type/{boardType} [get]
func (h *BoardHandler) GetBoardsByType(c *gin.Context) {
	boardType, ok := parseBoardType(c)
	if !ok {
		return
	}

	boards, err := h.boardService.GetBoardsByType(c.Request.Context(), boardType)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoardsByTypePaged godoc
// @Summary      게시판 타입별 페이징 조회
// @Description  한 게시판 타입의 게시글을 최신순으로 페이징 조회합니다. 권한 검사는 하지 않습니다.
// @Tags         boards
// @Produce      json
// @Param        boardType path string true "게시판 타입 (NOTICE, COMPANY, FREE, QNA)"
// @Param        page query int false "페이지 번호 (기본 0)"
// @Param        size query int false "페이지 크기 (기본 10)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardPageResponse} "페이징 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시판 타입"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/type/{boardType}/page [get]
func (h *BoardHandler) GetBoardsByTypePaged(c *gin.Context) {
	boardType, ok := parseBoardType(c)
	if !ok {
		return
	}
	page, size, ok := parsePagingParams(c)
	if !ok {
		return
	}

	result, err := h.boardService.GetBoardsByTypePaged(c.Request.Context(), boardType, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetBoardsByTypeSecured godoc
// @Summary      권한 검사 게시판 타입별 페이징 조회
// @Description  사용자 역할이 해당 게시판 타입을 읽을 수 있는지 검사한 뒤 페이징 조회합니다.
// @Tags         boards
// @Produce      json
// @Param        boardType path string true "게시판 타입 (NOTICE, COMPANY, FREE, QNA)"
// @Param        userId query int true "사용자 ID"
// @Param        page query int false "페이지 번호 (기본 0)"
// @Param        size query int false "페이지 크기 (기본 10)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardPageResponse} "페이징 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 파라미터"
// @Failure      403 {object} response.ErrorResponse "읽기 권한 없음"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/type/{boardType}/secured [get]
func (h *BoardHandler) GetBoardsByTypeSecured(c *gin.Context) {
	boardType, ok := parseBoardType(c)
	if !ok {
		return
	}
	userID, ok := parseUserIDQuery(c)
	if !ok {
		return
	}
	page, size, ok := parsePagingParams(c)
	if !ok {
		return
	}

	result, err := h.boardService.GetBoardsByTypePagedForUser(c.Request.Context(), userID, boardType, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateBoard godoc
// @Summary      게시글 수정
// @Description  게시글의 제목, 본문, 게시판 타입을 수정합니다. 작성자는 변경되지 않습니다.
// @Tags         boards
// @Accept       json
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Param        request body dto.BoardUpdateRequest true "게시글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "게시글 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId} [put]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	var req dto.BoardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if !req.BoardType.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board type")
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      게시글 삭제
// @Description  게시글을 삭제합니다. 댓글과 좋아요는 스키마 레벨 외래키 캐스케이드로 정리됩니다.
// @Tags         boards
// @Produce      json
// @Param        boardId path int true "게시글 ID"
// @Success      200 {object} response.SuccessResponse "게시글 삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 게시글 ID"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// GetBoardStats godoc
// @Summary      게시판별 게시글 수 통계
// @Description  게시판 타입별 게시글 수와 전체 합계(TOTAL)를 조회합니다.
// @Tags         boards
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.BoardStatsResponse} "통계 조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards/stats [get]
func (h *BoardHandler) GetBoardStats(c *gin.Context) {
	stats, err := h.boardService.GetBoardStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}
