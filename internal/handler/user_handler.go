package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community-board-api/internal/dto"
	"community-board-api/internal/response"
	"community-board-api/internal/service"
)

// UserHandler exposes user registration and lookup over HTTP
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser godoc
// @Summary      사용자 등록
// @Description  사용자를 등록합니다. username과 email은 중복될 수 없습니다.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.UserCreateRequest true "사용자 등록 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse} "사용자 등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "username 또는 email 중복"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// GetUser godoc
// @Summary      사용자 조회
// @Description  사용자를 ID로 조회합니다.
// @Tags         users
// @Produce      json
// @Param        userId path int true "사용자 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "사용자 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 사용자 ID"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}
