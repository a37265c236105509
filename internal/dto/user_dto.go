package dto

import (
	"time"

	"community-board-api/internal/domain"
)

// UserCreateRequest represents the request to register a user
// @Description 사용자 등록 요청. role은 GENERAL, COMPANY, ADMIN 중 하나여야 한다.
type UserCreateRequest struct {
	Username string      `json:"username" binding:"required,min=1,max=50" example:"hong"`
	Nickname string      `json:"nickname" binding:"required,min=1,max=50" example:"홍길동"`
	Email    string      `json:"email" binding:"required,email" example:"hong@example.com"`
	Role     domain.Role `json:"role" binding:"required" example:"GENERAL"`
}

// UserResponse represents a registered user
// @Description 사용자 응답
type UserResponse struct {
	ID        int64       `json:"id" example:"1"`
	Username  string      `json:"username" example:"hong"`
	Nickname  string      `json:"nickname" example:"홍길동"`
	Email     string      `json:"email" example:"hong@example.com"`
	Role      domain.Role `json:"role" example:"GENERAL"`
	Enabled   bool        `json:"enabled" example:"true"`
	CreatedAt time.Time   `json:"createdAt" example:"2025-06-01T10:30:00Z"`
}
