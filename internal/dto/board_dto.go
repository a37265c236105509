package dto

import (
	"time"

	"community-board-api/internal/domain"
)

// BoardCreateRequest represents the request to create a board
// @Description 게시글 생성 요청. boardType별 작성 권한은 작성자의 역할로 검사된다.
type BoardCreateRequest struct {
	Title     string           `json:"title" binding:"required" example:"공지사항입니다"`
	Content   string           `json:"content" binding:"required" example:"게시글 본문"`
	BoardType domain.BoardType `json:"boardType" binding:"required" example:"FREE"`
	AuthorID  int64            `json:"authorId" binding:"required" example:"1"`
	ImageURL  string           `json:"imageUrl,omitempty" example:"https://cdn.example.com/images/1.png"`
}

// BoardUpdateRequest represents the request to update a board.
// Authorship is immutable and not part of the payload.
// @Description 게시글 수정 요청 (제목, 본문, 게시판 타입)
type BoardUpdateRequest struct {
	Title     string           `json:"title" binding:"required" example:"수정된 제목"`
	Content   string           `json:"content" binding:"required" example:"수정된 본문"`
	BoardType domain.BoardType `json:"boardType" binding:"required" example:"QNA"`
}

// BoardResponse represents a board with its author and counters
// @Description 게시글 응답. likeCount와 commentCount는 조회 시점에 집계된다.
type BoardResponse struct {
	ID             int64            `json:"id" example:"1"`
	BoardType      domain.BoardType `json:"boardType" example:"FREE"`
	Title          string           `json:"title" example:"제목"`
	Content        string           `json:"content" example:"본문"`
	ImageURL       string           `json:"imageUrl,omitempty" example:"https://cdn.example.com/images/1.png"`
	AuthorID       int64            `json:"authorId" example:"1"`
	AuthorNickname string           `json:"authorNickname" example:"홍길동"`
	LikeCount      int64            `json:"likeCount" example:"3"`
	CommentCount   int64            `json:"commentCount" example:"7"`
	CreatedAt      time.Time        `json:"createdAt" example:"2025-06-01T10:30:00Z"`
	UpdatedAt      time.Time        `json:"updatedAt" example:"2025-06-01T10:30:00Z"`
}

// BoardPageResponse represents one window of a paged board listing
// @Description 페이징된 게시글 목록. currentPage는 0부터 시작한다.
type BoardPageResponse struct {
	Boards        []BoardResponse `json:"boards"`
	CurrentPage   int             `json:"currentPage" example:"0"`
	TotalPages    int             `json:"totalPages" example:"5"`
	TotalElements int64           `json:"totalElements" example:"42"`
	Size          int             `json:"size" example:"10"`
	First         bool            `json:"first" example:"true"`
	Last          bool            `json:"last" example:"false"`
	HasNext       bool            `json:"hasNext" example:"true"`
	HasPrevious   bool            `json:"hasPrevious" example:"false"`
}

// BoardStatsResponse represents per-category board counts
// @Description 게시판별 게시글 수 통계. TOTAL 키에 전체 수가 담긴다.
type BoardStatsResponse struct {
	BoardCounts map[string]int64 `json:"boardCounts"`
}
