package dto

import "time"

// CommentCreateRequest represents the request to create a comment.
// parentId가 있으면 해당 댓글의 대댓글로 생성된다.
// @Description 댓글 생성 요청
type CommentCreateRequest struct {
	Content  string `json:"content" binding:"required,min=1" example:"댓글 내용"`
	ParentID *int64 `json:"parentId,omitempty" example:"3"`
}

// CommentUpdateRequest represents the request to update a comment's content
// @Description 댓글 수정 요청
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1" example:"수정된 댓글 내용"`
}

// CommentResponse represents a comment and its direct replies.
// Children은 재귀적으로 중첩되며 깊이 제한이 없다.
// @Description 댓글 응답 (트리 구조)
type CommentResponse struct {
	ID             int64             `json:"id" example:"1"`
	BoardID        int64             `json:"boardId" example:"1"`
	AuthorID       int64             `json:"authorId" example:"1"`
	AuthorNickname string            `json:"authorNickname" example:"홍길동"`
	Content        string            `json:"content" example:"댓글 내용"`
	ParentID       *int64            `json:"parentId,omitempty" example:"3"`
	CreatedAt      time.Time         `json:"createdAt" example:"2025-06-01T10:30:00Z"`
	UpdatedAt      time.Time         `json:"updatedAt" example:"2025-06-01T10:30:00Z"`
	Children       []CommentResponse `json:"children"`
}
