package dto

// LikeToggleRequest represents the request to toggle a like on a board
// @Description 좋아요 토글 요청. 같은 userIdentifier로 다시 호출하면 취소된다.
type LikeToggleRequest struct {
	UserIdentifier string `json:"userIdentifier" binding:"required,min=1" example:"user-1042"`
}

// LikeStatusResponse represents the like state of one user for one board
// @Description 좋아요 상태 응답
type LikeStatusResponse struct {
	Liked     bool  `json:"liked" example:"true"`
	LikeCount int64 `json:"likeCount" example:"12"`
}
