package domain

// BoardLike records that one user identifier liked a board. A user
// can hold at most one like per board; toggling removes the row.
type BoardLike struct {
	BaseModel
	BoardID        int64  `gorm:"not null;uniqueIndex:uq_board_likes_board_user,priority:1" json:"boardId"`
	UserIdentifier string `gorm:"type:varchar(255);not null;uniqueIndex:uq_board_likes_board_user,priority:2" json:"userIdentifier"`
	Board          Board  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
}

// TableName specifies the table name for BoardLike
func (BoardLike) TableName() string {
	return "board_likes"
}
