package domain

// Comment represents a threaded comment on a board. Comments form a
// forest per board: ParentID is nil for roots and otherwise points at
// another comment on any depth. The tree is kept as a plain adjacency
// list (no Parent/Children relations on the model) so that traversal
// and cascading deletion stay explicit in the service layer.
type Comment struct {
	BaseModel
	BoardID  int64  `gorm:"not null;index:idx_comments_board_id" json:"boardId"`
	AuthorID int64  `gorm:"not null;index:idx_comments_author_id" json:"authorId"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ParentID *int64 `gorm:"index:idx_comments_parent_id" json:"parentId,omitempty"`
	Board    Board  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"board,omitempty"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
