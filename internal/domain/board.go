package domain

// BoardType represents the category a board belongs to
type BoardType string

// BoardType constants
const (
	BoardTypeNotice  BoardType = "NOTICE"  // 공지사항
	BoardTypeCompany BoardType = "COMPANY" // 기업게시판
	BoardTypeFree    BoardType = "FREE"    // 자유게시판
	BoardTypeQna     BoardType = "QNA"     // Q&A
)

// IsValid reports whether the board type is one of the defined constants
func (t BoardType) IsValid() bool {
	switch t {
	case BoardTypeNotice, BoardTypeCompany, BoardTypeFree, BoardTypeQna:
		return true
	}
	return false
}

// AllBoardTypes returns every category in display order
func AllBoardTypes() []BoardType {
	return []BoardType{BoardTypeNotice, BoardTypeCompany, BoardTypeFree, BoardTypeQna}
}

// Board represents a post in one of the fixed categories.
// Authorship is immutable after creation; updates replace title,
// content and board type only.
type Board struct {
	BaseModel
	BoardType BoardType `gorm:"type:varchar(20);not null;index:idx_boards_board_type" json:"boardType"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"imageUrl,omitempty"`
	AuthorID  int64     `gorm:"not null;index:idx_boards_author_id" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
