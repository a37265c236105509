package domain

// Role represents a user's permission level
type Role string

// Role constants
const (
	RoleGeneral Role = "GENERAL" // 일반 사용자
	RoleCompany Role = "COMPANY" // 기업 사용자
	RoleAdmin   Role = "ADMIN"   // 관리자
)

// IsValid reports whether the role is one of the defined constants
func (r Role) IsValid() bool {
	switch r {
	case RoleGeneral, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// User represents an account that authors boards and comments.
// Authentication is handled outside this service; the user record
// exists for author resolution and role lookups.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_username" json:"username"`
	Nickname string `gorm:"type:varchar(50);not null" json:"nickname"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_email" json:"email"`
	Role     Role   `gorm:"type:varchar(20);not null" json:"role"`
	Enabled  bool   `gorm:"not null;default:true" json:"enabled"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
