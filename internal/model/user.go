package model

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTutor   UserRole = "tutor"
	RoleAdmin   UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Email     string   `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Name      string   `gorm:"size:100;not null" json:"name"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Role      UserRole `gorm:"size:20;default:'student'" json:"role"`
	AvatarURL string   `gorm:"size:255" json:"avatar_url,omitempty"`
}

func (User) TableName() string {
	return "users"
}
