package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the two persisted roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a registered account. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email    string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:200;not null" json:"-"`
	Role     string `gorm:"size:10;not null;default:'user'" json:"role"`

	Trails []Trail `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "app_users"
}
