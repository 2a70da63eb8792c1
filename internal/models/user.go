package models

import "golang.org/x/crypto/bcrypt"

// Role values carried in the JWT role claim.
const (
	RoleUser       = "USER"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User represents an account of the store.
type User struct {
	Base
	Name     string `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Role     string `json:"role" gorm:"type:varchar(20);default:USER"`
}

// SetPassword hashes and stores the password.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
