package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(30)"`
	Password  string    `json:"-" gorm:"not null;type:varchar(255)"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;type:varchar(255)"`
	FirstName string    `json:"first_name" gorm:"type:varchar(50)"`
	LastName  string    `json:"last_name" gorm:"type:varchar(50)"`
	Role      UserRole  `json:"role" gorm:"not null;default:'user';type:varchar(10)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
