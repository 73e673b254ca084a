package models

import "gorm.io/gorm"

// Roles a user can hold
const (
	RoleStudent = "student"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber" gorm:"unique;not null"`
	Email       string `json:"email"`
	Role        string `json:"role" gorm:"default:'student'"`
	Password    string `json:"-" gorm:"not null"`
}
