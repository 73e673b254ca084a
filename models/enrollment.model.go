package models

import "gorm.io/gorm"

// Enrollment grants a student access to a course. There is intentionally no
// uniqueness constraint on (UserID, CourseID); duplicate handling is a policy
// of the settlement engine.
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"userId" gorm:"index;not null"`
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course   Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
