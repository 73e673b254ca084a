package models

import "gorm.io/gorm"

// Chapter is an ordered section of a course. The (CourseID, Order) pair is
// kept unique by the controller before insert, not by a database constraint.
type Chapter struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	CourseID uint   `json:"courseId" gorm:"index;not null"`
	Order    int    `json:"order" gorm:"column:order;not null"`
	Course   Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
