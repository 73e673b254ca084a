package models

import "gorm.io/gorm"

type Video struct {
	gorm.Model
	Title     string  `json:"title" gorm:"not null"`
	URL       string  `json:"url" gorm:"not null"`
	ChapterID uint    `json:"chapterId" gorm:"index;not null"`
	CourseID  uint    `json:"courseId" gorm:"index;not null"`
	Order     int     `json:"order" gorm:"column:order"`
	Chapter   Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}
