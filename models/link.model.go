package models

import "gorm.io/gorm"

type Link struct {
	gorm.Model
	Title     string  `json:"title"`
	URL       string  `json:"url" gorm:"not null"`
	ChapterID uint    `json:"chapterId" gorm:"index;not null"`
	Order     int     `json:"order" gorm:"column:order"`
	Chapter   Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}
