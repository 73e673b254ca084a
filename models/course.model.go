package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description" gorm:"type:text"`
	Price       float64  `json:"price"`
	CategoryID  uint     `json:"categoryId" gorm:"index;not null"`
	CreatorID   uint     `json:"creatorId" gorm:"index;not null"`
	Thumbnail   string   `json:"thumbnail"`
	Category    Category `json:"-" gorm:"foreignKey:CategoryID"`
	Creator     Creator  `json:"-" gorm:"foreignKey:CreatorID"`
}
