package models

import "gorm.io/gorm"

// Earning is a creator's monthly revenue ledger entry for one course. One
// logical row per (CreatorID, CourseID, Month, Year), maintained by the
// settlement engine with a find-or-create plus increment.
type Earning struct {
	gorm.Model
	CreatorID     uint    `json:"creatorId" gorm:"index;not null"`
	CourseID      uint    `json:"courseId" gorm:"index;not null"`
	TotalEarnings float64 `json:"totalEarnings" gorm:"not null"`
	Month         int     `json:"month" gorm:"not null"`
	Year          int     `json:"year" gorm:"not null"`
}
