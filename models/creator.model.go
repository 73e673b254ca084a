package models

import "gorm.io/gorm"

// Creator is the one-to-one profile extension for users with role "creator".
type Creator struct {
	gorm.Model
	UserID         uint   `json:"userId" gorm:"uniqueIndex;not null"`
	Bio            string `json:"bio" gorm:"type:text"`
	ProfilePicture string `json:"profilePicture"`
	EducationLevel string `json:"educationLevel"` // certificate, diploma, degree, masters, phd
	Experience     string `json:"experience"`
	Skills         string `json:"skills"`
	Location       string `json:"location"`
	SocialLinks    string `json:"socialLinks"`
	BankAccount    string `json:"bankAccount"`
	BankType       string `json:"bankType"`
	User           User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
