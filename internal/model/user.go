package model

// User is the local account that tasks and categories hang off.
// The password is stored and compared as plain text; this is a local
// single-user database with no hardening requirements.
type User struct {
	ID         uint       `gorm:"primaryKey"`
	Username   string     `gorm:"uniqueIndex;not null"`
	Password   string     `gorm:"not null"`
	Categories []Category `gorm:"constraint:OnDelete:CASCADE"`
	Tasks      []Task     `gorm:"constraint:OnDelete:CASCADE"`
}
