package model

// Category groups tasks by area (work, health, study, etc.).
// Names are not unique within a user; duplicates are permitted.
// Deleting a category clears the reference on its tasks instead of
// deleting them, via the FK rule on Task.CategoryID.
type Category struct {
	ID     uint    `gorm:"primaryKey"`
	UserID uint    `gorm:"index;not null"`
	Name   string  `gorm:"not null"`
	Color  *string // optional hex code for the sidebar swatch
	Tasks  []Task  `gorm:"constraint:OnDelete:SET NULL"`
}
