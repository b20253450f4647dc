package model

// Task represents a single item in the planner. Timestamps are owned by
// the repository layer, not by GORM's auto-tracking: CreatedAt is set once
// at insert, UpdatedAt on every mutation, CompletedAt only by
// Complete/Reopen.
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"index;not null"`
	CategoryID  *uint      `gorm:"index"`
	Title       string     `gorm:"not null"`
	Description string     `gorm:"not null;default:''"`
	DueDate     *Date
	Priority    Priority   `gorm:"not null;default:'Medium';check:priority IN ('Low','Medium','High')"`
	Status      Status     `gorm:"not null;default:'Todo';check:status IN ('Todo','Done')"`
	CreatedAt   Timestamp  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   Timestamp  `gorm:"not null;autoUpdateTime:false"`
	CompletedAt *Timestamp
}

// Done reports whether the task has been completed.
func (t Task) Done() bool {
	return t.Status == StatusDone
}
