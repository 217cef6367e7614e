package models

// WaitlistModel is one signup on the product waitlist. Emails are
// stored lowercased; duplicates are rejected by the unique index.
type WaitlistModel struct {
	Base
	Email        string  `json:"email"         gorm:"uniqueIndex;not null"`
	Source       string  `json:"source"        gorm:"default:'unknown'"`
	PlanInterest *string `json:"plan_interest"`
}

func (WaitlistModel) TableName() string { return "waitlist" }
