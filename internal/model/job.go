// Package model contain gorm model for recording data to database
package model

import (
	"time"
)

var (
	// StatusApplied indicates the application has been submitted
	StatusApplied = "Applied"
	// StatusInReview indicates the application is being reviewed
	StatusInReview = "In Review"
	// StatusInInterview indicates an interview has been scheduled or held
	StatusInInterview = "In Interview"
	// StatusTechnicalRound indicates the candidate is in a technical round
	StatusTechnicalRound = "Technical Round"
	// StatusFinalRound indicates the candidate is in a final round
	StatusFinalRound = "Final Round"
	// StatusOffer indicates an offer has been received
	StatusOffer = "Offer"
	// StatusRejected indicates the application has been rejected
	StatusRejected = "Rejected"
	// StatusWithdrawn indicates the candidate withdrew the application
	StatusWithdrawn = "Withdrawn"
)

// JobStatuses lists every valid application status
var JobStatuses = []string{
	StatusApplied,
	StatusInReview,
	StatusInInterview,
	StatusTechnicalRound,
	StatusFinalRound,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
}

// Job is gorm model for a tracked job application
type Job struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Company   string    `gorm:"type:text;not null" json:"company"`
	Position  string    `gorm:"type:text;not null" json:"position"`
	Link      string    `gorm:"type:text" json:"link"`
	Status    string    `gorm:"type:text" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	DateAdded time.Time `gorm:"type:date;default:CURRENT_DATE" json:"date_added"`
}

// EditableJobInfo carries the caller-supplied fields of a job record
type EditableJobInfo struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Link     string `json:"link"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}
