package model

import "time"

// UnlockedTrophy is gorm model for a persisted achievement unlock.
// TrophyID is unique so a duplicate unlock is a conflict, never a second row.
type UnlockedTrophy struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	TrophyID     string    `gorm:"type:text;uniqueIndex;not null" json:"trophy_id"`
	TrophyName   string    `gorm:"type:text;not null" json:"trophy_name"`
	TrophyType   string    `gorm:"type:text;not null" json:"trophy_type"`
	UnlockedDate time.Time `gorm:"type:date;default:CURRENT_DATE" json:"unlocked_date"`
	UnlockedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"unlocked_at"`
}
