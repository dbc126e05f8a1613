package model

import (
	"time"

	"gorm.io/datatypes"
)

// Resume is gorm model for the stored resume document. The nested
// personal_info/experience/education/skills structures are kept as jsonb
// columns and decoded through ResumeContent when typed access is needed.
type Resume struct {
	ID         uint  `gorm:"primaryKey;autoIncrement;->" json:"id"`
	TemplateID *uint `gorm:"index" json:"template_id"`
	JobID      *uint `gorm:"index" json:"job_id"`

	PersonalInfo datatypes.JSON `gorm:"type:jsonb" json:"personal_info"`
	Summary      string         `gorm:"type:text" json:"summary"`
	Experience   datatypes.JSON `gorm:"type:jsonb" json:"experience"`
	Education    datatypes.JSON `gorm:"type:jsonb" json:"education"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`

	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`

	Template *ResumeTemplate `gorm:"foreignKey:TemplateID;references:ID" json:"-"`
}

// ResumeTemplate is gorm model for the read-only template catalog
type ResumeTemplate struct {
	ID        uint   `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}

// PersonalInfo holds the contact block of a resume.
// FullName and Email are required for a valid save.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one work-history entry. Description holds free text,
// one bullet per line.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
}

// SkillGroup is a named group of skill items
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ResumeContent is the typed form of a resume document, used for request
// binding, validation and document generation.
type ResumeContent struct {
	ID           uint         `json:"id,omitempty"`
	JobID        *uint        `json:"job_id,omitempty"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []SkillGroup `json:"skills"`
}
