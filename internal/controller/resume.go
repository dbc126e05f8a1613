package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/document"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/model"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/utilities"
)

// ResumeResponse is a resume record with its template name joined in
type ResumeResponse struct {
	model.Resume
	TemplateName string `json:"template_name,omitempty"`
}

// GetResume fetches the most recent resume.
// @Summary Get the most recent resume
// @Description Returns an empty default structure when no resume has been saved yet
// @Tags Resume
// @Produce json
// @Success 200 {object} ResumeResponse "Most recent resume, or an empty default"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /resume [get]
func (tc *TrackerController) GetResume(c *gin.Context) {
	resume := model.Resume{}
	err := tc.DB.Preload("Template").Order("updated_at DESC").First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No resume yet: synthesize the empty default structure
			c.JSON(http.StatusOK, gin.H{
				"id": nil,
				"personal_info": model.PersonalInfo{},
				"summary":       "",
				"experience":    []model.Experience{},
				"education":     []model.Education{},
				"skills":        []model.SkillGroup{},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch resume: ", err.Error()),
		})
		return
	}

	resp := ResumeResponse{Resume: resume}
	if resume.Template != nil {
		resp.TemplateName = resume.Template.Name
	}
	c.JSON(http.StatusOK, resp)
}

// CreateResume saves a new resume document.
// @Summary Create a resume
// @Description Full name and email are required; the default template is associated when one exists
// @Tags Resume
// @Accept json
// @Produce json
// @Param Resume body model.ResumeContent true "Resume document"
// @Success 201 {object} model.Resume "Successfully created resume"
// @Failure 400 {object} utilities.ErrorResponse "Missing full name or email"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /resume [post]
func (tc *TrackerController) CreateResume(c *gin.Context) {
	content := model.ResumeContent{}
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if content.PersonalInfo.FullName == "" || content.PersonalInfo.Email == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Full name and email are required",
		})
		return
	}

	// Associate the default template; proceed without one if none is flagged
	var templateID *uint
	template := model.ResumeTemplate{}
	if err := tc.DB.Where("is_default = ?", true).First(&template).Error; err == nil {
		templateID = &template.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to look up default template: ", err.Error()),
		})
		return
	}

	resume, err := resumeFromContent(content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to encode resume: ", err.Error()),
		})
		return
	}
	resume.TemplateID = templateID
	resume.UpdatedAt = time.Now()

	if err := tc.DB.Create(&resume).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create resume: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, resume)
}

// UpdateResume saves changes to an existing resume document.
// @Summary Update a resume
// @Description The payload must carry the resume id, full name and email
// @Tags Resume
// @Accept json
// @Produce json
// @Param Resume body model.ResumeContent true "Resume document including id"
// @Success 200 {object} model.Resume "Successfully updated resume"
// @Failure 400 {object} utilities.ErrorResponse "Missing id, full name or email"
// @Failure 404 {object} utilities.ErrorResponse "Resume not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /resume [put]
func (tc *TrackerController) UpdateResume(c *gin.Context) {
	content := model.ResumeContent{}
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if content.ID == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Resume ID is required for updates",
		})
		return
	}
	if content.PersonalInfo.FullName == "" || content.PersonalInfo.Email == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Full name and email are required",
		})
		return
	}

	existing := model.Resume{}
	if err := tc.DB.Where("id = ?", content.ID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Resume not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve resume: %s", err.Error()),
		})
		return
	}

	updated, err := resumeFromContent(content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to encode resume: ", err.Error()),
		})
		return
	}

	updates := map[string]interface{}{
		"job_id":        updated.JobID,
		"personal_info": updated.PersonalInfo,
		"summary":       updated.Summary,
		"experience":    updated.Experience,
		"education":     updated.Education,
		"skills":        updated.Skills,
		"updated_at":    time.Now(),
	}
	if err := tc.DB.Model(&existing).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update resume: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, existing)
}

// ExportResumeHTML renders the posted resume document as a printable HTML
// preview.
// @Summary Export a resume as an HTML preview
// @Description Pure rendering of the posted document; nothing is persisted
// @Tags Resume
// @Accept json
// @Produce html
// @Param Resume body model.ResumeContent true "Resume document"
// @Success 200 {string} string "Standalone HTML document"
// @Failure 400 {object} utilities.ErrorResponse "Malformed resume document"
// @Router /resume/export [post]
func (tc *TrackerController) ExportResumeHTML(c *gin.Context) {
	content := model.ResumeContent{}
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document.GenerateHTMLPreview(content)))
}

// ExportResumeLaTeX renders the posted resume document as downloadable LaTeX
// source.
// @Summary Export a resume as LaTeX source
// @Description Pure rendering of the posted document; nothing is persisted
// @Tags Resume
// @Accept json
// @Produce plain
// @Param Resume body model.ResumeContent true "Resume document"
// @Success 200 {string} string "LaTeX source"
// @Failure 400 {object} utilities.ErrorResponse "Malformed resume document"
// @Router /resume/export/latex [post]
func (tc *TrackerController) ExportResumeLaTeX(c *gin.Context) {
	content := model.ResumeContent{}
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume.tex"`)
	c.Data(http.StatusOK, "text/x-tex; charset=utf-8", []byte(document.GenerateLaTeX(content)))
}

// resumeFromContent encodes the typed resume document into its jsonb columns.
// Nil lists are stored as empty arrays so reads stay shape-stable.
func resumeFromContent(content model.ResumeContent) (model.Resume, error) {
	if content.Experience == nil {
		content.Experience = []model.Experience{}
	}
	if content.Education == nil {
		content.Education = []model.Education{}
	}
	if content.Skills == nil {
		content.Skills = []model.SkillGroup{}
	}

	personalInfo, err := json.Marshal(content.PersonalInfo)
	if err != nil {
		return model.Resume{}, err
	}
	experience, err := json.Marshal(content.Experience)
	if err != nil {
		return model.Resume{}, err
	}
	education, err := json.Marshal(content.Education)
	if err != nil {
		return model.Resume{}, err
	}
	skills, err := json.Marshal(content.Skills)
	if err != nil {
		return model.Resume{}, err
	}

	return model.Resume{
		JobID:        content.JobID,
		PersonalInfo: datatypes.JSON(personalInfo),
		Summary:      content.Summary,
		Experience:   datatypes.JSON(experience),
		Education:    datatypes.JSON(education),
		Skills:       datatypes.JSON(skills),
	}, nil
}
