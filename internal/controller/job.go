package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/model"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/utilities"
)

// GetJobs fetches every tracked job application, newest first.
// @Summary List all job applications
// @Description Returns every tracked application ordered by date added, newest first
// @Tags Jobs
// @Produce json
// @Success 200 {array} model.Job "All tracked job applications"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (tc *TrackerController) GetJobs(c *gin.Context) {
	var jobs []model.Job
	if err := tc.DB.Order("date_added DESC, id DESC").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch jobs: ", err.Error()),
		})
		return
	}

	// A list refresh doubles as a trophy reconciliation trigger
	tc.refreshTrophies()

	c.JSON(http.StatusOK, jobs)
}

// CreateJob records a new job application.
// @Summary Create a job application
// @Description Company and position are required; link and notes default to empty, date added defaults to today
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Job body model.EditableJobInfo true "Job application fields"
// @Success 201 {object} model.Job "Successfully created job application"
// @Failure 400 {object} utilities.ErrorResponse "Missing company or position"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (tc *TrackerController) CreateJob(c *gin.Context) {
	info := model.EditableJobInfo{}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if info.Company == "" || info.Position == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Company and position are required",
		})
		return
	}

	if info.Status == "" {
		info.Status = model.StatusApplied
	}
	if !utilities.Contains(model.JobStatuses, info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid status: %s", info.Status),
		})
		return
	}

	job := model.Job{
		Company:   info.Company,
		Position:  info.Position,
		Link:      info.Link,
		Status:    info.Status,
		Notes:     info.Notes,
		DateAdded: time.Now(),
	}
	if err := tc.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job: ", err),
		})
		return
	}

	tc.refreshTrophies()

	c.JSON(http.StatusCreated, job)
}

// UpdateJob edits an existing job application. A payload carrying only a
// status updates just that field; any other payload must carry company and
// position.
// @Summary Update a job application
// @Description Full update, or status-only partial update when the payload contains nothing but a status
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path integer true "ID of the job application"
// @Param Job body model.EditableJobInfo true "Job application fields"
// @Success 200 {object} model.Job "Successfully updated job application"
// @Failure 400 {object} utilities.ErrorResponse "Missing company or position, or malformed body"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [put]
func (tc *TrackerController) UpdateJob(c *gin.Context) {
	id := c.Param("id")

	job := model.Job{}
	if err := tc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read request body: %s", err.Error()),
		})
		return
	}

	fields := map[string]json.RawMessage{}
	info := model.EditableJobInfo{}
	if err := json.Unmarshal(body, &fields); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if err := json.Unmarshal(body, &info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if info.Status != "" && !utilities.Contains(model.JobStatuses, info.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid status: %s", info.Status),
		})
		return
	}

	// Status-only partial update. An empty or null status does not qualify
	// and falls through to the full-update validation.
	if _, hasStatus := fields["status"]; hasStatus && len(fields) == 1 && info.Status != "" {
		if err := tc.DB.Model(&job).Update("status", info.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to update job: %s", err.Error()),
			})
			return
		}

		tc.refreshTrophies()
		c.JSON(http.StatusOK, job)
		return
	}

	if info.Company == "" || info.Position == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Company and position are required",
		})
		return
	}

	updates := map[string]interface{}{
		"company":  info.Company,
		"position": info.Position,
		"link":     info.Link,
		"status":   info.Status,
		"notes":    info.Notes,
	}
	if err := tc.DB.Model(&job).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update job: %s", err.Error()),
		})
		return
	}

	tc.refreshTrophies()

	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a job application.
// @Summary Delete a job application
// @Tags Jobs
// @Produce json
// @Param id path integer true "ID of the job application"
// @Success 200 {object} utilities.MessageResponse "Successfully deleted job application"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [delete]
func (tc *TrackerController) DeleteJob(c *gin.Context) {
	id := c.Param("id")

	job := model.Job{}
	if err := tc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if err := tc.DB.Delete(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete job: %s", err.Error()),
		})
		return
	}

	tc.refreshTrophies()

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted successfully"})
}
