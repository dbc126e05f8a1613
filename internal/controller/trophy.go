package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/model"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/utilities"
)

// UnlockRequest is the payload for a manual trophy unlock
type UnlockRequest struct {
	TrophyID   string `json:"trophy_id"`
	TrophyName string `json:"trophy_name"`
	TrophyType string `json:"trophy_type"`
}

// GetUnlockedTrophies fetches the persisted unlock set, newest first.
// @Summary List unlocked trophies
// @Tags Trophies
// @Produce json
// @Success 200 {array} model.UnlockedTrophy "All persisted unlocks"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /trophies [get]
func (tc *TrackerController) GetUnlockedTrophies(c *gin.Context) {
	var trophies []model.UnlockedTrophy
	if err := tc.DB.Order("unlocked_at DESC").Find(&trophies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch trophies: ", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, trophies)
}

// UnlockTrophy persists a trophy unlock. Unlocking an already unlocked trophy
// is not an error.
// @Summary Unlock a trophy
// @Description Idempotent: a duplicate unlock reports "already unlocked" with a 200
// @Tags Trophies
// @Accept json
// @Produce json
// @Param Trophy body UnlockRequest true "Trophy to unlock"
// @Success 200 {object} utilities.MessageResponse "Trophy was already unlocked"
// @Success 201 {object} model.UnlockedTrophy "Newly persisted unlock"
// @Failure 400 {object} utilities.ErrorResponse "Missing trophy id, name or type"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /trophies [post]
func (tc *TrackerController) UnlockTrophy(c *gin.Context) {
	req := UnlockRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if req.TrophyID == "" || req.TrophyName == "" || req.TrophyType == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Trophy ID, name, and type are required",
		})
		return
	}

	now := time.Now()
	record := model.UnlockedTrophy{
		TrophyID:     req.TrophyID,
		TrophyName:   req.TrophyName,
		TrophyType:   req.TrophyType,
		UnlockedDate: now,
		UnlockedAt:   now,
	}

	created, err := tc.Engine.Unlock(&record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to unlock trophy: ", err.Error()),
		})
		return
	}
	if !created {
		c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Trophy already unlocked"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// RevokeTrophy deletes a specific persisted unlock.
// @Summary Revoke an unlocked trophy
// @Tags Trophies
// @Produce json
// @Param id path string true "Trophy id"
// @Success 200 {object} utilities.MessageResponse "Trophy revoked"
// @Failure 404 {object} utilities.ErrorResponse "Trophy not unlocked"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /trophies/{id} [delete]
func (tc *TrackerController) RevokeTrophy(c *gin.Context) {
	id := c.Param("id")

	record := model.UnlockedTrophy{}
	if err := tc.DB.Where("trophy_id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Trophy not found or not unlocked"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve trophy: %s", err.Error()),
		})
		return
	}

	if _, err := tc.Engine.Revoke(id); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to revoke trophy: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trophy revoked successfully",
		"trophy":  record,
	})
}

// ResetTrophies deletes every persisted unlock. Development and testing use.
// @Summary Reset all trophies
// @Tags Trophies
// @Produce json
// @Success 200 {object} utilities.MessageResponse "All unlocks deleted"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /trophies [delete]
func (tc *TrackerController) ResetTrophies(c *gin.Context) {
	if err := tc.Engine.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to reset trophies: ", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "All trophies reset successfully"})
}

// TrophyStatus runs a reconciliation pass against the current job list and
// returns the full catalog with progress and unlock state.
// @Summary Get trophy progress
// @Description Runs the unlock/revoke reconciliation against current job statistics
// @Tags Trophies
// @Produce json
// @Success 200 {array} trophy.Status "Catalog with live progress"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /trophies/status [get]
func (tc *TrackerController) TrophyStatus(c *gin.Context) {
	if !tc.Engine.Loaded() {
		if err := tc.Engine.Load(); err != nil {
			// Reconciliation stays gated; the catalog is still reportable
			log.Printf("trophy engine: load failed: %v", err)
		}
	}

	var jobs []model.Job
	if err := tc.DB.Order("date_added DESC, id DESC").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch jobs: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, tc.Engine.Check(jobs))
}

// GetNotifications returns the unlock toasts currently on display.
// @Summary List pending trophy notifications
// @Tags Trophies
// @Produce json
// @Success 200 {array} trophy.Notification "Pending notifications"
// @Router /trophies/notifications [get]
func (tc *TrackerController) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Engine.Notifications())
}

// DismissNotification removes a toast before its auto-dismiss fires.
// Dismissing an unknown id is a no-op.
// @Summary Dismiss a trophy notification
// @Tags Trophies
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} utilities.MessageResponse "Notification dismissed"
// @Router /trophies/notifications/{id} [delete]
func (tc *TrackerController) DismissNotification(c *gin.Context) {
	tc.Engine.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Notification dismissed"})
}
