// Package controller provides HTTP handlers for job, resume and trophy
// operations.
package controller

import (
	"log"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/database"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/model"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/trophy"
)

// TrackerController struct holds the database connection and the trophy
// engine shared by all handlers.
type TrackerController struct {
	DB     *database.DBinstanceStruct
	Engine *trophy.Engine
}

// NewTrackerController creates a new instance of TrackerController with the
// provided database connection and a fresh trophy engine.
func NewTrackerController(db *database.DBinstanceStruct) *TrackerController {
	return &TrackerController{
		DB:     db,
		Engine: trophy.NewEngine(db, trophy.Config{}),
	}
}

// WarmUp loads the persisted unlock set into the trophy engine. A failure
// leaves the engine gated; the next trophy check retries.
func (tc *TrackerController) WarmUp() {
	if err := tc.Engine.Load(); err != nil {
		log.Printf("trophy engine: initial load failed: %v", err)
	}
}

// refreshTrophies feeds the current job list through the trophy engine.
// Called after every job mutation and list; failures are logged and the job
// operation is never failed on their account.
func (tc *TrackerController) refreshTrophies() {
	if !tc.Engine.Loaded() {
		if err := tc.Engine.Load(); err != nil {
			log.Printf("trophy engine: load failed, skipping check: %v", err)
			return
		}
	}

	var jobs []model.Job
	if err := tc.DB.Order("date_added DESC, id DESC").Find(&jobs).Error; err != nil {
		log.Printf("trophy engine: failed to fetch jobs for check: %v", err)
		return
	}
	tc.Engine.Check(jobs)
}
