package trophy

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/database"
	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

// Default timings. A fresh unlock can still be revoked for GracePeriod;
// after that it is permanent even if progress later regresses.
const (
	DefaultGracePeriod         = 5 * time.Minute
	DefaultNotificationStagger = 1 * time.Second
	DefaultNotificationDisplay = 5 * time.Second
)

// engine load states
const (
	stateUninitialized = iota
	stateLoaded
)

// Config tunes the engine timings. Zero values fall back to the defaults;
// tests shrink them so grace-period behavior can be exercised quickly.
type Config struct {
	GracePeriod         time.Duration
	NotificationStagger time.Duration
	NotificationDisplay time.Duration

	// Now is the clock used for grace-period comparisons
	Now func() time.Time
}

// Status is a catalog entry combined with live unlock state, as returned to
// the presentation layer.
type Status struct {
	Definition
	Unlocked     bool   `json:"unlocked"`
	UnlockedDate string `json:"unlockedDate,omitempty"`
	Progress     int    `json:"progress"`
}

// Notification is a pending unlock toast
type Notification struct {
	ID         string    `json:"id"`
	TrophyID   string    `json:"trophy_id"`
	TrophyName string    `json:"trophy_name"`
	TrophyType string    `json:"trophy_type"`
	Timestamp  time.Time `json:"timestamp"`
}

// Engine reconciles live job statistics against the persisted unlock set.
// It keeps the transient session state (unlocked ids, shown notifications,
// pending toasts); durable unlock state lives in the database.
type Engine struct {
	db  *database.DBinstanceStruct
	cfg Config

	mu            sync.Mutex
	state         int
	unlocked      map[string]time.Time
	shown         map[string]struct{}
	notifications []Notification
	dismissTimers map[string]*time.Timer
}

// NewEngine constructs an engine in the uninitialized state. No unlock or
// revoke decision is made until Load has succeeded once.
func NewEngine(db *database.DBinstanceStruct, cfg Config) *Engine {
	if cfg.GracePeriod == 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	if cfg.NotificationStagger == 0 {
		cfg.NotificationStagger = DefaultNotificationStagger
	}
	if cfg.NotificationDisplay == 0 {
		cfg.NotificationDisplay = DefaultNotificationDisplay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		db:            db,
		cfg:           cfg,
		state:         stateUninitialized,
		unlocked:      map[string]time.Time{},
		shown:         map[string]struct{}{},
		dismissTimers: map[string]*time.Timer{},
	}
}

// Load reads the persisted unlock set and transitions the engine to loaded.
// Every trophy already unlocked is marked as shown so historical unlocks never
// re-notify. Safe to call again; a repeat load refreshes the cached set.
func (e *Engine) Load() error {
	var records []m.UnlockedTrophy
	if err := e.db.Find(&records).Error; err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.unlocked = make(map[string]time.Time, len(records))
	for _, record := range records {
		e.unlocked[record.TrophyID] = record.UnlockedAt
		e.shown[record.TrophyID] = struct{}{}
	}
	e.state = stateLoaded
	return nil
}

// Loaded reports whether the persisted set has been loaded at least once
func (e *Engine) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateLoaded
}

// Check runs one reconciliation pass against the given job list and returns
// the full catalog with progress and unlock state. Before the first
// successful Load it returns the catalog unmodified and performs no writes.
func (e *Engine) Check(jobs []m.Job) []Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateLoaded {
		return lockedSnapshot()
	}

	stats := ComputeStats(jobs)
	now := e.cfg.Now()

	// Reconcile the session cache against the persisted set. On failure keep
	// the cached copy; the next refresh corrects it.
	var records []m.UnlockedTrophy
	if err := e.db.Find(&records).Error; err != nil {
		log.Printf("trophy engine: failed to refresh unlocked set: %v", err)
	} else {
		e.unlocked = make(map[string]time.Time, len(records))
		for _, record := range records {
			e.unlocked[record.TrophyID] = record.UnlockedAt
		}
	}

	e.revokeLapsed(stats, now)
	newly := e.unlockSatisfied(stats, now)
	e.queueNotifications(newly, now)

	statuses := make([]Status, 0, len(Catalog))
	today := now.Format("2006-01-02")
	for _, def := range Catalog {
		_, isUnlocked := e.unlocked[def.ID]
		meets := Progress(stats, def) >= def.Requirement
		status := Status{
			Definition: def,
			Unlocked:   isUnlocked || meets,
			Progress:   ClampedProgress(stats, def),
		}
		if status.Unlocked {
			status.UnlockedDate = today
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// revokeLapsed deletes unlocks that are still inside the grace window but no
// longer meet their requirement. Unlocks older than the window are permanent.
func (e *Engine) revokeLapsed(stats Stats, now time.Time) {
	for id, unlockedAt := range e.unlocked {
		if now.Sub(unlockedAt) >= e.cfg.GracePeriod {
			continue
		}
		def, ok := Lookup(id)
		if !ok {
			continue
		}
		if Progress(stats, def) >= def.Requirement {
			continue
		}

		if err := e.db.Where("trophy_id = ?", id).Delete(&m.UnlockedTrophy{}).Error; err != nil {
			log.Printf("trophy engine: failed to revoke %s: %v", id, err)
			continue
		}
		delete(e.unlocked, id)
		delete(e.shown, id)
	}
}

// unlockSatisfied persists every definition that newly meets its requirement
// and returns them in discovery order. A concurrent duplicate insert is a
// silent no-op thanks to the trophy_id uniqueness constraint.
func (e *Engine) unlockSatisfied(stats Stats, now time.Time) []Definition {
	newly := []Definition{}
	for _, def := range Catalog {
		if Progress(stats, def) < def.Requirement {
			continue
		}
		if _, already := e.unlocked[def.ID]; already {
			continue
		}

		record := m.UnlockedTrophy{
			TrophyID:     def.ID,
			TrophyName:   def.Name,
			TrophyType:   def.Tier,
			UnlockedDate: now,
			UnlockedAt:   now,
		}
		result := e.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
		if result.Error != nil {
			log.Printf("trophy engine: failed to unlock %s: %v", def.ID, result.Error)
			continue
		}

		e.unlocked[def.ID] = now
		if result.RowsAffected > 0 {
			newly = append(newly, def)
		}
	}
	return newly
}

// queueNotifications schedules toasts for newly unlocked trophies, staggered
// in discovery order. A trophy notifies at most once per session.
// Caller must hold e.mu.
func (e *Engine) queueNotifications(newly []Definition, now time.Time) {
	delay := time.Duration(0)
	for _, def := range newly {
		if _, alreadyShown := e.shown[def.ID]; alreadyShown {
			continue
		}
		e.shown[def.ID] = struct{}{}

		notification := Notification{
			ID:         uuid.NewString(),
			TrophyID:   def.ID,
			TrophyName: def.Name,
			TrophyType: def.Tier,
			Timestamp:  now,
		}
		stagger := delay
		delay += e.cfg.NotificationStagger

		time.AfterFunc(stagger, func() {
			e.mu.Lock()
			e.notifications = append(e.notifications, notification)
			e.dismissTimers[notification.ID] = time.AfterFunc(e.cfg.NotificationDisplay, func() {
				e.Dismiss(notification.ID)
			})
			e.mu.Unlock()
		})
	}
}

// Notifications returns the toasts currently on display
func (e *Engine) Notifications() []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Notification, len(e.notifications))
	copy(out, e.notifications)
	return out
}

// Dismiss removes a toast and cancels its auto-dismiss countdown. Dismissing
// an unknown or already dismissed id is a no-op.
func (e *Engine) Dismiss(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if timer, ok := e.dismissTimers[id]; ok {
		timer.Stop()
		delete(e.dismissTimers, id)
	}
	for i, notification := range e.notifications {
		if notification.ID == id {
			e.notifications = append(e.notifications[:i], e.notifications[i+1:]...)
			return
		}
	}
}

// Unlock persists a manual unlock. It reports whether a new record was
// created; a duplicate is not an error.
func (e *Engine) Unlock(record *m.UnlockedTrophy) (bool, error) {
	result := e.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if result.RowsAffected == 0 {
		return false, nil
	}
	if e.state == stateLoaded {
		e.unlocked[record.TrophyID] = record.UnlockedAt
	}
	return true, nil
}

// Revoke deletes a specific unlock and drops it from the session caches.
// It reports whether a persisted record existed.
func (e *Engine) Revoke(trophyID string) (bool, error) {
	result := e.db.Where("trophy_id = ?", trophyID).Delete(&m.UnlockedTrophy{})
	if result.Error != nil {
		return false, result.Error
	}

	e.mu.Lock()
	delete(e.unlocked, trophyID)
	delete(e.shown, trophyID)
	e.mu.Unlock()

	return result.RowsAffected > 0, nil
}

// Reset deletes every persisted unlock and clears the session state
func (e *Engine) Reset() error {
	if err := e.db.Where("1 = 1").Delete(&m.UnlockedTrophy{}).Error; err != nil {
		return err
	}

	e.mu.Lock()
	e.unlocked = map[string]time.Time{}
	e.shown = map[string]struct{}{}
	e.mu.Unlock()

	return nil
}

// lockedSnapshot is the catalog with zero progress and nothing unlocked,
// returned while the persisted set has not been loaded yet.
func lockedSnapshot() []Status {
	statuses := make([]Status, 0, len(Catalog))
	for _, def := range Catalog {
		statuses = append(statuses, Status{Definition: def})
	}
	return statuses
}
