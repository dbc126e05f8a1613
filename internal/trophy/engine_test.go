package trophy

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/database"
	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(t *testing.M) {
	teardownFn, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testDB = db

	t.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardownFn != nil {
		_ = teardownFn(ctx)
	}
}

// newTestEngine builds a loaded engine on an empty unlock table with fast
// notification timings and a controllable clock.
func newTestEngine(t *testing.T, now *time.Time) *Engine {
	t.Helper()
	require.NoError(t, testDB.Where("1 = 1").Delete(&m.UnlockedTrophy{}).Error)

	e := NewEngine(testDB, Config{
		NotificationStagger: time.Millisecond,
		NotificationDisplay: time.Minute,
		Now:                 func() time.Time { return *now },
	})
	require.NoError(t, e.Load())
	return e
}

func statusByID(statuses []Status, id string) Status {
	for _, s := range statuses {
		if s.ID == id {
			return s
		}
	}
	return Status{}
}

func TestCheck_GatedBeforeLoad(t *testing.T) {
	require.NoError(t, testDB.Where("1 = 1").Delete(&m.UnlockedTrophy{}).Error)
	e := NewEngine(testDB, Config{})

	assert.False(t, e.Loaded())
	statuses := e.Check(jobsWithStatuses(m.StatusApplied))

	assert.Len(t, statuses, len(Catalog))
	for _, s := range statuses {
		assert.False(t, s.Unlocked)
		assert.Zero(t, s.Progress)
	}

	// The gated pass must not have persisted anything
	var count int64
	require.NoError(t, testDB.Model(&m.UnlockedTrophy{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheck_UnlocksSatisfiedTrophies(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	statuses := e.Check(jobsWithStatuses(m.StatusApplied))

	first := statusByID(statuses, "first_steps")
	assert.True(t, first.Unlocked)
	assert.Equal(t, 1, first.Progress)
	assert.Equal(t, now.Format("2006-01-02"), first.UnlockedDate)

	second := statusByID(statuses, "getting_started")
	assert.False(t, second.Unlocked)
	assert.Equal(t, 1, second.Progress)

	var record m.UnlockedTrophy
	require.NoError(t, testDB.Where("trophy_id = ?", "first_steps").First(&record).Error)
	assert.Equal(t, "First Steps", record.TrophyName)
	assert.Equal(t, TierBronze, record.TrophyType)
}

func TestCheck_RepeatPassIsIdempotent(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	jobs := jobsWithStatuses(m.StatusApplied, m.StatusOffer)
	e.Check(jobs)
	e.Check(jobs)

	var count int64
	require.NoError(t, testDB.Model(&m.UnlockedTrophy{}).Where("trophy_id = ?", "first_steps").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheck_RevokesWithinGracePeriod(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	e.Check(jobsWithStatuses(m.StatusApplied))

	// Job deleted one minute later, still inside the grace window
	now = now.Add(time.Minute)
	statuses := e.Check(nil)

	assert.False(t, statusByID(statuses, "first_steps").Unlocked)

	var count int64
	require.NoError(t, testDB.Model(&m.UnlockedTrophy{}).Where("trophy_id = ?", "first_steps").Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheck_RevocationAllowsRenotify(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	e.Check(jobsWithStatuses(m.StatusApplied))
	assert.Eventually(t, func() bool {
		return len(e.Notifications()) == 1
	}, time.Second, time.Millisecond)
	e.Dismiss(e.Notifications()[0].ID)

	// Job removed a minute later, inside the grace window
	now = now.Add(time.Minute)
	e.Check(nil)
	assert.Empty(t, e.Notifications())

	// Requirement met again after the revocation: the trophy unlocks and
	// notifies a second time
	now = now.Add(time.Minute)
	statuses := e.Check(jobsWithStatuses(m.StatusApplied))

	assert.True(t, statusByID(statuses, "first_steps").Unlocked)
	assert.Eventually(t, func() bool {
		notifications := e.Notifications()
		return len(notifications) == 1 && notifications[0].TrophyID == "first_steps"
	}, time.Second, time.Millisecond)
}

func TestCheck_PermanentAfterGracePeriod(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	e.Check(jobsWithStatuses(m.StatusApplied))

	// Well past the grace window the unlock survives a regression
	now = now.Add(DefaultGracePeriod + time.Minute)
	statuses := e.Check(nil)

	assert.True(t, statusByID(statuses, "first_steps").Unlocked)

	var count int64
	require.NoError(t, testDB.Model(&m.UnlockedTrophy{}).Where("trophy_id = ?", "first_steps").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCheck_QueuesNotificationsOnce(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	e.Check(jobsWithStatuses(m.StatusApplied, m.StatusOffer))

	// An offer counts as an interview stage too, so four trophies land,
	// staggered a millisecond apart
	assert.Eventually(t, func() bool {
		return len(e.Notifications()) == 4
	}, time.Second, 5*time.Millisecond)

	ids := map[string]bool{}
	for _, n := range e.Notifications() {
		assert.NotEmpty(t, n.ID)
		ids[n.TrophyID] = true
	}
	assert.True(t, ids["first_steps"])
	assert.True(t, ids["interview_ready"])
	assert.True(t, ids["offer_magnet"])
	assert.True(t, ids["career_master"])

	// A second pass over the same jobs must not re-notify
	e.Check(jobsWithStatuses(m.StatusApplied, m.StatusOffer))
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, e.Notifications(), 4)
}

func TestCheck_HistoricalUnlocksNeverNotify(t *testing.T) {
	require.NoError(t, testDB.Where("1 = 1").Delete(&m.UnlockedTrophy{}).Error)
	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, testDB.Create(&m.UnlockedTrophy{
		TrophyID:     "first_steps",
		TrophyName:   "First Steps",
		TrophyType:   TierBronze,
		UnlockedDate: past,
		UnlockedAt:   past,
	}).Error)

	now := time.Now()
	e := NewEngine(testDB, Config{
		NotificationStagger: time.Millisecond,
		NotificationDisplay: time.Minute,
		Now:                 func() time.Time { return now },
	})
	require.NoError(t, e.Load())

	e.Check(jobsWithStatuses(m.StatusApplied))
	time.Sleep(20 * time.Millisecond)

	assert.Empty(t, e.Notifications())
}

func TestNotification_AutoDismiss(t *testing.T) {
	now := time.Now()
	require.NoError(t, testDB.Where("1 = 1").Delete(&m.UnlockedTrophy{}).Error)

	e := NewEngine(testDB, Config{
		NotificationStagger: time.Millisecond,
		NotificationDisplay: 20 * time.Millisecond,
		Now:                 func() time.Time { return now },
	})
	require.NoError(t, e.Load())

	e.Check(jobsWithStatuses(m.StatusApplied))

	assert.Eventually(t, func() bool {
		return len(e.Notifications()) > 0
	}, time.Second, time.Millisecond)

	assert.Eventually(t, func() bool {
		return len(e.Notifications()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDismiss(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	e.Check(jobsWithStatuses(m.StatusApplied))
	assert.Eventually(t, func() bool {
		return len(e.Notifications()) == 1
	}, time.Second, time.Millisecond)

	id := e.Notifications()[0].ID
	e.Dismiss(id)
	assert.Empty(t, e.Notifications())

	// Unknown id is a no-op
	e.Dismiss("nope")
	e.Dismiss(id)
}

func TestUnlock_Manual(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	record := m.UnlockedTrophy{
		TrophyID:     "century_club",
		TrophyName:   "Century Club",
		TrophyType:   TierGold,
		UnlockedDate: now,
		UnlockedAt:   now,
	}
	created, err := e.Unlock(&record)
	assert.NoError(t, err)
	assert.True(t, created)

	duplicate := m.UnlockedTrophy{
		TrophyID:     "century_club",
		TrophyName:   "Century Club",
		TrophyType:   TierGold,
		UnlockedDate: now,
		UnlockedAt:   now,
	}
	created, err = e.Unlock(&duplicate)
	assert.NoError(t, err)
	assert.False(t, created)
}

func TestRevoke(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	record := m.UnlockedTrophy{
		TrophyID:     "half_century",
		TrophyName:   "Half Century",
		TrophyType:   TierSilver,
		UnlockedDate: now,
		UnlockedAt:   now,
	}
	_, err := e.Unlock(&record)
	require.NoError(t, err)

	found, err := e.Revoke("half_century")
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = e.Revoke("half_century")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestReset(t *testing.T) {
	now := time.Now()
	e := newTestEngine(t, &now)

	e.Check(jobsWithStatuses(m.StatusApplied, m.StatusOffer))
	require.NoError(t, e.Reset())

	var count int64
	require.NoError(t, testDB.Model(&m.UnlockedTrophy{}).Count(&count).Error)
	assert.Zero(t, count)

	// After a reset the same trophies can unlock again
	statuses := e.Check(jobsWithStatuses(m.StatusApplied))
	assert.True(t, statusByID(statuses, "first_steps").Unlocked)
}
