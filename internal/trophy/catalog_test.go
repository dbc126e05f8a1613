package trophy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

func jobsWithStatuses(statuses ...string) []m.Job {
	jobs := make([]m.Job, 0, len(statuses))
	for i, status := range statuses {
		jobs = append(jobs, m.Job{
			ID:       uint(i + 1),
			Company:  "Company",
			Position: "Position",
			Status:   status,
		})
	}
	return jobs
}

func TestComputeStats(t *testing.T) {
	jobs := jobsWithStatuses(
		m.StatusApplied,
		m.StatusInReview,
		m.StatusInInterview,
		m.StatusTechnicalRound,
		m.StatusFinalRound,
		m.StatusOffer,
		m.StatusRejected,
	)

	stats := ComputeStats(jobs)

	assert.Equal(t, 7, stats.Applications)
	assert.Equal(t, 4, stats.Interviews)
	assert.Equal(t, 1, stats.TechnicalRounds)
	assert.Equal(t, 1, stats.Offers)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestLookup(t *testing.T) {
	def, ok := Lookup("first_steps")
	assert.True(t, ok)
	assert.Equal(t, "First Steps", def.Name)
	assert.Equal(t, 1, def.Requirement)

	_, ok = Lookup("no_such_trophy")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	offers := ByCategory(CategoryOffers)
	assert.Len(t, offers, 1)
	assert.Equal(t, "offer_magnet", offers[0].ID)

	assert.Empty(t, ByCategory("unknown"))
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, def := range Catalog {
		_, dup := seen[def.ID]
		assert.False(t, dup, "duplicate trophy id %s", def.ID)
		seen[def.ID] = struct{}{}
	}
}

func TestProgress_TechnicalAceReadsTechnicalRounds(t *testing.T) {
	stats := Stats{Interviews: 8, TechnicalRounds: 3}

	ace, _ := Lookup(TechnicalAceID)
	assert.Equal(t, 3, Progress(stats, ace))

	expert, _ := Lookup("interview_expert")
	assert.Equal(t, 8, Progress(stats, expert))
}

func TestProgress_SpecialCategoryIsBinary(t *testing.T) {
	master, _ := Lookup("career_master")

	assert.Equal(t, 0, Progress(Stats{}, master))
	assert.Equal(t, 1, Progress(Stats{Offers: 1}, master))
	assert.Equal(t, 1, Progress(Stats{Offers: 4}, master))
}

func TestProgress_UnknownCategory(t *testing.T) {
	def := Definition{ID: "mystery", Category: "mystery", Requirement: 3}
	assert.Equal(t, 0, Progress(Stats{Applications: 10}, def))
}

func TestClampedProgress(t *testing.T) {
	def, _ := Lookup("getting_started") // requires 10 applications

	assert.Equal(t, 0, ClampedProgress(Stats{}, def))
	assert.Equal(t, 7, ClampedProgress(Stats{Applications: 7}, def))
	assert.Equal(t, 10, ClampedProgress(Stats{Applications: 25}, def))
}
