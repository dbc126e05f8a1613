// Package trophy implement the achievement catalog and the engine that
// reconciles live job statistics against the persisted unlock set.
package trophy

import (
	m "github.com/syedhameedmohamed/simple-job-tracker/internal/model"
)

var (
	// TierBronze is the most common achievement tier
	TierBronze = "bronze"
	// TierSilver is the mid achievement tier
	TierSilver = "silver"
	// TierGold is the high achievement tier
	TierGold = "gold"
	// TierPlatinum is the rarest achievement tier
	TierPlatinum = "platinum"
)

var (
	// CategoryApplications counts every tracked job
	CategoryApplications = "applications"
	// CategoryInterviews counts jobs that reached an interview stage
	CategoryInterviews = "interviews"
	// CategoryOffers counts jobs with an offer
	CategoryOffers = "offers"
	// CategorySpecial is satisfied once any offer exists
	CategorySpecial = "special"
)

// TechnicalAceID is the interviews trophy that reads the technical-round
// counter instead of the interview counter.
const TechnicalAceID = "technical_ace"

// Definition is a static achievement definition. The catalog is immutable;
// unlock state lives in the database, never here.
type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        string `json:"type"`
	Requirement int    `json:"requirement"`
	Category    string `json:"category"`
	Rarity      int    `json:"rarity"`
}

// Catalog is the full set of achievement definitions
var Catalog = []Definition{
	// Bronze
	{ID: "first_steps", Name: "First Steps", Description: "Submit your first job application", Tier: TierBronze, Requirement: 1, Category: CategoryApplications, Rarity: 95},
	{ID: "getting_started", Name: "Getting Started", Description: "Apply to 10 jobs", Tier: TierBronze, Requirement: 10, Category: CategoryApplications, Rarity: 85},
	{ID: "building_momentum", Name: "Building Momentum", Description: "Apply to 20 jobs", Tier: TierBronze, Requirement: 20, Category: CategoryApplications, Rarity: 75},
	{ID: "persistent_hunter", Name: "Persistent Hunter", Description: "Apply to 30 jobs", Tier: TierBronze, Requirement: 30, Category: CategoryApplications, Rarity: 65},
	{ID: "job_seeker", Name: "Job Seeker", Description: "Apply to 40 jobs", Tier: TierBronze, Requirement: 40, Category: CategoryApplications, Rarity: 55},

	// Silver
	{ID: "half_century", Name: "Half Century", Description: "Apply to 50 jobs", Tier: TierSilver, Requirement: 50, Category: CategoryApplications, Rarity: 45},
	{ID: "interview_ready", Name: "Interview Ready", Description: "Get your first interview", Tier: TierSilver, Requirement: 1, Category: CategoryInterviews, Rarity: 40},
	{ID: TechnicalAceID, Name: "Technical Ace", Description: "Complete 5 technical rounds", Tier: TierSilver, Requirement: 5, Category: CategoryInterviews, Rarity: 35},
	{ID: "networking_pro", Name: "Networking Pro", Description: "Apply to 75 jobs", Tier: TierSilver, Requirement: 75, Category: CategoryApplications, Rarity: 30},

	// Gold
	{ID: "century_club", Name: "Century Club", Description: "Apply to 100 jobs", Tier: TierGold, Requirement: 100, Category: CategoryApplications, Rarity: 25},
	{ID: "interview_expert", Name: "Interview Expert", Description: "Complete 10 interviews", Tier: TierGold, Requirement: 10, Category: CategoryInterviews, Rarity: 20},
	{ID: "offer_magnet", Name: "Offer Magnet", Description: "Receive your first offer", Tier: TierGold, Requirement: 1, Category: CategoryOffers, Rarity: 15},
	{ID: "triple_digits", Name: "Triple Digits", Description: "Apply to 150 jobs", Tier: TierGold, Requirement: 150, Category: CategoryApplications, Rarity: 10},

	// Platinum
	{ID: "career_master", Name: "Career Master", Description: "Land your dream job", Tier: TierPlatinum, Requirement: 1, Category: CategorySpecial, Rarity: 5},
}

// Lookup returns the definition for the given trophy id
func Lookup(id string) (Definition, bool) {
	for _, def := range Catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// ByCategory returns every definition in the given category, in catalog order
func ByCategory(category string) []Definition {
	defs := []Definition{}
	for _, def := range Catalog {
		if def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}

// Stats are the derived counters a trophy's progress is read from
type Stats struct {
	Applications    int `json:"applications"`
	Interviews      int `json:"interviews"`
	TechnicalRounds int `json:"technicalRounds"`
	Offers          int `json:"offers"`
}

// ComputeStats derives the trophy counters from the current job list
func ComputeStats(jobs []m.Job) Stats {
	stats := Stats{Applications: len(jobs)}
	for _, job := range jobs {
		switch job.Status {
		case m.StatusInInterview, m.StatusTechnicalRound, m.StatusFinalRound, m.StatusOffer:
			stats.Interviews++
		}
		if job.Status == m.StatusTechnicalRound {
			stats.TechnicalRounds++
		}
		if job.Status == m.StatusOffer {
			stats.Offers++
		}
	}
	return stats
}

// progressSelectors maps a category to the counter it reads, set up once from
// the static catalog shape.
var progressSelectors = map[string]func(Stats, Definition) int{
	CategoryApplications: func(s Stats, _ Definition) int { return s.Applications },
	CategoryInterviews: func(s Stats, def Definition) int {
		if def.ID == TechnicalAceID {
			return s.TechnicalRounds
		}
		return s.Interviews
	},
	CategoryOffers: func(s Stats, _ Definition) int { return s.Offers },
	CategorySpecial: func(s Stats, _ Definition) int {
		if s.Offers > 0 {
			return 1
		}
		return 0
	},
}

// Progress returns the raw progress of a definition against the given stats.
// Unknown categories report zero progress.
func Progress(stats Stats, def Definition) int {
	selector, ok := progressSelectors[def.Category]
	if !ok {
		return 0
	}
	return selector(stats, def)
}

// ClampedProgress returns progress clamped to [0, requirement]
func ClampedProgress(stats Stats, def Definition) int {
	progress := Progress(stats, def)
	if progress < 0 {
		return 0
	}
	if progress > def.Requirement {
		return def.Requirement
	}
	return progress
}
