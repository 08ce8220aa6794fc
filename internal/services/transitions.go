package services

import "jewelcms/internal/models"

// TransitionRule decides whether a lead may move between two stages.
// The board UI lets any card land in any column, so the default permits
// everything; strict mode enforces the forward pipeline below.
type TransitionRule func(from, to string) bool

func AllowAnyTransition(from, to string) bool {
	return models.IsLeadStatus(to)
}

// Forward moves only, LOST reachable from anywhere, CONVERTED terminal.
var pipelineTransitions = map[string]map[string]bool{
	models.LeadStatusNew:       {models.LeadStatusContacted: true, models.LeadStatusQualified: true},
	models.LeadStatusContacted: {models.LeadStatusQualified: true, models.LeadStatusScheduled: true},
	models.LeadStatusQualified: {models.LeadStatusScheduled: true, models.LeadStatusConverted: true},
	models.LeadStatusScheduled: {models.LeadStatusConverted: true},
	models.LeadStatusConverted: {},
	models.LeadStatusLost:      {models.LeadStatusNew: true},
}

func StrictPipelineTransition(from, to string) bool {
	if !models.IsLeadStatus(to) {
		return false
	}
	if to == models.LeadStatusLost {
		return from != models.LeadStatusLost
	}
	if from == "" {
		// nothing recorded yet — allow any entry point
		return true
	}
	nexts, ok := pipelineTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}
