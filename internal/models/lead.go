package models

import "time"

// Lead statuses — the six pipeline stages.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQualified = "QUALIFIED"
	LeadStatusScheduled = "SCHEDULED"
	LeadStatusConverted = "CONVERTED"
	LeadStatusLost      = "LOST"
)

// PipelineStages is the canonical stage order for board views and stats.
var PipelineStages = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusScheduled,
	LeadStatusConverted,
	LeadStatusLost,
}

func IsLeadStatus(s string) bool {
	for _, st := range PipelineStages {
		if st == s {
			return true
		}
	}
	return false
}

type Lead struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Source   string  `json:"source"`
	Status   string  `json:"status"`
	Score    int     `json:"score"`
	Category string  `json:"category"` // derived from Score, never stored
	Message  *string `json:"message,omitempty"`

	WishlistID *string `json:"wishlistId,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`

	// tracking metadata, write-once at capture
	UTMSource   *string `json:"utmSource,omitempty"`
	UTMMedium   *string `json:"utmMedium,omitempty"`
	UTMCampaign *string `json:"utmCampaign,omitempty"`
	Referrer    *string `json:"referrer,omitempty"`
	IPAddress   *string `json:"ipAddress,omitempty"`
	UserAgent   *string `json:"userAgent,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ContactedAt *time.Time `json:"contactedAt,omitempty"`
	ConvertedAt *time.Time `json:"convertedAt,omitempty"`
}

// LeadNote is append-only; notes are never edited or deleted.
type LeadNote struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"-"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type LeadStats struct {
	Total      int     `json:"total"`
	New        int     `json:"new"`
	Contacted  int     `json:"contacted"`
	Qualified  int     `json:"qualified"`
	Scheduled  int     `json:"scheduled"`
	Converted  int     `json:"converted"`
	Lost       int     `json:"lost"`
	Hot        int     `json:"hot"`
	Warm       int     `json:"warm"`
	Cold       int     `json:"cold"`
	AvgScore   float64 `json:"avgScore"`
	Last30Days int     `json:"last30Days"`
}
