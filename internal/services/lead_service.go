package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"jewelcms/internal/models"
	"jewelcms/internal/scoring"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyNote         = errors.New("note text is required")
)

// LeadStore is what the service needs from the leads table.
type LeadStore interface {
	Create(lead *models.Lead) error
	GetByID(id string) (*models.Lead, error)
	Filter(status string, limit int, sort string) ([]*models.Lead, error)
	UpdateStatus(id, status string, contactedAt, convertedAt *time.Time) error
	UpdateAssignment(id string, assignedTo *string) error
	CountByStatus() (map[string]int, error)
	ScoreFacts(hotMin, warmMin int) (hot, warm, cold int, avg float64, err error)
	CountCreatedSince(since time.Time) (int, error)
}

type LeadNoteStore interface {
	Create(note *models.LeadNote) error
	ListByLead(leadID string) ([]models.LeadNote, error)
}

// LeadNotifier fires the configured channels when a lead is captured.
// Failures are logged, never propagated: losing an alert must not lose
// the lead.
type LeadNotifier interface {
	LeadCaptured(lead *models.Lead)
}

type LeadService struct {
	Repo       LeadStore
	Notes      LeadNoteStore
	Notifier   LeadNotifier
	Transition TransitionRule
}

func NewLeadService(repo LeadStore, notes LeadNoteStore, notifier LeadNotifier, rule TransitionRule) *LeadService {
	if rule == nil {
		rule = AllowAnyTransition
	}
	return &LeadService{Repo: repo, Notes: notes, Notifier: notifier, Transition: rule}
}

// CaptureInput is the public lead-capture payload. Tracking fields are
// recorded once here and never updated afterwards.
type CaptureInput struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	Source      string  `json:"source"`
	Message     *string `json:"message"`
	WishlistID  *string `json:"wishlistId"`
	UTMSource   *string `json:"utmSource"`
	UTMMedium   *string `json:"utmMedium"`
	UTMCampaign *string `json:"utmCampaign"`
	Referrer    *string `json:"referrer"`
	IPAddress   *string `json:"ipAddress"`
	UserAgent   *string `json:"userAgent"`
}

// Capture creates a lead with a server-computed score. The admin side only
// ever reads scores.
func (s *LeadService) Capture(in CaptureInput) (*models.Lead, error) {
	now := time.Now()
	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = "contact_form"
	}

	score := scoring.Compute(scoring.CaptureInput{
		Source:      source,
		HasPhone:    in.Phone != nil && *in.Phone != "",
		HasMessage:  in.Message != nil && strings.TrimSpace(*in.Message) != "",
		HasWishlist: in.WishlistID != nil && *in.WishlistID != "",
		HasUTM:      in.UTMSource != nil && *in.UTMSource != "",
	})

	lead := &models.Lead{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       in.Phone,
		Source:      source,
		Status:      models.LeadStatusNew,
		Score:       score,
		Message:     in.Message,
		WishlistID:  in.WishlistID,
		UTMSource:   in.UTMSource,
		UTMMedium:   in.UTMMedium,
		UTMCampaign: in.UTMCampaign,
		Referrer:    in.Referrer,
		IPAddress:   in.IPAddress,
		UserAgent:   in.UserAgent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(lead); err != nil {
		return nil, err
	}
	s.decorate(lead)

	if s.Notifier != nil {
		s.Notifier.LeadCaptured(lead)
	}
	return lead, nil
}

func (s *LeadService) List(status string, limit int, sort string) ([]*models.Lead, error) {
	if status != "" && !models.IsLeadStatus(status) {
		return nil, ErrInvalidStatus
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	leads, err := s.Repo.Filter(status, limit, sort)
	if err != nil {
		return nil, err
	}
	for _, l := range leads {
		s.decorate(l)
	}
	return leads, nil
}

func (s *LeadService) Get(id string) (*models.Lead, []models.LeadNote, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if lead == nil {
		return nil, nil, ErrLeadNotFound
	}
	s.decorate(lead)

	notes, err := s.Notes.ListByLead(id)
	if err != nil {
		return nil, nil, err
	}
	if notes == nil {
		notes = []models.LeadNote{}
	}
	return lead, notes, nil
}

// UpdateStatus moves a lead between pipeline stages. First entry into
// CONTACTED/CONVERTED stamps the matching timestamp; repeats keep the
// original (write-once in the repository).
func (s *LeadService) UpdateStatus(id, to string) (*models.Lead, error) {
	if !models.IsLeadStatus(to) {
		return nil, ErrInvalidStatus
	}
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if lead.Status != to && !s.Transition(lead.Status, to) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	var contactedAt, convertedAt *time.Time
	if to == models.LeadStatusContacted {
		contactedAt = &now
	}
	if to == models.LeadStatusConverted {
		convertedAt = &now
	}
	if err := s.Repo.UpdateStatus(id, to, contactedAt, convertedAt); err != nil {
		return nil, err
	}
	log.Printf("[leads][status] id=%s %s -> %s", id, lead.Status, to)

	updated, err := s.Repo.GetByID(id)
	if err != nil || updated == nil {
		return nil, err
	}
	s.decorate(updated)
	return updated, nil
}

func (s *LeadService) Assign(id string, assignedTo *string) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if assignedTo != nil && strings.TrimSpace(*assignedTo) == "" {
		assignedTo = nil // empty assignment means unassigned
	}
	if err := s.Repo.UpdateAssignment(id, assignedTo); err != nil {
		return nil, err
	}
	lead.AssignedTo = assignedTo
	lead.UpdatedAt = time.Now()
	return lead, nil
}

func (s *LeadService) AddNote(leadID, text, createdBy string) (*models.LeadNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyNote
	}
	lead, err := s.Repo.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if createdBy == "" {
		createdBy = "Admin"
	}
	note := &models.LeadNote{
		ID:        uuid.NewString(),
		LeadID:    leadID,
		Note:      text,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := s.Notes.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *LeadService) Stats() (*models.LeadStats, error) {
	byStatus, err := s.Repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	hot, warm, cold, avg, err := s.Repo.ScoreFacts(scoring.HotThreshold, scoring.WarmThreshold)
	if err != nil {
		return nil, err
	}
	last30, err := s.Repo.CountCreatedSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	stats := &models.LeadStats{
		New:        byStatus[models.LeadStatusNew],
		Contacted:  byStatus[models.LeadStatusContacted],
		Qualified:  byStatus[models.LeadStatusQualified],
		Scheduled:  byStatus[models.LeadStatusScheduled],
		Converted:  byStatus[models.LeadStatusConverted],
		Lost:       byStatus[models.LeadStatusLost],
		Hot:        hot,
		Warm:       warm,
		Cold:       cold,
		AvgScore:   avg,
		Last30Days: last30,
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	return stats, nil
}

// decorate fills the derived category; it is never stored.
func (s *LeadService) decorate(l *models.Lead) {
	l.Category = scoring.Classify(l.Score).String()
}
