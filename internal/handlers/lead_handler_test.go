package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelcms/internal/models"
	"jewelcms/internal/services"
)

type stubLeadStore struct {
	lead *models.Lead
}

func (s *stubLeadStore) Create(*models.Lead) error                { return nil }
func (s *stubLeadStore) GetByID(string) (*models.Lead, error)     { return s.lead, nil }
func (s *stubLeadStore) UpdateAssignment(string, *string) error   { return nil }
func (s *stubLeadStore) CountByStatus() (map[string]int, error)   { return nil, nil }
func (s *stubLeadStore) CountCreatedSince(time.Time) (int, error) { return 0, nil }
func (s *stubLeadStore) Filter(string, int, string) ([]*models.Lead, error) {
	return nil, nil
}
func (s *stubLeadStore) UpdateStatus(string, string, *time.Time, *time.Time) error {
	return nil
}
func (s *stubLeadStore) ScoreFacts(int, int) (int, int, int, float64, error) {
	return 0, 0, 0, 0, nil
}

type stubNoteStore struct {
	created *models.LeadNote
}

func (s *stubNoteStore) Create(n *models.LeadNote) error { s.created = n; return nil }
func (s *stubNoteStore) ListByLead(string) ([]models.LeadNote, error) {
	return nil, nil
}

func newNoteRouter(notes *stubNoteStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewLeadService(&stubLeadStore{lead: &models.Lead{ID: "l1", Status: models.LeadStatusNew}}, notes, nil, nil)
	h := NewLeadHandler(svc, nil)

	r := gin.New()
	r.POST("/api/admin/leads/:id/notes", func(c *gin.Context) {
		c.Set("user_id", "u9")
		c.Set("role", "ADMIN")
		h.AddNote(c)
	})
	return r
}

func TestAddNoteUsesCreatedByFromBody(t *testing.T) {
	notes := &stubNoteStore{}
	r := newNoteRouter(notes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/leads/l1/notes",
		strings.NewReader(`{"note":"call back tomorrow","createdBy":"Aigerim"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, notes.created)
	assert.Equal(t, "call back tomorrow", notes.created.Note)
	assert.Equal(t, "Aigerim", notes.created.CreatedBy)
}

func TestAddNoteFallsBackToTokenUser(t *testing.T) {
	notes := &stubNoteStore{}
	r := newNoteRouter(notes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/leads/l1/notes",
		strings.NewReader(`{"note":"call back tomorrow"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, notes.created)
	assert.Equal(t, "u9", notes.created.CreatedBy)
}
