package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewelcms/internal/models"
)

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(lead *models.Lead) error {
	return m.Called(lead).Error(0)
}

func (m *MockLeadStore) GetByID(id string) (*models.Lead, error) {
	args := m.Called(id)
	lead, _ := args.Get(0).(*models.Lead)
	return lead, args.Error(1)
}

func (m *MockLeadStore) Filter(status string, limit int, sort string) ([]*models.Lead, error) {
	args := m.Called(status, limit, sort)
	leads, _ := args.Get(0).([]*models.Lead)
	return leads, args.Error(1)
}

func (m *MockLeadStore) UpdateStatus(id, status string, contactedAt, convertedAt *time.Time) error {
	return m.Called(id, status, contactedAt, convertedAt).Error(0)
}

func (m *MockLeadStore) UpdateAssignment(id string, assignedTo *string) error {
	return m.Called(id, assignedTo).Error(0)
}

func (m *MockLeadStore) CountByStatus() (map[string]int, error) {
	args := m.Called()
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}

func (m *MockLeadStore) ScoreFacts(hotMin, warmMin int) (int, int, int, float64, error) {
	args := m.Called(hotMin, warmMin)
	return args.Int(0), args.Int(1), args.Int(2), args.Get(3).(float64), args.Error(4)
}

func (m *MockLeadStore) CountCreatedSince(since time.Time) (int, error) {
	args := m.Called(since)
	return args.Int(0), args.Error(1)
}

type MockLeadNoteStore struct {
	mock.Mock
}

func (m *MockLeadNoteStore) Create(note *models.LeadNote) error {
	return m.Called(note).Error(0)
}

func (m *MockLeadNoteStore) ListByLead(leadID string) ([]models.LeadNote, error) {
	args := m.Called(leadID)
	notes, _ := args.Get(0).([]models.LeadNote)
	return notes, args.Error(1)
}

func TestCaptureComputesScoreAndCategory(t *testing.T) {
	store := new(MockLeadStore)
	store.On("Create", mock.AnythingOfType("*models.Lead")).Return(nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, nil)

	phone := "+77001112233"
	msg := "Looking for an engagement ring"
	wishlist := "wl-1"
	lead, err := svc.Capture(CaptureInput{
		Name:       "Aigerim",
		Email:      "aigerim@example.com",
		Phone:      &phone,
		Message:    &msg,
		WishlistID: &wishlist,
		Source:     "wishlist_share",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	// base 10 + wishlist_share 25 + phone 15 + message 15 + wishlist 25
	assert.Equal(t, 90, lead.Score)
	assert.Equal(t, "Hot", lead.Category)
	store.AssertExpectations(t)
}

func TestCaptureDefaultsSource(t *testing.T) {
	store := new(MockLeadStore)
	var saved *models.Lead
	store.On("Create", mock.AnythingOfType("*models.Lead")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.Lead)
	}).Return(nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, nil)
	_, err := svc.Capture(CaptureInput{Name: "X", Email: "x@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "contact_form", saved.Source)
}

func TestUpdateStatusStampsContactedAt(t *testing.T) {
	store := new(MockLeadStore)
	store.On("GetByID", "l1").Return(&models.Lead{ID: "l1", Status: models.LeadStatusNew, Score: 50}, nil).Once()
	store.On("UpdateStatus", "l1", models.LeadStatusContacted,
		mock.AnythingOfType("*time.Time"), (*time.Time)(nil)).Return(nil)
	store.On("GetByID", "l1").Return(&models.Lead{ID: "l1", Status: models.LeadStatusContacted, Score: 50}, nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, nil)
	lead, err := svc.UpdateStatus("l1", models.LeadStatusContacted)
	require.NoError(t, err)

	assert.Equal(t, models.LeadStatusContacted, lead.Status)
	assert.Equal(t, "Warm", lead.Category)
	store.AssertExpectations(t)
}

func TestUpdateStatusSameStageSkipsTransitionRule(t *testing.T) {
	store := new(MockLeadStore)
	store.On("GetByID", "l1").Return(&models.Lead{ID: "l1", Status: models.LeadStatusConverted}, nil)
	store.On("UpdateStatus", "l1", models.LeadStatusConverted,
		(*time.Time)(nil), mock.AnythingOfType("*time.Time")).Return(nil)

	// strict rule forbids CONVERTED -> CONVERTED, but same-stage writes
	// are idempotent and bypass the rule
	svc := NewLeadService(store, new(MockLeadNoteStore), nil, StrictPipelineTransition)
	_, err := svc.UpdateStatus("l1", models.LeadStatusConverted)
	require.NoError(t, err)
}

func TestUpdateStatusRejectsIllegalStrictMove(t *testing.T) {
	store := new(MockLeadStore)
	store.On("GetByID", "l1").Return(&models.Lead{ID: "l1", Status: models.LeadStatusConverted}, nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, StrictPipelineTransition)
	_, err := svc.UpdateStatus("l1", models.LeadStatusNew)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusUnknownStage(t *testing.T) {
	svc := NewLeadService(new(MockLeadStore), new(MockLeadNoteStore), nil, nil)
	_, err := svc.UpdateStatus("l1", "ON_HOLD")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusMissingLead(t *testing.T) {
	store := new(MockLeadStore)
	store.On("GetByID", "ghost").Return(nil, nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, nil)
	_, err := svc.UpdateStatus("ghost", models.LeadStatusContacted)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestAssignEmptyStringUnassigns(t *testing.T) {
	store := new(MockLeadStore)
	store.On("GetByID", "l1").Return(&models.Lead{ID: "l1", Status: models.LeadStatusNew}, nil)
	store.On("UpdateAssignment", "l1", (*string)(nil)).Return(nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, nil)
	empty := "  "
	lead, err := svc.Assign("l1", &empty)
	require.NoError(t, err)
	assert.Nil(t, lead.AssignedTo)
	store.AssertExpectations(t)
}

func TestAddNoteRejectsBlank(t *testing.T) {
	svc := NewLeadService(new(MockLeadStore), new(MockLeadNoteStore), nil, nil)
	_, err := svc.AddNote("l1", "   ", "u1")
	assert.ErrorIs(t, err, ErrEmptyNote)
}

func TestAddNote(t *testing.T) {
	store := new(MockLeadStore)
	store.On("GetByID", "l1").Return(&models.Lead{ID: "l1"}, nil)
	notes := new(MockLeadNoteStore)
	notes.On("Create", mock.AnythingOfType("*models.LeadNote")).Return(nil)

	svc := NewLeadService(store, notes, nil, nil)
	note, err := svc.AddNote("l1", "called, call back Friday", "u1")
	require.NoError(t, err)
	assert.Equal(t, "l1", note.LeadID)
	assert.Equal(t, "u1", note.CreatedBy)
	notes.AssertExpectations(t)
}

func TestStatsAggregation(t *testing.T) {
	store := new(MockLeadStore)
	store.On("CountByStatus").Return(map[string]int{
		models.LeadStatusNew:       3,
		models.LeadStatusContacted: 2,
		models.LeadStatusConverted: 1,
	}, nil)
	store.On("ScoreFacts", 61, 31).Return(2, 3, 1, 48.5, nil)
	store.On("CountCreatedSince", mock.AnythingOfType("time.Time")).Return(4, nil)

	svc := NewLeadService(store, new(MockLeadNoteStore), nil, nil)
	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.New)
	assert.Equal(t, 2, stats.Hot)
	assert.Equal(t, 3, stats.Warm)
	assert.Equal(t, 1, stats.Cold)
	assert.Equal(t, 48.5, stats.AvgScore)
	assert.Equal(t, 4, stats.Last30Days)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewLeadService(new(MockLeadStore), new(MockLeadNoteStore), nil, nil)
	_, err := svc.List("BOGUS", 10, "createdAt_desc")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
