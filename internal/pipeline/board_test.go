package pipeline

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelcms/internal/client"
	"jewelcms/internal/models"
)

type fakeAPI struct {
	leads      []*models.Lead
	listCalls  int32
	putCalls   int32
	failPuts   bool
	lastPutID  string
	lastStatus string
}

func (f *fakeAPI) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/leads":
			atomic.AddInt32(&f.listCalls, 1)
			json.NewEncoder(w).Encode(map[string]any{"leads": f.leads})

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/admin/leads/"):
			atomic.AddInt32(&f.putCalls, 1)
			if f.failPuts {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
				return
			}
			id := strings.TrimPrefix(r.URL.Path, "/api/admin/leads/")
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			f.lastPutID = id
			f.lastStatus = body["status"]
			for _, l := range f.leads {
				if l.ID == id {
					l.Status = body["status"]
					json.NewEncoder(w).Encode(map[string]any{"lead": l})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "lead not found"})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func lead(id, status string, score int) *models.Lead {
	return &models.Lead{ID: id, Name: "Lead " + id, Email: id + "@example.com", Status: status, Score: score}
}

func newBoard(t *testing.T, api *fakeAPI) (*Board, *fakeAPI) {
	t.Helper()
	srv := api.server()
	t.Cleanup(srv.Close)
	b := NewBoard(client.New(srv.URL))
	require.NoError(t, b.Load())
	return b, api
}

func TestBoardLoadBucketsByStatus(t *testing.T) {
	b, _ := newBoard(t, &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
		lead("b", models.LeadStatusNew, 70),
		lead("c", models.LeadStatusContacted, 40),
	}})

	assert.Len(t, b.Column(models.LeadStatusNew), 2)
	assert.Len(t, b.Column(models.LeadStatusContacted), 1)
	assert.Empty(t, b.Column(models.LeadStatusConverted))
	assert.Equal(t, 2, b.Count(models.LeadStatusNew))
}

func TestBoardUnbucketedLeadsAreNotDropped(t *testing.T) {
	b, _ := newBoard(t, &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
		lead("z", "ARCHIVED_LEGACY", 10),
	}})

	unbucketed := b.Unbucketed()
	require.Len(t, unbucketed, 1)
	assert.Equal(t, "z", unbucketed[0].ID)
}

func TestDropOnOwnColumnSendsNothing(t *testing.T) {
	b, api := newBoard(t, &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
	}})
	listCallsAfterLoad := api.listCalls

	b.BeginDrag("a")
	b.DragOver(models.LeadStatusNew)
	require.NoError(t, b.Drop(models.LeadStatusNew))

	assert.EqualValues(t, 0, api.putCalls)
	assert.Equal(t, listCallsAfterLoad, api.listCalls, "self-drop must not refetch")
	assert.Len(t, b.Column(models.LeadStatusNew), 1)
	assert.Empty(t, b.Dragging())
}

func TestDropCommitsExactlyOnePut(t *testing.T) {
	b, api := newBoard(t, &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
		lead("b", models.LeadStatusNew, 70),
	}})

	b.BeginDrag("a")
	b.DragOver(models.LeadStatusContacted)
	require.NoError(t, b.Drop(models.LeadStatusContacted))

	assert.EqualValues(t, 1, api.putCalls)
	assert.Equal(t, "a", api.lastPutID)
	assert.Equal(t, models.LeadStatusContacted, api.lastStatus)

	// only the moved card changed
	assert.Len(t, b.Column(models.LeadStatusNew), 1)
	require.Len(t, b.Column(models.LeadStatusContacted), 1)
	assert.Equal(t, "a", b.Column(models.LeadStatusContacted)[0].ID)
	assert.Equal(t, "b", b.Column(models.LeadStatusNew)[0].ID)
}

func TestFailedDropReloadsBoard(t *testing.T) {
	api := &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
	}}
	b, _ := newBoard(t, api)
	api.failPuts = true
	listCallsAfterLoad := api.listCalls

	b.BeginDrag("a")
	err := b.Drop(models.LeadStatusConverted)

	require.Error(t, err)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	assert.EqualValues(t, listCallsAfterLoad+1, api.listCalls, "failure must trigger a full reload")
	// server never applied the move, reload shows the card where it was
	assert.Len(t, b.Column(models.LeadStatusNew), 1)
	assert.Empty(t, b.Column(models.LeadStatusConverted))
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	api := &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
	}}
	srv := api.server()
	b := NewBoard(client.New(srv.URL))
	require.NoError(t, b.Load())
	srv.Close()

	err := b.Load()
	require.Error(t, err)
	assert.Len(t, b.Column(models.LeadStatusNew), 1, "stale data beats an empty board")
}

func TestDragLifecycle(t *testing.T) {
	b, _ := newBoard(t, &fakeAPI{leads: []*models.Lead{
		lead("a", models.LeadStatusNew, 20),
	}})

	b.BeginDrag("a")
	assert.Equal(t, "a", b.Dragging())

	b.DragOver(models.LeadStatusQualified)
	assert.Equal(t, models.LeadStatusQualified, b.HoverStage())

	b.DragLeave()
	assert.Empty(t, b.HoverStage())

	b.CancelDrag()
	assert.Empty(t, b.Dragging())
}
