package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelcms/internal/models"
)

func TestLoginStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/auth/login", r.URL.Path)
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  models.AdminUser{ID: "u1", Email: req.Email, Role: "ADMIN"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.False(t, c.LoggedIn())

	session, err := c.Login("admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "ADMIN", session.User.Role)
	assert.True(t, c.LoggedIn())

	c.Logout()
	assert.False(t, c.LoggedIn())
	assert.Nil(t, c.Session())
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login("admin@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.False(t, c.LoggedIn())
}

func TestBearerTokenAttachedAfterLogin(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/auth/login" {
			json.NewEncoder(w).Encode(map[string]any{"token": "tok-abc", "user": models.AdminUser{ID: "u1"}})
			return
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"leads": []*models.Lead{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login("a@b.c", "pw")
	require.NoError(t, err)

	_, err = c.ListLeads(ListLeadsOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestCreateProductValidatesBeforeSending(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]any{"product": &models.Product{ID: "p1"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateProduct(&models.Product{
		SKU:        "RING-001",
		Name:       "Solitaire Ring",
		Price:      1200,
		CategoryID: "cat-1",
		// no brandId
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Missing, "brandId")
	assert.Zero(t, requests, "an invalid form must not reach the wire")
}

func TestBulkUpdateStatusSendsOnePutPerProduct(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		id := strings.TrimPrefix(strings.TrimSuffix(r.URL.Path, "/status"), "/api/admin/products/")
		mu.Lock()
		seen[id] = true
		mu.Unlock()
		if id == "bad" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "nope"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"product": &models.Product{ID: id, Status: models.ProductStatusPublished}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.BulkUpdateStatus([]string{"p1", "bad", "p3"}, models.ProductStatusPublished)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 updates failed")
	// every product got its own request; successes are not rolled back
	assert.Len(t, seen, 3)
}

func TestDuplicateProductDerivesDraftCopy(t *testing.T) {
	var created *models.Product
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			src := &models.Product{
				ID: "p1", SKU: "RING-001", Name: "Solitaire Ring", Price: 1200,
				BrandID: "b1", CategoryID: "c1", Status: models.ProductStatusPublished,
			}
			json.NewEncoder(w).Encode(map[string]any{"product": src})
		case http.MethodPost:
			var p models.Product
			json.NewDecoder(r.Body).Decode(&p)
			created = &p
			p.ID = "p2"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"product": &p})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	dup, err := c.DuplicateProduct("p1")
	require.NoError(t, err)

	assert.Equal(t, "p2", dup.ID)
	assert.Equal(t, "RING-001-COPY", created.SKU)
	assert.Equal(t, "Solitaire Ring (Copy)", created.Name)
	assert.Equal(t, models.ProductStatusDraft, created.Status)
	assert.Nil(t, created.PublishedAt)
}

func TestSetProductRelationshipsSavesBothLists(t *testing.T) {
	var saved *models.Product
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			src := &models.Product{
				ID: "p1", SKU: "RING-001", Name: "Solitaire Ring", Price: 1200,
				BrandID: "b1", CategoryID: "c1",
			}
			json.NewEncoder(w).Encode(map[string]any{"product": src})
		case http.MethodPut:
			var p models.Product
			json.NewDecoder(r.Body).Decode(&p)
			saved = &p
			json.NewEncoder(w).Encode(map[string]any{"product": &p})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SetProductRelationships("p1", []string{"p2", "p3"}, []string{"p4"})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, []string{"p2", "p3"}, saved.GroupedProductIDs)
	assert.Equal(t, []string{"p4"}, saved.RelatedProductIDs)
}

func TestReorderImagesHitsReorderPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"images": []models.ProductImage{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ReorderProductImages("p1", []string{"i2", "i1"})
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/products/p1/images/reorder", gotPath)
}

func TestPreviewCSVKeepsFiveRows(t *testing.T) {
	csv := "sku,name,price\n" +
		"S1,A,10\nS2,B,20\nS3,C,30\nS4,D,40\nS5,E,50\nS6,F,60\nS7,G,70\n"

	preview, err := PreviewCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"sku", "name", "price"}, preview.Header)
	assert.Len(t, preview.Rows, 5)
	assert.Equal(t, 7, preview.TotalRows)
	assert.Equal(t, []string{"S1", "A", "10"}, preview.Rows[0])
}

func TestSortAndPaginateProducts(t *testing.T) {
	products := []*models.Product{
		{ID: "a", Name: "zircon", Price: 30},
		{ID: "b", Name: "Amber", Price: 10},
		{ID: "c", Name: "opal", Price: 20},
	}

	SortProducts(products, "name", false)
	assert.Equal(t, []string{"b", "c", "a"}, ids(products))

	SortProducts(products, "price", true)
	assert.Equal(t, []string{"a", "c", "b"}, ids(products))

	page := Paginate(products, 1, 2)
	assert.Len(t, page, 2)
	page = Paginate(products, 2, 2)
	assert.Len(t, page, 1)
	page = Paginate(products, 3, 2)
	assert.Empty(t, page)
}

func ids(products []*models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
