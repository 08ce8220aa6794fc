package client

import (
	"fmt"
	"net/http"
	"strconv"

	"jewelcms/internal/models"
)

type ListLeadsOptions struct {
	Status string
	Limit  int
	Sort   string
}

func (c *Client) ListLeads(opts ListLeadsOptions) ([]*models.Lead, error) {
	params := map[string]string{
		"status": opts.Status,
		"sort":   opts.Sort,
	}
	if opts.Limit > 0 {
		params["limit"] = strconv.Itoa(opts.Limit)
	}
	var out struct {
		Leads []*models.Lead `json:"leads"`
	}
	if err := c.do(http.MethodGet, "/api/admin/leads"+query(params), nil, &out); err != nil {
		return nil, err
	}
	return out.Leads, nil
}

func (c *Client) LeadStats() (*models.LeadStats, error) {
	var out struct {
		Stats *models.LeadStats `json:"stats"`
	}
	if err := c.do(http.MethodGet, "/api/admin/leads/stats", nil, &out); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

// Lead fetches the detail view payload: the lead plus its note history.
func (c *Client) Lead(id string) (*models.Lead, []models.LeadNote, error) {
	var out struct {
		Lead  *models.Lead      `json:"lead"`
		Notes []models.LeadNote `json:"notes"`
	}
	if err := c.do(http.MethodGet, "/api/admin/leads/"+id, nil, &out); err != nil {
		return nil, nil, err
	}
	return out.Lead, out.Notes, nil
}

// UpdateLeadStatus sends the single {status} PUT the board uses to commit
// a drop.
func (c *Client) UpdateLeadStatus(id, status string) (*models.Lead, error) {
	var out struct {
		Lead *models.Lead `json:"lead"`
	}
	body := map[string]string{"status": status}
	if err := c.do(http.MethodPut, "/api/admin/leads/"+id, body, &out); err != nil {
		return nil, err
	}
	return out.Lead, nil
}

func (c *Client) AssignLead(id string, assignedTo *string) (*models.Lead, error) {
	var out struct {
		Lead *models.Lead `json:"lead"`
	}
	body := map[string]*string{"assignedTo": assignedTo}
	if err := c.do(http.MethodPut, "/api/admin/leads/"+id, body, &out); err != nil {
		return nil, err
	}
	return out.Lead, nil
}

func (c *Client) AddLeadNote(id, note string) (*models.LeadNote, error) {
	var out struct {
		Note *models.LeadNote `json:"note"`
	}
	body := map[string]string{"note": note}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/admin/leads/%s/notes", id), body, &out); err != nil {
		return nil, err
	}
	return out.Note, nil
}
