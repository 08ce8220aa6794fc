package services

import (
	"time"

	"jewelcms/internal/models"
	"jewelcms/internal/pdf"
)

// ReportService aggregates the dashboard numbers and renders the PDF
// pipeline export.
type ReportService struct {
	Leads     *LeadService
	Products  *ProductService
	Wishlists *WishlistService
	PDF       pdf.Generator
}

func NewReportService(leads *LeadService, products *ProductService, wishlists *WishlistService, gen pdf.Generator) *ReportService {
	return &ReportService{Leads: leads, Products: products, Wishlists: wishlists, PDF: gen}
}

type Summary struct {
	Leads         *models.LeadStats `json:"leads"`
	TotalProducts int               `json:"totalProducts"`
	TotalLists    int               `json:"totalWishlists"`
}

func (s *ReportService) Summary() (*Summary, error) {
	stats, err := s.Leads.Stats()
	if err != nil {
		return nil, err
	}
	productCount, err := s.Products.Count()
	if err != nil {
		return nil, err
	}
	wishlistCount, err := s.Wishlists.Repo.CountAll()
	if err != nil {
		return nil, err
	}
	return &Summary{Leads: stats, TotalProducts: productCount, TotalLists: wishlistCount}, nil
}

// ExportLeadsPDF writes the report under the files root and returns its path.
func (s *ReportService) ExportLeadsPDF() (string, error) {
	stats, err := s.Leads.Stats()
	if err != nil {
		return "", err
	}
	top, err := s.Leads.List("", 20, "score_desc")
	if err != nil {
		return "", err
	}
	return s.PDF.GenerateLeadReport(pdf.LeadReportData{
		Stats:       stats,
		TopLeads:    top,
		GeneratedAt: time.Now(),
	})
}
