package models

import "time"

type Customer struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	IsActive  bool    `json:"isActive"`

	// aggregates computed at read time
	TotalCollections int  `json:"totalCollections"`
	TotalLeads       int  `json:"totalLeads"`
	HighestScore     int  `json:"highestScore"`
	HasConverted     bool `json:"hasConverted"`

	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type CustomerStats struct {
	Total           int     `json:"total"`
	NewThisMonth    int     `json:"newThisMonth"`
	WithConversions int     `json:"withConversions"`
	AvgScore        float64 `json:"avgScore"`
}
