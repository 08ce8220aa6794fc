package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jewelcms/internal/models"
)

func TestAllowAnyTransition(t *testing.T) {
	assert.True(t, AllowAnyTransition(models.LeadStatusConverted, models.LeadStatusNew))
	assert.True(t, AllowAnyTransition(models.LeadStatusLost, models.LeadStatusScheduled))
	assert.False(t, AllowAnyTransition(models.LeadStatusNew, "NOT_A_STAGE"))
}

func TestStrictPipelineTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.LeadStatusNew, models.LeadStatusContacted, true},
		{models.LeadStatusNew, models.LeadStatusQualified, true},
		{models.LeadStatusNew, models.LeadStatusConverted, false},
		{models.LeadStatusContacted, models.LeadStatusScheduled, true},
		{models.LeadStatusQualified, models.LeadStatusConverted, true},
		{models.LeadStatusScheduled, models.LeadStatusConverted, true},
		{models.LeadStatusConverted, models.LeadStatusNew, false},
		{models.LeadStatusConverted, models.LeadStatusContacted, false},
		// LOST from anywhere except itself
		{models.LeadStatusNew, models.LeadStatusLost, true},
		{models.LeadStatusConverted, models.LeadStatusLost, true},
		{models.LeadStatusLost, models.LeadStatusLost, false},
		// LOST can re-enter the pipeline
		{models.LeadStatusLost, models.LeadStatusNew, true},
		{models.LeadStatusLost, models.LeadStatusQualified, false},
		// no recorded status yet
		{"", models.LeadStatusScheduled, true},
		{models.LeadStatusNew, "NOT_A_STAGE", false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, StrictPipelineTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
