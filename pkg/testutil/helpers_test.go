package testutil

import (
	"testing"

	"github.com/Amanile/epf-calculator/internal/projection"
	"github.com/Amanile/epf-calculator/pkg/epf"
)

func TestFindProjection(t *testing.T) {
	results := []projection.ScenarioProjection{
		{
			Name:   "Scenario A",
			Result: epf.Result{Maturity: 1000.00},
		},
		{
			Name:   "Scenario B",
			Result: epf.Result{Maturity: 2000.00},
		},
		{
			Name:   "Another Scenario",
			Result: epf.Result{Maturity: 3000.00},
		},
	}

	tests := []struct {
		name             string
		searchName       string
		expectFound      bool
		expectedMaturity float64
	}{
		{
			name:             "Find existing scenario A",
			searchName:       "Scenario A",
			expectFound:      true,
			expectedMaturity: 1000.00,
		},
		{
			name:             "Find existing scenario B",
			searchName:       "Scenario B",
			expectFound:      true,
			expectedMaturity: 2000.00,
		},
		{
			name:             "Find scenario with longer name",
			searchName:       "Another Scenario",
			expectFound:      true,
			expectedMaturity: 3000.00,
		},
		{
			name:        "Search for non-existent scenario",
			searchName:  "Non-existent",
			expectFound: false,
		},
		{
			name:        "Empty search name",
			searchName:  "",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindProjection(results, tt.searchName)
			if tt.expectFound {
				if found == nil {
					t.Fatalf("Expected to find scenario %q but got nil", tt.searchName)
				}
				if found.Result.Maturity != tt.expectedMaturity {
					t.Errorf("Expected maturity %v, got %v", tt.expectedMaturity, found.Result.Maturity)
				}
				return
			}
			if found != nil {
				t.Errorf("Expected nil for scenario %q, got %+v", tt.searchName, found)
			}
		})
	}
}

func TestFindProjectionEmptyResults(t *testing.T) {
	if found := FindProjection(nil, "anything"); found != nil {
		t.Errorf("Expected nil for empty results, got %+v", found)
	}
}
