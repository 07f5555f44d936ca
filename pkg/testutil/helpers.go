// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/Amanile/epf-calculator/internal/projection"
)

// FindProjection finds a scenario projection by name in the results slice.
// Returns a pointer to the projection if found, nil otherwise.
func FindProjection(results []projection.ScenarioProjection, name string) *projection.ScenarioProjection {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
