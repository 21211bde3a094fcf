package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomyDistinct(t *testing.T) {
	taxonomy := []error{ErrNotFound, ErrUnauthorized, ErrCapacityExceeded, ErrValidation}
	for i, a := range taxonomy {
		for j, b := range taxonomy {
			if i != j && errors.Is(a, b) {
				t.Errorf("taxonomy errors must be distinct: %v matches %v", a, b)
			}
		}
	}
}

func TestErrorTaxonomySurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: ticket limit must be positive", ErrValidation)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped taxonomy errors must still match with errors.Is")
	}
}
