// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/sofglide/mortgage-simulator/pkg/mortgage"
	"go.uber.org/zap"
)

// ReferenceInputs is a 3,000,000 property bought with 1,000,000 down on a
// 480,000 yearly income at 1.15%.
func ReferenceInputs() mortgage.Inputs {
	return mortgage.Inputs{
		PropertyValue: 3000000,
		DownPayment:   1000000,
		YearlyIncome:  480000,
		Rate:          1.15,
	}
}

// ReferenceModel builds the reference mortgage under the default regime and
// fails the test if that is not possible.
func ReferenceModel(t testing.TB) *mortgage.Model {
	t.Helper()
	m, err := mortgage.New(zap.NewNop(), ReferenceInputs(), mortgage.DefaultRegime())
	if err != nil {
		t.Fatalf("failed to build reference model: %v", err)
	}
	return m
}
