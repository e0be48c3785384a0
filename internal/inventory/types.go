// Package inventory is the client for the track-fitting inventory service.
// It fetches product maintenance records over HTTP and validates them
// before they reach the scoring core.
package inventory

import (
	"fmt"
	"strings"
)

// ProductRecord is a maintenance record for a single track fitting as
// returned by the inventory API. It is immutable once fetched.
type ProductRecord struct {
	// ProductID is the opaque identifier of the fitting.
	ProductID string `json:"productId"`

	// Vendor, BatchNo, and WarrantyPeriod are descriptive fields passed
	// through to the report unmodified.
	Vendor         string `json:"vendor"`
	BatchNo        string `json:"batchNo"`
	WarrantyPeriod string `json:"warrantyPeriod"`

	// DateOfSupply is the installation date in YYYY-MM-DD form.
	DateOfSupply string `json:"dateOfSupply"`

	// InspectionDates lists the dates the component was inspected, in no
	// particular order. Empty means never inspected.
	InspectionDates []string `json:"inspectionDates"`

	// Status is the free-text lifecycle state, compared case-insensitively
	// against a fixed defect vocabulary by the scorer.
	Status string `json:"status"`
}

// ValidationError reports a required field that is missing or blank on a
// fetched record.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product record missing required field %q", e.Field)
}

// Validate checks that the fields the scorer depends on are present.
// An empty InspectionDates set is legal and means "never inspected".
func (r *ProductRecord) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"productId", r.ProductID},
		{"dateOfSupply", r.DateOfSupply},
		{"status", r.Status},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
