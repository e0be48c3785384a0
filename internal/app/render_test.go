package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
	"github.com/blackwell-systems/trackwatch/internal/inventory"
)

func TestAnalysisErrorMessage_FetchFailure(t *testing.T) {
	err := &inventory.FetchError{ProductID: "TF-9999", StatusCode: 404}
	got := analysisErrorMessage(err)
	want := "Product TF-9999 not found or API error"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Network and server errors collapse to the same message.
	netErr := &inventory.FetchError{ProductID: "TF-9999", Err: errors.New("connection refused")}
	if analysisErrorMessage(netErr) != want {
		t.Errorf("network error should render identically, got %q", analysisErrorMessage(netErr))
	}
}

func TestAnalysisErrorMessage_WrappedFetchFailure(t *testing.T) {
	err := fmt.Errorf("generating report: %w", &inventory.FetchError{ProductID: "TF-1", StatusCode: 500})
	if got := analysisErrorMessage(err); got != "Product TF-1 not found or API error" {
		t.Errorf("wrapped fetch error not recognized: %q", got)
	}
}

func TestAnalysisErrorMessage_ParseAndValidation(t *testing.T) {
	parse := analysisErrorMessage(&analyzer.ParseError{
		Field: "dateOfSupply",
		Value: "nope",
		Err:   errors.New("cannot parse"),
	})
	if parse == "" || parse[:15] != "Invalid record:" {
		t.Errorf("parse error message = %q", parse)
	}

	val := analysisErrorMessage(&inventory.ValidationError{Field: "status"})
	if val != `Invalid record: product record missing required field "status"` {
		t.Errorf("validation error message = %q", val)
	}
}

func TestFormatRecency(t *testing.T) {
	if got := formatRecency(analyzer.Recency{Days: 12}); got != "12 days ago" {
		t.Errorf("finite recency = %q", got)
	}
}
