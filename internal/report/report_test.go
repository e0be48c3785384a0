package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
	"github.com/blackwell-systems/trackwatch/internal/inventory"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// fakeFetcher serves a fixed record or a fixed error.
type fakeFetcher struct {
	rec *inventory.ProductRecord
	err error
}

func (f *fakeFetcher) Product(ctx context.Context, productID string) (*inventory.ProductRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rec, nil
}

func daysAgo(n int) string {
	return testNow.AddDate(0, 0, -n).Format("2006-01-02")
}

func TestGenerate_AssemblesReport(t *testing.T) {
	fetcher := &fakeFetcher{rec: &inventory.ProductRecord{
		ProductID:       "TF-1001",
		Vendor:          "Apex Rail Supply",
		BatchNo:         "B-2047",
		WarrantyPeriod:  "5 years",
		DateOfSupply:    daysAgo(1510),
		InspectionDates: nil,
		Status:          "good",
	}}

	gen := New(fetcher)
	gen.SetClock(func() time.Time { return testNow })

	rep, err := gen.Generate(context.Background(), "TF-1001")
	require.NoError(t, err)

	// Descriptive fields pass through unmodified.
	assert.Equal(t, "TF-1001", rep.Product.ProductID)
	assert.Equal(t, "Apex Rail Supply", rep.Product.Vendor)
	assert.Equal(t, "B-2047", rep.Product.BatchNo)
	assert.Equal(t, daysAgo(1510), rep.Product.SupplyDate)
	assert.Equal(t, "5 years", rep.Product.Warranty)
	assert.Equal(t, "good", rep.Product.Status)

	// Just over four years old and never inspected: 40 + 35 = 75.
	require.NotNil(t, rep.Analysis)
	assert.Equal(t, 75, rep.Analysis.RiskScore)
	assert.Equal(t, analyzer.ConditionCritical, rep.Analysis.Condition)
	assert.True(t, rep.Analysis.Inspection.Never)

	// Critical actions plus both cross-cutting recommendations.
	require.Len(t, rep.Recommendations, 5)
	assert.Equal(t, "IMMEDIATE ACTION: Replace component immediately", rep.Recommendations[0])

	assert.Equal(t, testNow, rep.GeneratedAt)
}

func TestGenerate_FetchFailureShortCircuits(t *testing.T) {
	fetchErr := &inventory.FetchError{ProductID: "TF-9999", StatusCode: 404}
	gen := New(&fakeFetcher{err: fetchErr})

	rep, err := gen.Generate(context.Background(), "TF-9999")

	// No partial report, the fetch error passes through unchanged.
	assert.Nil(t, rep)
	var got *inventory.FetchError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "TF-9999", got.ProductID)
}

func TestGenerate_ValidationFailure(t *testing.T) {
	gen := New(&fakeFetcher{rec: &inventory.ProductRecord{
		ProductID:    "TF-1001",
		DateOfSupply: daysAgo(100),
		// Status missing.
	}})
	gen.SetClock(func() time.Time { return testNow })

	rep, err := gen.Generate(context.Background(), "TF-1001")
	assert.Nil(t, rep)

	var valErr *inventory.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "status", valErr.Field)
}

func TestGenerate_ParseFailure(t *testing.T) {
	gen := New(&fakeFetcher{rec: &inventory.ProductRecord{
		ProductID:    "TF-1001",
		DateOfSupply: "15/01/2024",
		Status:       "good",
	}})
	gen.SetClock(func() time.Time { return testNow })

	rep, err := gen.Generate(context.Background(), "TF-1001")
	assert.Nil(t, rep)

	var parseErr *analyzer.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "dateOfSupply", parseErr.Field)
}

func TestNewWith_CustomThresholds(t *testing.T) {
	custom := analyzer.DefaultThresholds
	custom.StatusDelta = 80

	gen := NewWith(&fakeFetcher{rec: &inventory.ProductRecord{
		ProductID:       "TF-1001",
		DateOfSupply:    daysAgo(40),
		InspectionDates: []string{daysAgo(10)},
		Status:          "faulty",
	}}, custom)
	gen.SetClock(func() time.Time { return testNow })

	rep, err := gen.Generate(context.Background(), "TF-1001")
	require.NoError(t, err)
	assert.Equal(t, 80, rep.Analysis.RiskScore)
	assert.Equal(t, analyzer.ConditionCritical, rep.Analysis.Condition)
}
