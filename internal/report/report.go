// Package report orchestrates a single product analysis: fetch the record,
// score it, derive recommendations, and assemble the final report.
package report

import (
	"context"
	"time"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
	"github.com/blackwell-systems/trackwatch/internal/inventory"
	"github.com/blackwell-systems/trackwatch/internal/recommend"
)

// Fetcher supplies product records. The HTTP client implements it; tests
// inject fakes.
type Fetcher interface {
	Product(ctx context.Context, productID string) (*inventory.ProductRecord, error)
}

// ProductInfo carries the descriptive record fields through to the report
// unmodified.
type ProductInfo struct {
	ProductID  string `json:"product_id"`
	Vendor     string `json:"vendor"`
	BatchNo    string `json:"batch_no"`
	SupplyDate string `json:"supply_date"`
	Warranty   string `json:"warranty"`
	Status     string `json:"status"`
}

// Report is the complete analysis result for one product.
type Report struct {
	Product         ProductInfo                 `json:"product"`
	Analysis        *analyzer.ConditionAnalysis `json:"analysis"`
	Recommendations []string                    `json:"recommendations"`
	GeneratedAt     time.Time                   `json:"generated_at"`
}

// Generator produces reports. The zero value is not usable; construct
// with New.
type Generator struct {
	fetcher    Fetcher
	thresholds analyzer.Thresholds
	now        func() time.Time
}

// New creates a generator using the default scoring thresholds.
func New(f Fetcher) *Generator {
	return NewWith(f, analyzer.DefaultThresholds)
}

// NewWith creates a generator with explicit scoring thresholds.
func NewWith(f Fetcher, t analyzer.Thresholds) *Generator {
	return &Generator{fetcher: f, thresholds: t, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// Generate runs the full workflow for one product. A fetch failure returns
// the *inventory.FetchError unchanged and no partial report; scoring and
// validation errors likewise abort the request without a report.
func (g *Generator) Generate(ctx context.Context, productID string) (*Report, error) {
	rec, err := g.fetcher.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := g.now()
	analysis, err := analyzer.ScoreWith(g.thresholds, rec, now)
	if err != nil {
		return nil, err
	}

	return &Report{
		Product: ProductInfo{
			ProductID:  rec.ProductID,
			Vendor:     rec.Vendor,
			BatchNo:    rec.BatchNo,
			SupplyDate: rec.DateOfSupply,
			Warranty:   rec.WarrantyPeriod,
			Status:     rec.Status,
		},
		Analysis:        analysis,
		Recommendations: recommend.For(analysis),
		GeneratedAt:     now,
	}, nil
}
