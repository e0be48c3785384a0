package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
	"github.com/blackwell-systems/trackwatch/internal/inventory"
	"github.com/blackwell-systems/trackwatch/internal/output"
	"github.com/blackwell-systems/trackwatch/internal/report"
)

// renderReport prints the styled console report for one product.
func renderReport(rep *report.Report) {
	fmt.Println(output.Section("Track Fitting Condition Report"))

	fmt.Println()
	fmt.Println(" " + output.StyleBold.Render("Product Information"))
	info := output.NewKV()
	info.Add("Product ID", rep.Product.ProductID)
	info.Add("Vendor", rep.Product.Vendor)
	info.Add("Batch No", rep.Product.BatchNo)
	info.Add("Supply Date", rep.Product.SupplyDate)
	info.Add("Warranty", rep.Product.Warranty)
	info.Add("Status", rep.Product.Status)
	info.Print()

	a := rep.Analysis
	fmt.Println(" " + output.StyleBold.Render("Condition Analysis"))
	analysis := output.NewKV()
	condStyle := output.ConditionStyle(string(a.Condition))
	analysis.Add("Condition", condStyle.Render(string(a.Condition)))
	analysis.Add("Risk Score", output.StyleValue.Render(fmt.Sprintf("%d/100", a.RiskScore)))
	analysis.Add("Age", fmt.Sprintf("%d months", a.AgeMonths))
	analysis.Add("Last Inspection", formatRecency(a.Inspection))
	analysis.Print()

	if len(a.RiskFactors) > 0 {
		fmt.Println("  " + output.StyleMuted.Render("Risk Factors:"))
		for _, factor := range a.RiskFactors {
			fmt.Println("    • " + factor)
		}
	}

	fmt.Println()
	fmt.Println(" " + output.StyleBold.Render("Recommendations"))
	for i, rec := range rep.Recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}
	fmt.Println()
}

// renderReportJSON writes the report structure to stdout as indented JSON.
func renderReportJSON(rep *report.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// formatRecency renders the last-inspection value, with an explicit word
// for the never-inspected sentinel.
func formatRecency(r analyzer.Recency) string {
	if r.Never {
		return output.StyleWarning.Render("never")
	}
	return fmt.Sprintf("%d days ago", r.Days)
}

// errorResult is the JSON shape emitted when an analysis fails.
type errorResult struct {
	Error string `json:"error"`
}

// renderAnalysisError reports a failed analysis. Fetch failures collapse to
// the single not-found message; parse and validation failures state the
// cause. Neither terminates the process.
func renderAnalysisError(err error, asJSON bool) {
	msg := analysisErrorMessage(err)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(errorResult{Error: msg})
		return
	}
	fmt.Println(" " + output.StyleError.Render(msg))
}

// analysisErrorMessage maps the error taxonomy to user-visible text.
func analysisErrorMessage(err error) string {
	var fetchErr *inventory.FetchError
	if errors.As(err, &fetchErr) {
		return fmt.Sprintf("Product %s not found or API error", fetchErr.ProductID)
	}

	var parseErr *analyzer.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("Invalid record: %s", parseErr)
	}

	var valErr *inventory.ValidationError
	if errors.As(err, &valErr) {
		return fmt.Sprintf("Invalid record: %s", valErr)
	}

	return fmt.Sprintf("Error: %v", err)
}
