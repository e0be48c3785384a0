package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackwatch/internal/config"
	"github.com/blackwell-systems/trackwatch/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the trackwatch setup is healthy",
	Long: `Run a series of health checks against your trackwatch configuration
and the inventory service. Prints a pass/fail line for each check and a
summary of how many checks passed.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	baseURL := cfg.APIBaseURL
	if flagAPIURL != "" {
		baseURL = flagAPIURL
	}

	var checks []doctorCheck

	// 1. Config file — present or defaults in use.
	checks = append(checks, checkConfigFile())

	// 2. API base URL — parses as an absolute http(s) URL.
	checks = append(checks, checkBaseURL(baseURL))

	// 3. Fetch timeout — positive.
	checks = append(checks, checkTimeout(cfg.TimeoutSeconds))

	// 4. Inventory API — answers HTTP requests at the base URL.
	checks = append(checks, checkAPIReachable(baseURL))

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		out := doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section("Doctor"))
	fmt.Println()

	for _, c := range checks {
		renderDoctorCheck(c)
	}

	fmt.Println()
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-24s %s\n", indicator, label, detail)
}

// checkConfigFile reports whether a config file exists at the expected
// location. Defaults-only operation still passes.
func checkConfigFile() doctorCheck {
	path := flagConfig
	if path == "" {
		path = config.ConfigDir() + "/" + config.DefaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		return doctorCheck{
			Name:    "Config file",
			Passed:  true,
			Message: fmt.Sprintf("not found at %s (using defaults)", path),
		}
	}
	return doctorCheck{
		Name:    "Config file",
		Passed:  true,
		Message: path,
	}
}

// checkBaseURL verifies the API base URL is an absolute http(s) URL.
func checkBaseURL(baseURL string) doctorCheck {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return doctorCheck{
			Name:    "API base URL",
			Passed:  false,
			Message: fmt.Sprintf("not an absolute URL: %q", baseURL),
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return doctorCheck{
			Name:    "API base URL",
			Passed:  false,
			Message: fmt.Sprintf("unsupported scheme %q", u.Scheme),
		}
	}
	return doctorCheck{
		Name:    "API base URL",
		Passed:  true,
		Message: baseURL,
	}
}

// checkTimeout verifies the fetch timeout is positive.
func checkTimeout(seconds int) doctorCheck {
	if seconds <= 0 {
		return doctorCheck{
			Name:    "Fetch timeout",
			Passed:  false,
			Message: fmt.Sprintf("timeout_seconds must be positive, got %d", seconds),
		}
	}
	return doctorCheck{
		Name:    "Fetch timeout",
		Passed:  true,
		Message: fmt.Sprintf("%ds", seconds),
	}
}

// checkAPIReachable verifies the inventory service answers HTTP requests.
// Any HTTP response counts as reachable; only transport failures fail.
func checkAPIReachable(baseURL string) doctorCheck {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL)
	if err != nil {
		return doctorCheck{
			Name:    "Inventory API",
			Passed:  false,
			Message: fmt.Sprintf("unreachable: %v", err),
		}
	}
	defer resp.Body.Close()
	return doctorCheck{
		Name:    "Inventory API",
		Passed:  true,
		Message: fmt.Sprintf("reachable (status %d)", resp.StatusCode),
	}
}
