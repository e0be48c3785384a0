package app

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackwatch/internal/config"
	"github.com/blackwell-systems/trackwatch/internal/output"
)

// exitCommands are the explicit sentinels that end an interactive session.
var exitCommands = map[string]bool{
	"quit": true,
	"exit": true,
	"q":    true,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Analyze fittings from an interactive prompt",
	Long: `Interactive reads product IDs from stdin, one per line, and prints a
condition report for each. Type 'quit', 'exit', or 'q' (or press ctrl-c) to
end the session. A failed analysis is reported and the session continues.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	gen := newGenerator(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reading stdin in a goroutine lets the loop react to ctrl-c while a
	// read is pending.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("\nEnter Product ID (or 'quit' to exit): ")

		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye.")
			return nil
		case line, ok := <-lines:
			if !ok {
				// stdin closed.
				fmt.Println("\nGoodbye.")
				return nil
			}

			id := strings.TrimSpace(line)
			if exitCommands[strings.ToLower(id)] {
				fmt.Println("Goodbye.")
				return nil
			}
			if id == "" {
				fmt.Println(" " + output.StyleError.Render("Please enter a valid Product ID"))
				continue
			}

			rep, err := gen.Generate(ctx, id)
			if err != nil {
				// Per-request failure; the session keeps serving.
				renderAnalysisError(err, flagJSON)
				continue
			}

			if flagJSON {
				if err := renderReportJSON(rep); err != nil {
					return err
				}
				continue
			}
			renderReport(rep)
		}
	}
}
