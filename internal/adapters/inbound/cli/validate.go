package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agentlint/agentlint/internal/adapters/outbound/config"
	"github.com/agentlint/agentlint/internal/adapters/outbound/gitinfo"
	"github.com/agentlint/agentlint/internal/adapters/outbound/history"
	"github.com/agentlint/agentlint/internal/adapters/outbound/tui"
	"github.com/agentlint/agentlint/internal/application"
	"github.com/agentlint/agentlint/internal/domain"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		label       string
		production  bool
		jsonOutput  bool
		ciMode      bool
		minScore    float64
		save        bool
		showHistory bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate agent output text",
		Long:  "Run the quality check battery over one or more output files (or stdin) and report issues with a 0-100 score.",
		RunE: func(cmd *cobra.Command, args []string) error {
			hist := history.New()

			if showHistory {
				entries, err := hist.Load(projectPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			cfg, err := config.New().Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			src, err := readOutputs(cmd.InOrStdin(), args, label)
			if err != nil {
				return err
			}

			result, err := application.NewValidateService(cfg).ValidateSource(src)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if production {
				prod, err := application.NewProductionService().ValidateSource(src)
				if err != nil {
					return fmt.Errorf("production checks failed: %w", err)
				}
				result = result.Combine(prod)
			}

			if save {
				entry := domain.ReportEntry{
					Timestamp: time.Now().Format(time.RFC3339),
					Score:     result.Score,
					IsValid:   result.IsValid,
				}
				gi := gitinfo.New()
				if hash, err := gi.CommitHash(projectPath); err == nil {
					entry.CommitHash = hash
				}
				_ = hist.Save(projectPath, entry) // best-effort
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result))
			}

			if ciMode {
				if !result.IsValid {
					return fmt.Errorf("validation failed with %d critical issue(s)", result.CriticalCount())
				}
				if result.Score < minScore {
					return fmt.Errorf("score %.1f is below minimum %.1f", result.Score, minScore)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "Agent", "Agent role label attached to the outputs")
	cmd.Flags().BoolVar(&production, "production", false, "Also run production-readiness checks")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 on critical issues or score below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&save, "save", false, "Save the report to the project history")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show saved report history")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project directory for config and history")

	return cmd
}

// readOutputs builds the output source from file arguments, or from stdin
// when no files are given.
func readOutputs(stdin io.Reader, files []string, label string) (domain.OutputSource, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return domain.OutputList{{Text: string(data), AgentLabel: label}}, nil
	}

	outputs := make(domain.OutputList, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		outputs = append(outputs, domain.AgentOutput{Text: string(data), AgentLabel: label})
	}
	return outputs, nil
}
