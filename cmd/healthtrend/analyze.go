package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/healthtrend/backend/internal/advisor"
	"github.com/healthtrend/backend/internal/analysis"
	"github.com/healthtrend/backend/internal/domain"
	"github.com/healthtrend/backend/internal/formatter"
	"github.com/healthtrend/backend/internal/llm"
	"github.com/healthtrend/backend/internal/recommend"
)

type analyzeOptions struct {
	output    string
	provider  string
	model     string
	timeRange string
	timeout   time.Duration
	offline   bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze a JSON or YAML export of health records",
		Long: `Analyze vitals, lifestyle records, profile and medications from a file.

The file holds an object with "vitals", "behavior", "profile" and
"medications" keys. Field names may use any of the common aliases
(e.g. weight or weight_kg, systolic or blood_pressure_systolic).

Examples:
  # Analyze with the configured LLM provider
  healthtrend analyze records.json

  # Rule-based recommendations only
  healthtrend analyze records.yaml --offline

  # Machine-readable output
  healthtrend analyze records.json -o json --provider openai`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&opts.provider, "provider", os.Getenv("LLM_PROVIDER"), fmt.Sprintf("LLM provider (%s)", providerList()))
	cmd.Flags().StringVar(&opts.model, "model", "", "Override the provider's model")
	cmd.Flags().StringVar(&opts.timeRange, "time-range", domain.TimeRangeSixMonths, "Label for the analyzed window (1month, 3months, 6months, 1year)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", recommend.DefaultTimeout, "Advisor timeout")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip the LLM and use rule-based recommendations")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts *analyzeOptions) error {
	switch opts.output {
	case formatter.FormatHuman, formatter.FormatJSON, formatter.FormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q (supported: human, json, yaml)", opts.output)
	}

	in, err := readInput(path)
	if err != nil {
		return err
	}

	adv, err := buildAdvisor(opts)
	if err != nil {
		return err
	}

	human := opts.output == formatter.FormatHuman
	if !human {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " Analyzing health records..."
	if human {
		s.Start()
	}

	orchOpts := []recommend.Option{recommend.WithTimeout(opts.timeout)}
	if opts.offline {
		orchOpts = append(orchOpts, recommend.WithOffline())
	}
	engine := analysis.NewEngine(recommend.NewOrchestrator(adv, orchOpts...))
	result := engine.Run(cmd.Context(), in, opts.timeRange)

	s.Stop()
	if human {
		printSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Analyzed %d vitals and %d lifestyle records",
			result.Context.VitalsCount, result.Context.BehaviorCount))
	}

	return formatter.DisplayResults(cmd.OutOrStdout(), result, opts.output)
}

func buildAdvisor(opts *analyzeOptions) (advisor.Advisor, error) {
	if opts.offline {
		return nil, nil
	}

	client, err := llm.NewFromConfig(llm.Config{
		Provider:        opts.provider,
		Model:           opts.model,
		ClaudeModel:     os.Getenv("CLAUDE_MODEL"),
		OpenAIModel:     os.Getenv("OPENAI_MODEL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		BridgeURL:       os.Getenv("ADVISOR_URL"),
	})
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return advisor.NewLLMAdvisor(client), nil
}

// readInput decodes a JSON or YAML file. JSON is valid YAML, so one decoder
// serves both.
func readInput(path string) (analysis.Input, error) {
	var in analysis.Input

	f, err := os.Open(path)
	if err != nil {
		return in, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, fmt.Errorf("%s is empty", path)
		}
		return in, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return in, nil
}

func providerList() string {
	var names []string
	for _, p := range llm.AvailableProviders() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✅ %s\n", msg)
}
