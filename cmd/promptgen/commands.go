package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teilomillet/promptgen"
	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/engine"
	"github.com/teilomillet/promptgen/utils"
)

type rootOptions struct {
	envFile          string
	techniquesConfig string
	logLevel         string
	tokenModel       string
	cmd              *cobra.Command
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "promptgen",
		Short:         "Enhance prompts with prompt engineering techniques",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load PROMPTGEN_* variables from a dotenv file; the process environment wins")
	cmd.PersistentFlags().StringVar(&opts.techniquesConfig, "techniques-config", "", "YAML or TOML file with per-technique configuration")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (off, error, warn, info, debug)")
	cmd.PersistentFlags().StringVar(&opts.tokenModel, "token-model", "", "Model whose tokenizer counts tokens; empty uses a length estimate")
	opts.cmd = cmd

	cmd.AddCommand(
		newListCmd(opts),
		newApplyCmd(opts),
		newBatchCmd(opts),
		newSchemaCmd(),
	)
	return cmd
}

// engine builds an engine from the environment, overridden by flags.
func (o *rootOptions) engine() (*promptgen.Engine, error) {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.techniquesConfig != "" {
		config.ApplyOptions(cfg, config.SetTechniquesConfigPath(o.techniquesConfig))
	}
	if o.logLevel != "" {
		var level utils.LogLevel
		if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
			return nil, err
		}
		config.ApplyOptions(cfg, config.SetLogLevel(level))
	}
	if o.cmd.PersistentFlags().Changed("token-model") {
		config.ApplyOptions(cfg, config.SetTokenModel(o.tokenModel))
	}
	return promptgen.New(cfg)
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered techniques",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := opts.engine()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			r := eng.Registry()
			for _, id := range r.ListAvailable() {
				inst, ok := r.Instance(id)
				if !ok {
					fmt.Fprintf(out, "%s %s\n", color.YellowString("?"), id)
					continue
				}
				status := color.GreenString("enabled")
				if !inst.Enabled() {
					status = color.RedString("disabled")
				}
				fmt.Fprintf(out, "%-18s %-8s priority=%d\n", id, status, inst.Priority())
			}
			return nil
		},
	}
}

type applyFlags struct {
	techniques  []string
	contextJSON string
	intent      string
	complexity  string
	maxTokens   int
	temperature float64
	asJSON      bool
}

func newApplyCmd(opts *rootOptions) *cobra.Command {
	flags := &applyFlags{}
	cmd := &cobra.Command{
		Use:   "apply [text...]",
		Short: "Apply techniques to a prompt (reads stdin when text is -)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(data)
			}

			req := promptgen.Request{
				Text:       text,
				Techniques: flags.techniques,
				Intent:     flags.intent,
				Complexity: flags.complexity,
				MaxTokens:  flags.maxTokens,
			}
			if cmd.Flags().Changed("temperature") {
				req.Temperature = &flags.temperature
			}
			if flags.contextJSON != "" {
				if err := json.Unmarshal([]byte(flags.contextJSON), &req.Context); err != nil {
					return fmt.Errorf("invalid --context: %w", err)
				}
			}

			eng, err := opts.engine()
			if err != nil {
				return err
			}
			resp, err := eng.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), cmd.ErrOrStderr(), resp, flags.asJSON)
		},
	}
	cmd.Flags().StringSliceVarP(&flags.techniques, "technique", "t", nil, "Technique ID to apply (repeatable)")
	cmd.Flags().StringVar(&flags.contextJSON, "context", "", "Technique context as a JSON object")
	cmd.Flags().StringVar(&flags.intent, "intent", "", "Prompt intent")
	cmd.Flags().StringVar(&flags.complexity, "complexity", "", "Prompt complexity (simple, moderate, complex)")
	cmd.Flags().IntVar(&flags.maxTokens, "max-tokens", 0, "Truncate the result to about this many tokens")
	cmd.Flags().Float64Var(&flags.temperature, "temperature", 0, "Temperature hint passed to techniques")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the full response as JSON")
	return cmd
}

func printResponse(out, errOut io.Writer, resp *promptgen.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	fmt.Fprintln(out, resp.Text)
	fmt.Fprintln(errOut, color.CyanString("techniques: %s  tokens: %d  quality: %.2f",
		strings.Join(resp.TechniquesApplied, ","), resp.TokenCount, resp.Confidence))
	for _, w := range resp.Warnings {
		fmt.Fprintln(errOut, color.YellowString("warning: %s", w))
	}
	return nil
}

type batchLine struct {
	Index    int                 `json:"index"`
	Response *promptgen.Response `json:"response,omitempty"`
	Error    string              `json:"error,omitempty"`
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <requests.jsonl>",
		Short: "Generate a JSON lines file of requests concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := readRequests(args[0])
			if err != nil {
				return err
			}
			eng, err := opts.engine()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			failed := 0
			for _, res := range eng.GenerateBatch(cmd.Context(), reqs) {
				line := batchLine{Index: res.Index, Response: res.Response}
				if res.Err != nil {
					line.Error = res.Err.Error()
					failed++
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			if failed > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("%d of %d requests failed", failed, len(reqs)))
			}
			return nil
		},
	}
}

func readRequests(path string) ([]promptgen.Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var reqs []promptgen.Request
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var req promptgen.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		reqs = append(reqs, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return reqs, nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [request|response]",
		Short:     "Print the JSON Schema of requests or responses",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"request", "response"},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := engine.RequestSchema()
			if len(args) == 1 && args[0] == "response" {
				schema = engine.ResponseSchema()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		},
	}
}
