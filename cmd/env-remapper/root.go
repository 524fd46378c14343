package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"env-remapper/internal/action"
	"env-remapper/internal/casing"
	"env-remapper/internal/config"
	"env-remapper/internal/diagnostic"
	"env-remapper/internal/inputs"
	"env-remapper/internal/remap"
	"env-remapper/internal/tree"
)

const prettyIndent = "  "

type rootOptions struct {
	configPath string
	depth      int
	caseName   string
	deepCasing bool
	strict     bool
	format     string
	prefix     string
	outputName string
	pretty     bool
}

func newRootCmd(environ []string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:          "env-remapper",
		Short:        "Map INPUT_* variables with dot-separated names onto a nested document",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd, opts, environ)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "settings yaml path")
	fs.IntVar(&opts.depth, "depth", 0, "maximum object depth of the result, 0 for unlimited")
	fs.StringVar(&opts.caseName, "case", string(casing.Camel), "casing applied to input paths")
	fs.BoolVar(&opts.deepCasing, "deep-casing", false, "also rename keys nested inside input values")
	fs.BoolVar(&opts.strict, "strict", false, "warn when a wildcard input discards an existing value")
	fs.StringVar(&opts.format, "format", config.FormatJSON, "output format: json or yaml")
	fs.StringVar(&opts.prefix, "prefix", inputs.DefaultPrefix, "environment prefix of inputs")
	fs.StringVar(&opts.outputName, "output-name", config.DefaultOutputName, "name of the published output")
	fs.BoolVar(&opts.pretty, "pretty", false, "indent the published json")

	return cmd
}

func runRemap(cmd *cobra.Command, opts rootOptions, environ []string) error {
	ctx := cmd.Context()
	getenv := lookup(environ)
	logger := newLogger(cmd, getenv)

	settings, controlDiags, err := loadSettings(cmd, opts, environ)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	var diags diagnostic.Diagnostics
	diags.Merge(controlDiags)

	doc := remap.Run(inputs.Entries(environ, settings.Prefix), settings.Options, &diags)
	diags.Log(ctx, logger)

	pretty, err := tree.EncodeJSON(doc, prettyIndent)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	logger.Info("remapped document", slog.String("json", string(pretty)))

	out, err := encode(doc, settings.Format, opts.pretty)
	if err != nil {
		return err
	}

	if err := action.WriteOutput(getenv(action.EnvOutput), cmd.OutOrStdout(), settings.OutputName, out); err != nil {
		logger.Error(err.Error())
		return err
	}

	return nil
}

// loadSettings layers defaults, the config file, INPUT___ controls and
// explicitly set flags, in that order. Rejected controls are returned as
// error diagnostics.
func loadSettings(cmd *cobra.Command, opts rootOptions, environ []string) (config.Settings, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	settings := config.Defaults()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return config.Settings{}, diags, err
		}

		settings = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("prefix") {
		settings.Prefix = opts.prefix
	}

	resolved, err := inputs.ResolveControls(inputs.Controls(environ, settings.Prefix), settings.Options)
	inputs.Report(err, &diags)

	settings.Options = resolved

	if fs.Changed("case") {
		mode, err := casing.ParseMode(opts.caseName)
		if err != nil {
			return config.Settings{}, diags, err
		}

		settings.Options.Case = mode
	}

	if fs.Changed("depth") {
		if opts.depth < 0 {
			return config.Settings{}, diags, fmt.Errorf("depth must be no less than 0, got %d", opts.depth)
		}

		settings.Options.Depth = opts.depth
	}

	if fs.Changed("deep-casing") {
		settings.Options.DeepCasing = opts.deepCasing
	}

	if fs.Changed("strict") {
		settings.Options.Strict = opts.strict
	}

	if fs.Changed("format") {
		settings.Format = opts.format
	}

	if fs.Changed("output-name") {
		settings.OutputName = opts.outputName
	}

	return settings, diags, nil
}

func encode(doc *tree.Object, format string, pretty bool) (string, error) {
	switch format {
	case config.FormatJSON:
		indent := ""
		if pretty {
			indent = prettyIndent
		}

		b, err := tree.EncodeJSON(doc, indent)
		if err != nil {
			return "", fmt.Errorf("encode document: %w", err)
		}

		return string(b), nil
	case config.FormatYAML:
		b, err := tree.EncodeYAML(doc)
		if err != nil {
			return "", fmt.Errorf("encode document: %w", err)
		}

		return strings.TrimSuffix(string(b), "\n"), nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: %s, %s)", format, config.FormatJSON, config.FormatYAML)
	}
}

func newLogger(cmd *cobra.Command, getenv func(string) string) *slog.Logger {
	if getenv(action.EnvActions) == "true" {
		return slog.New(action.NewHandler(cmd.OutOrStdout(), nil))
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

// lookup returns a getenv over a KEY=VALUE list. Later entries win.
func lookup(environ []string) func(string) string {
	vars := make(map[string]string, len(environ))

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	return func(key string) string {
		return vars[key]
	}
}
