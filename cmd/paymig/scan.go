package paymig

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/paymig/paymig/internal/audit"
	"github.com/paymig/paymig/internal/config"
	"github.com/paymig/paymig/internal/engine"
	"github.com/paymig/paymig/internal/report"
	"github.com/paymig/paymig/internal/types"
)

var (
	flagPath            string
	flagMode            string
	flagLanguages       string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagTable           bool
	flagSnippets        bool
	flagChangedOnly     bool
	flagDefaultExcludes bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a source tree for legacy payment-API usages",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVarP(&flagMode, "mode", "m", "pattern", "scan mode: pattern|structural|schema")
	cmd.Flags().StringVar(&flagLanguages, "languages", "", "comma-separated language ids (default: all)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output in bordered table format")
	cmd.Flags().BoolVar(&flagSnippets, "snippets", false, "show highlighted context snippets")
	cmd.Flags().BoolVar(&flagChangedOnly, "changed-only", false, "only scan files changed since the last session")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	// Flags with non-zero defaults only take precedence when set explicitly.
	modeCLI := flagMode
	if !cmd.Flags().Changed("mode") {
		modeCLI = ""
	}
	maxBytesCLI := flagMaxBytes
	if !cmd.Flags().Changed("max-bytes") {
		maxBytesCLI = 0
	}
	maxBytes := pickInt64(maxBytesCLI, lcfg.MaxBytes, gcfg.MaxBytes)
	if maxBytes == 0 {
		maxBytes = flagMaxBytes // flag default
	}
	defaultExcludes := flagDefaultExcludes
	if !cmd.Flags().Changed("default-excludes") {
		if lcfg.DefaultExcludes != nil {
			defaultExcludes = *lcfg.DefaultExcludes
		} else if gcfg.DefaultExcludes != nil {
			defaultExcludes = *gcfg.DefaultExcludes
		}
	}

	mode, err := parseMode(pickString(modeCLI, lcfg.Mode, gcfg.Mode))
	if err != nil {
		return err
	}
	langs, err := parseLanguages(pickString(flagLanguages, lcfg.Languages, gcfg.Languages))
	if err != nil {
		return err
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !isatty.IsTerminal(os.Stdout.Fd())
	color.NoColor = noColor

	ctrl := engine.New(engine.Config{
		Root:            abs,
		MaxBytes:        maxBytes,
		DefaultExcludes: defaultExcludes,
		NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
	})

	showProgress := !flagJSON && isatty.IsTerminal(os.Stderr.Fd())
	if showProgress {
		ctrl.OnProgress(func(p engine.Progress) {
			if p.Complete || p.Cancelled {
				fmt.Fprint(os.Stderr, "\r\033[K")
				return
			}
			fmt.Fprintf(os.Stderr, "\rScanning %d/%d (%d%%) %s", p.ProcessedFiles, p.TotalFiles, p.Percentage, p.CurrentFile)
		})
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := ctrl.ScanProjectWithStats(ctx, engine.Options{
		Mode:         mode,
		Languages:    langs,
		IncludeGlobs: splitList(pickString(flagInclude, lcfg.Include, gcfg.Include)),
		ExcludeGlobs: splitList(pickString(flagExclude, lcfg.Exclude, gcfg.Exclude)),
		ChangedOnly:  pickBool(flagChangedOnly, lcfg.ChangedOnly, gcfg.ChangedOnly),
	})
	if err != nil {
		return err
	}

	findings := res.Findings
	if min := pickFloat(flagMinConfidence, lcfg.MinConfidence, gcfg.MinConfidence); min > 0 {
		findings = filterByConfidence(findings, min)
	}

	opts := report.PrintOptions{
		NoColor:      noColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		Cancelled:    res.Cancelled,
	}
	switch {
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, findings, opts); err != nil {
			return err
		}
	case flagSnippets:
		report.PrintSnippets(os.Stdout, findings, opts)
	case flagTable:
		report.PrintTable(os.Stdout, findings, opts)
	default:
		report.PrintText(os.Stdout, findings, opts)
	}

	rec := audit.Record(res.SessionID, abs, mode, findings, res.FilesScanned, res.SkippedFiles, res.Duration, res.Cancelled)
	_ = audit.NewLog(abs).Append(rec)
	return nil
}

func parseMode(s string) (types.ScanMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pattern":
		return types.ModePattern, nil
	case "structural":
		return types.ModeStructural, nil
	case "schema":
		return types.ModeSchema, nil
	}
	return "", fmt.Errorf("unknown scan mode %q (want pattern|structural|schema)", s)
}

func filterByConfidence(fs []types.Finding, min float64) []types.Finding {
	var out []types.Finding
	for _, f := range fs {
		if f.Confidence >= min {
			out = append(out, f)
		}
	}
	return out
}
