package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/diagnostics"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/evaluator"
	"github.com/yernsun/prepack/intrinsics"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/residualizer"
	"github.com/yernsun/prepack/value"
)

var (
	runOutput       string
	runConfigPath   string
	runDeadline     time.Duration
	runUniqueSuffix string
	runStripGuards  bool
)

var runCmd = &cobra.Command{
	Use:   "run [input.json]...",
	Short: "Partially evaluate one or more already-structured ASTs",
	Long: `run reads one or more JSON-encoded ASTs (see ast.DecodeProgram), runs
each through whole-program partial evaluation, and writes the residual
program next to it.

With --config, run instead loads a realm.Config batch file (input/output
pairs plus shared deadline, unique-suffix seed and invariant-guard
settings) via YAML and ignores any positional arguments.

Without --output, a single positional input is printed to stdout; with
more than one positional input --output is an error (use --config for
batches).`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output file (default: stdout)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "batch config file (YAML, realm.Config)")
	runCmd.Flags().DurationVar(&runDeadline, "deadline", 0, "wall-clock deadline for the run (e.g. 1500ms); 0 means none")
	runCmd.Flags().StringVar(&runUniqueSuffix, "unique-suffix", "", "seed for generated identifier suffixes (default: a fresh UUID)")
	runCmd.Flags().BoolVar(&runStripGuards, "strip-invariant-guards", false, "omit residual typeof invariant guards instead of emitting them")
}

func runRun(c *cobra.Command, args []string) error {
	if runConfigPath != "" {
		return runBatch(c)
	}
	if len(args) == 0 {
		return fmt.Errorf("run: no input given (pass a file or --config)")
	}
	if len(args) > 1 && runOutput != "" {
		return fmt.Errorf("run: --output cannot be used with multiple inputs; use --config instead")
	}

	flags := realm.DefaultFlags()
	if runStripGuards {
		flags.InvariantGuards = false
	}
	suffix := runUniqueSuffix
	if suffix == "" {
		suffix = uuid.NewString()
	}

	for i, in := range args {
		out := runOutput
		if out == "" && len(args) > 1 {
			out = defaultOutputFor(in)
		}
		if err := runOne(in, out, suffix, runDeadline, flags, value.RealmID(i+1)); err != nil {
			return fmt.Errorf("run: %s: %w", in, err)
		}
	}
	return nil
}

func runBatch(c *cobra.Command) error {
	cfg, err := realm.LoadConfig(runConfigPath)
	if err != nil {
		return err
	}
	deadline, hasDeadline, err := cfg.ParsedDeadline()
	if err != nil {
		return err
	}
	if !hasDeadline {
		deadline = runDeadline
	}
	suffix := cfg.UniqueSuffix
	if suffix == "" {
		suffix = uuid.NewString()
	}
	flags := cfg.Flags()

	for i, run := range cfg.Runs {
		if err := runOne(run.Input, run.Output, suffix, deadline, flags, value.RealmID(i+1)); err != nil {
			return fmt.Errorf("run: %s: %w", run.Input, err)
		}
	}
	return nil
}

func runOne(inputPath, outputPath, uniqueSuffix string, deadline time.Duration, flags realm.Flags, id value.RealmID) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	f := ast.NewFactory()
	var nextID int64
	program, err := ast.DecodeProgram(data, f, id, func() int64 {
		nextID++
		return nextID
	})
	if err != nil {
		return fmt.Errorf("decoding AST: %w", err)
	}

	diags := diagnostics.NewCollector()
	r := realm.New(id, intrinsics.NewMapRegistry(), uniqueSuffix, nil, diags, flags)
	evaluator.Register(r)

	if deadline > 0 {
		r.DeadlineTracker().SetDeadline(time.Now().Add(deadline))
	}

	env := envrec.NewEnvironment(envrec.NewDeclarative(), nil)
	if _, err := evaluator.RunProgram(r, program, env); err != nil {
		fmt.Fprint(os.Stderr, diags.String())
		return fmt.Errorf("evaluating: %w", err)
	}
	if diags.HasFatal() {
		fmt.Fprint(os.Stderr, diags.String())
		return fmt.Errorf("evaluation reported fatal diagnostics")
	}

	residual := residualizer.Residualize(r)

	var rendered []byte
	if strings.HasSuffix(outputPath, ".json") {
		rendered, err = ast.EncodeNode(residual)
		if err != nil {
			return fmt.Errorf("encoding residual AST: %w", err)
		}
	} else {
		rendered = []byte(residualizer.Print(residual))
	}

	if outputPath == "" {
		_, err := os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	glog.V(1).Infof("wrote residual program: %s -> %s", inputPath, outputPath)
	return nil
}

func defaultOutputFor(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + ".out.js"
}
