package cmd

import (
	"flag"

	"github.com/spf13/cobra"
)

// Version is stamped by build flags, in the manner of go-dws's cmd package.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "prepack",
	Short: "Whole-program partial evaluator",
	Long: `prepack residualizes an ECMAScript-like program's side effects under
whole-program partial evaluation: every call that can be inlined is
inlined, every value that can be folded to a concrete constant is folded,
and only the computation that genuinely depends on an unresolvable
abstract input is left behind as residual code.

prepack does not parse source text itself. It consumes an already-
structured AST (see "prepack run --help") produced by an external
front end, and emits the residual program either as a JSON AST (when the
output path ends in .json) or as a printed rendering of it.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// glog registers -v, -logtostderr, -alsologtostderr, etc. on the
	// standard flag.CommandLine at package-init time, forwarding verbosity
	// to glog. Folding that flag set into cobra's own, in the manner of
	// tools/celtest/test_runner.go's flag.* registrations, lets
	// `prepack -v=1 run ...` reach glog.V(1) without a second parser.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}
