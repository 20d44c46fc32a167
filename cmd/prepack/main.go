// Command prepack drives the partial evaluator over already-structured
// (JSON) ASTs. It is thin CLI wiring around the realm/evaluator/
// residualizer libraries: the front-end that would turn source text into
// an AST is a deliberately out-of-scope external collaborator (see
// ast.DecodeProgram's doc comment), so this binary consumes an AST that
// collaborator is assumed to have already produced.
package main

import (
	"fmt"
	"os"

	"github.com/yernsun/prepack/cmd/prepack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prepack: %v\n", err)
		os.Exit(1)
	}
}
