// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"prism/internal/errors"
	"prism/internal/parser"
)

const PROMPT = ">> "

// Start reads one translation unit per line, parses it and echoes the
// canonical AST, until the input drains.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		module, parseErrs, scanErrs := parser.ParseSource("repl", line)

		if module == nil {
			reporter := errors.NewReporter("repl", line)
			fmt.Print(reporter.Report(parseErrs, scanErrs))
			continue
		}

		fmt.Printf("AST:\n%s\n", module.String())
	}
}
