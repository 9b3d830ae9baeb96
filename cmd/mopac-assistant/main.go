// mopac-assistant is a reference for MOPAC users: which semi-empirical
// methods parameterize an element, and what each keyword does.
//
// Usage examples:
//
//	mopac-assistant                      # terminal UI
//	mopac-assistant serve --addr :8080   # web UI
//	mopac-assistant element Fe
//	mopac-assistant keyword PRECISE
//	mopac-assistant export --out support.xlsx
package main

import (
	"fmt"
	"os"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	for _, h := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "hint: %s\n", h)
	}
	os.Exit(1)
}
