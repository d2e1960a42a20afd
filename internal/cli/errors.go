package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DisplayError prints err followed by its cause chain, one "Caused by:"
// block per wrapped error.
func DisplayError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "Error:")
	fmt.Fprintf(w, " %s\n", err)
	for cause := unwrapCause(err); cause != nil; cause = unwrapCause(cause) {
		fmt.Fprintln(w)
		_, _ = color.New(color.Bold).Fprintln(w, "Caused by:")
		for _, line := range strings.Split(cause.Error(), "\n") {
			if line == "" {
				fmt.Fprintln(w)
			} else {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}
	}
}

// unwrapCause follows the wrapped-error chain. For errors joining several
// wrapped errors ("%w: %w") the underlying cause is the last one.
func unwrapCause(err error) error {
	switch v := err.(type) { //nolint:errorlint // unwrapping, not comparing
	case interface{ Unwrap() error }:
		return v.Unwrap()
	case interface{ Unwrap() []error }:
		errs := v.Unwrap()
		if len(errs) == 0 {
			return nil
		}
		return errs[len(errs)-1]
	default:
		return nil
	}
}
