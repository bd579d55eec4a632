// Package errors prints command failures the same way from every entry point.
package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/dateformatters/internal/logger"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Format prefixes err with "Error: ". A nil err formats as "".
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err, prints it to stderr and exits with code 1. It returns
// normally when err is nil so main can pass kong's Run result straight in.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(stderr, Format(err))
	exit(1)
}
