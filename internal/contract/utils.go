package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Check status label constants.
const (
	PassValue = "PASS"
	FailValue = "FAIL"
)

// Color variables for console output.
var (
	PassColor = color.New(color.FgGreen, color.Bold)
	FailColor = color.New(color.FgRed, color.Bold)
)

// GetPlainStatus returns the plain text pass/fail label. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainStatus(passed bool) string {
	if passed {
		return PassValue
	}
	return FailValue
}

// GetColorStatus returns a colored pass/fail label for console output.
func GetColorStatus(passed bool) string {
	if passed {
		return PassColor.Sprint(PassValue)
	}
	return FailColor.Sprint(FailValue)
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
