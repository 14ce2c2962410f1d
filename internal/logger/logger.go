// Package logger provides tagged, colored console output for the CLI.
package logger

import (
	"fmt"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

func emit(color, mark, tag, msg string) {
	ts := time.Now().Format("15:04:05")
	fmt.Printf("%s%s%s %s%s [%-7s]%s %s\n", ansiDim, ts, ansiReset, color, mark, tag, ansiReset, msg)
}

// Info logs a neutral progress message.
func Info(tag, msg string) { emit(ansiBlue, "·", tag, msg) }

// Success logs a completed step.
func Success(tag, msg string) { emit(ansiGreen, "✓", tag, msg) }

// Warn logs a non-fatal problem.
func Warn(tag, msg string) { emit(ansiYellow, "!", tag, msg) }

// Error logs a failure. It does not exit; callers decide.
func Error(tag, msg string) { emit(ansiRed, "✗", tag, msg) }

// Banner prints the startup header with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("%s%sACEQUIA%s %swater allocation simulator%s %s(%s)%s\n",
		ansiBold, ansiCyan, ansiReset, ansiDim, ansiReset, ansiDim, version, ansiReset)
}

// Section prints a visual divider before a block of related output.
func Section(title string) {
	fmt.Printf("\n%s── %s ──%s\n", ansiCyan, title, ansiReset)
}

// Stats prints an aligned label/value pair, for report output.
func Stats(label string, value any) {
	fmt.Printf("  %s%-12s%s %v\n", ansiDim, label, ansiReset, value)
}
