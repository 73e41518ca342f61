package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func printSuccess(format string, args ...any) {
	_, _ = successColor.Printf("✓ "+format+"\n", args...)
}

func printWarning(format string, args ...any) {
	_, _ = warningColor.Printf("⚠ "+format+"\n", args...)
}

func printError(format string, args ...any) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

func printInfo(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
