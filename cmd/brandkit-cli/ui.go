// Package main provides UI utilities for the brandkit CLI.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// UI provides user-friendly output utilities.
type UI struct {
	noColor  bool
	jsonMode bool
	spin     *spinner.Spinner
}

// NewUI creates a new UI instance.
func NewUI(jsonMode, noColor bool) *UI {
	return &UI{
		noColor:  noColor,
		jsonMode: jsonMode,
	}
}

// StartSpinner shows a spinner while a fetch is in flight. No-op in JSON
// mode or when output is piped.
func (ui *UI) StartSpinner(message string) {
	if ui.jsonMode || !isTerminal() {
		return
	}
	ui.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	ui.spin.Suffix = " " + message
	ui.spin.Start()
}

// StopSpinner stops the active spinner, if any.
func (ui *UI) StopSpinner() {
	if ui.spin != nil {
		ui.spin.Stop()
		ui.spin = nil
	}
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgGreen).Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// Error prints an error message.
func (ui *UI) Error(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
	} else {
		color.New(color.FgRed).Fprintf(os.Stderr, "✗ %s\n", fmt.Sprintf(format, args...))
	}
}

// Info prints an info message.
func (ui *UI) Info(format string, args ...interface{}) {
	if ui.jsonMode {
		return
	}
	fmt.Printf(format+"\n", args...)
}

// Header prints a bold section header.
func (ui *UI) Header(text string) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Printf("\n%s\n%s\n", text, strings.Repeat("─", len([]rune(text))))
	} else {
		color.New(color.Bold).Printf("\n%s\n", text)
		fmt.Println(strings.Repeat("─", len([]rune(text))))
	}
}

// Markdown prints message text, rendering the light markdown the responses
// use (bold markers and list dashes) for terminals.
func (ui *UI) Markdown(text string) {
	if ui.jsonMode {
		return
	}
	if ui.noColor {
		fmt.Println(strings.ReplaceAll(text, "**", ""))
		return
	}
	bold := color.New(color.Bold)
	for _, line := range strings.Split(text, "\n") {
		for i, part := range strings.Split(line, "**") {
			if i%2 == 1 {
				bold.Print(part)
			} else {
				fmt.Print(part)
			}
		}
		fmt.Println()
	}
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
