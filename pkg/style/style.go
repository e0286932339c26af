// Package style provides terminal styling for the rsm CLI: colors, the
// one-line result markers every command ends with, and the help layout.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red     = "\033[0;31m"
	Green   = "\033[0;32m"
	Yellow  = "\033[1;33m"
	Blue    = "\033[0;34m"
	Magenta = "\033[0;35m"
	Cyan    = "\033[0;36m"
	Gray    = "\033[90m"
)

// NoColor disables colors (for non-TTY or --no-color flag)
var NoColor = false

func init() {
	if os.Getenv("RSM_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		NoColor = true
	}
	// Check if stdout is a TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
			NoColor = true
		}
	}
}

// C wraps text with color, respecting NoColor setting
func C(color, text string) string {
	if NoColor {
		return text
	}
	return color + text + Reset
}

// Result markers. Every command reports its outcome with exactly one of these.
const (
	MarkOk   = "✓"
	MarkFail = "✗"
	MarkWarn = "⚠"
	MarkInfo = "○"
)

// Ok prints a success line.
func Ok(w io.Writer, format string, args ...any) {
	line(w, Green, MarkOk, format, args...)
}

// Fail prints a failure line.
func Fail(w io.Writer, format string, args ...any) {
	line(w, Red, MarkFail, format, args...)
}

// Warn prints a warning line.
func Warn(w io.Writer, format string, args ...any) {
	line(w, Yellow, MarkWarn, format, args...)
}

// Info prints a neutral line, used when nothing changed.
func Info(w io.Writer, format string, args ...any) {
	line(w, Gray, MarkInfo, format, args...)
}

func line(w io.Writer, color, mark, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", C(color, mark), fmt.Sprintf(format, args...))
}

// Detail prints an indented gray continuation line under a result line.
func Detail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", C(Gray, fmt.Sprintf(format, args...)))
}

// SetupHelp installs the colored usage and help templates on cmd.
func SetupHelp(cmd *cobra.Command) {
	cobra.AddTemplateFunc("styleHeading", styleHeading)
	cobra.AddTemplateFunc("styleCommand", styleCommand)
	cobra.AddTemplateFunc("styleDefault", styleDefault)
	cobra.AddTemplateFunc("rpadStyled", rpadStyled)

	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetHelpTemplate(helpTemplate)
}

func styleHeading(s string) string {
	if NoColor {
		return s
	}
	return Bold + Magenta + s + Reset
}

func styleCommand(s string) string {
	if NoColor {
		return s
	}
	return Cyan + s + Reset
}

func styleDefault(s string) string {
	if NoColor {
		return s
	}
	return Gray + s + Reset
}

func rpadStyled(s string, padding int) string {
	styled := styleCommand(s)
	// Add padding based on raw string length
	padLen := padding - len(s)
	if padLen > 0 {
		return styled + strings.Repeat(" ", padLen)
	}
	return styled
}

// usageTemplate lists sections under colored headings.
const usageTemplate = `{{ styleHeading "Usage:" }}
  {{ styleCommand .UseLine }}{{if .HasAvailableSubCommands}} [command]{{end}}
{{if .HasAvailableSubCommands}}
{{ styleHeading "Commands:" }}{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpadStyled .Name .NamePadding }}  {{.Short}}{{end}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// helpTemplate prints the description, then the usage sections.
const helpTemplate = `{{if .Long}}{{.Long}}

{{else if .Short}}{{.Short}}

{{end}}{{ styleHeading "Usage:" }}
  {{ styleCommand .UseLine }}{{if .HasAvailableSubCommands}} [command]{{end}}
{{if .HasExample}}
{{ styleHeading "Examples:" }}
{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
{{ styleHeading "Commands:" }}{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpadStyled .Name .NamePadding }}  {{.Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
{{ styleHeading "Options:" }}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}
{{ styleHeading "Global Options:" }}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableSubCommands}}
Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`
