package cli

import (
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/proofline/internal/ui/pretty"
)

// helpStyles styles command help.
type helpStyles struct {
	command lipgloss.Style
	heading lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{command: plain, heading: plain, name: plain, flag: plain, dim: plain}
	}
	return helpStyles{
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// flagToken matches -f and --flag-name at the start of a word.
var flagToken = regexp.MustCompile(`(^|[\s,])(--?[A-Za-z][\w-]*)`)

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}{{ end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]{{ end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ dim .Example }}{{ end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Commands:" }}{{ range .Commands }}{{ if (or .IsAvailableCommand (eq .Name "help")) }}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{ end }}{{ end }}{{ end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}{{ end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}{{ end }}
{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.{{ end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trim . }}

{{ end }}` + usageTemplate

// applyHelp installs styled help and usage output on cmd and its subcommands.
func applyHelp(cmd *cobra.Command, colorMode string, w io.Writer) {
	styles := newHelpStyles(pretty.IsColorEnabled(colorMode, w))

	funcs := template.FuncMap{
		"command": styles.command.Render,
		"heading": styles.heading.Render,
		"name":    styles.name.Render,
		"dim":     styles.dim.Render,
		"flags": func(fs *pflag.FlagSet) string {
			return styleFlags(styles, fs.FlagUsages())
		},
		"rpad": func(s string, n int) string {
			return s + strings.Repeat(" ", max(n-len(s), 0))
		},
		"trim": func(s string) string {
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight(line, " \t")
			}
			return strings.TrimSpace(strings.Join(lines, "\n"))
		},
	}

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return usage.Execute(c.OutOrStderr(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// styleFlags colors the flag names of pflag usage text.
func styleFlags(styles helpStyles, usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		end := strings.Index(trimmed, "   ")
		if end < 0 {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		head := flagToken.ReplaceAllStringFunc(trimmed[:end], func(m string) string {
			sub := flagToken.FindStringSubmatch(m)
			return sub[1] + styles.flag.Render(sub[2])
		})
		lines[i] = indent + head + trimmed[end:]
	}
	return strings.Join(lines, "\n")
}
