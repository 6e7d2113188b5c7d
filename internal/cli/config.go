package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/proofline/internal/configloader"
	"github.com/yaklabco/proofline/pkg/config"
)

type configFlags struct {
	format string
	env    bool
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after user and project files, PROOFLINE_*
environment variables and flags have been applied.

Examples:
  proofline config                 # YAML
  proofline config --format json
  proofline config --env           # List supported environment variables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "yaml", "output format: yaml, json")
	cmd.Flags().BoolVar(&flags.env, "env", false, "list supported environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command, flags *configFlags) error {
	out := cmd.OutOrStdout()

	if flags.env {
		vars := configloader.ListEnvVars()
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(out, "%-30s %s\n", name, vars[name])
		}
		return nil
	}

	env, err := loadEnvironment(cmd, &config.Config{})
	if err != nil {
		return err
	}

	var data []byte
	switch flags.format {
	case "yaml":
		data, err = env.cfg.ToYAML()
	case "json":
		data, err = env.cfg.ToJSON()
	default:
		return fmt.Errorf("%w: format %q must be yaml or json", ErrUsage, flags.format)
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = out.Write(data)
	return err
}
