package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/proofline/internal/logging"
	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/runner"
)

// gutterAllowance is the terminal width reserved for outline labels.
const gutterAllowance = 16

type outlineFlags struct {
	segments string
	format   string
	flavor   string
	scroll   int
	width    int
}

func newOutlineCommand() *cobra.Command {
	flags := &outlineFlags{}

	cmd := &cobra.Command{
		Use:   "outline <essay>",
		Short: "Place outline labels beside the essay",
		Long: `Lay the essay out and place each outline label beside its paragraph.

Labels are read from <essay>.outline.json, a list of {"paragraph", "structure"}
objects. A label is placed at the first visible occurrence of its paragraph
text; paragraphs that span formatting or are missing are listed as not placed.

Examples:
  proofline outline essay.md
  proofline outline essay.md --width 60 --scroll 40
  proofline outline essay.md --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.segments, "segments", "", "outline file (default: <essay>.outline.json)")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "essay flavor: auto, markdown, plain")
	cmd.Flags().IntVar(&flags.scroll, "scroll", 0, "viewport scroll offset")
	cmd.Flags().IntVar(&flags.width, "width", 0, "wrap width in cells (default: layout.width or the terminal)")

	return cmd
}

func runOutline(cmd *cobra.Command, path string, flags *outlineFlags) error {
	cli := &config.Config{
		Format: config.OutputFormat(flags.format),
		Flavor: config.Flavor(flags.flavor),
		Scroll: flags.scroll,
	}
	cli.Layout.Width = flags.width

	env, err := loadEnvironment(cmd, cli)
	if err != nil {
		return err
	}
	logger := logging.FromContext(env.ctx)

	width := env.cfg.Layout.Width
	if width == 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	result, err := runner.New(env.cfg).Outline(env.ctx, path, runner.OutlineOptions{
		SegmentsPath: flags.segments,
		Scroll:       float64(env.cfg.Scroll),
		Width:        width,
	})
	if err != nil {
		return err
	}

	logger.Debug("outline placed",
		logging.FieldPath, result.Path,
		logging.FieldWidth, width,
		logging.FieldScroll, env.cfg.Scroll,
		logging.FieldSegments, len(result.Segments),
		logging.FieldMarkers, len(result.Markers),
	)

	rep, err := env.newReporter(cmd)
	if err != nil {
		return err
	}
	if err := rep.Outline(env.ctx, result); err != nil {
		return fmt.Errorf("report outline: %w", err)
	}
	return nil
}

// terminalWidth returns the text width left beside the label gutter when w is a
// terminal, or 0 to use the layout default.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= gutterAllowance*2 {
		return 0
	}
	return cols - gutterAllowance
}
