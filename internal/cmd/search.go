package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/custsearch/internal/config"
	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/errors"
	"github.com/Iron-Ham/custsearch/internal/logging"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
	"github.com/Iron-Ham/custsearch/internal/tui/view"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Print the customers matching a query",
	Long: `Load the dataset once, filter it with query and print the result table.

The output is the same as the search screen: a "Found N results" line and
at most --limit rows. Without a query only the table header and a prompt
are printed. A dataset that cannot be loaded is treated as empty; the
failure is logged to stderr and the exit status stays 0.

Examples:
  custsearch search john
  custsearch search 200012 --source https://example.com/customers.json
  custsearch search doe --limit 10 --width 100`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var (
	searchLimit   int
	searchWidth   int
	searchNoColor bool
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum rows to print (default: search.result_limit)")
	searchCmd.Flags().IntVarP(&searchWidth, "width", "w", 0, "table width in columns (default: terminal width, unbounded when piped)")
	searchCmd.Flags().BoolVar(&searchNoColor, "no-color", false, "disable colors")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	limit := cfg.Search.ResultLimit
	if cmd.Flags().Changed("limit") {
		if searchLimit <= 0 {
			return errors.NewValidationError("must be positive").WithField("limit").WithValue(searchLimit)
		}
		limit = searchLimit
	}

	out := cmd.OutOrStdout()
	outTTY, outWidth := terminalInfo(out)
	errTTY, _ := terminalInfo(cmd.ErrOrStderr())

	logger := logging.NewConsole(cmd.ErrOrStderr(), cfg.Logging.Level, searchNoColor || !errTTY).
		WithSource(cfg.Source.Location)

	ds, err := newLoader(cfg, logger).Load(cmd.Context(), cfg.Source.Location)
	if err != nil {
		if !errors.IsLoadError(err) {
			return err
		}
		logger.Error("dataset load failed",
			"error", err.Error(),
			"severity", errors.GetSeverity(err).String(),
			"user_facing", errors.IsUserFacing(err),
		)
		ds = customer.Dataset{}
	} else {
		logger.Debug("dataset loaded", "records", ds.Len())
	}

	s := styles.Plain()
	if outTTY && !searchNoColor {
		s = styles.New(styles.ThemeName(cfg.TUI.Theme))
	}

	width := outWidth
	if cmd.Flags().Changed("width") {
		width = searchWidth
	}

	_, err = fmt.Fprintln(out, view.Render(view.State{
		Query:   query,
		Dataset: ds,
		Width:   width,
		Limit:   limit,
	}, s))
	return err
}

// terminalInfo reports whether w is a terminal and, if so, its width.
func terminalInfo(w io.Writer) (isTTY bool, width int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil {
		return true, width
	}
	return true, 0
}
