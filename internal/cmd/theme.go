package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
	"github.com/Iron-Ham/custsearch/internal/tui/view"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect color themes",
	Long: `Inspect the built-in color themes of the search screen.

Use 'theme list' to see all available themes.
Use 'theme info' to view the palette of a theme.
Use 'theme preview' to render sample results with a theme.
Select a theme with 'custsearch config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show the palette of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themePreviewCmd = &cobra.Command{
	Use:   "preview [theme-name]",
	Short: "Render sample results with a theme (default: the configured theme)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemePreview,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themePreviewCmd)
	configCmd.AddCommand(themeCmd)
}

func unknownThemeError(name string) error {
	return fmt.Errorf("unknown theme: %s\n\nRun 'custsearch config theme list' to see available themes", name)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	current := viper.GetString("tui.theme")

	fmt.Fprintln(out, "Available themes:")
	for _, name := range styles.ThemeNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, name)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "* = configured theme")
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if !styles.IsValidTheme(themeName) {
		return unknownThemeError(themeName)
	}

	out := cmd.OutOrStdout()
	palette := styles.GetPalette(styles.ThemeName(themeName))

	fmt.Fprintf(out, "Theme: %s\n", themeName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Colors:")
	colors := []struct {
		label string
		color lipgloss.Color
	}{
		{"Primary", palette.Primary},
		{"Secondary", palette.Secondary},
		{"Warning", palette.Warning},
		{"Muted", palette.Muted},
		{"Text", palette.Text},
		{"Border", palette.Border},
		{"Row (alt)", palette.RowAlt},
		{"Match bg", palette.SearchMatchBg},
		{"Match fg", palette.SearchMatchFg},
	}
	for _, c := range colors {
		value := string(c.color)
		if value == "" {
			value = "(terminal default)"
		}
		fmt.Fprintf(out, "  %-10s %s\n", c.label+":", value)
	}
	return nil
}

// previewDataset is the sample shown by theme preview.
var previewDataset = customer.Dataset{
	customer.NewRecord("1001", "Amal Perera", "852345678V", "12 Galle Road, Colombo 03"),
	customer.NewRecord("1002", "Nimali Perera", "199012345678", "44 Temple Lane, Kandy"),
	customer.NewRecord("1003", "Kasun Silva", "901234567V", "7 Lake Drive, Kurunegala"),
}

func runThemePreview(cmd *cobra.Command, args []string) error {
	themeName := viper.GetString("tui.theme")
	if len(args) > 0 {
		themeName = args[0]
	}
	if !styles.IsValidTheme(themeName) {
		return unknownThemeError(themeName)
	}

	_, width := terminalInfo(cmd.OutOrStdout())
	_, err := fmt.Fprintln(cmd.OutOrStdout(), view.Render(view.State{
		Query:   "perera",
		Dataset: previewDataset,
		Width:   width,
	}, styles.New(styles.ThemeName(themeName))))
	return err
}
