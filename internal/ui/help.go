package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpSection represents a group of keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // Each row: [keys, description]
}

// getHelpSections returns the help content organized into sections.
// Layout is explicit - each section lists which bindings appear in which order.
// Text is derived from binding.Help() to maintain single source of truth.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Home.Help().Key, keys.Home.Help().Desc},
				{keys.End.Help().Key, keys.End.Help().Desc},
				{keys.PageUp.Help().Key, keys.PageUp.Help().Desc},
				{keys.PageDown.Help().Key, keys.PageDown.Help().Desc},
			},
		},
		{
			title: "ACTIONS",
			rows: [][]string{
				{keys.Accept.Help().Key, keys.Accept.Help().Desc},
				{keys.Abort.Help().Key, keys.Abort.Help().Desc},
				{keys.Copy.Help().Key, keys.Copy.Help().Desc},
				{keys.TogglePreview.Help().Key, keys.TogglePreview.Help().Desc},
			},
		},
		{
			title: "EXTRAS",
			rows: [][]string{
				{keys.History.Help().Key, keys.History.Help().Desc},
				{keys.CycleTheme.Help().Key, keys.CycleTheme.Help().Desc},
				{keys.Help.Help().Key, keys.Help.Help().Desc},
			},
		},
	}
}

// renderHelpOverlay creates the centered help modal content.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)

	// Left column (Navigation), right column (Actions + Extras)
	leftCol := renderHelpSectionTable(sections[0])
	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[1]),
		"",
		renderHelpSectionTable(sections[2]),
	)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	title := styleOverlayTitle().Render("✦ WINNOW HELP ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	divider := styleHelpDivider().Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter().Render("Press any key to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)

	return styleOverlay().Render(content)
}

// renderHelpSectionTable renders a single help section using lipgloss/table.
func renderHelpSectionTable(section helpSection) string {
	// Create table with hidden borders for clean look
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(15)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpSectionHeader().Render(section.title)
	underline := styleHelpUnderline().Render(strings.Repeat("─", len(section.title)))

	// Trim leading newline from table output (hidden border adds empty top row)
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		tableStr,
	)
}
