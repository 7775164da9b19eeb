package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"winnow/internal/ui/theme"
)

// Styles are functions rather than package vars so every render picks up the
// active theme. Cycling themes at runtime would otherwise require rebuilding
// each style by hand.

// baseStyle carries the primary background for padding and filler cells.
func baseStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Background())
}

func styleHeaderTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextEmphasized()).
		Background(theme.Current().Primary()).
		Bold(true).
		Padding(0, 1)
}

func stylePrompt() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

func styleCounter() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleNormalText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text())
}

func styleDimText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

// styleCursorBar renders the selection marker in the left gutter.
func styleCursorBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Foreground(theme.Current().TextEmphasized()).
		Bold(true)
}

// styleMatchHighlight marks the runes the pattern matched within a row.
func styleMatchHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true).
		Underline(true)
}

// styleMatchHighlightSelected is the match highlight on the cursor row, which
// must keep the selected-row background.
func styleMatchHighlightSelected() lipgloss.Style {
	return styleMatchHighlight().
		Background(theme.Current().BackgroundSecondary())
}

func styleEmptyNotice() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Warning()).
		Italic(true)
}

// Toast styles

func styleErrorToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Background()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Error()).
		BorderBackground(theme.Current().Background()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleSuccessToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Background()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Success()).
		BorderBackground(theme.Current().Background()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

// Overlay styles
//
// These are THE canonical overlay styles. All overlays should use these
// for consistency. Do not create new overlay style functions.

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Padding(1, 2)
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

// Help overlay styles

func styleHelpDivider() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary())
}

func styleHelpSectionHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true)
}

func styleHelpUnderline() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary())
}

func styleHelpKey() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Info()).
		Bold(true)
}

func styleHelpDesc() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleHelpFooter() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Italic(true)
}

// Footer bar styles

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().TextEmphasized()).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleFooterMuted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

// Preview pane styles

func stylePreviewPane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().BorderNormal())
}

func stylePreviewTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true)
}

// buildMarkdownRenderer returns a renderer for the preview pane. Unknown or
// plain formats fall back to word wrapping without markdown decoration.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" || style == "text" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
