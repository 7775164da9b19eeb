package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// copyToastLayer renders the copy success toast if visible.
func (m *App) copyToastLayer(width, height, mainBodyStart, mainBodyHeight int) Layer {
	if !m.showCopyToast || m.copiedText == "" {
		return nil
	}
	elapsed := time.Since(m.copyToastStart)
	remaining := int(copyToastDuration.Seconds()) - int(elapsed.Seconds())
	if remaining < 0 {
		remaining = 0
	}

	display := m.copiedText
	if lipgloss.Width(display) > 40 {
		display = truncateLine(display, 40)
	}
	msgLine := fmt.Sprintf("Copied '%s' to clipboard.", display)
	countdownStr := fmt.Sprintf("[%ds]", remaining)

	toastWidth := lipgloss.Width(msgLine)
	if toastWidth < 30 {
		toastWidth = 30
	}

	padding := toastWidth - len(countdownStr)
	if padding < 0 {
		padding = 0
	}
	content := fmt.Sprintf("%s\n%s%s", msgLine, strings.Repeat(" ", padding), countdownStr)

	return newToastLayer(styleSuccessToast().Render(content), width, height, mainBodyStart, mainBodyHeight)
}

// themeToastLayer renders the theme change toast if visible.
func (m *App) themeToastLayer(width, height, mainBodyStart, mainBodyHeight int) Layer {
	if !m.themeToastVisible || m.themeToastName == "" {
		return nil
	}
	elapsed := time.Since(m.themeToastStart)
	remaining := int(themeToastDuration.Seconds()) - int(elapsed.Seconds())
	if remaining < 0 {
		remaining = 0
	}

	// Capitalize the theme name for display
	themeName := m.themeToastName
	if len(themeName) > 0 {
		themeName = strings.ToUpper(themeName[:1]) + themeName[1:]
	}

	label := styleDimText().Render("Theme:")
	name := styleOverlayTitle().Render(themeName)
	heroLine := " 🎨 " + label + " " + name
	countdownStr := styleDimText().Render(fmt.Sprintf("[%ds]", remaining))

	heroWidth := lipgloss.Width(heroLine)
	countdownWidth := lipgloss.Width(countdownStr)

	targetWidth := heroWidth
	if targetWidth < 25 {
		targetWidth = 25
	}
	padding := targetWidth - countdownWidth
	if padding < 2 {
		padding = 2
	}

	content := heroLine + "\n" + strings.Repeat(" ", padding) + countdownStr
	return newToastLayer(styleSuccessToast().Render(content), width, height, mainBodyStart, mainBodyHeight)
}

// errorToastLayer renders the error toast if visible.
func (m *App) errorToastLayer(width, height, mainBodyStart, mainBodyHeight int) Layer {
	if !m.showErrorToast || m.lastError == "" {
		return nil
	}
	elapsed := time.Since(m.errorToastStart)
	remaining := int(errorToastDuration.Seconds()) - int(elapsed.Seconds())
	if remaining < 0 {
		remaining = 0
	}

	titleLine := "⚠ Error"
	msgLine := truncateLine(m.lastError, 60)
	countdownStr := fmt.Sprintf("[%ds]", remaining)

	toastWidth := 30
	if w := lipgloss.Width(msgLine); w > toastWidth {
		toastWidth = w
	}

	padding := toastWidth - len(countdownStr)
	if padding < 0 {
		padding = 0
	}
	content := fmt.Sprintf("%s\n%s\n%s%s", titleLine, msgLine, strings.Repeat(" ", padding), countdownStr)

	return newToastLayer(styleErrorToast().Render(content), width, height, mainBodyStart, mainBodyHeight)
}
