package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const previewMinWidth = 24

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	listHeight := m.listHeight()

	var mainBody string
	if previewWidth := m.previewPaneWidth(); previewWidth > 0 {
		listWidth := m.width - previewWidth
		list := m.renderList(listWidth, listHeight)
		preview := m.renderPreviewPane(previewWidth, listHeight)
		mainBody = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listWidth).Render(list),
			preview,
		)
	} else {
		mainBody = m.renderList(m.width, listHeight)
	}

	footer := m.renderFooter()
	frame := fmt.Sprintf("%s\n%s\n%s", header, mainBody, footer)

	layers := []Layer{}
	if m.showHelp {
		layers = append(layers, newCenteredOverlayLayer(
			renderHelpOverlay(m.keys), m.width, m.height, headerHeight, footerHeight))
	}
	if m.showHistory {
		layers = append(layers, newCenteredOverlayLayer(
			m.historyList.View(), m.width, m.height, headerHeight, footerHeight))
	}
	layers = append(layers,
		m.copyToastLayer(m.width, m.height, headerHeight, m.listHeight()),
		m.themeToastLayer(m.width, m.height, headerHeight, m.listHeight()),
		m.errorToastLayer(m.width, m.height, headerHeight, m.listHeight()),
	)

	hasLayer := false
	for _, layer := range layers {
		if layer != nil {
			hasLayer = true
			break
		}
	}
	if !hasLayer {
		return frame
	}
	return composeLayers(frame, m.width, m.height, layers...)
}

// renderHeader renders the query input with the match counter right-aligned.
func (m *App) renderHeader() string {
	input := m.textInput.View()
	counter := m.renderCounter()

	spacing := m.width - lipgloss.Width(input) - lipgloss.Width(counter) - 1
	if spacing < 1 {
		return truncateLine(input, m.width)
	}
	return input + strings.Repeat(" ", spacing) + counter + " "
}

// renderPreviewPane renders the selected candidate's full text in a bordered
// viewport beside the list.
func (m *App) renderPreviewPane(width, height int) string {
	if m.preview.Width <= 0 || m.preview.Height <= 0 {
		m.sizePreview()
	}

	innerWidth := clampDimension(width-2, 1, m.width)
	innerHeight := clampDimension(height-2, 1, m.height)
	return stylePreviewPane().Width(innerWidth).Height(innerHeight).Render(m.preview.View())
}
