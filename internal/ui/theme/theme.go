// Package theme provides a semantic color system for the winnow UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the 16 semantic colors used by the picker.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (prompt, focused borders)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (counters, links)
	Accent() lipgloss.AdaptiveColor    // Match highlights

	// Status colors
	Error() lipgloss.AdaptiveColor   // Errors, destructive hints
	Warning() lipgloss.AdaptiveColor // Warnings
	Success() lipgloss.AdaptiveColor // Confirmations
	Info() lipgloss.AdaptiveColor    // Informational toasts

	// Text colors
	Text() lipgloss.AdaptiveColor           // Primary text
	TextMuted() lipgloss.AdaptiveColor      // De-emphasized text
	TextEmphasized() lipgloss.AdaptiveColor // Bold/important text

	// Background colors
	Background() lipgloss.AdaptiveColor          // Main background
	BackgroundSecondary() lipgloss.AdaptiveColor // Selected row, elevated surfaces
	BackgroundDarker() lipgloss.AdaptiveColor    // Pills, badges

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor  // Default borders
	BorderFocused() lipgloss.AdaptiveColor // Active/focused borders
	BorderDim() lipgloss.AdaptiveColor     // Subtle borders
}
