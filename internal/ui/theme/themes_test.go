package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestAllThemesRegistered(t *testing.T) {
	expected := []string{
		"dracula",
		"nord",
		"tokyonight",
	}

	available := Available()
	availableMap := make(map[string]bool)
	for _, name := range available {
		availableMap[name] = true
	}

	for _, name := range expected {
		if !availableMap[name] {
			t.Errorf("expected theme %q to be registered, but it was not found", name)
		}
	}
}

func TestSetTheme(t *testing.T) {
	for _, name := range []string{"dracula", "nord", "tokyonight"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false, expected true", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
	}
}

func TestSetInvalidTheme(t *testing.T) {
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme(\"nonexistent-theme\") returned true, expected false")
	}
}

func TestCycleThemeVisitsAllThemes(t *testing.T) {
	if !SetTheme("tokyonight") {
		t.Fatal("SetTheme(tokyonight) failed")
	}

	seen := map[string]bool{CurrentName(): true}
	count := len(Available())
	for i := 0; i < count; i++ {
		seen[CycleTheme()] = true
	}

	for _, name := range Available() {
		if !seen[name] {
			t.Errorf("CycleTheme never visited %q", name)
		}
	}
	if CurrentName() != "tokyonight" {
		t.Errorf("expected a full cycle to return to tokyonight, got %q", CurrentName())
	}
}

func TestThemeColorsNonEmpty(t *testing.T) {
	check := func(name string, c lipgloss.AdaptiveColor) {
		t.Helper()
		if c.Dark == "" || c.Light == "" {
			t.Errorf("%s has empty variant: %+v", name, c)
		}
	}

	for _, name := range Available() {
		if !SetTheme(name) {
			t.Fatalf("SetTheme(%q) failed", name)
		}
		th := Current()
		check(name+".Primary", th.Primary())
		check(name+".Accent", th.Accent())
		check(name+".Error", th.Error())
		check(name+".Text", th.Text())
		check(name+".Background", th.Background())
		check(name+".BorderFocused", th.BorderFocused())
	}
}
