package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"winnow/internal/update"
)

const updateCheckTimeout = 10 * time.Second

// runCheckUpdate queries GitHub for the latest release and reports whether
// an upgrade is available. Dev builds skip the check entirely.
func runCheckUpdate(stdout, stderr io.Writer, owner, repo string) int {
	ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
	defer cancel()

	info, err := update.NewChecker(owner, repo).Check(ctx, Version)
	if err != nil {
		fmt.Fprintf(stderr, "Error: check for updates: %v\n", err)
		return 2
	}
	renderUpdateStatus(stdout, info)
	return 0
}

// renderUpdateStatus prints the outcome of a release check. A nil info means
// the running build is a dev build that skipped the check.
func renderUpdateStatus(w io.Writer, info *update.UpdateInfo) {
	if info == nil {
		fmt.Fprintf(w, "winnow %s is a development build; update checks are skipped.\n", Version)
		return
	}
	if !info.UpdateAvailable {
		fmt.Fprintf(w, "winnow %s is up to date.\n", info.CurrentVersion)
		return
	}

	fmt.Fprintf(w, "Update available: %s -> %s\n", info.CurrentVersion, info.LatestVersion)
	if info.ReleaseURL != "" {
		fmt.Fprintf(w, "Release notes: %s\n", info.ReleaseURL)
	}
	if info.UpdateCommand != "" {
		fmt.Fprintf(w, "Run: %s\n", info.UpdateCommand)
	}
}

// upgradeGate refuses self-upgrade for package-managed installs. Returns
// true when the in-place upgrade may proceed.
func upgradeGate(stderr io.Writer, method update.InstallMethod) bool {
	if method == update.InstallHomebrew {
		fmt.Fprintln(stderr, "Error: winnow was installed with Homebrew; run \"brew upgrade winnow\" instead.")
		return false
	}
	return true
}

// runUpgrade replaces the running binary with the latest release.
func runUpgrade(stdout, stderr io.Writer, owner, repo string) int {
	if !upgradeGate(stderr, update.DetectInstallMethod()) {
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
	info, err := update.NewChecker(owner, repo).Check(ctx, Version)
	cancel()
	if err != nil {
		fmt.Fprintf(stderr, "Error: check for updates: %v\n", err)
		return 2
	}
	if info == nil {
		fmt.Fprintf(stdout, "winnow %s is a development build; nothing to upgrade.\n", Version)
		return 0
	}
	if !info.UpdateAvailable {
		fmt.Fprintf(stdout, "winnow %s is already up to date.\n", info.CurrentVersion)
		return 0
	}

	fmt.Fprintf(stdout, "Upgrading winnow %s -> %s...\n", info.CurrentVersion, info.LatestVersion)

	// Downloads run without a deadline; release tarballs can be slow on
	// thin connections.
	updater := update.NewUpdater(owner, repo)
	if err := updater.Update(context.Background(), info.LatestVersion.String()); err != nil {
		if errors.Is(err, update.ErrWindowsNoAutoUpdate) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			if info.ReleaseURL != "" {
				fmt.Fprintf(stderr, "Download the release from %s\n", info.ReleaseURL)
			}
			return 2
		}
		fmt.Fprintf(stderr, "Error: upgrade: %v\n", err)
		return 2
	}
	_ = updater.CleanupBackup()

	fmt.Fprintf(stdout, "Upgraded to %s.\n", info.LatestVersion)
	return 0
}
