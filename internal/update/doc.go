// Package update provides version checking and self-update functionality.
//
// This package handles:
//   - Querying GitHub API for latest release information
//   - Comparing semantic versions to detect available updates
//   - Detecting installation method (Homebrew vs direct binary)
//   - Downloading, verifying and installing updates atomically
//
// The package is isolated from CLI concerns. It returns structured data
// (UpdateInfo) that the caller can present however it wants. Homebrew
// installs are detected but never modified; the caller should point the
// user at brew instead of calling Update.
//
// Example usage:
//
//	checker := update.NewChecker(update.DefaultRepoOwner, update.DefaultRepoName)
//	info, err := checker.Check(ctx, currentVersion)
//	if err != nil {
//	    // handle error
//	}
//	if info.UpdateAvailable {
//	    // prompt user or run the updater
//	}
package update
