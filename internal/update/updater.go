package update

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// binaryName is the installed executable and release asset base name.
const binaryName = "winnow"

const defaultReleaseBase = "https://github.com"

// Error variables for updater-specific errors.
var (
	ErrPermissionDenied    = fmt.Errorf("permission denied")
	ErrChecksumMismatch    = fmt.Errorf("checksum verification failed")
	ErrUnsupportedOS       = fmt.Errorf("unsupported operating system")
	ErrDownloadFailed      = fmt.Errorf("download failed")
	ErrExtractionFailed    = fmt.Errorf("extraction failed")
	ErrWindowsNoAutoUpdate = fmt.Errorf("auto-update not supported on Windows; please download manually")
)

// Updater handles downloading and installing updates.
type Updater struct {
	owner       string
	repo        string
	releaseBase string
	httpClient  *http.Client
}

// UpdaterOption configures an Updater.
type UpdaterOption func(*Updater)

// WithUpdaterHTTPClient sets a custom HTTP client for the updater.
func WithUpdaterHTTPClient(client *http.Client) UpdaterOption {
	return func(u *Updater) {
		u.httpClient = client
	}
}

// NewUpdater creates a new updater for the specified repository.
func NewUpdater(owner, repo string, opts ...UpdaterOption) *Updater {
	u := &Updater{
		owner:       owner,
		repo:        repo,
		releaseBase: defaultReleaseBase,
		httpClient: &http.Client{
			Timeout: 0, // No timeout for downloads
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Update downloads and installs the specified version.
// It performs an atomic replacement of the current binary, keeping the old
// one next to it as a .backup until CleanupBackup is called.
// Returns ErrWindowsNoAutoUpdate on Windows (manual update required).
func (u *Updater) Update(ctx context.Context, version string) error {
	// Windows cannot replace a running executable
	if runtime.GOOS == "windows" {
		return ErrWindowsNoAutoUpdate
	}

	execPath, err := currentExecutable()
	if err != nil {
		return err
	}

	if err := checkWritePermission(execPath); err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	tempBinary, cleanup, err := u.downloadAndExtract(ctx, version)
	if err != nil {
		return err
	}
	defer cleanup()

	// Backup current binary
	backupPath := execPath + ".backup"
	if err := os.Rename(execPath, backupPath); err != nil {
		return fmt.Errorf("backup current binary: %w", err)
	}

	// Move new binary into place, restoring the backup on failure
	if err := os.Rename(tempBinary, execPath); err != nil {
		_ = os.Rename(backupPath, execPath)
		return fmt.Errorf("install new binary: %w", err)
	}

	//nolint:gosec // G302: Binary needs to be executable
	if err := os.Chmod(execPath, 0755); err != nil {
		_ = os.Rename(backupPath, execPath)
		return fmt.Errorf("set executable permission: %w", err)
	}

	return nil
}

// Rollback restores the previous version from backup.
func (u *Updater) Rollback() error {
	execPath, err := currentExecutable()
	if err != nil {
		return err
	}

	backupPath := execPath + ".backup"
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("no backup found at %s", backupPath)
	}

	if err := os.Rename(backupPath, execPath); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}

	return nil
}

// HasBackup reports whether a backup of the previous binary exists.
func (u *Updater) HasBackup() bool {
	execPath, err := currentExecutable()
	if err != nil {
		return false
	}
	_, err = os.Stat(execPath + ".backup")
	return err == nil
}

// CleanupBackup removes the backup left behind by a successful update.
// Succeeds when no backup exists.
func (u *Updater) CleanupBackup() error {
	execPath, err := currentExecutable()
	if err != nil {
		return err
	}
	backupPath := execPath + ".backup"
	if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove backup: %w", err)
	}
	return nil
}

// currentExecutable resolves the running binary's real path.
func currentExecutable() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "", fmt.Errorf("resolve symlinks: %w", err)
	}
	return execPath, nil
}

// downloadAndExtract downloads the release tarball, verifies it against the
// release's checksums.txt when one is published, and extracts the binary.
// Returns the path to the extracted binary and a cleanup function.
func (u *Updater) downloadAndExtract(ctx context.Context, version string) (string, func(), error) {
	assetName, err := tarballName(version)
	if err != nil {
		return "", nil, err
	}

	version = strings.TrimPrefix(version, "v")
	base := fmt.Sprintf("%s/%s/%s/releases/download/v%s",
		u.releaseBase, u.owner, u.repo, version)

	tempDir, err := os.MkdirTemp("", "winnow-update-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp directory: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tempDir) }

	archivePath := filepath.Join(tempDir, assetName)
	if err := u.downloadFile(ctx, base+"/"+assetName, archivePath); err != nil {
		cleanup()
		return "", nil, err
	}
	if err := u.verifyArchive(ctx, base+"/checksums.txt", archivePath); err != nil {
		cleanup()
		return "", nil, err
	}

	//nolint:gosec // G304: archivePath is inside a temp directory we created
	archive, err := os.Open(archivePath)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = archive.Close() }()

	binaryPath, err := extractTarball(archive, tempDir)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	return binaryPath, cleanup, nil
}

// downloadFile fetches url into destPath.
func (u *Updater) downloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/octet-stream")
	req.Header.Set("User-Agent", "winnow-updater")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	return out.Close()
}

// verifyArchive checks the downloaded archive against the release checksum
// file. Releases without a checksums.txt are accepted as-is.
func (u *Updater) verifyArchive(ctx context.Context, url, archivePath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "winnow-updater")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		// Checksums are an optional asset; do not fail the update when
		// only the checksum fetch had a network hiccup.
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	checksums, err := ParseChecksumFile(resp.Body)
	if err != nil {
		return err
	}
	expected, ok := checksums[filepath.Base(archivePath)]
	if !ok {
		return nil
	}
	return VerifyChecksum(archivePath, expected)
}

// extractTarball extracts a .tar.gz archive and returns the path to the binary.
func extractTarball(r io.Reader, destDir string) (string, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return "", fmt.Errorf("create gzip reader: %w", err)
	}
	defer func() { _ = gzr.Close() }()

	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read tar: %w", err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}
		if filepath.Base(header.Name) != binaryName {
			continue
		}

		destPath := filepath.Join(destDir, binaryName)
		//nolint:gosec // G304: extracting to temp directory we control
		outFile, err := os.Create(destPath)
		if err != nil {
			return "", fmt.Errorf("create file: %w", err)
		}

		//nolint:gosec // G110: decompression bomb unlikely for known release assets
		if _, err := io.Copy(outFile, tr); err != nil {
			_ = outFile.Close()
			return "", fmt.Errorf("extract file: %w", err)
		}
		_ = outFile.Close()

		//nolint:gosec // G302: binary needs to be executable
		if err := os.Chmod(destPath, 0755); err != nil {
			return "", fmt.Errorf("chmod: %w", err)
		}

		return destPath, nil
	}

	return "", fmt.Errorf("binary not found in archive")
}

// tarballName returns the release tarball name for the current OS/arch.
// The leading 'v' is stripped from the version to match the published assets.
func tarballName(version string) (string, error) {
	version = strings.TrimPrefix(version, "v")

	switch runtime.GOOS {
	case "darwin", "linux":
		return fmt.Sprintf("%s_%s_%s_%s.tar.gz", binaryName, version, runtime.GOOS, runtime.GOARCH), nil
	case "windows":
		return "", ErrWindowsNoAutoUpdate
	default:
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedOS, runtime.GOOS, runtime.GOARCH)
	}
}

// checkWritePermission verifies the current process can write to the path.
func checkWritePermission(path string) error {
	dir := filepath.Dir(path)
	testFile := filepath.Join(dir, ".winnow-update-test")

	//nolint:gosec // G304: Path is constructed from known binary directory
	f, err := os.Create(testFile)
	if err != nil {
		return err
	}
	_ = f.Close()
	_ = os.Remove(testFile)
	return nil
}

// DetectInstallMethod determines how the application was installed.
func DetectInstallMethod() InstallMethod {
	execPath, err := currentExecutable()
	if err != nil {
		return InstallUnknown
	}

	// Check for Homebrew installation
	if strings.Contains(execPath, "Cellar") || strings.Contains(execPath, "homebrew") {
		return InstallHomebrew
	}

	// Check if brew command recognizes it
	if isHomebrewInstalled() {
		return InstallHomebrew
	}

	return InstallDirect
}

// isHomebrewInstalled checks if the app is installed via Homebrew.
func isHomebrewInstalled() bool {
	cmd := exec.Command("brew", "list", binaryName)
	return cmd.Run() == nil
}

// VerifyChecksum verifies a file against an expected SHA256 checksum.
func VerifyChecksum(path, expected string) error {
	//nolint:gosec // G304: Path comes from caller; this is intentional for checksum verification
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("hash file: %w", err)
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if actual != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, expected, actual)
	}

	return nil
}

// ParseChecksumFile parses a checksums.txt file and returns a map of filename to checksum.
// Format: "sha256hash  filename" (two spaces between hash and filename)
func ParseChecksumFile(r io.Reader) (map[string]string, error) {
	checksums := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on double space (standard format) or single space
		parts := strings.SplitN(line, "  ", 2)
		if len(parts) != 2 {
			parts = strings.SplitN(line, " ", 2)
		}
		if len(parts) != 2 {
			continue
		}

		hash := strings.TrimSpace(parts[0])
		filename := filepath.Base(strings.TrimSpace(parts[1]))

		if hash != "" && filename != "" {
			checksums[filename] = hash
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read checksums: %w", err)
	}

	return checksums, nil
}
