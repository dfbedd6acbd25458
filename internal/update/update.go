// Package update checks GitHub releases and replaces the running binary.
package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub repository releases are published to.
const Repo = "pengelbrecht/sum"

var (
	// ErrDevBuild is returned when the running binary has no release version.
	ErrDevBuild = errors.New("development build cannot be updated")
	// ErrNoRelease is returned by Update when given a release that did not
	// come from CheckForUpdate.
	ErrNoRelease = errors.New("no release to install")
)

// InstallMethod describes how the binary was installed.
type InstallMethod int

const (
	InstallBinary InstallMethod = iota
	InstallHomebrew
	InstallGo
)

// Release is a published version. URL points at its release notes.
type Release struct {
	Version string
	URL     string

	asset *selfupdate.Release
}

// DetectInstallMethod inspects the running executable's location.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallBinary
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return installMethodFor(exe)
}

func installMethodFor(path string) InstallMethod {
	p := filepath.ToSlash(path)
	switch {
	case strings.Contains(p, "/Cellar/"), strings.Contains(p, "/homebrew/"), strings.Contains(p, "/linuxbrew/"):
		return InstallHomebrew
	case strings.Contains(p, "/go/bin/"):
		return InstallGo
	default:
		return InstallBinary
	}
}

// CheckForUpdate reports the latest release and whether it is newer than current.
func CheckForUpdate(ctx context.Context, current string) (*Release, bool, error) {
	if err := checkVersion(current); err != nil {
		return nil, false, err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(Repo))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, false, fmt.Errorf("no release found for %s", Repo)
	}

	release := &Release{Version: latest.Version(), URL: latest.URL, asset: latest}
	return release, !latest.LessOrEqual(current), nil
}

// Update replaces the running binary with a release returned by
// CheckForUpdate. It does not query GitHub again.
func Update(ctx context.Context, release *Release) (*Release, error) {
	if release == nil || release.asset == nil {
		return nil, ErrNoRelease
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, release.asset.AssetURL, release.asset.AssetName, exe); err != nil {
		return nil, fmt.Errorf("install %s: %w", release.Version, err)
	}
	return release, nil
}

// checkVersion rejects dev builds and versions that are not semver.
func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || v == "dev" || strings.HasSuffix(v, "-dev") {
		return ErrDevBuild
	}
	if _, err := semver.NewVersion(v); err != nil {
		return fmt.Errorf("invalid version %q: %w", v, err)
	}
	return nil
}
