package version

import (
	"strings"
	"testing"
)

func TestGetCarriesLdflagsVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "1.2.0"

	info := Get()
	if info.Version != "1.2.0" {
		t.Errorf("Version = %q, want 1.2.0", info.Version)
	}
}

func TestShortStartsWithVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "1.2.0"

	s := Short()
	if !strings.HasPrefix(s, "1.2.0") {
		t.Errorf("Short() = %q, want prefix 1.2.0", s)
	}
}

func TestShortCommitIsTruncated(t *testing.T) {
	info := Get()
	if info.GitCommit != "" && len(info.GitCommit) > 7 {
		t.Errorf("GitCommit = %q, want at most 7 characters", info.GitCommit)
	}
}
