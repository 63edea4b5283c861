package gitlog

import (
	"strings"
	"testing"
)

func TestIsCommitSHA(t *testing.T) {
	tests := []struct {
		name string
		sha  string
		want bool
	}{
		{name: "full lowercase hex sha", sha: strings.Repeat("a1", 20), want: true},
		{name: "all zeros is still syntactically valid", sha: strings.Repeat("0", 40), want: true},
		{name: "empty", sha: "", want: false},
		{name: "short sha", sha: "abc123", want: false},
		{name: "uppercase hex", sha: strings.Repeat("A1", 20), want: false},
		{name: "non-hex characters", sha: strings.Repeat("g", 40), want: false},
		{name: "41 characters", sha: strings.Repeat("a", 41), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCommitSHA(tt.sha); got != tt.want {
				t.Errorf("IsCommitSHA(%q) = %v, want %v", tt.sha, got, tt.want)
			}
		})
	}
}

func TestIsZeroSHA(t *testing.T) {
	tests := []struct {
		name string
		sha  string
		want bool
	}{
		{name: "40 zeros", sha: strings.Repeat("0", 40), want: true},
		{name: "any run of zeros", sha: "000", want: true},
		{name: "empty is not the sentinel", sha: "", want: false},
		{name: "regular sha", sha: strings.Repeat("a", 40), want: false},
		{name: "zeros with one nonzero", sha: strings.Repeat("0", 39) + "1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZeroSHA(tt.sha); got != tt.want {
				t.Errorf("IsZeroSHA(%q) = %v, want %v", tt.sha, got, tt.want)
			}
		})
	}
}

func TestCollectFailsOutsideRepository(t *testing.T) {
	collector := Collector{RepoPath: t.TempDir()}

	_, err := collector.Collect("", "")
	if err == nil {
		t.Fatal("Collect() on a non-repository path should fail loudly")
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("Collect() error = %v, want a not-a-repository error", err)
	}
}
