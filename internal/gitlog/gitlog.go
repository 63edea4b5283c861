// Package gitlog collects commit subjects, changed files and diff statistics
// for a pushed revision range by shelling out to git.
package gitlog

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var shaPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// Summary describes one push: the commit subjects in the range, the set of
// changed file paths (repository-root-relative), and git's shortstat line.
type Summary struct {
	Subjects  []string
	Files     []string
	Shortstat string
}

// Collector wraps git operations against a single checkout.
type Collector struct {
	RepoPath string
}

// IsRepository reports whether RepoPath is inside a git checkout
func (c Collector) IsRepository() bool {
	cmd := exec.Command("git", "-C", c.RepoPath, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// IsCommitSHA reports whether s is a syntactically valid full commit id
func IsCommitSHA(s string) bool {
	return shaPattern.MatchString(s)
}

// IsZeroSHA reports whether s is the all-zero sentinel git uses for a
// created or deleted branch.
func IsZeroSHA(s string) bool {
	if s == "" {
		return false
	}
	return strings.Trim(s, "0") == ""
}

// Collect builds the push summary. Preference order: the (before, after]
// range when both SHAs resolve and before is not the zero sentinel, then a
// single-commit summary of after, then the current HEAD.
//
// A missing git binary or a path outside a repository is a configuration
// error and fails loudly rather than returning an empty summary.
func (c Collector) Collect(before, after string) (Summary, error) {
	if !c.IsRepository() {
		return Summary{}, fmt.Errorf("%s is not a git repository", c.RepoPath)
	}

	afterOK := IsCommitSHA(after) && c.hasCommit(after)
	beforeOK := IsCommitSHA(before) && !IsZeroSHA(before) && c.hasCommit(before)

	if afterOK && beforeOK {
		return c.rangeSummary(before, after)
	}
	if afterOK {
		return c.commitSummary(after)
	}
	return c.commitSummary("HEAD")
}

// hasCommit checks that sha resolves to an existing commit object
func (c Collector) hasCommit(sha string) bool {
	cmd := exec.Command("git", "-C", c.RepoPath, "cat-file", "-e", sha+"^{commit}")
	return cmd.Run() == nil
}

func (c Collector) rangeSummary(before, after string) (Summary, error) {
	rangeSpec := fmt.Sprintf("%s..%s", before, after)

	subjects, err := c.lines("log", "--format=%s", rangeSpec)
	if err != nil {
		return Summary{}, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}

	files, err := c.lines("diff", "--name-only", rangeSpec)
	if err != nil {
		return Summary{}, fmt.Errorf("git diff %s: %w", rangeSpec, err)
	}

	shortstat, err := c.output("diff", "--shortstat", rangeSpec)
	if err != nil {
		return Summary{}, fmt.Errorf("git diff --shortstat %s: %w", rangeSpec, err)
	}

	return Summary{Subjects: subjects, Files: files, Shortstat: shortstat}, nil
}

func (c Collector) commitSummary(rev string) (Summary, error) {
	subject, err := c.output("log", "-1", "--format=%s", rev)
	if err != nil {
		return Summary{}, fmt.Errorf("git log -1 %s: %w", rev, err)
	}

	files, err := c.lines("diff-tree", "--no-commit-id", "--name-only", "-r", rev)
	if err != nil {
		return Summary{}, fmt.Errorf("git diff-tree %s: %w", rev, err)
	}

	var shortstat string
	if len(files) > 0 {
		statLines, err := c.lines("show", "--shortstat", "--format=", rev)
		if err != nil {
			return Summary{}, fmt.Errorf("git show --shortstat %s: %w", rev, err)
		}
		if len(statLines) > 0 {
			shortstat = statLines[len(statLines)-1]
		}
	}

	return Summary{Subjects: []string{subject}, Files: files, Shortstat: shortstat}, nil
}

// output runs a git subcommand and returns its trimmed stdout
func (c Collector) output(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", c.RepoPath}, args...)...) //nolint:gosec // Revisions are validated 40-hex SHAs
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// lines runs a git subcommand and splits its stdout into non-empty lines
func (c Collector) lines(args ...string) ([]string, error) {
	out, err := c.output(args...)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
