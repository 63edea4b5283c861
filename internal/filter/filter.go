// Package filter decides whether a push summary is worth posting. The rules
// form an ordered chain; the first rule that matches wins and its reason is
// reported, so precedence between overlapping rules stays explicit.
package filter

import (
	"path"
	"regexp"
	"strings"

	"github.com/alan/devlog-poster/internal/gitlog"
)

// secretPattern matches credential-shaped strings in commit subjects:
// AWS access key ids, GitHub personal access tokens, PEM private key headers.
var secretPattern = regexp.MustCompile(`(?i)(AKIA[0-9A-Z]{16}|ghp_[A-Za-z0-9]{30,}|BEGIN (RSA |EC )?PRIVATE KEY)`)

// depLockFiles are base names whose changes alone are not worth posting
var depLockFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"poetry.lock":       true,
	"Pipfile.lock":      true,
	"requirements.txt":  true,
}

// Decision is the outcome of running the rule chain
type Decision struct {
	Skip   bool
	Reason string
}

// Rule is a named skip predicate over a push summary
type Rule struct {
	Name    string
	Reason  string
	Matches func(gitlog.Summary) bool
}

// Rules returns the skip rules in evaluation order. Order matters: an empty
// file list is vacuously doc-only, and the secret check must run before
// anything else so a suspicious subject is never echoed downstream.
func Rules() []Rule {
	return []Rule{
		{
			Name:    "secret-like",
			Reason:  "possible secret-like pattern found in commit subjects",
			Matches: hasSecretLikeSubject,
		},
		{
			Name:    "doc-only",
			Reason:  "doc-only change set",
			Matches: func(s gitlog.Summary) bool { return isDocOnly(s.Files) },
		},
		{
			Name:    "merge-only",
			Reason:  "merge-only commits",
			Matches: func(s gitlog.Summary) bool { return isMergeOnly(s.Subjects) },
		},
		{
			Name:    "dependency-only",
			Reason:  "dependency-only changes",
			Matches: func(s gitlog.Summary) bool { return isDependencyOnly(s.Files) },
		},
		{
			Name:    "no-files",
			Reason:  "no changed files detected",
			Matches: func(s gitlog.Summary) bool { return len(s.Files) == 0 },
		},
	}
}

// Evaluate runs the rule chain left to right and stops at the first match
func Evaluate(summary gitlog.Summary) Decision {
	for _, rule := range Rules() {
		if rule.Matches(summary) {
			return Decision{Skip: true, Reason: rule.Reason}
		}
	}
	return Decision{}
}

func hasSecretLikeSubject(s gitlog.Summary) bool {
	return secretPattern.MatchString(strings.Join(s.Subjects, "\n"))
}

func isDocOnly(files []string) bool {
	for _, f := range files {
		if !isDocFile(f) {
			return false
		}
	}
	return true
}

func isDocFile(f string) bool {
	lf := strings.ToLower(f)
	switch lf {
	case "license", "license.md", "readme", "readme.md":
		return true
	}
	return strings.HasSuffix(lf, ".md") || strings.HasPrefix(lf, "docs/")
}

func isMergeOnly(subjects []string) bool {
	if len(subjects) == 0 {
		return false
	}
	for _, s := range subjects {
		if !strings.HasPrefix(strings.ToLower(s), "merge") {
			return false
		}
	}
	return true
}

func isDependencyOnly(files []string) bool {
	if len(files) == 0 {
		return false
	}
	for _, f := range files {
		if !depLockFiles[path.Base(f)] {
			return false
		}
	}
	return true
}
