// Package compose builds the deterministic devlog post text and the link
// pointing readers at the change.
package compose

import (
	"fmt"
	"strings"

	"github.com/alan/devlog-poster/internal/gitlog"
)

// MaxPostLength is LinkedIn's commentary size limit
const MaxPostLength = 3000

const maxBullets = 3

// RepoURL returns the browse URL for a repository. Prefer the canonical
// htmlURL when repository enrichment provided one.
func RepoURL(htmlURL, repo string) string {
	if htmlURL != "" {
		return strings.TrimSuffix(htmlURL, "/")
	}
	return "https://github.com/" + repo
}

// Link selects the URL for a push: a compare link when both revisions are
// usable, a single-commit link when only after is, the bare repository
// otherwise. A zero-sentinel before (branch created) has no prior state to
// compare against, so it gets the single-commit link.
func Link(repoURL, before, after string) string {
	switch {
	case before != "" && after != "" && !gitlog.IsZeroSHA(before):
		return fmt.Sprintf("%s/compare/%s...%s", repoURL, before, after)
	case after != "":
		return fmt.Sprintf("%s/commit/%s", repoURL, after)
	default:
		return repoURL
	}
}

// Fallback builds the deterministic post text used when no generated
// rewrite is available: a header naming the repo, up to three bulleted
// commit subjects, the shortstat when present, and the link.
func Fallback(repo string, subjects []string, shortstat, link string) string {
	var top []string
	for _, s := range subjects {
		if s = strings.TrimSpace(s); s != "" {
			top = append(top, s)
		}
		if len(top) == maxBullets {
			break
		}
	}

	bullets := "• Updates"
	if len(top) > 0 {
		for i, s := range top {
			top[i] = "• " + s
		}
		bullets = strings.Join(top, "\n")
	}

	statLine := ""
	if shortstat != "" {
		statLine = "\n\n" + shortstat
	}

	return fmt.Sprintf("Dev update from %s:\n\n%s%s\n\n%s", repo, bullets, statLine, link)
}

// Truncate caps text at MaxPostLength runes, marking the cut with an
// ellipsis. Text within the limit is returned unchanged.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxPostLength {
		return text
	}
	return string(runes[:MaxPostLength-1]) + "…"
}
