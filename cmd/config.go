// Package cmd defines core data structures for devlog configuration.
package cmd

// Visibility controls who can see a published post
type Visibility string

const (
	// VisibilityPublic makes the post visible to everyone
	VisibilityPublic Visibility = "PUBLIC"
	// VisibilityConnections restricts the post to the author's connections
	VisibilityConnections Visibility = "CONNECTIONS"
)

// ParseVisibility converts a string to Visibility
func ParseVisibility(s string) Visibility {
	switch s {
	case "CONNECTIONS":
		return VisibilityConnections
	default:
		return VisibilityPublic
	}
}

// PostMode selects which LinkedIn endpoint the publisher uses
type PostMode string

const (
	// ModeAuto tries the Posts API first and falls back to the UGC API on a non-2xx response
	ModeAuto PostMode = "auto"
	// ModePosts always uses the versioned /rest/posts endpoint
	ModePosts PostMode = "posts"
	// ModeUGC always uses the /v2/ugcPosts endpoint
	ModeUGC PostMode = "ugc"
)

// ParsePostMode converts a string to PostMode
func ParsePostMode(s string) PostMode {
	switch s {
	case "posts":
		return ModePosts
	case "ugc":
		return ModeUGC
	default:
		return ModeAuto
	}
}

// Config holds everything a single run needs. It is built once at startup
// from the optional defaults file plus the environment; business logic never
// reads the environment directly.
type Config struct {
	// LinkedIn
	AuthorURN   string     `yaml:"author_urn"`
	AccessToken string     `yaml:"-"`
	APIVersion  string     `yaml:"api_version"`
	Visibility  Visibility `yaml:"visibility"`
	PostMode    PostMode   `yaml:"post_mode"`
	DryRun      bool       `yaml:"-"`

	// Push under inspection
	Repo      string `yaml:"repo"`
	BeforeSHA string `yaml:"-"`
	AfterSHA  string `yaml:"-"`

	// Optional text generation
	StyleGuidePath string `yaml:"style_guide_path"`
	OpenAIKey      string `yaml:"-"`
	OpenAIModel    string `yaml:"openai_model"`

	// Optional repository enrichment
	GitHubToken string `yaml:"-"`
}
