package folio

// Network identifies a social network a profile may link to.
type Network string

const (
	GitHub    Network = "github"
	Twitter   Network = "twitter"
	LinkedIn  Network = "linkedin"
	Instagram Network = "instagram"
)

// Networks lists every supported network in rendering order.
var Networks = []Network{GitHub, Twitter, LinkedIn, Instagram}

var networkInfo = map[Network]struct {
	label string
	base  string
}{
	GitHub:    {"GitHub", "https://github.com/"},
	Twitter:   {"Twitter", "https://twitter.com/"},
	LinkedIn:  {"LinkedIn", "https://www.linkedin.com/in/"},
	Instagram: {"Instagram", "https://www.instagram.com/"},
}

// Label returns the human-readable network name.
func (n Network) Label() string {
	if info, ok := networkInfo[n]; ok {
		return info.label
	}
	return string(n)
}

// ProfileURL returns the public profile URL for handle on n.
// The handle is appended as authored, so "user/repo" works for GitHub.
func (n Network) ProfileURL(handle string) string {
	info, ok := networkInfo[n]
	if !ok || handle == "" {
		return ""
	}
	return info.base + handle
}

// SocialLink is a rendered link to a configured social handle.
type SocialLink struct {
	Network Network
	Handle  string
	Label   string
	URL     string
}

// ProfileFields is the exported snapshot of a SiteProfile used for JSON and
// YAML output.
type ProfileFields struct {
	Website   string `json:"website" yaml:"website"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Name      string `json:"name" yaml:"name"`
	Avatar    string `json:"avatar" yaml:"avatar"`
	Bio       string `json:"bio" yaml:"bio"`
	GitHub    string `json:"github" yaml:"github"`
	Twitter   string `json:"twitter" yaml:"twitter"`
	LinkedIn  string `json:"linkedin" yaml:"linkedin"`
	Instagram string `json:"instagram" yaml:"instagram"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
	Image       string
}
