package folio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// ProfileConfig is the as-authored form of a SiteProfile, as it appears in
// folio.yaml. An empty handle means the network is not used.
type ProfileConfig struct {
	Website   string `yaml:"website"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Avatar    string `yaml:"avatar"`
	Bio       string `yaml:"bio"`
	GitHub    string `yaml:"github"`
	Twitter   string `yaml:"twitter"`
	LinkedIn  string `yaml:"linkedin"`
	Instagram string `yaml:"instagram"`
}

// DefaultProfileConfig returns the profile the site ships with.
func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{
		Website:   "https://kana.jetzt",
		FirstName: "Kai",
		LastName:  "/ KANA",
		Avatar:    "https://avatars.githubusercontent.com/u/41547570?v=4",
		Bio: "I’m {{.FirstName}}, a software engineer based in Germany.\n" +
			"Currently, my focus is on building games, plugins, and addons for and with Godot. " +
			"Apart from that, I'm web deving since 2018.\n",
		GitHub:    "KANAjetzt",
		Twitter:   "KANAjetzt",
		LinkedIn:  "",
		Instagram: "",
	}
}

// DefaultProfile returns the built-in profile.
func DefaultProfile() SiteProfile {
	return NewProfile(DefaultProfileConfig())
}

// SiteProfile is the immutable personal-site metadata read by every page.
// It is built once at startup and passed around by value; there are no setters.
type SiteProfile struct {
	website   string
	firstName string
	lastName  string
	name      string
	avatar    string
	bio       string
	handles   map[Network]string
}

// NewProfile builds a SiteProfile from cfg. The name is derived from the
// first and last name, and the bio placeholders {{.FirstName}},
// {{.LastName}} and {{.Name}} are replaced. Any other text in the bio,
// braces included, is kept verbatim.
func NewProfile(cfg ProfileConfig) SiteProfile {
	name := cfg.FirstName + " " + cfg.LastName
	return SiteProfile{
		website:   cfg.Website,
		firstName: cfg.FirstName,
		lastName:  cfg.LastName,
		name:      name,
		avatar:    cfg.Avatar,
		bio:       renderBio(cfg.Bio, cfg.FirstName, cfg.LastName, name),
		handles: map[Network]string{
			GitHub:    cfg.GitHub,
			Twitter:   cfg.Twitter,
			LinkedIn:  cfg.LinkedIn,
			Instagram: cfg.Instagram,
		},
	}
}

func renderBio(src, first, last, name string) string {
	r := strings.NewReplacer(
		"{{.FirstName}}", first,
		"{{.LastName}}", last,
		"{{.Name}}", name,
	)
	return r.Replace(src)
}

func (p SiteProfile) Website() string   { return p.website }
func (p SiteProfile) FirstName() string { return p.firstName }
func (p SiteProfile) LastName() string  { return p.lastName }

// Name is FirstName and LastName joined by a single space.
func (p SiteProfile) Name() string   { return p.name }
func (p SiteProfile) Avatar() string { return p.avatar }

// Bio is the interpolated bio text. It may contain newlines.
func (p SiteProfile) Bio() string { return p.bio }

func (p SiteProfile) GitHub() string    { return p.handles[GitHub] }
func (p SiteProfile) Twitter() string   { return p.handles[Twitter] }
func (p SiteProfile) LinkedIn() string  { return p.handles[LinkedIn] }
func (p SiteProfile) Instagram() string { return p.handles[Instagram] }

// Handle returns the handle configured for n, or "" when n is not used.
func (p SiteProfile) Handle(n Network) string {
	return p.handles[n]
}

// HasHandle reports whether a handle is configured for n.
func (p SiteProfile) HasHandle(n Network) bool {
	return p.handles[n] != ""
}

// SocialLinks returns links for every configured handle in Networks order.
func (p SiteProfile) SocialLinks() []SocialLink {
	var links []SocialLink
	for _, n := range Networks {
		h := p.handles[n]
		if h == "" {
			continue
		}
		links = append(links, SocialLink{
			Network: n,
			Handle:  h,
			Label:   n.Label(),
			URL:     n.ProfileURL(h),
		})
	}
	return links
}

// Summary returns the first non-blank line of the bio.
func (p SiteProfile) Summary() string {
	for _, line := range strings.Split(p.bio, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// Fields returns an exported copy of every attribute.
func (p SiteProfile) Fields() ProfileFields {
	return ProfileFields{
		Website:   p.website,
		FirstName: p.firstName,
		LastName:  p.lastName,
		Name:      p.name,
		Avatar:    p.avatar,
		Bio:       p.bio,
		GitHub:    p.handles[GitHub],
		Twitter:   p.handles[Twitter],
		LinkedIn:  p.handles[LinkedIn],
		Instagram: p.handles[Instagram],
	}
}

func (p SiteProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Fields())
}

// Validate performs the optional strict startup check. Values are otherwise
// trusted as authored. Every problem is reported, joined into one error.
func (p SiteProfile) Validate() error {
	var errs []error
	if err := checkAbsoluteURL(p.website); err != nil {
		errs = append(errs, &FieldError{Field: "website", Reason: err.Error()})
	}
	if err := checkAbsoluteURL(p.avatar); err != nil {
		errs = append(errs, &FieldError{Field: "avatar", Reason: err.Error()})
	}
	if strings.TrimSpace(p.firstName) == "" {
		errs = append(errs, &FieldError{Field: "first_name", Reason: "must not be blank"})
	}
	for _, n := range Networks {
		if strings.IndexFunc(p.handles[n], unicode.IsSpace) >= 0 {
			errs = append(errs, &FieldError{Field: string(n), Reason: "handle contains whitespace"})
		}
	}
	return errors.Join(errs...)
}

func checkAbsoluteURL(raw string) error {
	if raw == "" {
		return errors.New("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an absolute http(s) URL")
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
