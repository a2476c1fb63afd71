package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// HomeMeta returns the <head> metadata for the landing page. description
// overrides the bio summary when non-empty.
func HomeMeta(p SiteProfile, description string) PageMeta {
	if description == "" {
		description = p.Summary()
	}
	return PageMeta{
		Title:       p.Name(),
		Description: description,
		URL:         BuildURL(p.Website()),
		OGType:      "profile",
		Image:       p.Avatar(),
	}
}

// PersonJsonLD returns a JSON-LD string for a schema.org Person built from p.
// Only configured social handles appear in sameAs.
func PersonJsonLD(p SiteProfile) string {
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "Person",
		"name":       p.Name(),
		"givenName":  p.FirstName(),
		"familyName": p.LastName(),
		"url":        BuildURL(p.Website()),
	}
	if p.Avatar() != "" {
		data["image"] = p.Avatar()
	}
	if s := p.Summary(); s != "" {
		data["description"] = s
	}
	if links := p.SocialLinks(); len(links) > 0 {
		sameAs := make([]string, 0, len(links))
		for _, l := range links {
			sameAs = append(sameAs, l.URL)
		}
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD returns a JSON-LD string for a schema.org WebSite authored by p.
func WebsiteJsonLD(p SiteProfile, description string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     p.Name(),
		"url":      BuildURL(p.Website()),
		"author": map[string]string{
			"@type": "Person",
			"name":  p.Name(),
		},
	}
	if description != "" {
		data["description"] = description
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
