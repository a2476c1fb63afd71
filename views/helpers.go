package views

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kanajetzt/folio"
)

// BioParagraphs splits bio into paragraphs on blank lines. Single newlines
// stay inside a paragraph as line breaks.
func BioParagraphs(bio string) [][]string {
	var paras [][]string
	var cur []string
	for _, line := range strings.Split(bio, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(cur) > 0 {
				paras = append(paras, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		paras = append(paras, cur)
	}
	return paras
}

// ThemeClass returns the class set on <html> for theme.
func ThemeClass(theme string) string {
	if theme == folio.ThemeDark {
		return folio.ThemeDark
	}
	return folio.ThemeLight
}

// homeJSONLD returns the structured data blocks for the landing page.
// json.Marshal escapes <, > and &, so a block cannot close its script tag.
func homeJSONLD(prof folio.SiteProfile, meta folio.PageMeta) []string {
	return []string{
		folio.PersonJsonLD(prof),
		folio.WebsiteJsonLD(prof, meta.Description),
	}
}

func errorMeta(prof folio.SiteProfile, title string) folio.PageMeta {
	return folio.PageMeta{Title: title + " · " + prof.Name()}
}

func copyright(prof folio.SiteProfile) string {
	return "© " + strconv.Itoa(time.Now().Year()) + " " + prof.Name()
}

func displayHost(site string) string {
	u, err := url.Parse(site)
	if err != nil || u.Host == "" {
		return site
	}
	return u.Host
}
