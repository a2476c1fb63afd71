package views

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"

	"github.com/kanajetzt/folio"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestBioParagraphs(t *testing.T) {
	tests := []struct {
		input string
		want  [][]string
	}{
		{"", nil},
		{"one line\n", [][]string{{"one line"}}},
		{"first\nsecond\n", [][]string{{"first", "second"}}},
		{"para one\n\n\npara two\n  \n", [][]string{{"para one"}, {"para two"}}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, BioParagraphs(tt.input)); diff != "" {
			t.Errorf("BioParagraphs(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestSocialLinksOmitsEmptyHandles(t *testing.T) {
	p := folio.NewProfile(folio.ProfileConfig{GitHub: "KANAjetzt", Instagram: ""})
	got := renderString(t, SocialLinks(p))

	if !strings.Contains(got, `href="https://github.com/KANAjetzt"`) {
		t.Errorf("expected GitHub link, got %q", got)
	}
	if strings.Contains(got, "instagram") {
		t.Errorf("expected no Instagram link, got %q", got)
	}
}

func TestSocialLinksEmptyWhenNoHandles(t *testing.T) {
	p := folio.NewProfile(folio.ProfileConfig{FirstName: "Kai"})
	if got := renderString(t, SocialLinks(p)); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestHomeEscapesProfileText(t *testing.T) {
	p := folio.NewProfile(folio.ProfileConfig{
		FirstName: "<b>Kai</b>",
		LastName:  "& co",
		Bio:       "line one\nline <two>",
	})
	got := renderString(t, Home(p, folio.HomeMeta(p, ""), folio.ThemeLight, "tok"))

	if strings.Contains(got, "<b>Kai</b>") {
		t.Errorf("name was not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;Kai&lt;/b&gt; &amp; co") {
		t.Errorf("expected escaped name in output")
	}
	if !strings.Contains(got, "<p>line one<br>line &lt;two&gt;</p>") {
		t.Errorf("expected bio lines joined with <br>, got %q", got)
	}
	if !strings.Contains(got, `name="_csrf" value="tok"`) {
		t.Errorf("expected csrf token in theme form")
	}
}

func TestHomeThemeClass(t *testing.T) {
	p := folio.DefaultProfile()
	meta := folio.HomeMeta(p, "")

	dark := renderString(t, Home(p, meta, folio.ThemeDark, ""))
	if !strings.Contains(dark, `<html lang="en" class="dark">`) || !strings.Contains(dark, "Light mode") {
		t.Errorf("expected dark theme markup")
	}
	light := renderString(t, Home(p, meta, "", ""))
	if !strings.Contains(light, `<html lang="en" class="light">`) || !strings.Contains(light, "Dark mode") {
		t.Errorf("expected light theme markup")
	}
}

func TestUnsafeAvatarURLIsSanitized(t *testing.T) {
	p := folio.NewProfile(folio.ProfileConfig{FirstName: "Kai", Avatar: "javascript:alert(1)"})
	got := renderString(t, Home(p, folio.HomeMeta(p, ""), folio.ThemeLight, ""))
	if strings.Contains(got, `src="javascript:`) {
		t.Errorf("expected avatar URL to be sanitized")
	}
}

func TestHomeHead(t *testing.T) {
	p := folio.DefaultProfile()
	got := renderString(t, Home(p, folio.HomeMeta(p, ""), folio.ThemeLight, ""))

	for _, want := range []string{
		"<!doctype html>",
		`<link rel="canonical" href="https://kana.jetzt/">`,
		`<meta property="og:title" content="Kai / KANA">`,
		`<script type="application/ld+json">{"@context":"https://schema.org","@type":"Person"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in head", want)
		}
	}
	if nf := renderString(t, NotFound(p)); strings.Contains(nf, "og:description") {
		t.Errorf("empty OpenGraph values must be omitted")
	}
}

func TestFooter(t *testing.T) {
	p := folio.DefaultProfile()
	got := renderString(t, Footer(p, folio.ThemeLight, "tok"))

	year := strconv.Itoa(time.Now().Year())
	if !strings.Contains(got, "<span>© "+year+" Kai / KANA</span>") {
		t.Errorf("unexpected copyright line: %q", got)
	}
	if !strings.Contains(got, `<a href="https://kana.jetzt">kana.jetzt</a>`) {
		t.Errorf("expected website link with host text: %q", got)
	}

	noSite := folio.NewProfile(folio.ProfileConfig{FirstName: "Kai"})
	if got := renderString(t, Footer(noSite, folio.ThemeLight, "")); strings.Contains(got, "<a ") {
		t.Errorf("expected no website link, got %q", got)
	}
}

func TestErrorPages(t *testing.T) {
	p := folio.DefaultProfile()
	if got := renderString(t, NotFound(p)); !strings.Contains(got, "<h1>Not found</h1>") {
		t.Errorf("unexpected 404 page: %q", got)
	}
	if got := renderString(t, ServerError(p)); !strings.Contains(got, "<h1>Something went wrong</h1>") {
		t.Errorf("unexpected 500 page: %q", got)
	}
}
