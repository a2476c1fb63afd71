package folio

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileDerivesName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Kai", "/ KANA", "Kai / KANA"},
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"", "", " "},
		{"Prince", "", "Prince "},
	}
	for _, tt := range tests {
		p := NewProfile(ProfileConfig{FirstName: tt.first, LastName: tt.last})
		assert.Equal(t, tt.want, p.Name())
		assert.Equal(t, p.FirstName()+" "+p.LastName(), p.Name())
	}
}

func TestNewProfileInterpolatesBio(t *testing.T) {
	p := NewProfile(ProfileConfig{
		FirstName: "Kai",
		LastName:  "/ KANA",
		Bio:       "I’m {{.FirstName}}.\nSigned, {{.Name}} ({{.LastName}}). {{.FirstName}} again.",
	})
	assert.Equal(t, "I’m Kai.\nSigned, Kai / KANA (/ KANA). Kai again.", p.Bio())
}

func TestNewProfileBioWithoutPlaceholderIsVerbatim(t *testing.T) {
	bio := "Plain text with a stray } brace.\n"
	p := NewProfile(ProfileConfig{FirstName: "Kai", Bio: bio})
	assert.Equal(t, bio, p.Bio())
}

func TestNewProfileKeepsUnknownBraces(t *testing.T) {
	for _, bio := range []string{
		"I write {{ mustache }} templates for fun.",
		"Hi {{.FirstName",
		"Hi {{.Nickname}}",
	} {
		p := NewProfile(ProfileConfig{FirstName: "Kai", Bio: bio})
		assert.Equal(t, bio, p.Bio())
	}

	p := NewProfile(ProfileConfig{FirstName: "Kai", Bio: "{{ mustache }} by {{.FirstName}}"})
	assert.Equal(t, "{{ mustache }} by Kai", p.Bio())
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	assert.Equal(t, "https://kana.jetzt", p.Website())
	assert.Equal(t, "Kai", p.FirstName())
	assert.Equal(t, "/ KANA", p.LastName())
	assert.Equal(t, "Kai / KANA", p.Name())
	assert.Equal(t, "https://avatars.githubusercontent.com/u/41547570?v=4", p.Avatar())
	assert.Contains(t, p.Bio(), "I’m Kai, a software engineer based in Germany.")
	assert.NotContains(t, p.Bio(), "{{")
	assert.Equal(t, "KANAjetzt", p.GitHub())
	assert.Equal(t, "KANAjetzt", p.Twitter())
	assert.Equal(t, "", p.LinkedIn())
	assert.Equal(t, "", p.Instagram())
	assert.NoError(t, p.Validate())
}

func TestHasHandleMatchesNonEmpty(t *testing.T) {
	p := NewProfile(ProfileConfig{GitHub: "KANAjetzt", Instagram: ""})

	for _, n := range Networks {
		assert.Equal(t, p.Handle(n) != "", p.HasHandle(n), string(n))
	}
	assert.True(t, p.HasHandle(GitHub))
	assert.False(t, p.HasHandle(Instagram))
	assert.False(t, p.HasHandle(Network("mastodon")))
}

func TestSocialLinksSkipsEmptyHandles(t *testing.T) {
	p := NewProfile(ProfileConfig{
		GitHub:    "KANAjetzt/website",
		LinkedIn:  "kai",
		Instagram: "",
	})

	want := []SocialLink{
		{Network: GitHub, Handle: "KANAjetzt/website", Label: "GitHub", URL: "https://github.com/KANAjetzt/website"},
		{Network: LinkedIn, Handle: "kai", Label: "LinkedIn", URL: "https://www.linkedin.com/in/kai"},
	}
	if diff := cmp.Diff(want, p.SocialLinks()); diff != "" {
		t.Errorf("SocialLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileReadsAreStable(t *testing.T) {
	p := DefaultProfile()
	first := p.Fields()
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, p.Fields()); diff != "" {
			t.Fatalf("read %d changed (-first +now):\n%s", i, diff)
		}
	}
	copied := p
	assert.Equal(t, p.Name(), copied.Name())
}

func TestProfileJSONShape(t *testing.T) {
	b, err := json.Marshal(DefaultProfile())
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(b, &got))

	for _, key := range []string{"website", "firstName", "lastName", "name", "avatar", "bio", "github", "twitter", "linkedin", "instagram"} {
		assert.Contains(t, got, key)
	}
	assert.Equal(t, "Kai / KANA", got["name"])
	assert.Equal(t, "", got["instagram"])
}

func TestSummary(t *testing.T) {
	p := NewProfile(ProfileConfig{Bio: "\n\n  First line.  \nSecond line."})
	assert.Equal(t, "First line.", p.Summary())

	empty := NewProfile(ProfileConfig{})
	assert.Equal(t, "", empty.Summary())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	p := NewProfile(ProfileConfig{
		Website:   "kana.jetzt",
		FirstName: "  ",
		Avatar:    "",
		Twitter:   "has space",
	})

	verr := p.Validate()
	require.Error(t, verr)
	assert.True(t, errors.Is(verr, ErrInvalidProfile))

	var fields []string
	for _, e := range verr.(interface{ Unwrap() []error }).Unwrap() {
		var fe *FieldError
		require.True(t, errors.As(e, &fe))
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"website", "avatar", "first_name", "twitter"}, fields)
}

func TestValidateAcceptsHTTPURLs(t *testing.T) {
	p := NewProfile(ProfileConfig{
		Website:   "http://localhost:3000",
		FirstName: "Kai",
		Avatar:    "https://example.com/a.png",
	})
	assert.NoError(t, p.Validate())
}
