package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwitterURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain twitter link",
			text: "Follow him at https://twitter.com/pmarca for updates",
			want: "https://x.com/pmarca",
		},
		{
			name: "x dot com with www",
			text: "see https://www.x.com/mcuban today",
			want: "https://x.com/mcuban",
		},
		{
			name: "trailing punctuation stripped",
			text: "(profile: https://twitter.com/CathieDWood).",
			want: "https://x.com/CathieDWood",
		},
		{
			name: "query string dropped",
			text: "https://twitter.com/peterthiel?ref_src=twsrc",
			want: "https://x.com/peterthiel",
		},
		{
			name: "status path reduced to username",
			text: "https://x.com/pmarca/status/123456",
			want: "https://x.com/pmarca",
		},
		{
			name: "no link",
			text: "no social profiles mentioned here",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TwitterURL(tt.text))
		})
	}
}

func TestCanonicalTwitterURL(t *testing.T) {
	assert.Equal(t, "https://x.com/pmarca", CanonicalTwitterURL("https://twitter.com/pmarca"))
	assert.Empty(t, CanonicalTwitterURL("https://linkedin.com/in/pmarca"))
	assert.Empty(t, CanonicalTwitterURL("https://x.com/"))
}

func TestMediumSearchURL(t *testing.T) {
	assert.Equal(t, "https://medium.com/search?q=Marc%20Andreessen", MediumSearchURL("Marc Andreessen"))
}

func TestProfileURLPredicates(t *testing.T) {
	assert.True(t, IsLinkedInProfile("https://www.linkedin.com/in/pmarca"))
	assert.False(t, IsLinkedInProfile("https://example.com/linkedin"))
	assert.True(t, IsCrunchbasePerson("https://www.crunchbase.com/person/peter-thiel"))
	assert.False(t, IsCrunchbasePerson("https://www.crunchbase.com/organization/founders-fund"))
}
