package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatedDefaultIsFirstEntry(t *testing.T) {
	tr := NewTranslated(
		Entry[string]{Lang: "en", Content: "Federal Statistical Office"},
		Entry[string]{Lang: "de", Content: "Bundesamt für Statistik"},
		Entry[string]{Lang: "fr", Content: "Office fédéral de la statistique"},
	)

	assert.Equal(t, "en", tr.DefaultLang())
	assert.Equal(t, "Federal Statistical Office", tr.Default())
}

func TestTranslatedGet(t *testing.T) {
	tr := NewTranslated(
		Entry[string]{Lang: "en", Content: "hello"},
		Entry[string]{Lang: "de", Content: "hallo"},
	)

	got, ok := tr.Get("de")
	assert.True(t, ok)
	assert.Equal(t, "hallo", got)

	_, ok = tr.Get("rm")
	assert.False(t, ok)
}

func TestTranslatedGetOrDefault(t *testing.T) {
	tr := NewTranslated(
		Entry[string]{Lang: "en", Content: "hello"},
		Entry[string]{Lang: "it", Content: "ciao"},
	)

	assert.Equal(t, "ciao", tr.GetOrDefault("it"))
	assert.Equal(t, "hello", tr.GetOrDefault("xx"))
}

func TestTranslatedEmpty(t *testing.T) {
	tr := NewTranslated[string]()

	assert.Equal(t, "", tr.DefaultLang())
	assert.Equal(t, "", tr.Default())
	assert.Equal(t, "", tr.GetOrDefault("en"))
}

func TestTranslatedLink(t *testing.T) {
	tr := NewTranslated(
		Entry[Link[string]]{Lang: "en", Content: Link[string]{
			Content: "Terms of use",
			URL:     "https://example.org/en/terms",
		}},
	)

	link := tr.Default()
	assert.Equal(t, "Terms of use", link.Content)
	assert.Equal(t, "https://example.org/en/terms", link.URL)
}
