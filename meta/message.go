// Package meta describes datasets: localized editor, copyright and
// terms-of-use messages, plus machine-readable usage terms and citations.
//
// Translated tables are built once at startup from ordered entries and are
// never mutated afterwards, so they are safe for concurrent readers.
package meta

// Link pairs a piece of content with the URL it points at.
type Link[T any] struct {
	Content T
	URL     string
}

// Translated holds content keyed by language code. The language of the
// first entry supplied at construction is the default language.
type Translated[T any] struct {
	contents    map[string]T
	defaultLang string
}

// Entry is one (language, content) pair for NewTranslated.
type Entry[T any] struct {
	Lang    string
	Content T
}

// NewTranslated builds a Translated table from ordered entries. The first
// entry defines the default language. An empty entry list yields a table
// whose default is the zero value under the empty language key.
func NewTranslated[T any](entries ...Entry[T]) Translated[T] {
	contents := make(map[string]T, len(entries))
	defaultLang := ""
	for i, e := range entries {
		if i == 0 {
			defaultLang = e.Lang
		}
		contents[e.Lang] = e.Content
	}
	if len(entries) == 0 {
		var zero T
		contents[""] = zero
	}
	return Translated[T]{contents: contents, defaultLang: defaultLang}
}

// Default returns the content for the default language.
func (tr Translated[T]) Default() T {
	return tr.contents[tr.defaultLang]
}

// Get returns the content for the given language, if present.
func (tr Translated[T]) Get(lang string) (T, bool) {
	c, ok := tr.contents[lang]
	return c, ok
}

// GetOrDefault returns the content for the given language, falling back to
// the default language.
func (tr Translated[T]) GetOrDefault(lang string) T {
	if c, ok := tr.contents[lang]; ok {
		return c
	}
	return tr.Default()
}

// DefaultLang returns the default language code.
func (tr Translated[T]) DefaultLang() string {
	return tr.defaultLang
}
