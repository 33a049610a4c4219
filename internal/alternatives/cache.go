// Package alternatives caches per-word runner-up transcriptions for
// post-hoc substitution of recognized words.
package alternatives

import "unicode"

// Cache maps a recognized (or substituted) word to its ranked replacement
// candidates. Keys are case-preserving; at most one list exists per word.
type Cache struct {
	words map[string][]string
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{words: make(map[string][]string)}
}

// Ingest merges recognizer-provided alternatives into the cache. On key
// collision the newly ingested list wins.
func (c *Cache) Ingest(alternatives map[string][]string) {
	for word, suggestions := range alternatives {
		list := make([]string, len(suggestions))
		copy(list, suggestions)
		c.words[word] = list
	}
}

// Lookup returns the cached suggestions for word, retrying with the
// lower-cased word on a miss. The returned slice is a copy.
func (c *Cache) Lookup(word string) ([]string, bool) {
	key, ok := c.resolveKey(word)
	if !ok {
		return nil, false
	}

	stored := c.words[key]
	out := make([]string, len(stored))
	copy(out, stored)
	return out, true
}

// Substitute records that the user replaced oldWord with chosen: chosen is
// dropped from the list, oldWord is appended so it remains offered later,
// and the entry is re-keyed under chosen. No-op when oldWord is uncached.
func (c *Cache) Substitute(oldWord, chosen string) {
	key, ok := c.resolveKey(oldWord)
	if !ok {
		return
	}

	stored := c.words[key]
	updated := make([]string, 0, len(stored)+1)
	for _, suggestion := range stored {
		if suggestion == chosen {
			continue
		}
		updated = append(updated, suggestion)
	}
	updated = append(updated, key)

	delete(c.words, key)
	c.words[chosen] = updated
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.words = make(map[string][]string)
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	return len(c.words)
}

// resolveKey finds the stored key for word: exact match first, then the
// lower-cased form.
func (c *Cache) resolveKey(word string) (string, bool) {
	if _, ok := c.words[word]; ok {
		return word, true
	}
	lowered := lowerAll(word)
	if _, ok := c.words[lowered]; ok {
		return lowered, true
	}
	return "", false
}

// AdaptCase matches suggestions to the exemplar word's leading case: when
// the exemplar starts upper-case, each suggestion's first rune is
// upper-cased. Always returns a fresh slice.
func AdaptCase(suggestions []string, exemplarIsUpper bool) []string {
	out := make([]string, len(suggestions))
	if !exemplarIsUpper {
		copy(out, suggestions)
		return out
	}

	for i, suggestion := range suggestions {
		out[i] = UpperFirst(suggestion)
	}
	return out
}

// UpperFirst upper-cases the first rune of word.
func UpperFirst(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lowerAll(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}
