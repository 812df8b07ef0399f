// Package categories maps raw classifier labels onto the closed category
// taxonomy used by the news store.
package categories

// allowed is the closed taxonomy; ids match the categories table seed.
var allowed = map[string]int{
	"politics":   1,
	"sports":     2,
	"technology": 3,
	"health":     4,
	"economy":    5,
	"culture":    6,
}

// synonyms maps raw classifier output onto taxonomy names. Labels outside
// this table stay unmapped.
var synonyms = map[string]string{
	"tech":       "technology",
	"technology": "technology",

	"finance":   "economy",
	"economics": "economy",
	"economy":   "economy",

	"politics": "politics",
	"sports":   "sports",
	"health":   "health",
	"culture":  "culture",
}

// Resolve maps a raw label to a category id. The second return value is
// false when the label is unknown or maps outside the allowed taxonomy.
// A category id is never produced for a name missing from the allowed set,
// even if the synonym table were to point at one.
func Resolve(raw string) (int, bool) {
	name, ok := synonyms[raw]
	if !ok {
		return 0, false
	}

	id, ok := allowed[name]
	if !ok {
		return 0, false
	}

	return id, true
}
