package categories

import (
	"testing"
)

func TestResolveSynonyms(t *testing.T) {
	cases := []struct {
		raw  string
		id   int
		want bool
	}{
		{"tech", 3, true},
		{"technology", 3, true},
		{"finance", 5, true},
		{"economics", 5, true},
		{"economy", 5, true},
		{"politics", 1, true},
		{"sports", 2, true},
		{"health", 4, true},
		{"culture", 6, true},
	}

	for _, c := range cases {
		id, ok := Resolve(c.raw)
		if ok != c.want {
			t.Errorf("Resolve(%q) ok = %v, want %v", c.raw, ok, c.want)
			continue
		}
		if id != c.id {
			t.Errorf("Resolve(%q) = %d, want %d", c.raw, id, c.id)
		}
	}
}

func TestResolveUnknownLabels(t *testing.T) {
	for _, raw := range []string{"unknown", "", "weather", "Tech", "TECHNOLOGY", " sports"} {
		id, ok := Resolve(raw)
		if ok {
			t.Errorf("Resolve(%q) resolved to %d, expected a miss", raw, id)
		}
		if id != 0 {
			t.Errorf("Resolve(%q) returned non-zero id %d on miss", raw, id)
		}
	}
}
