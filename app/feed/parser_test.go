package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const rssDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title>First article</title>
      <link>https://example.com/articles/1</link>
    </item>
    <item>
      <title>Second article</title>
      <link>https://example.com/articles/2</link>
    </item>
    <item>
      <title></title>
      <link>https://example.com/articles/3</link>
    </item>
  </channel>
</rss>`

func TestParserFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("unexpected user agent: %q", ua)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssDoc))
	}))
	defer server.Close()

	p := NewParser("test-agent")
	entries, err := p.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Feed order is preserved; entries with missing fields are passed
	// through for the pipeline to skip.
	if entries[0].Title != "First article" || entries[0].Link != "https://example.com/articles/1" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Title != "Second article" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[2].Title != "" {
		t.Errorf("expected empty title on third entry, got %q", entries[2].Title)
	}
}

func TestParserFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := NewParser("test-agent")
	if _, err := p.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for HTTP 404")
	}
}

func TestParserFetchMalformedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	p := NewParser("test-agent")
	if _, err := p.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for malformed feed")
	}
}

func TestParserFetchUnreachable(t *testing.T) {
	p := NewParser("test-agent")
	if _, err := p.Fetch(context.Background(), "http://127.0.0.1:1/rss"); err == nil {
		t.Error("expected error for unreachable host")
	}
}
