package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestHTTPClassifierPredictionField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Text == "" {
			t.Error("expected non-empty text in request")
		}
		w.Write([]byte(`{"prediction": " Tech "}`))
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL)
	label := c.Classify(context.Background(), "some article text")
	if label != "tech" {
		t.Errorf("expected normalized label 'tech', got %q", label)
	}
}

func TestHTTPClassifierLabelFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"label": "Politics"}`))
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL)
	if label := c.Classify(context.Background(), "text"); label != "politics" {
		t.Errorf("expected 'politics', got %q", label)
	}
}

func TestHTTPClassifierTruncatesInput(t *testing.T) {
	var gotLen int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		gotLen = utf8.RuneCountInString(req.Text)
		w.Write([]byte(`{"prediction": "sports"}`))
	}))
	defer server.Close()

	c := NewHTTPClassifier(server.URL)
	c.Classify(context.Background(), strings.Repeat("a", 5000))

	if gotLen != maxChars {
		t.Errorf("expected input truncated to %d chars, got %d", maxChars, gotLen)
	}
}

func TestHTTPClassifierFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed response", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
		{"missing label fields", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"confidence": 0.4}`))
		}},
		{"empty prediction", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"prediction": ""}`))
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			server := httptest.NewServer(c.handler)
			defer server.Close()

			cls := NewHTTPClassifier(server.URL)
			if label := cls.Classify(context.Background(), "text"); label != Unknown {
				t.Errorf("expected %q, got %q", Unknown, label)
			}
		})
	}
}

func TestHTTPClassifierUnreachableEndpoint(t *testing.T) {
	c := NewHTTPClassifier("http://127.0.0.1:1/predict")
	if label := c.Classify(context.Background(), "text"); label != Unknown {
		t.Errorf("expected %q for unreachable endpoint, got %q", Unknown, label)
	}
}
