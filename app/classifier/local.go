package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Vectorizer is a bag-of-words vectorizer exported from the training
// pipeline as JSON: a term-to-column vocabulary and optional IDF weights.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// Model is a linear classifier exported as JSON: one weight row and one
// intercept per class.
type Model struct {
	Classes    []string    `json:"classes"`
	Weights    [][]float64 `json:"weights"`
	Intercepts []float64   `json:"intercepts"`
}

// LocalClassifier runs vectorize-then-predict in process, with no network
// dependency.
type LocalClassifier struct {
	vectorizer Vectorizer
	model      Model
}

var _ Classifier = (*LocalClassifier)(nil)

// NewLocalClassifier loads both artifacts and validates that their
// dimensions agree.
func NewLocalClassifier(vectorizerPath, modelPath string) (*LocalClassifier, error) {
	var c LocalClassifier

	if err := loadJSON(vectorizerPath, &c.vectorizer); err != nil {
		return nil, fmt.Errorf("failed to load vectorizer: %w", err)
	}
	if err := loadJSON(modelPath, &c.model); err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	if len(c.model.Classes) == 0 {
		return nil, fmt.Errorf("model has no classes")
	}
	if len(c.model.Weights) != len(c.model.Classes) {
		return nil, fmt.Errorf("model has %d weight rows for %d classes",
			len(c.model.Weights), len(c.model.Classes))
	}
	if len(c.model.Intercepts) != len(c.model.Classes) {
		return nil, fmt.Errorf("model has %d intercepts for %d classes",
			len(c.model.Intercepts), len(c.model.Classes))
	}

	features := len(c.vectorizer.Vocabulary)
	columns := make(map[int]string, features)
	for term, column := range c.vectorizer.Vocabulary {
		if column < 0 || column >= features {
			return nil, fmt.Errorf("vocabulary term %q has column %d, valid range is [0, %d)",
				term, column, features)
		}
		if other, taken := columns[column]; taken {
			return nil, fmt.Errorf("vocabulary terms %q and %q share column %d",
				other, term, column)
		}
		columns[column] = term
	}
	for i, row := range c.model.Weights {
		if len(row) != features {
			return nil, fmt.Errorf("weight row %d has %d features, vocabulary has %d",
				i, len(row), features)
		}
	}
	if len(c.vectorizer.IDF) != 0 && len(c.vectorizer.IDF) != features {
		return nil, fmt.Errorf("idf has %d entries, vocabulary has %d",
			len(c.vectorizer.IDF), features)
	}

	return &c, nil
}

// Classify vectorizes the (truncated) text and returns the normalized name
// of the highest-scoring class.
func (c *LocalClassifier) Classify(ctx context.Context, text string) string {
	vector := c.vectorize(truncate(text))

	best := 0
	bestScore := c.score(0, vector)
	for i := 1; i < len(c.model.Classes); i++ {
		if s := c.score(i, vector); s > bestScore {
			best, bestScore = i, s
		}
	}

	return normalizeLabel(c.model.Classes[best])
}

func (c *LocalClassifier) vectorize(text string) map[int]float64 {
	vector := make(map[int]float64)
	for _, token := range tokenize(text) {
		if column, ok := c.vectorizer.Vocabulary[token]; ok {
			vector[column]++
		}
	}

	if len(c.vectorizer.IDF) > 0 {
		for column := range vector {
			vector[column] *= c.vectorizer.IDF[column]
		}
	}

	return vector
}

func (c *LocalClassifier) score(class int, vector map[int]float64) float64 {
	score := c.model.Intercepts[class]
	row := c.model.Weights[class]
	for column, value := range vector {
		score += row[column] * value
	}
	return score
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}
