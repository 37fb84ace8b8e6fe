package bank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const validBankDoc = `{
	"questions": [
		{
			"questionNumber": 3,
			"question": "Third?",
			"answerOptions": [
				{"text": "yes", "isCorrect": true},
				{"text": "no", "isCorrect": false}
			]
		},
		{
			"questionNumber": 1,
			"question": "First?",
			"hint": "a hint",
			"answerOptions": [
				{"text": "yes", "isCorrect": true},
				{"text": "no", "isCorrect": false}
			]
		},
		{
			"questionNumber": 2,
			"question": "Second?",
			"answerOptions": [
				{"text": "yes", "isCorrect": false},
				{"text": "no", "isCorrect": true}
			]
		}
	]
}`

func TestLoadFromHTTPSortsByNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validBankDoc))
	}))
	defer srv.Close()

	questions, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(questions) != 3 {
		t.Fatalf("len = %d, want 3", len(questions))
	}
	for i, q := range questions {
		if q.QuestionNumber != i+1 {
			t.Errorf("questions[%d].QuestionNumber = %d, want %d", i, q.QuestionNumber, i+1)
		}
	}
	if questions[0].Text != "First?" || !questions[0].HasHint() {
		t.Errorf("questions[0] = %+v", questions[0])
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(validBankDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	questions, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("len = %d, want 3", len(questions))
	}
}

func TestLoadEmptyBankIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"questions": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	questions, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("empty bank should load cleanly, got %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len = %d, want 0", len(questions))
	}
}

func TestLoadFailures(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFound.Close()

	badJSON := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"questions": [`))
	}))
	defer badJSON.Close()

	badShape := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"questions": [{"question": "no options"}]}`))
	}))
	defer badShape.Close()

	tests := []struct {
		name   string
		source string
	}{
		{"HTTP 404", notFound.URL},
		{"invalid JSON", badJSON.URL},
		{"schema violation", badShape.URL},
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.source)
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %v", err)
			}
			if loadErr.Source != tt.source {
				t.Errorf("LoadError.Source = %q, want %q", loadErr.Source, tt.source)
			}
		})
	}
}

func TestOptionLabel(t *testing.T) {
	tests := []struct {
		pos  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "27"},
		{30, "31"},
	}
	for _, tt := range tests {
		if got := OptionLabel(tt.pos); got != tt.want {
			t.Errorf("OptionLabel(%d) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestCorrectIndex(t *testing.T) {
	q := Question{Options: []AnswerOption{
		{Text: "a"},
		{Text: "b", Correct: true},
	}}
	if got := q.CorrectIndex(); got != 1 {
		t.Errorf("CorrectIndex = %d, want 1", got)
	}

	none := Question{Options: []AnswerOption{{Text: "a"}}}
	if got := none.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex with no correct option = %d, want -1", got)
	}
}
