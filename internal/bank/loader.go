package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// maxBankSize caps how much of a bank document the loader will read.
const maxBankSize = 8 << 20 // 8 MiB

// LoadError reports a failed bank load: the fetch did not succeed or
// the payload was malformed. An empty bank is not a LoadError.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question bank %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// bankFile is the on-disk/wire shape of a question bank document.
type bankFile struct {
	Questions []Question `json:"questions"`
}

// httpClient is the client used for remote bank sources.
var httpClient = &http.Client{Timeout: 15 * time.Second}

// Load fetches and parses the question bank at source, which is either
// an http(s) URL or a local file path. On success the questions are
// returned sorted ascending by questionNumber. An empty bank is a
// valid, non-error result the caller must refuse to start a session on.
func Load(ctx context.Context, source string) ([]Question, error) {
	raw, err := fetch(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	if err := validateBankDocument(raw); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	var doc bankFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("parse JSON: %w", err)}
	}

	questions := doc.Questions
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].QuestionNumber < questions[j].QuestionNumber
	})

	return questions, nil
}

func fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchHTTP(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxBankSize))
}

func fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBankSize))
}
