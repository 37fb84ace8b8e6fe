package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// SnapshotVersion is the current snapshot format version. A stored
// snapshot with any other version is discarded wholesale; the session
// is low-value and easily restarted, so there is no migration.
const SnapshotVersion = 1

// snapshotNamespace prefixes every snapshot key so distinct quizzes
// never collide with other records in the store.
const snapshotNamespace = "quizdeck.session."

// SnapshotStore is the injected persistence capability. Get returns
// (nil, nil) when no record exists for the key.
type SnapshotStore interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Delete(key string) error
}

// Snapshot is the persisted form of a SessionState.
type Snapshot struct {
	Version  int               `json:"version"`
	Index    int               `json:"index"`
	Total    int               `json:"total"`
	Answers  []*snapshotAnswer `json:"answers"`
	Hints    []int             `json:"hints"`
	Mode     string            `json:"mode"`
	Finished bool              `json:"finished"`
}

type snapshotAnswer struct {
	Selected int  `json:"selected"`
	Correct  bool `json:"correct"`
}

// Codec serializes and restores session state for one quiz slug.
type Codec struct {
	store SnapshotStore
	slug  string
}

// NewCodec binds a codec to a store and a quiz slug.
func NewCodec(store SnapshotStore, slug string) *Codec {
	return &Codec{store: store, slug: slug}
}

// Key returns the composite storage key for this quiz.
func (c *Codec) Key() string {
	return snapshotNamespace + c.slug
}

// Save writes a snapshot of state. Failures are logged and swallowed;
// a snapshot write must never interrupt the session.
func (c *Codec) Save(state *SessionState) {
	snap := Snapshot{
		Version:  SnapshotVersion,
		Index:    state.CurrentIndex,
		Total:    state.QuestionCount(),
		Answers:  make([]*snapshotAnswer, state.QuestionCount()),
		Mode:     string(state.Mode),
		Finished: state.Finished,
	}
	for i, a := range state.Answers {
		if a != nil {
			snap.Answers[i] = &snapshotAnswer{Selected: a.SelectedOption, Correct: a.Correct}
		}
	}
	for i := range state.HintsRevealed {
		snap.Hints = append(snap.Hints, i)
	}
	sort.Ints(snap.Hints)

	data, err := json.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encode session snapshot: %v\n", err)
		return
	}
	if err := c.store.Put(c.Key(), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save session snapshot: %v\n", err)
	}
}

// Load reads and decodes the stored snapshot for this quiz. It returns
// nil (start fresh) when no snapshot exists, the record is unparseable,
// the version differs, or the stored total does not match the current
// question count. Individual malformed fields inside a compatible
// snapshot are defaulted rather than aborting the restore.
func (c *Codec) Load(questionCount int) *SessionState {
	data, err := c.store.Get(c.Key())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read session snapshot: %v\n", err)
		return nil
	}
	if data == nil {
		return nil
	}
	return decodeSnapshot(data, questionCount)
}

// Delete removes the stored snapshot for this quiz.
func (c *Codec) Delete() error {
	return c.store.Delete(c.Key())
}

// rawSnapshot defers every field so one bad field cannot sink the rest.
type rawSnapshot struct {
	Version  json.RawMessage `json:"version"`
	Index    json.RawMessage `json:"index"`
	Total    json.RawMessage `json:"total"`
	Answers  json.RawMessage `json:"answers"`
	Hints    json.RawMessage `json:"hints"`
	Mode     json.RawMessage `json:"mode"`
	Finished json.RawMessage `json:"finished"`
}

// decodeSnapshot reconstructs a SessionState from raw snapshot bytes.
// Version and total are compatibility gates: mismatch or absence means
// nil. Every other field recovers independently to its default.
func decodeSnapshot(data []byte, questionCount int) *SessionState {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var version, total int
	if json.Unmarshal(raw.Version, &version) != nil || version != SnapshotVersion {
		return nil
	}
	if json.Unmarshal(raw.Total, &total) != nil || total != questionCount {
		return nil
	}

	state := newSessionState(questionCount)

	var index int
	if json.Unmarshal(raw.Index, &index) == nil {
		state.CurrentIndex = clamp(index, questionCount)
	}

	var entries []json.RawMessage
	if json.Unmarshal(raw.Answers, &entries) == nil {
		for i, entry := range entries {
			if i >= questionCount {
				break
			}
			if string(entry) == "null" {
				continue
			}
			var a snapshotAnswer
			if json.Unmarshal(entry, &a) != nil || a.Selected < 0 {
				continue
			}
			state.Answers[i] = &AnswerRecord{SelectedOption: a.Selected, Correct: a.Correct}
		}
	}

	var hints []json.RawMessage
	if json.Unmarshal(raw.Hints, &hints) == nil {
		for _, entry := range hints {
			var h int
			if json.Unmarshal(entry, &h) == nil && h >= 0 && h < questionCount {
				state.HintsRevealed[h] = true
			}
		}
	}

	var mode string
	if json.Unmarshal(raw.Mode, &mode) == nil && ValidMode(Mode(mode)) {
		state.Mode = Mode(mode)
	}

	var finished bool
	if json.Unmarshal(raw.Finished, &finished) == nil {
		state.Finished = finished
	}

	return state
}
