package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-glane/glane/pkg/core"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable copy of a layout.
type Snapshot struct {
	Elements []ElementNode `json:"elements"`
}

// ElementNode is one layout element. Owners are named by widget type and
// order of first appearance, e.g. "*widgets.Button#0", so snapshots do not
// depend on process-wide ids.
type ElementNode struct {
	Kind       string         `json:"kind"`
	Owner      string         `json:"owner"`
	Layer      uint32         `json:"layer"`
	Rect       [4]float64     `json:"rect"`
	Properties map[string]any `json:"props,omitempty"`
}

// CaptureSnapshot captures the last layout.
func (t *SceneTester) CaptureSnapshot() *Snapshot {
	return SnapshotOf(t.Layout())
}

// SnapshotOf serializes l.
func SnapshotOf(l *core.Layout) *Snapshot {
	snap := &Snapshot{Elements: []ElementNode{}}
	names := &ownerNames{}
	for _, e := range l.All() {
		r := e.Rect()
		snap.Elements = append(snap.Elements, ElementNode{
			Kind:       kindOf(e),
			Owner:      names.name(e.Owner()),
			Layer:      e.Layer(),
			Rect:       [4]float64{r.Left, r.Top, r.Right, r.Bottom},
			Properties: propertiesOf(e),
		})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When GLANE_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("GLANE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: GLANE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: GLANE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// JSON returns the indented encoding used for golden files.
func (s *Snapshot) JSON() ([]byte, error) {
	return marshalSnapshot(s)
}

// --- Internal ---

// ownerNames assigns stable names like "*widgets.Text#0".
type ownerNames struct {
	byID   map[core.ID]string
	counts map[string]int
}

func (n *ownerNames) name(h core.AnyHandle) string {
	if n.byID == nil {
		n.byID = make(map[core.ID]string)
		n.counts = make(map[string]int)
	}
	if name, ok := n.byID[h.ID()]; ok {
		return name
	}
	typeName := "?"
	if h.Tag() != nil {
		typeName = h.Tag().String()
	}
	name := fmt.Sprintf("%s#%d", typeName, n.counts[typeName])
	n.counts[typeName]++
	n.byID[h.ID()] = name
	return name
}

func kindOf(e core.LayoutElement) string {
	switch e.(type) {
	case *core.Area:
		return "area"
	case *core.Collision:
		return "collision"
	case *core.Text:
		return "text"
	case *core.CompositionText:
		return "composition"
	case *core.Cursor:
		return "cursor"
	case *core.StartClipping:
		return "start_clipping"
	case *core.EndClipping:
		return "end_clipping"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func propertiesOf(e core.LayoutElement) map[string]any {
	m := map[string]any{}
	switch e := e.(type) {
	case *core.Area:
		m["state"] = e.State.String()
		if e.Selected {
			m["selected"] = true
		}
	case *core.Collision:
		m["state"] = e.State.String()
	case *core.Text:
		m["state"] = e.State.String()
		m["text"] = e.String
		if e.Selected {
			m["selected"] = true
		}
	case *core.CompositionText:
		m["text"] = e.String
		if e.Targeted {
			m["targeted"] = true
		}
	case *core.Cursor:
		if e.HasChar {
			m["char"] = string(e.Char)
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
