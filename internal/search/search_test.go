package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/hugeless/internal/accessor"
	"github.com/kk-code-lab/hugeless/internal/cancel"
)

func TestLineMatches_Literal(t *testing.T) {
	ctx := Context{Pattern: "am", Direction: Forward, Options: Options{CaseSensitive: true}}
	spans, err := LineMatches("gamma llama", ctx)
	if err != nil {
		t.Fatalf("LineMatches: %v", err)
	}
	want := []Span{{Start: 2, End: 4}, {Start: 8, End: 10}}
	if len(spans) != len(want) {
		t.Fatalf("spans = %+v, want %+v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("spans[%d] = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestLineMatches_WholeWord(t *testing.T) {
	ctx := Context{Pattern: "am", Options: Options{WholeWord: true, CaseSensitive: true}}
	spans, err := LineMatches("am gamma am", ctx)
	if err != nil {
		t.Fatalf("LineMatches: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 whole-word matches, got %+v", spans)
	}
	if spans[0] != (Span{Start: 0, End: 2}) {
		t.Fatalf("unexpected first span: %+v", spans[0])
	}
}

func TestLineMatches_SmartCase(t *testing.T) {
	lower := Context{Pattern: "gamma", Options: Options{SmartCase: true}}
	spans, err := LineMatches("GAMMA ray", lower)
	if err != nil {
		t.Fatalf("LineMatches: %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("smart-case lowercase pattern should match case-insensitively, got %+v", spans)
	}

	mixed := Context{Pattern: "Gamma", Options: Options{SmartCase: true}}
	spans, err = LineMatches("gamma ray", mixed)
	if err != nil {
		t.Fatalf("LineMatches: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("smart-case mixed-case pattern should match case-sensitively, got %+v", spans)
	}
}

func TestLineMatches_Regex(t *testing.T) {
	ctx := Context{Pattern: `\d+`, Options: Options{Regex: true, CaseSensitive: true}}
	spans, err := LineMatches("error code 42 at line 7", ctx)
	if err != nil {
		t.Fatalf("LineMatches: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 numeric matches, got %+v", spans)
	}
}

func TestLineMatches_InvalidRegex(t *testing.T) {
	ctx := Context{Pattern: `(unterminated`, Options: Options{Regex: true}}
	_, err := LineMatches("anything", ctx)
	if err == nil {
		t.Fatalf("expected compile error for invalid regex")
	}
	var ce *CompileError
	if !asCompileError(err, &ce) {
		t.Fatalf("expected *CompileError, got %T: %v", err, err)
	}
}

func asCompileError(err error, target **CompileError) bool {
	ce, ok := err.(*CompileError)
	if ok {
		*target = ce
	}
	return ok
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestFindMatch_ForwardFromOrigin(t *testing.T) {
	path := writeFile(t, "alpha\nbeta\ngamma\n")
	acc, err := accessor.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer acc.Close()

	e := NewEngine()
	ctx := Context{Pattern: "am", Direction: Forward, Options: Options{CaseSensitive: true}}
	m, err := e.FindMatch(acc, 0, ctx, nil)
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if m == nil {
		t.Fatalf("expected a match")
	}
	if m.LineStart != 11 {
		t.Fatalf("LineStart = %d, want 11", m.LineStart)
	}
}

func TestFindMatch_ForwardStrictlyAfterOrigin(t *testing.T) {
	path := writeFile(t, "gamma\nbeta\ngamma\n")
	acc, err := accessor.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer acc.Close()

	e := NewEngine()
	ctx := Context{Pattern: "gamma", Direction: Forward, Options: Options{CaseSensitive: true}}
	m, err := e.FindMatch(acc, 0, ctx, nil)
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if m == nil || m.LineStart <= 0 {
		t.Fatalf("expected match strictly after origin, got %+v", m)
	}
}

func TestFindMatch_Backward(t *testing.T) {
	path := writeFile(t, "alpha\nbeta\ngamma\n")
	acc, err := accessor.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer acc.Close()

	e := NewEngine()
	ctx := Context{Pattern: "a", Direction: Backward, Options: Options{CaseSensitive: true}}
	m, err := e.FindMatch(acc, acc.Size(), ctx, nil)
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if m == nil {
		t.Fatalf("expected a match searching backward")
	}
	if m.LineStart >= acc.Size() {
		t.Fatalf("expected match strictly before origin")
	}
}

func TestFindMatch_NoneFound(t *testing.T) {
	path := writeFile(t, "alpha\nbeta\ngamma\n")
	acc, err := accessor.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer acc.Close()

	e := NewEngine()
	ctx := Context{Pattern: "zzzz", Direction: Forward, Options: Options{CaseSensitive: true}}
	m, err := e.FindMatch(acc, 0, ctx, nil)
	if err != nil {
		t.Fatalf("FindMatch: %v", err)
	}
	if m != nil {
		t.Fatalf("expected no match, got %+v", m)
	}
}

func TestFindMatch_Cancelled(t *testing.T) {
	path := writeFile(t, "alpha\nbeta\ngamma\n")
	acc, err := accessor.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer acc.Close()

	e := NewEngine()
	token := cancel.NewToken()
	token.Cancel()
	ctx := Context{Pattern: "gamma", Direction: Forward, Options: Options{CaseSensitive: true}}
	_, err = e.FindMatch(acc, 0, ctx, token)
	if err != ErrCancelled {
		t.Fatalf("FindMatch with cancelled token = %v, want ErrCancelled", err)
	}
}

func TestMergeSpans_OverlappingAndAdjacent(t *testing.T) {
	spans := []Span{{0, 3}, {2, 5}, {5, 7}, {9, 10}}
	merged := mergeSpans(spans)
	want := []Span{{0, 7}, {9, 10}}
	if len(merged) != len(want) {
		t.Fatalf("merged = %+v, want %+v", merged, want)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("merged[%d] = %+v, want %+v", i, merged[i], want[i])
		}
	}
}
