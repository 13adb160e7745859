package actions

import (
	"errors"
	"strings"
	"testing"

	"github.com/glabrego/feedview/internal/feed"
)

type fakeExporter struct {
	path string
	err  error
}

func (f fakeExporter) Export(feed.Entry) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

func TestOpenURLCmd_BrowserSuccess(t *testing.T) {
	openCalled := ""
	cmd := OpenURLCmd("https://example.com", func(u string) error {
		openCalled = u
		return nil
	}, nil)

	msg := cmd()
	success, ok := msg.(OpenURLSuccessMsg)
	if !ok {
		t.Fatalf("expected OpenURLSuccessMsg, got %T", msg)
	}
	if !success.Opened {
		t.Fatal("expected Opened to be true")
	}
	if openCalled != "https://example.com" {
		t.Fatalf("unexpected URL passed to opener: %q", openCalled)
	}
}

func TestOpenURLCmd_FallsBackToClipboard(t *testing.T) {
	cmd := OpenURLCmd("https://example.com",
		func(string) error { return errors.New("no browser") },
		func(string) error { return nil })

	msg := cmd()
	success, ok := msg.(OpenURLSuccessMsg)
	if !ok {
		t.Fatalf("expected OpenURLSuccessMsg, got %T", msg)
	}
	if success.Opened {
		t.Fatal("expected Opened to be false for clipboard fallback")
	}
	if !strings.Contains(success.Status, "clipboard") {
		t.Fatalf("expected clipboard status, got %q", success.Status)
	}
}

func TestOpenURLCmd_TotalFailure(t *testing.T) {
	fail := func(string) error { return errors.New("nope") }
	msg := OpenURLCmd("https://example.com", fail, fail)()
	if _, ok := msg.(OpenURLErrorMsg); !ok {
		t.Fatalf("expected OpenURLErrorMsg, got %T", msg)
	}
}

func TestExportCmd(t *testing.T) {
	msg := ExportCmd(fakeExporter{path: "articles/2024-03-05-my-post.md"}, feed.Entry{})()
	success, ok := msg.(ExportSuccessMsg)
	if !ok {
		t.Fatalf("expected ExportSuccessMsg, got %T", msg)
	}
	if success.Path != "articles/2024-03-05-my-post.md" {
		t.Fatalf("unexpected path: %q", success.Path)
	}

	msg = ExportCmd(fakeExporter{err: errors.New("disk full")}, feed.Entry{})()
	failure, ok := msg.(ExportErrorMsg)
	if !ok {
		t.Fatalf("expected ExportErrorMsg, got %T", msg)
	}
	if !strings.Contains(failure.Err.Error(), "disk full") {
		t.Fatalf("unexpected error: %v", failure.Err)
	}
}
