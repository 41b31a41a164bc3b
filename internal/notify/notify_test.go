package notify

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/sketchpad/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recording(n *Notifier) *[]sent {
	var got []sent
	n.send = func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		got = append(got, sent{title, body, opts, opts.IconPath != "" && err == nil})
		return nil
	}
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	n := New(DefaultPreferences())
	got := recording(n)
	n.Copy("surface", nil)
	n.Render("out.png")
	if len(*got) != 0 {
		t.Fatalf("sent %v", *got)
	}
	var nilNotifier *Notifier
	nilNotifier.Copy("x", nil)
}

func TestCopyWithPreview(t *testing.T) {
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	got := recording(n)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 3, 3)))
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.title != "Sketchpad" || s.body != "Copied drawing to clipboard" {
		t.Fatalf("notification %q %q", s.title, s.body)
	}
	if !s.iconExisted {
		t.Fatal("preview icon missing while notifying")
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Fatalf("preview not cleaned up: %v", err)
	}
}

func TestRenderUsesFileAsIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventRender, true)
	got := recording(n)
	n.Render(path)
	if len(*got) != 1 || (*got)[0].opts.IconPath != path {
		t.Fatalf("sent %+v", *got)
	}
	if (*got)[0].opts.Category != "transfer.complete" {
		t.Fatalf("category %q", (*got)[0].opts.Category)
	}
	if !strings.Contains((*got)[0].body, "out.png") {
		t.Fatalf("body %q", (*got)[0].body)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("SKETCHPAD_NOTIFY_TITLE", "Pad")
	t.Setenv("SKETCHPAD_NOTIFY_COPY_TEXT", "%s copied")
	prefs := LoadPreferences()
	if prefs.Title != "Pad" || prefs.Events[EventCopy].Template != "%s copied" {
		t.Fatalf("prefs %+v", prefs)
	}
	if prefs.Events[EventRender].Template != "Rendered %s" {
		t.Fatalf("render template changed: %q", prefs.Events[EventRender].Template)
	}
}
