package platform

import (
	"strings"
	"testing"
	"time"
)

func TestExpireMillis(t *testing.T) {
	tests := []struct {
		timeout time.Duration
		want    int32
	}{
		{0, -1},
		{-time.Second, -1},
		{1500 * time.Millisecond, 1500},
	}
	for _, tt := range tests {
		if got := (Options{Timeout: tt.timeout}).expireMillis(); got != tt.want {
			t.Errorf("expireMillis(%v) = %d, want %d", tt.timeout, got, tt.want)
		}
	}
}

func TestHints(t *testing.T) {
	h := Options{Category: "transfer.complete", IconPath: "/tmp/a.png"}.hints()
	if h["desktop-entry"] != "sketchpad" || h["category"] != "transfer.complete" || h["image-path"] != "/tmp/a.png" {
		t.Fatalf("hints %v", h)
	}
	if _, ok := (Options{}).hints()["category"]; ok {
		t.Fatal("empty category sent")
	}
}

func TestAppleScriptQuoting(t *testing.T) {
	got := appleScript(`say "hi"`, `C:\path`)
	want := `display notification "C:\\path" with title "say \"hi\"" subtitle "Sketchpad"`
	if got != want {
		t.Fatalf("appleScript = %s\nwant          %s", got, want)
	}
}

func TestToastScript(t *testing.T) {
	plain := toastScript("Sketchpad", "it's done", "")
	if !strings.Contains(plain, "ToastText02") || strings.Contains(plain, `"image"`) {
		t.Fatalf("plain toast: %s", plain)
	}
	if !strings.Contains(plain, "'it''s done'") {
		t.Fatalf("body not quoted: %s", plain)
	}
	withIcon := toastScript("Sketchpad", "done", `C:\tmp\p.png`)
	if !strings.Contains(withIcon, "ToastImageAndText02") || !strings.Contains(withIcon, `SetAttribute("src", 'C:\tmp\p.png')`) {
		t.Fatalf("icon toast: %s", withIcon)
	}
}
