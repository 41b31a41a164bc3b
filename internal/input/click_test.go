package input

import (
	"image"
	"testing"
	"time"
)

func TestClickTracker(t *testing.T) {
	base := time.Unix(100, 0)
	tests := []struct {
		name  string
		btn   int
		p     image.Point
		after time.Duration
		want  bool
	}{
		{"quick second press", 1, image.Pt(11, 10), 200 * time.Millisecond, true},
		{"too slow", 1, image.Pt(10, 10), 600 * time.Millisecond, false},
		{"moved away", 1, image.Pt(30, 10), 100 * time.Millisecond, false},
		{"other button", 3, image.Pt(10, 10), 100 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := NewClickTracker(0)
			if ct.Press(1, image.Pt(10, 10), base) {
				t.Fatal("first press reported double-click")
			}
			if got := ct.Press(tt.btn, tt.p, base.Add(tt.after)); got != tt.want {
				t.Fatalf("Press = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriplePressIsNotDouble(t *testing.T) {
	ct := NewClickTracker(time.Second)
	now := time.Unix(0, 0)
	p := image.Pt(1, 1)
	ct.Press(1, p, now)
	if !ct.Press(1, p, now.Add(10*time.Millisecond)) {
		t.Fatal("second press not a double-click")
	}
	if ct.Press(1, p, now.Add(20*time.Millisecond)) {
		t.Fatal("third press reported as double-click")
	}
}

func TestReset(t *testing.T) {
	ct := NewClickTracker(time.Second)
	now := time.Unix(0, 0)
	ct.Press(1, image.Pt(0, 0), now)
	ct.Reset()
	if ct.Press(1, image.Pt(0, 0), now) {
		t.Fatal("press after reset reported double-click")
	}
}
