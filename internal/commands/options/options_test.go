package options

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestDateDefaultsToToday(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.June, 10, 22, 15, 0, 0, time.Local) }
	o := DateOptions{}
	d, err := o.Day(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Hour() != 0 || d.Day() != 10 {
		t.Fatalf("expected midnight of the 10th, got %v", d)
	}
}

func TestDateParsesFlag(t *testing.T) {
	o := DateOptions{Date: "2024-02-29"}
	d, err := o.Day(time.Now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("unexpected date %v", d)
	}
	o.Date = "2023-02-29"
	if _, err := o.Day(time.Now); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	o := OutputOptions{JSON: true}
	if err := o.HandleError(&buf, errors.New("boom")); err != nil {
		t.Fatalf("expected error swallowed, got %v", err)
	}
	if got := buf.String(); got != "{\"error\":\"boom\"}\n" {
		t.Fatalf("unexpected output %q", got)
	}

	o.JSON = false
	if err := o.HandleError(&buf, errors.New("boom")); err == nil {
		t.Fatalf("expected error passed through")
	}
}
