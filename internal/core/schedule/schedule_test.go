package schedule

import (
	"errors"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid date", input: "2024-06-01", want: day("2024-06-01")},
		{name: "leap day", input: "2024-02-29", want: day("2024-02-29")},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "slashes", input: "2024/06/01", wantErr: true},
		{name: "day first", input: "01-06-2024", wantErr: true},
		{name: "with time of day", input: "2024-06-01T10:00:00", wantErr: true},
		{name: "with zone", input: "2024-06-01Z", wantErr: true},
		{name: "short month", input: "2024-6-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				var dfe *DateFormatError
				if !errors.As(err, &dfe) {
					t.Fatalf("ParseDate(%q) error = %v, want DateFormatError", tt.input, err)
				}
				if dfe.Value != tt.input {
					t.Errorf("DateFormatError.Value = %q, want %q", dfe.Value, tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasOverlap(t *testing.T) {
	tests := []struct {
		name         string
		startA, endA string
		startB, endB string
		want         bool
	}{
		{name: "contained", startA: "2024-06-01", endA: "2024-06-05", startB: "2024-06-03", endB: "2024-06-04", want: true},
		{name: "partial", startA: "2024-06-01", endA: "2024-06-05", startB: "2024-06-04", endB: "2024-06-10", want: true},
		{name: "shared boundary day", startA: "2024-06-01", endA: "2024-06-05", startB: "2024-06-05", endB: "2024-06-07", want: true},
		{name: "adjacent days", startA: "2024-06-01", endA: "2024-06-05", startB: "2024-06-06", endB: "2024-06-07", want: false},
		{name: "disjoint", startA: "2024-06-01", endA: "2024-06-02", startB: "2024-07-01", endB: "2024-07-02", want: false},
		{name: "identical", startA: "2024-06-01", endA: "2024-06-01", startB: "2024-06-01", endB: "2024-06-01", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, a2, b1, b2 := day(tt.startA), day(tt.endA), day(tt.startB), day(tt.endB)
			if got := HasOverlap(a1, a2, b1, b2); got != tt.want {
				t.Errorf("HasOverlap(A, B) = %v, want %v", got, tt.want)
			}
			if got := HasOverlap(b1, b2, a1, a2); got != tt.want {
				t.Errorf("HasOverlap(B, A) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasOverlap_SingleDay(t *testing.T) {
	start, end := day("2024-06-01"), day("2024-06-05")
	for d := day("2024-05-30"); !d.After(day("2024-06-07")); d = d.AddDate(0, 0, 1) {
		want := !d.Before(start) && !d.After(end)
		if got := HasOverlap(start, end, d, d); got != want {
			t.Errorf("HasOverlap(range, %s) = %v, want %v", d.Format(DateLayout), got, want)
		}
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("2024-06-01", "2024-06-05")
	if err != nil {
		t.Fatalf("ParseWindow() unexpected error: %v", err)
	}
	if !w.Overlaps(Window{Start: day("2024-06-05"), End: day("2024-06-09")}) {
		t.Error("expected windows sharing the end day to overlap")
	}

	_, err = ParseWindow("2024-06-01", "June 5")
	var dfe *DateFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("ParseWindow() error = %v, want DateFormatError", err)
	}
	if dfe.Field != "end_date" {
		t.Errorf("DateFormatError.Field = %q, want end_date", dfe.Field)
	}
	if want := `invalid end_date "June 5": expected YYYY-MM-DD`; dfe.Error() != want {
		t.Errorf("Error() = %q, want %q", dfe.Error(), want)
	}
}
