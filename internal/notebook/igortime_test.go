package notebook

import (
	"testing"
	"time"
)

func TestIgorTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    time.Time
	}{
		{"native epoch", 0, time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"unix epoch", 2082844800, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"one day in", 86400, time.Date(1904, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"acquisition timestamp", 3674246400, time.Date(2020, 6, 6, 0, 0, 0, 0, time.UTC)},
		{"sub-second precision", 2082844800.25, time.Date(1970, 1, 1, 0, 0, 0, 250000000, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IgorTime(tt.seconds)
			if !got.Equal(tt.want) {
				t.Fatalf("IgorTime(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Fatalf("IgorTime(%v) location = %v, want UTC", tt.seconds, got.Location())
			}
		})
	}
}
