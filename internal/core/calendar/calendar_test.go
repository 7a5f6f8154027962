package calendar

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/example/electa/internal/core/domainerr"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1970, false},
		{1972, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		want    int
		wantErr error
	}{
		{name: "january", year: 2023, month: 1, want: 31},
		{name: "april", year: 2023, month: 4, want: 30},
		{name: "february common year", year: 2023, month: 2, want: 28},
		{name: "february leap year", year: 2024, month: 2, want: 29},
		{name: "february century", year: 1900, month: 2, want: 28},
		{name: "december", year: 2023, month: 12, want: 31},
		{name: "month zero", year: 2023, month: 0, wantErr: ErrInvalidMonth},
		{name: "month thirteen", year: 2023, month: 13, wantErr: ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysInMonth(tt.year, tt.month)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DaysInMonth() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DaysInMonth() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DaysInMonth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysSinceEpoch(t *testing.T) {
	tests := []struct {
		year    int
		want    int64
		wantErr bool
	}{
		{year: 1970, want: 0},
		{year: 1971, want: 365},
		{year: 1973, want: 365 + 365 + 366},
		{year: 2000, want: 10957},
		{year: 1969, wantErr: true},
		{year: MaxYear + 1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := DaysSinceEpoch(tt.year)
		if tt.wantErr {
			if !errors.Is(err, ErrYearOutOfRange) {
				t.Errorf("DaysSinceEpoch(%d) error = %v, want ErrYearOutOfRange", tt.year, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("DaysSinceEpoch(%d) unexpected error: %v", tt.year, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysSinceEpoch(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		date    Date
		want    int64
		wantErr error
	}{
		{name: "epoch", date: Date{Year: 1970, Month: 1, Day: 1}, want: 0},
		{name: "after leap day 2000", date: Date{Year: 2000, Month: 3, Day: 1}, want: 951868800},
		{name: "leap day with time", date: Date{Year: 2024, Month: 2, Day: 29, Hour: 12, Minute: 30, Second: 15}, want: 1709209815},
		{name: "last representable second", date: Date{Year: 9999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}, want: 253402300799},
		{name: "february 29 in common year", date: Date{Year: 2023, Month: 2, Day: 29}, wantErr: ErrInvalidDay},
		{name: "day zero", date: Date{Year: 2023, Month: 5, Day: 0}, wantErr: ErrInvalidDay},
		{name: "april 31", date: Date{Year: 2023, Month: 4, Day: 31}, wantErr: ErrInvalidDay},
		{name: "month 13", date: Date{Year: 2023, Month: 13, Day: 1}, wantErr: ErrInvalidMonth},
		{name: "hour 24", date: Date{Year: 2023, Month: 1, Day: 1, Hour: 24}, wantErr: ErrInvalidTime},
		{name: "negative minute", date: Date{Year: 2023, Month: 1, Day: 1, Minute: -1}, wantErr: ErrInvalidTime},
		{name: "second 60", date: Date{Year: 2023, Month: 1, Day: 1, Second: 60}, wantErr: ErrInvalidTime},
		{name: "before epoch", date: Date{Year: 1969, Month: 12, Day: 31}, wantErr: ErrYearOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Timestamp(tt.date)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Timestamp() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, domainerr.ErrInvalidInput) {
					t.Errorf("Timestamp() error = %v, want kind ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Timestamp() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Timestamp() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimestamp_AgreesWithTimePackage(t *testing.T) {
	for year := 1970; year <= 2404; year += 3 {
		for month := 1; month <= 12; month++ {
			days, _ := DaysInMonth(year, month)
			for _, day := range []int{1, days} {
				d := Date{Year: year, Month: month, Day: day, Hour: 7, Minute: 5, Second: 9}
				got, err := Timestamp(d)
				if err != nil {
					t.Fatalf("Timestamp(%s) unexpected error: %v", d, err)
				}
				want := time.Date(year, time.Month(month), day, 7, 5, 9, 0, time.UTC).Unix()
				if got != want {
					t.Fatalf("Timestamp(%s) = %d, want %d", d, got, want)
				}
				if back := FromUnix(got); back != d {
					t.Fatalf("FromUnix(%d) = %s, want %s", got, back, d)
				}
			}
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if _, err := checkedAdd(math.MaxInt64, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("checkedAdd(MaxInt64, 1) error = %v, want ErrOverflow", err)
	}
	if _, err := checkedAdd(math.MinInt64, -1); !errors.Is(err, ErrOverflow) {
		t.Errorf("checkedAdd(MinInt64, -1) error = %v, want ErrOverflow", err)
	}
	if _, err := checkedMul(math.MaxInt64/2, 3); !errors.Is(err, ErrOverflow) {
		t.Errorf("checkedMul(MaxInt64/2, 3) error = %v, want ErrOverflow", err)
	}
	if !errors.Is(ErrOverflow, domainerr.ErrOverflow) {
		t.Errorf("ErrOverflow does not wrap domainerr.ErrOverflow")
	}
	if got, err := checkedMul(2932896, secondsPerDay); err != nil || got != 253402214400 {
		t.Errorf("checkedMul(2932896, secondsPerDay) = %d, %v, want 253402214400, nil", got, err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-03-01", want: Date{Year: 2024, Month: 3, Day: 1}},
		{in: "2024-03-01 09:30", want: Date{Year: 2024, Month: 3, Day: 1, Hour: 9, Minute: 30}},
		{in: "2024-03-01 09:30:45", want: Date{Year: 2024, Month: 3, Day: 1, Hour: 9, Minute: 30, Second: 45}},
		{in: "2024-03-01T09:30:45", want: Date{Year: 2024, Month: 3, Day: 1, Hour: 9, Minute: 30, Second: 45}},
		{in: "  2024-12-31 23:59:59 ", want: Date{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}},
		{in: "yesterday", wantErr: true},
		{in: "2024-03", wantErr: true},
		{in: "2024-03-01 noon", wantErr: true},
		{in: "2024-03-01 1:2:3:4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domainerr.ErrInvalidInput) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidInput", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseDate(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(1709209815); got != "2024-02-29 12:30:15" {
		t.Errorf("Format() = %q, want %q", got, "2024-02-29 12:30:15")
	}
}
