package dateutil

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    time.Time
		wantErr error
	}{
		{
			name:  "time passes through",
			input: time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC),
			want:  time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC),
		},
		{
			name:  "int is epoch milliseconds",
			input: 1700000000000,
			want:  time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
		},
		{
			name:  "int64 is epoch milliseconds",
			input: int64(0),
			want:  time.Unix(0, 0).UTC(),
		},
		{
			name:  "float is epoch milliseconds",
			input: float64(1500),
			want:  time.Unix(1, 500_000_000).UTC(),
		},
		{
			name:  "date only",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 keeps explicit offset",
			input: "2025-06-01T14:30:00-07:00",
			want:  time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC),
		},
		{
			name:  "pacific abbreviation in summer resolves to daylight offset",
			input: "2025-06-01 14:30 PST",
			want:  time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC),
		},
		{
			name:  "eastern abbreviation in winter",
			input: "2024-01-15 09:00 EST",
			want:  time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "lowercase abbreviation",
			input: "2024-01-15 09:00 cst",
			want:  time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		},
		{
			name:  "gmt abbreviation",
			input: "2024-01-15 09:00 GMT",
			want:  time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "long month name",
			input: "March 5, 2024",
			want:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "long month with clock",
			input: "March 5, 2024 3:15 PM",
			want:  time.Date(2024, 3, 5, 15, 15, 0, 0, time.UTC),
		},
		{
			name:  "us slashes read month first",
			input: "04/05/2024",
			want:  time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace is ignored",
			input: "  2024-03-15  ",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc1123 with gmt",
			input: "Mon, 02 Jan 2006 15:04:05 GMT",
			want:  time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC),
		},
		{
			name:    "garbage is unparseable",
			input:   "not a date at all",
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "empty string is unparseable",
			input:   "   ",
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "nil is unparseable",
			input:   nil,
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "unsupported type",
			input:   []string{"2024-01-01"},
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "uint64 above int64 range",
			input:   uint64(math.MaxInt64) + 1,
			wantErr: ErrUnparseableDate,
		},
		{
			name:  "uint64 in range",
			input: uint64(1500),
			want:  time.Unix(1, 500_000_000).UTC(),
		},
		{
			name:    "float NaN",
			input:   math.NaN(),
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "float positive infinity",
			input:   math.Inf(1),
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "float negative infinity",
			input:   math.Inf(-1),
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "float beyond int64 microseconds",
			input:   float64(1e300),
			wantErr: ErrUnparseableDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Normalize(%v) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%v) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []any{
		"2025-06-01 14:30 PST",
		"March 5, 2024",
		"2024-03-15T10:00:00Z",
		1700000000000,
	}

	for _, in := range inputs {
		first, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%v): %v", in, err)
		}
		second, err := Normalize(first)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%v)): %v", in, err)
		}
		if !first.Equal(second) {
			t.Errorf("Normalize not idempotent for %v: %v != %v", in, first, second)
		}

		// The canonical string form must normalize to the same instant.
		third, err := Normalize(Canonical(first))
		if err != nil {
			t.Fatalf("Normalize(Canonical(%v)): %v", in, err)
		}
		if !first.Equal(third) {
			t.Errorf("canonical round trip for %v: %v != %v", in, first, third)
		}
	}
}

func TestNormalizer_DefaultLocation(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	n := NewNormalizer(berlin)

	got, err := n.Normalize("2024-07-01 12:00")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if want := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}

	// An explicit abbreviation wins over the default location.
	got, err = n.Normalize("2024-07-01 12:00 UTC")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if want := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizer_FirstMatchWins(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(name string, result time.Time, ok bool) Matcher {
		return Matcher{
			Name: name,
			Parse: func(string, *time.Location) (time.Time, error) {
				calls = append(calls, name)
				if !ok {
					return time.Time{}, errors.New("no match")
				}
				return result, nil
			},
		}
	}

	first := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2002, 2, 2, 0, 0, 0, 0, time.UTC)
	n := &Normalizer{Matchers: []Matcher{
		record("miss", time.Time{}, false),
		record("first", first, true),
		record("second", second, true),
	}}

	got, err := n.Normalize("anything")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !got.Equal(first) {
		t.Errorf("Normalize() = %v, want %v", got, first)
	}
	if len(calls) != 2 || calls[0] != "miss" || calls[1] != "first" {
		t.Errorf("matcher calls = %v, want [miss first]", calls)
	}
}

func TestNormalizeOr(t *testing.T) {
	t.Parallel()

	def := time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)
	n := NewNormalizer(nil)

	if got := n.NormalizeOr("bogus", def); !got.Equal(def) {
		t.Errorf("NormalizeOr(bogus) = %v, want default %v", got, def)
	}
	if got := n.NormalizeOr("2024-01-02", def); got.Equal(def) {
		t.Errorf("NormalizeOr(valid) returned the default")
	}
}
