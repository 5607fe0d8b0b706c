package dlk

import (
	"errors"
	"testing"
	"time"
)

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"str":     "value",
		"int":     42,
		"int64":   int64(43),
		"float":   float64(44),
		"millis":  int64(1700000000000),
		"mistype": []string{"nope"},
	}

	if s, err := rec.String("str"); err != nil || s != "value" {
		t.Errorf("String = %q (%v)", s, err)
	}
	if _, err := rec.String("absent"); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("String(absent) = %v, want ErrMalformedRecord", err)
	}
	if _, err := rec.String("int"); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("String(int) = %v, want ErrMalformedRecord", err)
	}

	// JSON decoding can deliver numbers as int, int64, or float64.
	for field, want := range map[string]int64{"int": 42, "int64": 43, "float": 44} {
		if n, err := rec.Int64(field); err != nil || n != want {
			t.Errorf("Int64(%s) = %d (%v), want %d", field, n, err, want)
		}
	}
	if _, err := rec.Int64("mistype"); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Int64(mistype) = %v, want ErrMalformedRecord", err)
	}

	ts, err := rec.Time("millis")
	if err != nil {
		t.Fatalf("Time failed: %v", err)
	}
	if want := time.UnixMilli(1700000000000); !ts.Equal(want) {
		t.Errorf("Time = %v, want %v", ts, want)
	}

	if rec.StringDefault("absent", "fallback") != "fallback" {
		t.Error("StringDefault did not fall back")
	}
}
