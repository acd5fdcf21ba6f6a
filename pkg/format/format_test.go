package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	cases := map[float64]string{
		0:       "Rp\u00a00",
		1500:    "Rp\u00a01.500",
		2500000: "Rp\u00a02.500.000",
	}
	for in, want := range cases {
		if got := Currency(in); got != want {
			t.Fatalf("Currency(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestNumber(t *testing.T) {
	if got := Number(12000); got != "12.000" {
		t.Fatalf("Number(12000) = %q", got)
	}
	if got := Number(0); got != "0" {
		t.Fatalf("Number(0) = %q", got)
	}
}

func TestPhone(t *testing.T) {
	if got := Phone("081234567890"); got != "0812-3456-7890" {
		t.Fatalf("unexpected grouping: %q", got)
	}
	if got := Phone("0812"); got != "0812" {
		t.Fatalf("short phone changed: %q", got)
	}
	if got := Phone("+62 812 3456"); got != "+62 812 3456" {
		t.Fatalf("non-numeric prefix changed: %q", got)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	if got := Date(d); got != "March 4, 2025" {
		t.Fatalf("Date = %q", got)
	}
	if got := Date(time.Time{}); got != "-" {
		t.Fatalf("zero date = %q", got)
	}
}

func TestInitial(t *testing.T) {
	if got := Initial(" budi"); got != "B" {
		t.Fatalf("Initial = %q", got)
	}
	if got := Initial(""); got != "" {
		t.Fatalf("Initial(empty) = %q", got)
	}
}
