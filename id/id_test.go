package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/invoicing/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.ID
		prefix string
	}{
		{"PaymentID", id.NewPaymentID, "pay_"},
		{"RequestID", id.NewRequestID, "req_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixPayment)
	if i.IsNil() {
		t.Fatal("New returned a nil ID")
	}
	if i.Prefix() != id.PrefixPayment {
		t.Errorf("prefix: got %q, want %q", i.Prefix(), id.PrefixPayment)
	}
}

func TestUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s := id.NewPaymentID().String()
		if seen[s] {
			t.Fatalf("duplicate ID generated: %s", s)
		}
		seen[s] = true
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := id.NewPaymentID()

	parsed, err := id.Parse(original.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round trip: got %q, want %q", parsed, original)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Garbage", "!!not-an-id!!"},
		{"Bad suffix", "pay_zzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := id.Parse(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestParsePaymentIDRejectsWrongPrefix(t *testing.T) {
	req := id.NewRequestID()
	if _, err := id.ParsePaymentID(req.String()); err == nil {
		t.Errorf("expected prefix mismatch error for %q", req)
	}
}

func TestTextMarshaling(t *testing.T) {
	original := id.NewPaymentID()

	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded id.ID
	if err := decoded.UnmarshalText(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.String() != original.String() {
		t.Errorf("round trip: got %q, want %q", decoded, original)
	}

	var nilID id.ID
	data, err = nilID.MarshalText()
	if err != nil {
		t.Fatalf("marshal nil: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("nil ID marshaled to %q", data)
	}
}
