package models

import (
	"encoding/json"
	"testing"
)

func TestBookingPaymentObject(t *testing.T) {
	data := []byte(`{"id":"b1","status":"accept","payment":{"id":"p1","amount":450,"status":"paid"}}`)
	var b Booking
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Payment == nil || b.Payment.Payment == nil {
		t.Fatalf("expected payment object, got %+v", b.Payment)
	}
	if got := b.Payment.Status(); got != "paid" {
		t.Errorf("payment status = %q, want paid", got)
	}
}

func TestBookingPaymentString(t *testing.T) {
	data := []byte(`{"id":"b2","payment":"pending"}`)
	var b Booking
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Payment == nil || b.Payment.Ref != "pending" {
		t.Fatalf("expected bare payment ref, got %+v", b.Payment)
	}
	if got := b.Payment.Status(); got != "pending" {
		t.Errorf("payment status = %q, want pending", got)
	}
}

func TestBookingPaymentMissing(t *testing.T) {
	var b Booking
	if err := json.Unmarshal([]byte(`{"id":"b3"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := b.Payment.Status(); got != "" {
		t.Errorf("payment status = %q, want empty", got)
	}
}

func TestUserKeepsUnknownFields(t *testing.T) {
	data := []byte(`{"id":"u1","name":"Naledi","loyaltyTier":"gold","flags":{"beta":true}}`)
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Name != "Naledi" {
		t.Errorf("name = %q", u.Name)
	}
	if len(u.Extra) != 2 {
		t.Fatalf("extra = %v, want loyaltyTier and flags", u.Extra)
	}
	if string(u.Extra["loyaltyTier"]) != `"gold"` {
		t.Errorf("loyaltyTier = %s", u.Extra["loyaltyTier"])
	}
}

func TestServiceNoExtraWhenAllKnown(t *testing.T) {
	data := []byte(`{"id":"s1","title":"Cleaning","price":450,"status":"active"}`)
	var s Service
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Extra != nil {
		t.Errorf("extra = %v, want nil", s.Extra)
	}
	if s.Price != 450 {
		t.Errorf("price = %v", s.Price)
	}
}
