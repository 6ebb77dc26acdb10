package display

import "testing"

func TestBookingStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", BookingPending},
		{"   ", BookingPending},
		{"pending", BookingPending},
		{"accept", BookingConfirmed},
		{"ACCEPTED", BookingConfirmed},
		{"Confirmed", BookingConfirmed},
		{"done", BookingCompleted},
		{"complete", BookingCompleted},
		{"cancel", BookingCancelled},
		{"rejected", BookingCancelled},
		{"  accepted  ", BookingConfirmed},
		{"rescheduled", "Rescheduled"},
	}
	for _, tc := range cases {
		if got := BookingStatus(tc.raw); got != tc.want {
			t.Errorf("BookingStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", PaymentPending},
		{"paid", PaymentPaid},
		{"SUCCESS", PaymentPaid},
		{"unpaid", PaymentPending},
		{"refund", PaymentRefunded},
		{"reversed", PaymentRefunded},
		{"chargeback", "Chargeback"},
	}
	for _, tc := range cases {
		if got := PaymentStatus(tc.raw); got != tc.want {
			t.Errorf("PaymentStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestAccountStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", StatusActive},
		{"active", StatusActive},
		{"enabled", StatusActive},
		{"disabled", StatusInactive},
		{"banned", StatusSuspended},
		{"SUSPENDED", StatusSuspended},
	}
	for _, tc := range cases {
		if got := UserStatus(tc.raw); got != tc.want {
			t.Errorf("UserStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
		if got := ServiceStatus(tc.raw); got != tc.want {
			t.Errorf("ServiceStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestUnknownStatusIsTitleCased(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"weird_state", "Weird_state"},
		{"ÉTAT", "État"},
	}
	for _, tc := range cases {
		if got := BookingStatus(tc.raw); got != tc.want {
			t.Errorf("BookingStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
