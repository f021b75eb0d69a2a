package models

import "testing"

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		wantErr bool
	}{
		{"pending to confirmed", BookingPending, BookingConfirmed, false},
		{"pending to cancelled", BookingPending, BookingCancelled, false},
		{"confirmed to cancelled", BookingConfirmed, BookingCancelled, false},
		{"confirmed to confirmed", BookingConfirmed, BookingConfirmed, true},
		{"cancelled to confirmed", BookingCancelled, BookingConfirmed, true},
		{"cancelled to pending", BookingCancelled, BookingPending, true},
		{"pending to pending", BookingPending, BookingPending, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{Status: tc.from}
			err := b.Transition(tc.to)
			if tc.wantErr && err == nil {
				t.Errorf("Expected error for %s -> %s", tc.from, tc.to)
			}
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if b.Status != tc.to {
					t.Errorf("Expected status %s, got %s", tc.to, b.Status)
				}
			}
		})
	}
}
