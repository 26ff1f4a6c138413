package repository

import "testing"

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{StatusSubmitted, StatusReviewed, StatusRejected, StatusHired} {
		if !ValidApplicationStatus(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range []string{"", "submitted", "Archived", "HIRED"} {
		if ValidApplicationStatus(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
