package auth

import "testing"

func TestParseRole(t *testing.T) {
	r, err := ParseRole("patient")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != RolePatient {
		t.Errorf("expected RolePatient, got %s", r)
	}

	r, err = ParseRole("caretaker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != RoleCaretaker {
		t.Errorf("expected RoleCaretaker, got %s", r)
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, s := range []string{"", "admin", "Patient", "PATIENT", "doctor"} {
		if _, err := ParseRole(s); err == nil {
			t.Errorf("expected error for role %q", s)
		}
	}
}
