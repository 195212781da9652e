package enums

import "testing"

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("admin")
	if err != nil {
		t.Fatalf("parse admin: %v", err)
	}
	if role != UserRoleAdmin {
		t.Fatalf("expected admin role, got %s", role)
	}

	if _, err := ParseUserRole("superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}

	if UserRole("manager").IsValid() {
		t.Fatal("manager should not be a valid role")
	}
}

func TestParseCropStatus(t *testing.T) {
	for _, value := range []string{"planted", "growing", "ready", "harvested"} {
		status, err := ParseCropStatus(value)
		if err != nil {
			t.Fatalf("parse %s: %v", value, err)
		}
		if !status.IsValid() {
			t.Fatalf("%s should be valid", value)
		}
	}

	if _, err := ParseCropStatus("wilted"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
