package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mercie-ux/mkulima-cooperative/pkg/migrate"
)

func TestValidateMigrationsDir(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir should validate: %v", err)
	}
}

func TestCropsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_crops.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS crops",
		"FOREIGN KEY (farmer_id) REFERENCES users(id) ON DELETE CASCADE",
		"CHECK (status IN ('planted', 'growing', 'ready', 'harvested'))",
		"CHECK (health_score >= 0 AND health_score <= 100)",
		"DROP TABLE IF EXISTS crops",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestUsersMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_users.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CONSTRAINT users_email_key UNIQUE (email)",
		"CHECK (role IN ('farmer', 'admin'))",
		"DROP TABLE IF EXISTS users",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
