package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repositories carry their SQL as string literals, so a column drifting
// from the migration DDL only surfaces at runtime. These tests pin the two
// sides together.

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	insertRe      = regexp.MustCompile(`(?s)INSERT INTO (\w+) \(([^)]*)\)`)
	selectRe      = regexp.MustCompile(`(?s)SELECT\s+(.*?)\s+FROM\s+(\w+)`)
	identRe       = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// loadSchema parses migrations/001_init.sql into table -> column set.
func loadSchema(t *testing.T) map[string]map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	schema := make(map[string]map[string]bool)
	for _, match := range createTableRe.FindAllStringSubmatch(string(ddl), -1) {
		table, body := match[1], match[2]
		columns := make(map[string]bool)
		for _, line := range strings.Split(body, "\n") {
			line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
			if line == "" {
				continue
			}
			first := strings.Fields(line)[0]
			switch first {
			case "UNIQUE", "CHECK", "PRIMARY", "FOREIGN", "CONSTRAINT":
				continue
			}
			columns[first] = true
		}
		require.NotEmpty(t, columns, "table %s parsed empty", table)
		schema[table] = columns
	}
	require.NotEmpty(t, schema)
	return schema
}

// readRepoSources concatenates the non-test Go files of this package.
func readRepoSources(t *testing.T) string {
	t.Helper()

	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	var sources strings.Builder
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		content, err := os.ReadFile(name)
		require.NoError(t, err)
		sources.Write(content)
		sources.WriteByte('\n')
	}
	return sources.String()
}

func TestInsertColumnsExistInSchema(t *testing.T) {
	schema := loadSchema(t)
	sources := readRepoSources(t)

	matches := insertRe.FindAllStringSubmatch(sources, -1)
	require.NotEmpty(t, matches)

	for _, match := range matches {
		table, list := match[1], match[2]
		columns, ok := schema[table]
		require.True(t, ok, "INSERT targets unknown table %s", table)

		for _, column := range strings.Split(list, ",") {
			column = strings.TrimSpace(column)
			assert.True(t, columns[column],
				"INSERT INTO %s names column %q missing from the migration", table, column)
		}
	}
}

func TestSelectColumnsExistInSchema(t *testing.T) {
	schema := loadSchema(t)
	sources := readRepoSources(t)

	for _, match := range selectRe.FindAllStringSubmatch(sources, -1) {
		list, table := match[1], match[2]
		columns, ok := schema[table]
		if !ok {
			continue
		}

		for _, column := range strings.Split(list, ",") {
			column = strings.TrimSpace(column)
			// Aliased or computed expressions carry their own names;
			// only bare identifiers map straight onto DDL columns.
			if !identRe.MatchString(column) {
				continue
			}
			assert.True(t, columns[column],
				"SELECT from %s names column %q missing from the migration", table, column)
		}
	}
}

func TestAuthColumnsMatchSchema(t *testing.T) {
	schema := loadSchema(t)

	users := schema["users"]
	require.NotNil(t, users)
	assert.True(t, users["password_hash"])
	assert.False(t, users["password"])

	sessions := schema["sessions"]
	require.NotNil(t, sessions)
	for _, column := range []string{"id", "user_id", "token", "expires_at", "revoked_at", "created_at"} {
		assert.True(t, sessions[column], "sessions column %q missing", column)
	}
}
