package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedInOrder(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_games.sql"}, names)

	for _, n := range names {
		b, err := Migrations.ReadFile(n)
		require.NoError(t, err)
		s := string(b)
		assert.True(t, strings.Contains(s, "-- +goose Up"), n)
		assert.True(t, strings.Contains(s, "-- +goose Down"), n)
	}
}

func TestMigrations_EmailIsUnique(t *testing.T) {
	b, err := Migrations.ReadFile("00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)")
}
