package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"blog/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_posts.sql",
		"00003_create_comments.sql",
	}, files)

	for _, name := range files {
		content, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)

		sql := string(content)
		assert.True(t, strings.Contains(sql, "-- +goose Up"), name)
		assert.True(t, strings.Contains(sql, "-- +goose Down"), name)
	}

	posts, err := fs.ReadFile(migrations.FS, "00002_create_posts.sql")
	require.NoError(t, err)
	assert.Contains(t, string(posts), "PRIMARY KEY (post_id, user_id)")
}
