package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	comment := &entity.Comment{PostID: 10, UserID: 3, Content: "nice"}
	require.NoError(t, repo.Create(context.Background(), comment))
	assert.Equal(t, uint(1), comment.ID)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1 ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "created_at"}).
			AddRow(1, 10, 3, "nice", now))
	comments, err := repo.ListByPost(context.Background(), 10, 0, 20)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_Create_MissingPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(context.Background(), &entity.Comment{PostID: 99, UserID: 3, Content: "x"})
	assert.True(t, errors.Is(err, repository.ErrNotFound), "got %v", err)
}

func TestCommentRepository_FindAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE "comments"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "created_at"}))
	comment, err := repo.FindByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, comment)

	mock.ExpectExec(`DELETE FROM "comments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
