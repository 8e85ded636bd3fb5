package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

func TestUserPostgres_FindSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("skips malformed ids", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email, phone FROM users WHERE id IN \(\$1\)`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone"}).
				AddRow(ownerID, "Asha", "asha@example.com", "+919800000000"))

		got, err := repo.FindSummaries(ctx, []string{ownerID, "legacy-id"})

		assert.NoError(t, err)
		assert.Equal(t, map[string]model.UserSummary{
			ownerID: {ID: ownerID, Name: "Asha", Email: "asha@example.com", Phone: "+919800000000"},
		}, got)
	})

	t.Run("no valid ids", func(t *testing.T) {
		got, err := repo.FindSummaries(ctx, []string{"x"})

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users`).WillReturnError(sql.ErrConnDone)

		got, err := repo.FindSummaries(ctx, []string{ownerID})

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)

	mock.ExpectQuery(`SELECT id, name, email, phone, role FROM users WHERE id = \$1`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role"}).
			AddRow(ownerID, "Asha", "asha@example.com", "", "seller"))

	u, err := repo.FindByID(context.Background(), ownerID)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleSeller, u.Role)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(ownerID).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), ownerID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
