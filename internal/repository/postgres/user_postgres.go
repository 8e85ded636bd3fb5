package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

// UserPostgres reads the users table maintained by the identity service.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// FindSummaries resolves a batch of user IDs with a single query.
func (r *UserPostgres) FindSummaries(ctx context.Context, ids []string) (map[string]model.UserSummary, error) {
	out := make(map[string]model.UserSummary, len(ids))

	b := &whereBuilder{}
	ph := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		ph = append(ph, b.arg(id))
	}
	if len(ph) == 0 {
		return out, nil
	}

	q := `SELECT id, name, email, phone FROM users WHERE id IN (` + strings.Join(ph, ", ") + `)`
	rows, err := r.db.QueryContext(ctx, q, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT id, name, email, phone, role FROM users WHERE id = $1`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
