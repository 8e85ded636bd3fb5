package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
)

const showingColumns = `id, property_id, buyer_id, agent_id, scheduled_at, duration_minutes, status, notes,
	feedback_rating, feedback_comment, created_at, updated_at`

// ShowingPostgres is a PostgreSQL implementation of repository.ShowingRepository.
type ShowingPostgres struct {
	db *sql.DB
}

func NewShowingPostgres(db *sql.DB) *ShowingPostgres {
	return &ShowingPostgres{db: db}
}

var _ repository.ShowingRepository = (*ShowingPostgres)(nil)

func (r *ShowingPostgres) Create(ctx context.Context, s *model.Showing) (*model.Showing, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	const q = `
		INSERT INTO showings (` + showingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + showingColumns
	return scanShowing(r.db.QueryRowContext(ctx, q, showingArgs(s)...))
}

func (r *ShowingPostgres) FindByID(ctx context.Context, id string) (*model.Showing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT ` + showingColumns + ` FROM showings WHERE id = $1`
	s, err := scanShowing(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// List applies the filter and orders by scheduled time, latest first.
func (r *ShowingPostgres) List(ctx context.Context, f repository.ShowingFilter) ([]model.Showing, error) {
	b := &whereBuilder{}
	if f.BuyerID != "" {
		b.add("buyer_id = " + b.arg(f.BuyerID))
	}
	if f.AgentID != "" {
		b.add("agent_id = " + b.arg(f.AgentID))
	}
	if f.Scoped || len(f.PropertyIDs) > 0 {
		if len(f.PropertyIDs) == 0 {
			return []model.Showing{}, nil
		}
		ph := make([]string, len(f.PropertyIDs))
		for i, id := range f.PropertyIDs {
			ph[i] = b.arg(id)
		}
		b.add("property_id IN (" + strings.Join(ph, ", ") + ")")
	}

	q := `SELECT ` + showingColumns + ` FROM showings` + b.String() + ` ORDER BY scheduled_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Showing, 0)
	for rows.Next() {
		s, err := scanShowing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ShowingPostgres) Update(ctx context.Context, s *model.Showing) (*model.Showing, error) {
	if _, err := uuid.Parse(s.ID); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `
		UPDATE showings SET
			property_id = $2, buyer_id = $3, agent_id = $4, scheduled_at = $5, duration_minutes = $6,
			status = $7, notes = $8, feedback_rating = $9, feedback_comment = $10,
			created_at = $11, updated_at = $12
		WHERE id = $1
		RETURNING ` + showingColumns
	out, err := scanShowing(r.db.QueryRowContext(ctx, q, showingArgs(s)...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// FindActiveBetween looks for a pending or confirmed showing occupying [from, to].
func (r *ShowingPostgres) FindActiveBetween(ctx context.Context, propertyID string, from, to time.Time) (*model.Showing, error) {
	if _, err := uuid.Parse(propertyID); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `
		SELECT ` + showingColumns + ` FROM showings
		WHERE property_id = $1 AND scheduled_at BETWEEN $2 AND $3 AND status IN ('pending', 'confirmed')
		ORDER BY scheduled_at
		LIMIT 1`
	s, err := scanShowing(r.db.QueryRowContext(ctx, q, propertyID, from, to))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func scanShowing(row scanner) (*model.Showing, error) {
	var (
		s       model.Showing
		agentID sql.NullString
		notes   sql.NullString
		rating  sql.NullInt64
		comment sql.NullString
	)
	err := row.Scan(&s.ID, &s.PropertyID, &s.BuyerID, &agentID, &s.ScheduledAt, &s.DurationMinutes, &s.Status,
		&notes, &rating, &comment, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.AgentID = agentID.String
	s.Notes = notes.String
	if rating.Valid {
		s.Feedback = &model.Feedback{Rating: int(rating.Int64), Comment: comment.String}
	}
	return &s, nil
}

func showingArgs(s *model.Showing) []any {
	var agentID, rating, comment any
	if s.AgentID != "" {
		agentID = s.AgentID
	}
	if s.Feedback != nil {
		rating = int64(s.Feedback.Rating)
		comment = s.Feedback.Comment
	}
	return []any{
		s.ID, s.PropertyID, s.BuyerID, agentID, s.ScheduledAt, s.DurationMinutes, string(s.Status),
		s.Notes, rating, comment, s.CreatedAt, s.UpdatedAt,
	}
}
