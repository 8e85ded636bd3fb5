package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository"
	"github.com/Hashimp6/broperty/internal/search"
)

const propertyColumns = `id, title, description, property_type, listing_type, status, price,
	street, city, state, zip_code, country, lng, lat,
	bedrooms, bathrooms, area, area_unit, parking, year_built, land_type,
	amenities, media, project_details, featured, owner_id, agent_id, created_at, updated_at`

// PropertyPostgres is a PostgreSQL implementation of repository.PropertyRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PropertyPostgres struct {
	db *sql.DB
}

// NewPropertyPostgres creates a new PropertyPostgres repository.
func NewPropertyPostgres(db *sql.DB) *PropertyPostgres {
	return &PropertyPostgres{db: db}
}

var _ repository.PropertyRepository = (*PropertyPostgres)(nil)

// Search counts the matching rows, then fetches the requested page.
// In proximity mode both queries are bounded by the radius.
func (r *PropertyPostgres) Search(ctx context.Context, q search.Query) (*repository.PageResult[model.Property], error) {
	b := compilePredicate(q.Predicate)

	if q.Near == nil {
		var total int
		qCount := `SELECT COUNT(*) FROM properties` + b.String()
		if err := r.db.QueryRowContext(ctx, qCount, b.args...).Scan(&total); err != nil {
			return nil, err
		}

		where := b.String()
		qList := `SELECT ` + propertyColumns + ` FROM properties` + where +
			` ORDER BY created_at DESC, id DESC LIMIT ` + b.arg(q.Page.Size) + ` OFFSET ` + b.arg(q.Page.Skip())
		items, err := r.query(ctx, qList, false, b.args...)
		if err != nil {
			return nil, err
		}
		return &repository.PageResult[model.Property]{Items: items, Total: total}, nil
	}

	where := b.String()
	latPH := b.arg(q.Near.Center.Lat())
	lngPH := b.arg(q.Near.Center.Lng())
	radiusPH := b.arg(q.Near.RadiusMeters)
	countArgs := append([]any(nil), b.args...)

	ranked := `WITH ranked AS (SELECT ` + propertyColumns + `, ` + distanceExpr(latPH, lngPH) +
		` AS distance FROM properties` + where + `)`

	var total int
	qCount := ranked + ` SELECT COUNT(*) FROM ranked WHERE distance <= ` + radiusPH
	if err := r.db.QueryRowContext(ctx, qCount, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	qList := ranked + ` SELECT ` + propertyColumns + `, distance FROM ranked WHERE distance <= ` + radiusPH +
		` ORDER BY distance ASC, created_at DESC, id DESC LIMIT ` + b.arg(q.Page.Size) + ` OFFSET ` + b.arg(q.Page.Skip())
	items, err := r.query(ctx, qList, true, b.args...)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Property]{Items: items, Total: total}, nil
}

func (r *PropertyPostgres) query(ctx context.Context, q string, withDistance bool, args ...any) ([]model.Property, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Property, 0)
	for rows.Next() {
		var p *model.Property
		if withDistance {
			var d float64
			p, err = scanProperty(rows, &d)
			if err == nil {
				p.Distance = &d
			}
		} else {
			p, err = scanProperty(rows)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single property by its ID.
func (r *PropertyPostgres) FindByID(ctx context.Context, id string) (*model.Property, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new property row and returns the stored record.
// A UUID is assigned when p.ID is empty.
func (r *PropertyPostgres) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	const q = `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		RETURNING ` + propertyColumns
	args, err := propertyArgs(p)
	if err != nil {
		return nil, err
	}
	return scanProperty(r.db.QueryRowContext(ctx, q, args...))
}

// Update overwrites every mutable column of a property.
func (r *PropertyPostgres) Update(ctx context.Context, p *model.Property) (*model.Property, error) {
	if _, err := uuid.Parse(p.ID); err != nil {
		return nil, repository.ErrNotFound
	}
	const q = `
		UPDATE properties SET
			title = $2, description = $3, property_type = $4, listing_type = $5, status = $6, price = $7,
			street = $8, city = $9, state = $10, zip_code = $11, country = $12, lng = $13, lat = $14,
			bedrooms = $15, bathrooms = $16, area = $17, area_unit = $18, parking = $19, year_built = $20, land_type = $21,
			amenities = $22, media = $23, project_details = $24, featured = $25, owner_id = $26, agent_id = $27,
			created_at = $28, updated_at = $29
		WHERE id = $1
		RETURNING ` + propertyColumns
	args, err := propertyArgs(p)
	if err != nil {
		return nil, err
	}
	out, err := scanProperty(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes a property by ID.
func (r *PropertyPostgres) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	const q = `DELETE FROM properties WHERE id = $1`
	return execAffecting(ctx, r.db, q, id)
}

// AppendMedia concatenates attachments onto the media JSON array.
func (r *PropertyPostgres) AppendMedia(ctx context.Context, id string, media []model.Media) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	b, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("encode media: %w", err)
	}
	const q = `UPDATE properties SET media = media || $2::jsonb, updated_at = now() WHERE id = $1`
	return execAffecting(ctx, r.db, q, id, string(b))
}

// IDsByOwner lists the IDs of properties owned by a user.
func (r *PropertyPostgres) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return []string{}, nil
	}
	const q = `SELECT id FROM properties WHERE owner_id = $1`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(row scanner, extra ...any) (*model.Property, error) {
	var (
		p                        model.Property
		lng, lat                 float64
		yearBuilt                sql.NullInt64
		landType, agentID        sql.NullString
		amenities, media, detail []byte
	)
	dest := []any{
		&p.ID, &p.Title, &p.Description, &p.PropertyType, &p.ListingType, &p.Status, &p.Price,
		&p.Address.Street, &p.Address.City, &p.Address.State, &p.Address.ZipCode, &p.Address.Country, &lng, &lat,
		&p.Features.Bedrooms, &p.Features.Bathrooms, &p.Features.Area, &p.Features.AreaUnit, &p.Features.Parking,
		&yearBuilt, &landType,
		&amenities, &media, &detail, &p.Featured, &p.OwnerID, &agentID, &p.CreatedAt, &p.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	p.Location = model.NewGeoPoint(lng, lat)
	if yearBuilt.Valid {
		y := int(yearBuilt.Int64)
		p.Features.YearBuilt = &y
	}
	if landType.Valid {
		lt := landType.String
		p.Features.LandType = &lt
	}
	p.AgentID = agentID.String

	p.Amenities = []string{}
	if len(amenities) > 0 {
		if err := json.Unmarshal(amenities, &p.Amenities); err != nil {
			return nil, fmt.Errorf("decode amenities: %w", err)
		}
	}
	p.Media = []model.Media{}
	if len(media) > 0 {
		if err := json.Unmarshal(media, &p.Media); err != nil {
			return nil, fmt.Errorf("decode media: %w", err)
		}
	}
	if len(detail) > 0 && !strings.EqualFold(string(detail), "null") {
		p.ProjectDetails = &model.ProjectDetails{}
		if err := json.Unmarshal(detail, p.ProjectDetails); err != nil {
			return nil, fmt.Errorf("decode project details: %w", err)
		}
	}
	return &p, nil
}

func propertyArgs(p *model.Property) ([]any, error) {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	amenitiesJSON, err := json.Marshal(amenities)
	if err != nil {
		return nil, fmt.Errorf("encode amenities: %w", err)
	}
	media := p.Media
	if media == nil {
		media = []model.Media{}
	}
	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return nil, fmt.Errorf("encode media: %w", err)
	}
	var detail any
	if p.ProjectDetails != nil {
		b, err := json.Marshal(p.ProjectDetails)
		if err != nil {
			return nil, fmt.Errorf("encode project details: %w", err)
		}
		detail = string(b)
	}

	var yearBuilt any
	if p.Features.YearBuilt != nil {
		yearBuilt = int64(*p.Features.YearBuilt)
	}
	var landType any
	if p.Features.LandType != nil {
		landType = *p.Features.LandType
	}
	var agentID any
	if p.AgentID != "" {
		agentID = p.AgentID
	}

	return []any{
		p.ID, p.Title, p.Description, string(p.PropertyType), string(p.ListingType), string(p.Status), p.Price,
		p.Address.Street, p.Address.City, p.Address.State, p.Address.ZipCode, p.Address.Country,
		p.Location.Lng(), p.Location.Lat(),
		p.Features.Bedrooms, p.Features.Bathrooms, p.Features.Area, p.Features.AreaUnit, p.Features.Parking,
		yearBuilt, landType,
		string(amenitiesJSON), string(mediaJSON), detail, p.Featured, p.OwnerID, agentID, p.CreatedAt, p.UpdatedAt,
	}, nil
}

func execAffecting(ctx context.Context, db *sql.DB, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
