package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema is in place.
const sentinelTable = "public.showings"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  phone      TEXT        NOT NULL DEFAULT '',
  role       TEXT        NOT NULL DEFAULT 'buyer' CHECK (role IN ('buyer', 'seller', 'agent', 'admin')),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_properties",
		SQL: `CREATE TABLE IF NOT EXISTS properties (
  id              UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  title           TEXT             NOT NULL,
  description     TEXT             NOT NULL,
  property_type   TEXT             NOT NULL CHECK (property_type IN ('house', 'apartment', 'villa', 'land', 'commercial')),
  listing_type    TEXT             NOT NULL CHECK (listing_type IN ('sale', 'rent')),
  status          TEXT             NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'pending', 'sold', 'rented')),
  price           DOUBLE PRECISION NOT NULL CHECK (price >= 0),
  street          TEXT             NOT NULL DEFAULT '',
  city            TEXT             NOT NULL,
  state           TEXT             NOT NULL,
  zip_code        TEXT             NOT NULL,
  country         TEXT             NOT NULL DEFAULT 'India',
  lng             DOUBLE PRECISION NOT NULL CHECK (lng BETWEEN -180 AND 180),
  lat             DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
  bedrooms        INTEGER          NOT NULL DEFAULT 0 CHECK (bedrooms >= 0),
  bathrooms       INTEGER          NOT NULL DEFAULT 0 CHECK (bathrooms >= 0),
  area            DOUBLE PRECISION NOT NULL CHECK (area > 0),
  area_unit       TEXT             NOT NULL DEFAULT 'sqft',
  parking         INTEGER          NOT NULL DEFAULT 0 CHECK (parking >= 0),
  year_built      INTEGER,
  land_type       TEXT,
  amenities       JSONB            NOT NULL DEFAULT '[]'::jsonb,
  media           JSONB            NOT NULL DEFAULT '[]'::jsonb,
  project_details JSONB,
  featured        BOOLEAN          NOT NULL DEFAULT false,
  owner_id        UUID             NOT NULL REFERENCES users (id),
  agent_id        UUID             REFERENCES users (id),
  created_at      TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_properties_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_properties_lat_lng",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_properties_lat_lng ON properties (lat, lng);`,
	},
	{
		Name: "create_index_properties_owner_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties (owner_id);`,
	},
	{
		Name: "create_table_showings",
		SQL: `CREATE TABLE IF NOT EXISTS showings (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  property_id      UUID        NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
  buyer_id         UUID        NOT NULL REFERENCES users (id),
  agent_id         UUID        REFERENCES users (id),
  scheduled_at     TIMESTAMPTZ NOT NULL,
  duration_minutes INTEGER     NOT NULL DEFAULT 60 CHECK (duration_minutes > 0),
  status           TEXT        NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled')),
  notes            TEXT        NOT NULL DEFAULT '',
  feedback_rating  INTEGER     CHECK (feedback_rating BETWEEN 1 AND 5),
  feedback_comment TEXT,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_showings_property_scheduled_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_showings_property_scheduled_at ON showings (property_id, scheduled_at);`,
	},
}

// EnsureMigrated creates the schema unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
