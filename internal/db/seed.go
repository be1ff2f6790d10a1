package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tableside/locations-backend/internal/auth"
	"github.com/tableside/locations-backend/internal/location"
	"github.com/tableside/locations-backend/internal/pkg/logger"
	"github.com/tableside/locations-backend/internal/user"
)

// SeedPassword is the fixed credential for the seeded accounts.
const SeedPassword = "Password123!"

var seedUsers = []struct {
	username string
	roles    []string
}{
	{"galkadi", []string{user.RoleAdmin}},
	{"bob", []string{user.RoleUser}},
	{"sue", []string{user.RoleUser}},
}

var seedLocations = []location.Location{
	{Name: "Location 1", Address: "123 Main St", TableCount: 10},
	{Name: "Location 2", Address: "456 Oak Ave", TableCount: 20},
	{Name: "Location 3", Address: "789 Pine Ln", TableCount: 15},
}

// Seed inserts the static roles, the fixed sample accounts and, when the
// locations table is empty, three sample locations. Every step is
// idempotent so Seed runs on each startup.
func Seed(
	ctx context.Context,
	pool *pgxpool.Pool,
	users user.Repository,
	locations location.Repository,
	hasher auth.PasswordHasher,
) error {
	if err := seedRoles(ctx, pool); err != nil {
		return err
	}
	if err := seedAccounts(ctx, users, hasher); err != nil {
		return err
	}
	return seedSampleLocations(ctx, locations)
}

func seedRoles(ctx context.Context, pool *pgxpool.Pool) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.roles").
		Columns("name").
		Values(user.RoleAdmin).
		Values(user.RoleUser).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build seed roles query failed: %w", err)
	}

	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("seed roles failed: %w", err)
	}
	return nil
}

func seedAccounts(ctx context.Context, users user.Repository, hasher auth.PasswordHasher) error {
	log := logger.Get()

	for _, seed := range seedUsers {
		_, err := users.GetByUsername(ctx, seed.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("failed to check seed user %q: %w", seed.username, err)
		}

		hash, err := hasher.Hash(SeedPassword)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		u := &user.User{
			Username:     seed.username,
			PasswordHash: hash,
			Roles:        seed.roles,
		}
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create seed user %q: %w", seed.username, err)
		}
		log.Info().Str("username", seed.username).Msg("seeded user")
	}
	return nil
}

func seedSampleLocations(ctx context.Context, locations location.Repository) error {
	total, err := locations.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	for i := range seedLocations {
		loc := seedLocations[i]
		if err := locations.Create(ctx, &loc); err != nil {
			return fmt.Errorf("failed to seed location %q: %w", loc.Name, err)
		}
	}
	log := logger.Get()
	log.Info().Int("count", len(seedLocations)).Msg("seeded sample locations")
	return nil
}
