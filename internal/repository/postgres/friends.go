package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var _ model.RelationshipOracle = (*FriendsOracle)(nil)

// FriendsOracle answers relationship queries from the friends table owned by
// the social graph service. It goes through database/sql so it can point at a
// different database than the messaging store.
type FriendsOracle struct {
	db *sql.DB
}

func NewFriendsOracle(db *sql.DB) *FriendsOracle {
	return &FriendsOracle{db: db}
}

// OpenFriendsDB opens a database/sql handle over the pgx driver.
func OpenFriendsDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open friends database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping friends database: %w", err)
	}
	return db, nil
}

// AreConnected reports whether an accepted friendship exists in either
// direction.
func (o *FriendsOracle) AreConnected(ctx context.Context, userA, userB int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM friends
			WHERE ((requester_id = $1 AND receiver_id = $2) OR (requester_id = $2 AND receiver_id = $1))
			  AND status = 'accepted'
		)`

	var ok bool
	if err := o.db.QueryRowContext(ctx, query, userA, userB).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to query friends: %w", err)
	}
	return ok, nil
}
