package domain

import "context"

// Repository defines the data access operations over the NAV table.
type Repository interface {
	// QueryNAV executes a filtered SELECT and materializes the full result set.
	QueryNAV(ctx context.Context, filter QueryFilter) (*Table, error)

	// ListCodes returns the distinct fund codes in ascending lexical order.
	ListCodes(ctx context.Context) ([]string, error)

	// DateRange returns the min/max observation date over the whole table.
	DateRange(ctx context.Context) (DateRange, error)

	// TestConnection probes the database with a bounded query. It never
	// returns an error; failures are folded into the status.
	TestConnection(ctx context.Context) ConnStatus

	// Close closes the underlying database connection pool.
	Close() error
}
