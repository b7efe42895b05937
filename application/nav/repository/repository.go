package repository

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fundnav/application/nav/domain"
	"fundnav/internal/config"
)

// repository implements the domain.Repository interface over a gorm handle.
type repository struct {
	db  *gorm.DB
	log *zap.Logger
}

// New creates a Repository on an already-opened database handle. Injecting
// the handle keeps tests free to substitute an in-memory database.
func New(db *gorm.DB, log *zap.Logger) domain.Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &repository{db: db, log: log}
}

// Open builds the database handle from configuration. The connection itself
// is not validated here; connectivity failures surface on first query.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("opening NAV database", zap.String("dsn", dsnPreview(cfg.DatabaseURL)))

	db, err := gorm.Open(mysql.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, domain.NewQueryError("open", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, domain.NewQueryError("open", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// QueryNAV executes the filtered SELECT and materializes the full result set.
// The column set is reflected from the query response, not hardcoded.
func (r *repository) QueryNAV(ctx context.Context, filter domain.QueryFilter) (*domain.Table, error) {
	query, args := BuildSelectQuery(filter)

	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, domain.NewQueryError("query_nav", err)
	}

	rows, err := sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.NewQueryError("query_nav", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, domain.NewQueryError("query_nav", err)
	}

	table := domain.NewTable(columns)
	for rows.Next() {
		row, err := ScanRow(rows, columns)
		if err != nil {
			return nil, domain.NewQueryError("query_nav", err)
		}
		table.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewQueryError("query_nav", err)
	}

	return table, nil
}

// ListCodes returns the distinct fund codes in ascending lexical order.
func (r *repository) ListCodes(ctx context.Context) ([]string, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, domain.NewQueryError("list_codes", err)
	}

	rows, err := sqlDB.QueryContext(ctx, BuildCodesQuery())
	if err != nil {
		return nil, domain.NewQueryError("list_codes", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, domain.NewQueryError("list_codes", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewQueryError("list_codes", err)
	}

	return codes, nil
}

// DateRange returns the min/max observation date over the whole table. Both
// bounds are invalid when the table is empty.
func (r *repository) DateRange(ctx context.Context) (domain.DateRange, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return domain.DateRange{}, domain.NewQueryError("date_range", err)
	}

	// Aggregates may come back as text depending on the driver, so scan
	// loosely and convert.
	var minVal, maxVal interface{}
	if err := sqlDB.QueryRowContext(ctx, BuildDateRangeQuery()).Scan(&minVal, &maxVal); err != nil {
		return domain.DateRange{}, domain.NewQueryError("date_range", err)
	}

	return domain.DateRange{
		Min: ToNullTime(minVal),
		Max: ToNullTime(maxVal),
	}, nil
}

// TestConnection probes the database with a bounded row count. Failures are
// captured into the status and logged, never returned; this exists for
// interactive diagnostics only.
func (r *repository) TestConnection(ctx context.Context) domain.ConnStatus {
	sqlDB, err := r.db.DB()
	if err != nil {
		r.log.Warn("NAV connection probe failed", zap.Error(err))
		return domain.ConnStatus{OK: false, Message: err.Error()}
	}

	var count int64
	if err := sqlDB.QueryRowContext(ctx, BuildProbeQuery()).Scan(&count); err != nil {
		r.log.Warn("NAV connection probe failed", zap.Error(err))
		return domain.ConnStatus{OK: false, Message: err.Error()}
	}

	r.log.Info("NAV connection probe succeeded", zap.Int64("rows", count))
	return domain.ConnStatus{OK: true, Count: count}
}

// Close closes the underlying database connection pool.
func (r *repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dsnPreview strips credentials from a DSN before it reaches a log line.
func dsnPreview(dsn string) string {
	if at := strings.LastIndex(dsn, "@"); at >= 0 {
		return "***@" + dsn[at+1:]
	}
	if len(dsn) > 50 {
		return dsn[:50] + "..."
	}
	return dsn
}
