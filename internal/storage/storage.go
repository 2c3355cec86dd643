package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/recon-server/internal/config"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB         *sql.DB
	Statements sqlconfig.IStatementTable
	Ledger     sqlconfig.ILedgerTable
	Matches    sqlconfig.IMatchTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wires the tables onto an open database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:         db,
		Statements: sqlconfig.NewStatementsTable(bobDB),
		Ledger:     sqlconfig.NewLedgerTable(bobDB),
		Matches:    sqlconfig.NewMatchesTable(bobDB),
		bobDB:      bobDB,
	}
}

// Write opens a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
