// Package store persists the ledger as a single JSON snapshot in SQLite.
// Every mutation is a full read-modify-write of the snapshot: the ledger
// is small, there is exactly one local writer, and the whole blob stays
// readable as one JSON document.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmoreira/contas/internal/transaction"
)

// storageKey is the fixed key the ledger snapshot lives under.
const storageKey = "controle_financeiro_dados"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type ledgerBlob struct {
	Transactions []*transaction.Transaction `json:"transactions"`
}

// Load reads the ledger snapshot, newest first. A missing snapshot is an
// empty ledger; a snapshot that fails to decode is ErrStorageCorrupt.
func (s *Store) Load(ctx context.Context) ([]*transaction.Transaction, error) {
	var payload []byte

	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM ledger WHERE key = ?", storageKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var blob ledgerBlob
	if err := json.Unmarshal(payload, &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", transaction.ErrStorageCorrupt, err)
	}

	return blob.Transactions, nil
}

// Save atomically replaces the durable snapshot with the given ledger.
func (s *Store) Save(ctx context.Context, txs []*transaction.Transaction) error {
	if txs == nil {
		txs = []*transaction.Transaction{}
	}

	payload, err := json.Marshal(ledgerBlob{Transactions: txs})
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger (key, payload) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload
	`, storageKey, payload)
	if err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	return nil
}

// Add assigns each transaction an ID and creation timestamp, prepends the
// batch to the ledger and persists it. Prepending one by one keeps the
// newest-first invariant: the last record of a series ends up at the head.
func (s *Store) Add(ctx context.Context, txs []*transaction.Transaction) error {
	ledger, err := s.Load(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	for _, tx := range txs {
		tx.ID = uuid.NewString()
		tx.CreatedAt = now
		ledger = append([]*transaction.Transaction{tx}, ledger...)
	}

	return s.Save(ctx, ledger)
}

// Remove deletes the transaction with the given ID, if present, and
// persists the ledger. An unknown ID leaves the ledger unchanged.
func (s *Store) Remove(ctx context.Context, id string) error {
	ledger, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := ledger[:0:0]

	for _, tx := range ledger {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}

	if len(kept) == len(ledger) {
		return nil
	}

	return s.Save(ctx, kept)
}
