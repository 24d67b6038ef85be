// Package postgres implements the durable ledger store on PostgreSQL.
//
// Two tables back it: accounts (account_key, current_balance
// NUMERIC(19,2) NULL) and transactions (id, account_key, kind, amount
// NUMERIC(19,2), created_at). The balance update and the transaction
// insert commit inside a single database transaction.
package postgres

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/devquest/banking-ledger-cache/internal/interfaces"
	"github.com/devquest/banking-ledger-cache/internal/models"
)

type PostgresLedgerStore struct {
	db *sql.DB
}

func NewPostgresLedgerStore(db *sql.DB) *PostgresLedgerStore {
	return &PostgresLedgerStore{
		db: db,
	}
}

func (p *PostgresLedgerStore) GetAccountBalance(ctx context.Context, accountKey string) (decimal.NullDecimal, error) {
	const query = `SELECT current_balance FROM accounts WHERE account_key = $1`

	var balance decimal.NullDecimal
	err := p.db.QueryRowContext(ctx, query, accountKey).Scan(&balance)
	if err == sql.ErrNoRows {
		return decimal.NullDecimal{}, models.ErrAccountNotFound
	}
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return balance, nil
}

func (p *PostgresLedgerStore) SaveBalanceAndTransaction(ctx context.Context, accountKey string, balance decimal.Decimal, tx models.Transaction) error {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const updateBalance = `UPDATE accounts SET current_balance = $2 WHERE account_key = $1`

	var res sql.Result
	res, err = dbTx.ExecContext(ctx, updateBalance, accountKey, balance)
	if err != nil {
		return err
	}
	var affected int64
	affected, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = models.ErrAccountNotFound
		return err
	}

	const insertTransaction = `INSERT INTO transactions (id, account_key, kind, amount, created_at)
	VALUES ($1,$2,$3,$4,$5)`

	_, err = dbTx.ExecContext(ctx, insertTransaction, tx.ID, tx.AccountKey, string(tx.Kind), tx.Amount, tx.CreatedAt)
	if err != nil {
		return err
	}

	err = dbTx.Commit()
	return err
}

func (p *PostgresLedgerStore) ListTransactions(ctx context.Context, accountKey string) ([]models.Transaction, error) {
	const query = `SELECT id, account_key, kind, amount, created_at FROM transactions
	WHERE account_key = $1 ORDER BY created_at DESC`

	rows, err := p.db.QueryContext(ctx, query, accountKey)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var kind string
		if err := rows.Scan(&tx.ID, &tx.AccountKey, &kind, &tx.Amount, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.Kind = models.TransactionKind(kind)
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}

var _ interfaces.LedgerStore = (*PostgresLedgerStore)(nil)
