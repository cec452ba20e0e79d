package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrExpenseNotFound = errors.New("expense item not found")

type ExpenseRepo interface {
	Store(ctx context.Context, item ExpenseItem) error
	Get(ctx context.Context, expenseId string) (ExpenseItem, error)
	GetAllForEvent(ctx context.Context, eventId string) ([]ExpenseItem, error)
	Update(ctx context.Context, item ExpenseItem) (bool, error)
	Delete(ctx context.Context, expenseId string) (bool, error)
}

type ExpenseRepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r ExpenseRepoImpl) Store(ctx context.Context, item ExpenseItem) error {
	query := `INSERT INTO expense_item (id, event_id, category, name, amount, status) VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, item.Id, item.EventId, item.Category, item.Name, item.Amount, string(item.Status))
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r ExpenseRepoImpl) Get(ctx context.Context, expenseId string) (ExpenseItem, error) {
	query := `SELECT id, event_id, category, name, amount, status FROM expense_item WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, expenseId)

	item, err := scanExpense(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ExpenseItem{}, ErrExpenseNotFound
		}
		err := fmt.Errorf("could not scan expense item: %w", err)
		log.Error(err)
		return ExpenseItem{}, err
	}
	return item, nil
}

func (r ExpenseRepoImpl) GetAllForEvent(ctx context.Context, eventId string) ([]ExpenseItem, error) {
	query := `SELECT id, event_id, category, name, amount, status FROM expense_item WHERE event_id = ? ORDER BY category, name, id`
	rows, err := r.db.QueryContext(ctx, query, eventId)
	if err != nil {
		err := fmt.Errorf("could not query expense items: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []ExpenseItem
	for rows.Next() {
		item, err := scanExpense(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan expense item: %w", err)
			log.Error(err)
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return items, nil
}

func (r ExpenseRepoImpl) Update(ctx context.Context, item ExpenseItem) (bool, error) {
	query := `UPDATE expense_item SET category = ?, name = ?, amount = ?, status = ? WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, item.Category, item.Name, item.Amount, string(item.Status), item.Id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r ExpenseRepoImpl) Delete(ctx context.Context, expenseId string) (bool, error) {
	query := `DELETE FROM expense_item WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, expenseId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanExpense(scan func(dest ...any) error) (ExpenseItem, error) {
	var item ExpenseItem
	var status string
	if err := scan(&item.Id, &item.EventId, &item.Category, &item.Name, &item.Amount, &status); err != nil {
		return ExpenseItem{}, err
	}
	item.Status = Status(status)
	return item, nil
}
