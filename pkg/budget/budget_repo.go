package budget

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type BudgetRepo interface {
	// Upsert writes the allocation, inserting or overwriting by (event, category).
	Upsert(ctx context.Context, eventId string, allocation CategoryAllocation) error
	// UpsertSelection writes name and selection flag only, preserving any
	// previously allocated amount and percentage.
	UpsertSelection(ctx context.Context, eventId string, allocation CategoryAllocation) error
	GetAllForEvent(ctx context.Context, eventId string) ([]CategoryAllocation, error)
	Get(ctx context.Context, eventId string, categoryId string) (CategoryAllocation, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (r BudgetRepoImpl) Upsert(ctx context.Context, eventId string, allocation CategoryAllocation) error {
	query := `INSERT INTO budget_category (event_id, category_id, name, amount, percentage, selected)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT (event_id, category_id) DO UPDATE SET
					name = excluded.name,
					amount = excluded.amount,
					percentage = excluded.percentage,
					selected = excluded.selected`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, eventId, allocation.CategoryId, allocation.Name,
		allocation.Amount, allocation.Percentage, allocation.Selected)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r BudgetRepoImpl) UpsertSelection(ctx context.Context, eventId string, allocation CategoryAllocation) error {
	query := `INSERT INTO budget_category (event_id, category_id, name, selected)
				VALUES (?, ?, ?, ?)
				ON CONFLICT (event_id, category_id) DO UPDATE SET
					name = excluded.name,
					selected = excluded.selected`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, eventId, allocation.CategoryId, allocation.Name, allocation.Selected)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r BudgetRepoImpl) GetAllForEvent(ctx context.Context, eventId string) ([]CategoryAllocation, error) {
	query := `SELECT category_id, name, amount, percentage, selected
				FROM budget_category WHERE event_id = ? ORDER BY category_id`
	rows, err := r.db.QueryContext(ctx, query, eventId)
	if err != nil {
		err := fmt.Errorf("could not query budget categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var allocations []CategoryAllocation
	for rows.Next() {
		var allocation CategoryAllocation
		if err := rows.Scan(&allocation.CategoryId, &allocation.Name, &allocation.Amount,
			&allocation.Percentage, &allocation.Selected); err != nil {
			err := fmt.Errorf("could not scan budget category: %w", err)
			log.Error(err)
			return nil, err
		}
		allocations = append(allocations, allocation)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return allocations, nil
}

func (r BudgetRepoImpl) Get(ctx context.Context, eventId string, categoryId string) (CategoryAllocation, error) {
	query := `SELECT category_id, name, amount, percentage, selected
				FROM budget_category WHERE event_id = ? AND category_id = ?`
	row := r.db.QueryRowContext(ctx, query, eventId, categoryId)

	var allocation CategoryAllocation
	if err := row.Scan(&allocation.CategoryId, &allocation.Name, &allocation.Amount,
		&allocation.Percentage, &allocation.Selected); err != nil {
		if err == sql.ErrNoRows {
			return CategoryAllocation{}, ErrCategoryNotFound
		}
		err := fmt.Errorf("could not scan budget category: %w", err)
		log.Error(err)
		return CategoryAllocation{}, err
	}
	return allocation, nil
}
