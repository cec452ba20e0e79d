package vendors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrAllocationNotFound = errors.New("vendor allocation not found")

// ToggleResult describes the outcome of a finalization toggle.
type ToggleResult struct {
	Allocation VendorAllocation
	// UnsetVendorId is the vendor whose finalization was cleared to keep the
	// single-finalized-vendor invariant, empty when none was.
	UnsetVendorId string
}

type VendorRepo interface {
	Store(ctx context.Context, eventId string, allocation VendorAllocation) error
	Get(ctx context.Context, eventId string, vendorId string) (VendorAllocation, error)
	GetAllForEvent(ctx context.Context, eventId string) ([]VendorAllocation, error)
	UpdateDetails(ctx context.Context, eventId string, vendorId string, comments string, agreedPrice string) (bool, error)
	Delete(ctx context.Context, eventId string, vendorId string) (bool, error)
	// ToggleFinalization flips the allocation's finalized flag in a single
	// transaction, clearing any other finalized allocation in the same category
	// before finalizing this one.
	ToggleFinalization(ctx context.Context, eventId string, vendorId string) (ToggleResult, error)
}

type VendorRepoImpl struct {
	db *sql.DB
}

func NewVendorRepo(db *sql.DB) *VendorRepoImpl {
	return &VendorRepoImpl{db: db}
}

func (r VendorRepoImpl) Store(ctx context.Context, eventId string, allocation VendorAllocation) error {
	query := `INSERT INTO vendor_allocation (event_id, vendor_id, category, comments, agreed_price, price_finalized)
				VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, eventId, allocation.VendorId, allocation.Category,
		allocation.Comments, allocation.AgreedPrice, allocation.PriceFinalized)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r VendorRepoImpl) Get(ctx context.Context, eventId string, vendorId string) (VendorAllocation, error) {
	query := `SELECT vendor_id, category, comments, agreed_price, price_finalized
				FROM vendor_allocation WHERE event_id = ? AND vendor_id = ?`
	row := r.db.QueryRowContext(ctx, query, eventId, vendorId)

	var allocation VendorAllocation
	if err := row.Scan(&allocation.VendorId, &allocation.Category, &allocation.Comments,
		&allocation.AgreedPrice, &allocation.PriceFinalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VendorAllocation{}, ErrAllocationNotFound
		}
		err := fmt.Errorf("could not scan vendor allocation: %w", err)
		log.Error(err)
		return VendorAllocation{}, err
	}
	return allocation, nil
}

func (r VendorRepoImpl) GetAllForEvent(ctx context.Context, eventId string) ([]VendorAllocation, error) {
	query := `SELECT vendor_id, category, comments, agreed_price, price_finalized
				FROM vendor_allocation WHERE event_id = ? ORDER BY category, vendor_id`
	rows, err := r.db.QueryContext(ctx, query, eventId)
	if err != nil {
		err := fmt.Errorf("could not query vendor allocations: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var allocations []VendorAllocation
	for rows.Next() {
		var allocation VendorAllocation
		if err := rows.Scan(&allocation.VendorId, &allocation.Category, &allocation.Comments,
			&allocation.AgreedPrice, &allocation.PriceFinalized); err != nil {
			err := fmt.Errorf("could not scan vendor allocation: %w", err)
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

func (r VendorRepoImpl) UpdateDetails(ctx context.Context, eventId string, vendorId string, comments string, agreedPrice string) (bool, error) {
	query := `UPDATE vendor_allocation SET comments = ?, agreed_price = ? WHERE event_id = ? AND vendor_id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, comments, agreedPrice, eventId, vendorId)
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

func (r VendorRepoImpl) Delete(ctx context.Context, eventId string, vendorId string) (bool, error) {
	query := `DELETE FROM vendor_allocation WHERE event_id = ? AND vendor_id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, eventId, vendorId)
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

func (r VendorRepoImpl) ToggleFinalization(ctx context.Context, eventId string, vendorId string) (ToggleResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return ToggleResult{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT vendor_id, category, comments, agreed_price, price_finalized
			FROM vendor_allocation WHERE event_id = ? AND vendor_id = ?`, eventId, vendorId)

	var allocation VendorAllocation
	if err := row.Scan(&allocation.VendorId, &allocation.Category, &allocation.Comments,
		&allocation.AgreedPrice, &allocation.PriceFinalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ToggleResult{}, ErrAllocationNotFound
		}
		err := fmt.Errorf("could not scan vendor allocation: %w", err)
		log.Error(err)
		return ToggleResult{}, err
	}

	result := ToggleResult{}
	if !allocation.PriceFinalized {
		// Finalizing: clear the currently finalized vendor of this category, if any.
		row := tx.QueryRowContext(ctx,
			`SELECT vendor_id FROM vendor_allocation
				WHERE event_id = ? AND category = ? COLLATE NOCASE AND price_finalized = 1 AND vendor_id != ?`,
			eventId, allocation.Category, vendorId)
		var currentlyFinalized string
		if err := row.Scan(&currentlyFinalized); err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				err := fmt.Errorf("could not scan finalized vendor: %w", err)
				log.Error(err)
				return ToggleResult{}, err
			}
		} else {
			_, err := tx.ExecContext(ctx,
				`UPDATE vendor_allocation SET price_finalized = 0 WHERE event_id = ? AND vendor_id = ?`,
				eventId, currentlyFinalized)
			if err != nil {
				err := fmt.Errorf("could not unset finalized vendor: %w", err)
				log.Error(err)
				return ToggleResult{}, err
			}
			result.UnsetVendorId = currentlyFinalized
		}
	}

	allocation.PriceFinalized = !allocation.PriceFinalized
	_, err = tx.ExecContext(ctx,
		`UPDATE vendor_allocation SET price_finalized = ? WHERE event_id = ? AND vendor_id = ?`,
		allocation.PriceFinalized, eventId, vendorId)
	if err != nil {
		err := fmt.Errorf("could not update finalization: %w", err)
		log.Error(err)
		return ToggleResult{}, err
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return ToggleResult{}, err
	}

	result.Allocation = allocation
	return result, nil
}
