package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepo interface {
	Store(ctx context.Context, event Event) error
	Get(ctx context.Context, eventId string) (Event, error)
	GetAll(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, event Event) (bool, error)
	Delete(ctx context.Context, eventId string) (bool, error)
}

type EventRepoImpl struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepoImpl {
	return &EventRepoImpl{db: db}
}

func (r EventRepoImpl) Store(ctx context.Context, event Event) error {
	query := `INSERT INTO event (id, name, event_type, event_date, total_budget) VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, event.Id, event.Name, event.EventType, event.Date, event.TotalBudget)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r EventRepoImpl) Get(ctx context.Context, eventId string) (Event, error) {
	query := `SELECT id, name, event_type, event_date, total_budget FROM event WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, eventId)

	var event Event
	if err := row.Scan(&event.Id, &event.Name, &event.EventType, &event.Date, &event.TotalBudget); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrEventNotFound
		}
		err := fmt.Errorf("could not scan event: %w", err)
		log.Error(err)
		return Event{}, err
	}
	return event, nil
}

func (r EventRepoImpl) GetAll(ctx context.Context) ([]Event, error) {
	query := `SELECT id, name, event_type, event_date, total_budget FROM event ORDER BY event_date, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.Id, &event.Name, &event.EventType, &event.Date, &event.TotalBudget); err != nil {
			err := fmt.Errorf("could not scan event: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return events, nil
}

func (r EventRepoImpl) Update(ctx context.Context, event Event) (bool, error) {
	query := `UPDATE event SET name = ?, event_type = ?, event_date = ?, total_budget = ? WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, event.Name, event.EventType, event.Date, event.TotalBudget, event.Id)
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

func (r EventRepoImpl) Delete(ctx context.Context, eventId string) (bool, error) {
	query := `DELETE FROM event WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, eventId)
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
