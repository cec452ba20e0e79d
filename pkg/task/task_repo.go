package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepo interface {
	Store(ctx context.Context, task Task) error
	Get(ctx context.Context, taskId string) (Task, error)
	GetAllForEvent(ctx context.Context, eventId string) ([]Task, error)
	Update(ctx context.Context, task Task) (bool, error)
	Delete(ctx context.Context, taskId string) (bool, error)
}

type TaskRepoImpl struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepoImpl {
	return &TaskRepoImpl{db: db}
}

func (r TaskRepoImpl) Store(ctx context.Context, task Task) error {
	query := `INSERT INTO task (id, event_id, title, description, due_date, due_time, priority, category, completed, assigned_to)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	assignedTo, err := marshalAssignees(task.AssignedTo)
	if err != nil {
		return err
	}

	_, err = stmt.ExecContext(ctx,
		task.Id,
		task.EventId,
		task.Title,
		task.Description,
		task.Date,
		task.Time,
		string(task.Priority),
		task.Category,
		task.Completed,
		assignedTo,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r TaskRepoImpl) Get(ctx context.Context, taskId string) (Task, error) {
	query := `SELECT id, event_id, title, description, due_date, due_time, priority, category, completed, assigned_to
				FROM task WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, taskId)

	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrTaskNotFound
		}
		err := fmt.Errorf("could not scan task: %w", err)
		log.Error(err)
		return Task{}, err
	}
	return task, nil
}

func (r TaskRepoImpl) GetAllForEvent(ctx context.Context, eventId string) ([]Task, error) {
	query := `SELECT id, event_id, title, description, due_date, due_time, priority, category, completed, assigned_to
				FROM task WHERE event_id = ? ORDER BY due_date, due_time, id`
	rows, err := r.db.QueryContext(ctx, query, eventId)
	if err != nil {
		err := fmt.Errorf("could not query tasks: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			err := fmt.Errorf("could not scan task: %w", err)
			log.Error(err)
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return tasks, nil
}

func (r TaskRepoImpl) Update(ctx context.Context, task Task) (bool, error) {
	query := `UPDATE task SET
				title = ?,
				description = ?,
				due_date = ?,
				due_time = ?,
				priority = ?,
				category = ?,
				completed = ?,
				assigned_to = ?
			WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	assignedTo, err := marshalAssignees(task.AssignedTo)
	if err != nil {
		return false, err
	}

	result, err := stmt.ExecContext(ctx,
		task.Title,
		task.Description,
		task.Date,
		task.Time,
		string(task.Priority),
		task.Category,
		task.Completed,
		assignedTo,
		task.Id,
	)
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

func (r TaskRepoImpl) Delete(ctx context.Context, taskId string) (bool, error) {
	query := `DELETE FROM task WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, taskId)
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

func scanTask(scan func(dest ...any) error) (Task, error) {
	var task Task
	var priority string
	var assignedTo string
	if err := scan(
		&task.Id,
		&task.EventId,
		&task.Title,
		&task.Description,
		&task.Date,
		&task.Time,
		&priority,
		&task.Category,
		&task.Completed,
		&assignedTo,
	); err != nil {
		return Task{}, err
	}
	task.Priority = Priority(priority)

	if assignedTo != "" {
		if err := json.Unmarshal([]byte(assignedTo), &task.AssignedTo); err != nil {
			return Task{}, fmt.Errorf("could not unmarshal assignees: %w", err)
		}
	}
	return task, nil
}

func marshalAssignees(assignees []string) (string, error) {
	if assignees == nil {
		assignees = []string{}
	}
	raw, err := json.Marshal(assignees)
	if err != nil {
		err := fmt.Errorf("could not marshal assignees: %w", err)
		log.Error(err)
		return "", err
	}
	return string(raw), nil
}
