package postgres

import (
	"context"
	"database/sql"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

type jobs struct {
	q querier
}

func (j jobs) List(ctx context.Context) ([]models.Job, error) {
	rows, err := j.q.QueryContext(ctx, `SELECT id, name FROM job ORDER BY id`)
	if err != nil {
		return nil, errors.WrapFail(err, "select jobs")
	}
	defer rows.Close()

	list := make([]models.Job, 0)
	for rows.Next() {
		var job models.Job
		err = rows.Scan(&job.ID, &job.Name)
		if err != nil {
			return nil, errors.WrapFail(err, "scan job")
		}
		list = append(list, job)
	}

	return list, errors.WrapFail(rows.Err(), "iterate jobs")
}

func (j jobs) Get(ctx context.Context, id int64) (*models.Job, error) {
	row := j.q.QueryRowContext(ctx, `SELECT id, name FROM job WHERE id = $1`, id)
	return scanJob(row)
}

func (j jobs) Create(ctx context.Context, name string) (*models.Job, error) {
	job := models.Job{Name: name}
	err := j.q.QueryRowContext(ctx, `INSERT INTO job (name) VALUES ($1) RETURNING id`, name).Scan(&job.ID)
	if err != nil {
		return nil, errors.WrapFail(conflict(err), "insert job")
	}
	return &job, nil
}

func (j jobs) Update(ctx context.Context, id int64, name string) (*models.Job, error) {
	row := j.q.QueryRowContext(ctx, `UPDATE job SET name = $2 WHERE id = $1 RETURNING id, name`, id, name)
	return scanJob(row)
}

func scanJob(row *sql.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(&job.ID, &job.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "scan job")
	}
	return &job, nil
}
