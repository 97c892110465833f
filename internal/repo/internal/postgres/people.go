package postgres

import (
	"context"
	"database/sql"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

type employees struct {
	q querier
}

func (e employees) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := e.q.QueryContext(ctx, `SELECT id, name, title FROM employee ORDER BY id`)
	if err != nil {
		return nil, errors.WrapFail(err, "select employees")
	}
	defer rows.Close()

	list := make([]models.Employee, 0)
	for rows.Next() {
		var emp models.Employee
		err = rows.Scan(&emp.ID, &emp.Name, &emp.Title)
		if err != nil {
			return nil, errors.WrapFail(err, "scan employee")
		}
		list = append(list, emp)
	}

	return list, errors.WrapFail(rows.Err(), "iterate employees")
}

func (e employees) Get(ctx context.Context, id int64) (*models.Employee, error) {
	row := e.q.QueryRowContext(ctx, `SELECT id, name, title FROM employee WHERE id = $1`, id)
	return scanEmployee(row)
}

func (e employees) Create(ctx context.Context, name string, title string) (*models.Employee, error) {
	emp := models.Employee{Name: name, Title: title}
	err := e.q.QueryRowContext(ctx,
		`INSERT INTO employee (name, title) VALUES ($1, $2) RETURNING id`,
		name, title,
	).Scan(&emp.ID)
	if err != nil {
		return nil, errors.WrapFail(conflict(err), "insert employee")
	}
	return &emp, nil
}

func (e employees) Update(ctx context.Context, id int64, name string, title string) (*models.Employee, error) {
	row := e.q.QueryRowContext(ctx,
		`UPDATE employee SET name = $2, title = $3 WHERE id = $1 RETURNING id, name, title`,
		id, name, title,
	)
	return scanEmployee(row)
}

func scanEmployee(row *sql.Row) (*models.Employee, error) {
	var emp models.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "scan employee")
	}
	return &emp, nil
}

type candidates struct {
	q querier
}

func (c candidates) List(ctx context.Context) ([]models.Candidate, error) {
	rows, err := c.q.QueryContext(ctx, `SELECT id, name FROM candidate ORDER BY id`)
	if err != nil {
		return nil, errors.WrapFail(err, "select candidates")
	}
	defer rows.Close()

	list := make([]models.Candidate, 0)
	for rows.Next() {
		var cand models.Candidate
		err = rows.Scan(&cand.ID, &cand.Name)
		if err != nil {
			return nil, errors.WrapFail(err, "scan candidate")
		}
		list = append(list, cand)
	}

	return list, errors.WrapFail(rows.Err(), "iterate candidates")
}

func (c candidates) Get(ctx context.Context, id int64) (*models.Candidate, error) {
	row := c.q.QueryRowContext(ctx, `SELECT id, name FROM candidate WHERE id = $1`, id)
	return scanCandidate(row)
}

func (c candidates) Create(ctx context.Context, name string) (*models.Candidate, error) {
	cand := models.Candidate{Name: name}
	err := c.q.QueryRowContext(ctx, `INSERT INTO candidate (name) VALUES ($1) RETURNING id`, name).Scan(&cand.ID)
	if err != nil {
		return nil, errors.WrapFail(conflict(err), "insert candidate")
	}
	return &cand, nil
}

func (c candidates) Update(ctx context.Context, id int64, name string) (*models.Candidate, error) {
	row := c.q.QueryRowContext(ctx, `UPDATE candidate SET name = $2 WHERE id = $1 RETURNING id, name`, id, name)
	return scanCandidate(row)
}

func scanCandidate(row *sql.Row) (*models.Candidate, error) {
	var cand models.Candidate
	err := row.Scan(&cand.ID, &cand.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "scan candidate")
	}
	return &cand, nil
}
