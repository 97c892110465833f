package postgres

import (
	"context"
	"database/sql"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

type interviewers struct {
	q querier
}

func (i interviewers) ListByJob(ctx context.Context, jobID int64) ([]models.Interviewer, error) {
	rows, err := i.q.QueryContext(ctx,
		`SELECT job_id, employee_id, availability FROM interviewer WHERE job_id = $1 ORDER BY employee_id`,
		jobID,
	)
	if err != nil {
		return nil, errors.WrapFail(err, "select interviewers")
	}
	defer rows.Close()

	list := make([]models.Interviewer, 0)
	for rows.Next() {
		var (
			iv    models.Interviewer
			avail sql.NullString
		)
		err = rows.Scan(&iv.JobID, &iv.EmployeeID, &avail)
		if err != nil {
			return nil, errors.WrapFail(err, "scan interviewer")
		}
		iv.Availability = avail.String
		list = append(list, iv)
	}

	return list, errors.WrapFail(rows.Err(), "iterate interviewers")
}

func (i interviewers) Get(ctx context.Context, jobID int64, employeeID int64) (*models.Interviewer, error) {
	var avail sql.NullString
	err := i.q.QueryRowContext(ctx,
		`SELECT availability FROM interviewer WHERE job_id = $1 AND employee_id = $2`,
		jobID, employeeID,
	).Scan(&avail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "select interviewer")
	}

	return &models.Interviewer{JobID: jobID, EmployeeID: employeeID, Availability: avail.String}, nil
}

func (i interviewers) Create(ctx context.Context, iv models.Interviewer) error {
	_, err := i.q.ExecContext(ctx,
		`INSERT INTO interviewer (job_id, employee_id, availability) VALUES ($1, $2, $3)`,
		iv.JobID, iv.EmployeeID, iv.Availability,
	)
	return errors.WrapFail(conflict(err), "insert interviewer")
}

func (i interviewers) Update(ctx context.Context, iv models.Interviewer) (bool, error) {
	res, err := i.q.ExecContext(ctx,
		`UPDATE interviewer SET availability = $3 WHERE job_id = $1 AND employee_id = $2`,
		iv.JobID, iv.EmployeeID, iv.Availability,
	)
	return affected(res, err, "update interviewer")
}

type interviewees struct {
	q querier
}

func (i interviewees) Get(ctx context.Context, jobID int64, candidateID int64) (*models.Interviewee, error) {
	var avail sql.NullString
	err := i.q.QueryRowContext(ctx,
		`SELECT availability FROM interviewee WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID,
	).Scan(&avail)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "select interviewee")
	}

	return &models.Interviewee{JobID: jobID, CandidateID: candidateID, Availability: avail.String}, nil
}

func (i interviewees) Create(ctx context.Context, iv models.Interviewee) error {
	_, err := i.q.ExecContext(ctx,
		`INSERT INTO interviewee (job_id, candidate_id, availability) VALUES ($1, $2, $3)`,
		iv.JobID, iv.CandidateID, iv.Availability,
	)
	return errors.WrapFail(conflict(err), "insert interviewee")
}

func (i interviewees) Update(ctx context.Context, iv models.Interviewee) (bool, error) {
	res, err := i.q.ExecContext(ctx,
		`UPDATE interviewee SET availability = $3 WHERE job_id = $1 AND candidate_id = $2`,
		iv.JobID, iv.CandidateID, iv.Availability,
	)
	return affected(res, err, "update interviewee")
}

func affected(res sql.Result, err error, what string) (bool, error) {
	if err != nil {
		return false, errors.WrapFail(err, what)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.WrapFail(err, "get affected rows")
	}
	return n > 0, nil
}
