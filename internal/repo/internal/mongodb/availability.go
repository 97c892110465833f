package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	mng "github.com/nikmy/intersched/pkg/mongotools"
)

// exists reports whether a document with such _id is present.
func exists(ctx context.Context, coll *mongo.Collection, id int64) (bool, error) {
	var doc bson.M
	err := coll.FindOne(ctx, mng.ID(id), options.FindOne().SetProjection(bson.M{"_id": 1})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapFailf(err, "look up %s", coll.Name())
	}
	return true, nil
}

// references checks the foreign keys of an availability record.
func references(ctx context.Context, jobs *mongo.Collection, jobID int64, members *mongo.Collection, memberID int64) error {
	for _, ref := range []struct {
		coll *mongo.Collection
		id   int64
	}{{jobs, jobID}, {members, memberID}} {
		ok, err := exists(ctx, ref.coll, ref.id)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(models.ErrConflict, "no document %d in %s", ref.id, ref.coll.Name())
		}
	}
	return nil
}

type interviewers struct {
	coll    *mongo.Collection
	jobs    *mongo.Collection
	members *mongo.Collection
}

func (i interviewers) ListByJob(ctx context.Context, jobID int64) ([]models.Interviewer, error) {
	c, err := i.coll.Find(
		ctx,
		bson.M{models.InterviewerFieldJobID: jobID},
		options.Find().SetSort(bson.D{{Key: models.InterviewerFieldEmployeeID, Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviewers")
	}

	list, err := mng.Decode[models.Interviewer](ctx, c)
	return list, errors.WrapFail(err, "read interviewers")
}

func (i interviewers) Get(ctx context.Context, jobID int64, employeeID int64) (*models.Interviewer, error) {
	r := i.coll.FindOne(ctx, bson.M{
		models.InterviewerFieldJobID:      jobID,
		models.InterviewerFieldEmployeeID: employeeID,
	})

	iv, err := mng.FindOne[models.Interviewer](r)
	return iv, errors.WrapFail(err, "find interviewer")
}

func (i interviewers) Create(ctx context.Context, iv models.Interviewer) error {
	err := references(ctx, i.jobs, iv.JobID, i.members, iv.EmployeeID)
	if err != nil {
		return errors.WrapFail(err, "insert interviewer")
	}

	_, err = i.coll.InsertOne(ctx, iv)
	return errors.WrapFail(conflict(err), "insert interviewer")
}

func (i interviewers) Update(ctx context.Context, iv models.Interviewer) (bool, error) {
	res, err := i.coll.UpdateOne(
		ctx,
		bson.M{
			models.InterviewerFieldJobID:      iv.JobID,
			models.InterviewerFieldEmployeeID: iv.EmployeeID,
		},
		mng.SetAll(bson.M{models.InterviewerFieldAvailability: iv.Availability}),
	)
	if err != nil {
		return false, errors.WrapFail(err, "update interviewer")
	}
	return res.MatchedCount > 0, nil
}

type interviewees struct {
	coll    *mongo.Collection
	jobs    *mongo.Collection
	members *mongo.Collection
}

func (i interviewees) Get(ctx context.Context, jobID int64, candidateID int64) (*models.Interviewee, error) {
	r := i.coll.FindOne(ctx, bson.M{
		models.IntervieweeFieldJobID:       jobID,
		models.IntervieweeFieldCandidateID: candidateID,
	})

	iv, err := mng.FindOne[models.Interviewee](r)
	return iv, errors.WrapFail(err, "find interviewee")
}

func (i interviewees) Create(ctx context.Context, iv models.Interviewee) error {
	err := references(ctx, i.jobs, iv.JobID, i.members, iv.CandidateID)
	if err != nil {
		return errors.WrapFail(err, "insert interviewee")
	}

	_, err = i.coll.InsertOne(ctx, iv)
	return errors.WrapFail(conflict(err), "insert interviewee")
}

func (i interviewees) Update(ctx context.Context, iv models.Interviewee) (bool, error) {
	res, err := i.coll.UpdateOne(
		ctx,
		bson.M{
			models.IntervieweeFieldJobID:       iv.JobID,
			models.IntervieweeFieldCandidateID: iv.CandidateID,
		},
		mng.SetAll(bson.M{models.IntervieweeFieldAvailability: iv.Availability}),
	)
	if err != nil {
		return false, errors.WrapFail(err, "update interviewee")
	}
	return res.MatchedCount > 0, nil
}
