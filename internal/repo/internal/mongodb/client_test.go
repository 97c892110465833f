package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/logger"
)

func newMockClient(mt *mtest.T) *Client {
	return New(mt.DB, logger.NewStub())
}

func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func TestJobs(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collJobs), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(1)}, {Key: "name", Value: "backend"}},
			bson.D{{Key: "_id", Value: int64(2)}, {Key: "name", Value: "frontend"}},
		))

		got, err := newMockClient(mt).Jobs().List(ctx)
		require.NoError(mt, err)
		require.Equal(mt, []models.Job{{ID: 1, Name: "backend"}, {ID: 2, Name: "frontend"}}, got)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collJobs), mtest.FirstBatch))

		got, err := newMockClient(mt).Jobs().Get(ctx, 7)
		require.NoError(mt, err)
		require.Nil(mt, got)
	})

	mt.Run("create takes id from counter", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: collJobs},
				{Key: counterFieldSeq, Value: int64(4)},
			}}),
			mtest.CreateSuccessResponse(),
		)

		got, err := newMockClient(mt).Jobs().Create(ctx, "platform")
		require.NoError(mt, err)
		require.Equal(mt, &models.Job{ID: 4, Name: "platform"}, got)
	})

	mt.Run("update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: int64(4)},
			{Key: "name", Value: "infra"},
		}}))

		got, err := newMockClient(mt).Jobs().Update(ctx, 4, "infra")
		require.NoError(mt, err)
		require.Equal(mt, &models.Job{ID: 4, Name: "infra"}, got)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		got, err := newMockClient(mt).Jobs().Update(ctx, 4, "infra")
		require.NoError(mt, err)
		require.Nil(mt, got)
	})
}

func TestPeople(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create employee", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: collEmployees},
				{Key: counterFieldSeq, Value: int64(1)},
			}}),
			mtest.CreateSuccessResponse(),
		)

		got, err := newMockClient(mt).Employees().Create(ctx, "Ann", "SRE")
		require.NoError(mt, err)
		require.Equal(mt, &models.Employee{ID: 1, Name: "Ann", Title: "SRE"}, got)
	})

	mt.Run("get candidate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collCandidates), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int64(3)}, {Key: "name", Value: "Bob"}},
		))

		got, err := newMockClient(mt).Candidates().Get(ctx, 3)
		require.NoError(mt, err)
		require.Equal(mt, &models.Candidate{ID: 3, Name: "Bob"}, got)
	})
}

func TestInterviewers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	found := func(mt *mtest.T, coll string, id int64) bson.D {
		return mtest.CreateCursorResponse(0, ns(mt, coll), mtest.FirstBatch, bson.D{{Key: "_id", Value: id}})
	}

	mt.Run("list by job", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collInterviewers), mtest.FirstBatch,
			bson.D{
				{Key: models.InterviewerFieldJobID, Value: int64(1)},
				{Key: models.InterviewerFieldEmployeeID, Value: int64(2)},
				{Key: models.InterviewerFieldAvailability, Value: `{"mon":[9,10]}`},
			},
			bson.D{
				{Key: models.InterviewerFieldJobID, Value: int64(1)},
				{Key: models.InterviewerFieldEmployeeID, Value: int64(3)},
				{Key: models.InterviewerFieldAvailability, Value: `{"tue":[11]}`},
			},
		))

		got, err := newMockClient(mt).Interviewers().ListByJob(ctx, 1)
		require.NoError(mt, err)
		require.Equal(mt, []models.Interviewer{
			{JobID: 1, EmployeeID: 2, Availability: `{"mon":[9,10]}`},
			{JobID: 1, EmployeeID: 3, Availability: `{"tue":[11]}`},
		}, got)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(
			found(mt, collJobs, 1),
			found(mt, collEmployees, 2),
			mtest.CreateSuccessResponse(),
		)

		err := newMockClient(mt).Interviewers().Create(ctx, models.Interviewer{JobID: 1, EmployeeID: 2, Availability: `{}`})
		require.NoError(mt, err)
	})

	mt.Run("create with unknown job", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collJobs), mtest.FirstBatch))

		err := newMockClient(mt).Interviewers().Create(ctx, models.Interviewer{JobID: 9, EmployeeID: 2})
		require.ErrorIs(mt, err, models.ErrConflict)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		mt.AddMockResponses(
			found(mt, collJobs, 1),
			found(mt, collEmployees, 2),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "duplicate key error",
			}),
		)

		err := newMockClient(mt).Interviewers().Create(ctx, models.Interviewer{JobID: 1, EmployeeID: 2})
		require.ErrorIs(mt, err, models.ErrConflict)
	})

	mt.Run("update reports match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		ok, err := newMockClient(mt).Interviewers().Update(ctx, models.Interviewer{JobID: 1, EmployeeID: 2, Availability: `{}`})
		require.NoError(mt, err)
		require.True(mt, ok)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		ok, err := newMockClient(mt).Interviewers().Update(ctx, models.Interviewer{JobID: 1, EmployeeID: 5})
		require.NoError(mt, err)
		require.False(mt, ok)
	})
}

func TestInterviewees(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collInterviewees), mtest.FirstBatch,
			bson.D{
				{Key: models.IntervieweeFieldJobID, Value: int64(1)},
				{Key: models.IntervieweeFieldCandidateID, Value: int64(4)},
				{Key: models.IntervieweeFieldAvailability, Value: `{"fri":[8]}`},
			},
		))

		got, err := newMockClient(mt).Interviewees().Get(ctx, 1, 4)
		require.NoError(mt, err)
		require.Equal(mt, &models.Interviewee{JobID: 1, CandidateID: 4, Availability: `{"fri":[8]}`}, got)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, collInterviewees), mtest.FirstBatch))

		got, err := newMockClient(mt).Interviewees().Get(ctx, 1, 4)
		require.NoError(mt, err)
		require.Nil(mt, got)
	})

	mt.Run("create with unknown candidate", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, collJobs), mtest.FirstBatch, bson.D{{Key: "_id", Value: int64(1)}}),
			mtest.CreateCursorResponse(0, ns(mt, collCandidates), mtest.FirstBatch),
		)

		err := newMockClient(mt).Interviewees().Create(ctx, models.Interviewee{JobID: 1, CandidateID: 4})
		require.ErrorIs(mt, err, models.ErrConflict)
	})
}
