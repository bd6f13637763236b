package mongo

import (
	"context"

	"github.com/nimblelabs/inquiry-api/internal/models"
	"github.com/nimblelabs/inquiry-api/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubmissionRepository interface {
	Insert(ctx context.Context, s *models.Submission) error
}

type submissionRepo struct {
	col *mongo.Collection
}

func NewSubmissionRepo(db *mongo.Database) SubmissionRepository {
	return &submissionRepo{col: db.Collection("inquiries")}
}

func (r *submissionRepo) Insert(ctx context.Context, s *models.Submission) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

// disabledRepo stands in when no store is configured or the startup
// connection failed. Insert reports the typed not-configured outcome so the
// caller can skip persistence without treating it as a failure.
type disabledRepo struct{}

func NewDisabledRepo() SubmissionRepository { return disabledRepo{} }

func (disabledRepo) Insert(ctx context.Context, s *models.Submission) error {
	return utils.ErrNotConfigured
}
