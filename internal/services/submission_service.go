package services

import (
	"context"
	"errors"
	"time"

	"github.com/nimblelabs/inquiry-api/internal/mailer"
	"github.com/nimblelabs/inquiry-api/internal/models"
	mongorepo "github.com/nimblelabs/inquiry-api/internal/repositories/mongo"
	"github.com/nimblelabs/inquiry-api/internal/utils"
	"github.com/sirupsen/logrus"
)

type SubmissionService interface {
	Submit(ctx context.Context, s *models.Submission) error
}

type submissionService struct {
	repo     mongorepo.SubmissionRepository
	notifier mailer.Notifier
	log      *logrus.Logger
}

func NewSubmissionService(repo mongorepo.SubmissionRepository, notifier mailer.Notifier, log *logrus.Logger) SubmissionService {
	return &submissionService{repo: repo, notifier: notifier, log: log}
}

// Submit validates, stamps, persists, and relays one submission. An
// unconfigured store or mail relay is skipped and the submission still
// succeeds; a failure on a configured backend fails the whole request.
func (s *submissionService) Submit(ctx context.Context, sub *models.Submission) error {
	const op = "SubmissionService.Submit"

	if !sub.HasRequired() {
		return utils.E(utils.CodeInvalidArgument, op, "full_name, email, and phone are required", nil)
	}

	sub.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Insert(ctx, sub); err != nil {
		if errors.Is(err, utils.ErrNotConfigured) {
			s.log.Info("store not configured, skipping persistence")
		} else {
			return utils.E(utils.CodeInternal, op, "failed to persist submission", err)
		}
	}

	if err := s.notifier.Send(sub); err != nil {
		if errors.Is(err, utils.ErrNotConfigured) {
			s.log.Info("mail relay not configured, skipping notification")
		} else {
			return utils.E(utils.CodeInternal, op, "failed to send notification", err)
		}
	}

	return nil
}
