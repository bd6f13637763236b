package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimblelabs/inquiry-api/internal/models"
	"github.com/nimblelabs/inquiry-api/internal/utils"
)

type fakeRepo struct {
	err      error
	inserted []*models.Submission
}

func (f *fakeRepo) Insert(ctx context.Context, s *models.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, s)
	return nil
}

type fakeNotifier struct {
	err  error
	sent []*models.Submission
}

func (f *fakeNotifier) Send(s *models.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, s)
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func valid() *models.Submission {
	return &models.Submission{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "555-1234",
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewSubmissionService(repo, notifier, testLogger())

	sub := valid()
	require.NoError(t, svc.Submit(context.Background(), sub))

	require.Len(t, repo.inserted, 1)
	require.Len(t, notifier.sent, 1)
	assert.Same(t, sub, repo.inserted[0])

	// CreatedAt is stamped as a parseable RFC 3339 UTC string.
	ts, err := time.Parse(time.RFC3339, sub.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestSubmitMissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*models.Submission)
	}{
		{"no full_name", func(s *models.Submission) { s.FullName = "" }},
		{"no email", func(s *models.Submission) { s.Email = "" }},
		{"no phone", func(s *models.Submission) { s.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{}
			svc := NewSubmissionService(repo, notifier, testLogger())

			sub := valid()
			tt.mut(sub)

			err := svc.Submit(context.Background(), sub)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

			// No side effects on validation failure.
			assert.Empty(t, repo.inserted)
			assert.Empty(t, notifier.sent)
		})
	}
}

func TestSubmitSkipsUnconfiguredBackends(t *testing.T) {
	repo := &fakeRepo{err: utils.ErrNotConfigured}
	notifier := &fakeNotifier{err: utils.ErrNotConfigured}
	svc := NewSubmissionService(repo, notifier, testLogger())

	assert.NoError(t, svc.Submit(context.Background(), valid()))
}

func TestSubmitFailsOnConfiguredRepoError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection reset")}
	notifier := &fakeNotifier{}
	svc := NewSubmissionService(repo, notifier, testLogger())

	err := svc.Submit(context.Background(), valid())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
	assert.Empty(t, notifier.sent)
}

func TestSubmitFailsOnConfiguredNotifierError(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp timeout")}
	svc := NewSubmissionService(repo, notifier, testLogger())

	err := svc.Submit(context.Background(), valid())
	require.Error(t, err)
	// The record was persisted before the send failed; no rollback exists.
	assert.Len(t, repo.inserted, 1)
}
