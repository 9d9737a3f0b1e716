package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/notify"
)

// ---------------------------------------------------------------------------
// mockJobRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockJobRepository struct {
	createFunc       func(ctx context.Context, job *model.JobSubmission) error
	listFunc         func(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error)
	getByIDFunc      func(ctx context.Context, id int64) (*model.JobSubmission, error)
	updateStatusFunc func(ctx context.Context, id int64, status string) error
}

func (m *mockJobRepository) Create(ctx context.Context, job *model.JobSubmission) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepository) List(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockJobRepository) GetByID(ctx context.Context, id int64) (*model.JobSubmission, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

// recordingNotifier captures every message it is asked to deliver.
type recordingNotifier struct {
	messages []notify.Message
}

func (n *recordingNotifier) Notify(_ context.Context, msg notify.Message) {
	n.messages = append(n.messages, msg)
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func validJob() *model.JobSubmission {
	return &model.JobSubmission{
		ClientName:         "John Smith",
		ClientEmail:        "john@example.com",
		ClientPhone:        "555-0123",
		ProjectType:        model.ProjectTypeKitchen,
		ServiceCategory:    "Cabinet & Storage",
		ProjectDescription: "Need to replace old kitchen cabinets",
		Location:           "123 Main St, City, State",
		TimelinePreference: "soon",
		BudgetRange:        "1000_5000",
	}
}

func TestJobService_Submit_ForcesStatusNew(t *testing.T) {
	var saved *model.JobSubmission
	repo := &mockJobRepository{
		createFunc: func(ctx context.Context, job *model.JobSubmission) error {
			job.ID = 1
			saved = job
			return nil
		},
	}
	svc := NewJobService(repo, &recordingNotifier{})

	job := validJob()
	job.Status = model.JobStatusCompleted // caller input must be ignored
	if err := svc.Submit(context.Background(), job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Status != model.JobStatusNew {
		t.Errorf("expected status=new, got %q", saved.Status)
	}
	if job.ID != 1 {
		t.Errorf("expected assigned id 1, got %d", job.ID)
	}
}

func TestJobService_Submit_NotifiesOnceAfterPersist(t *testing.T) {
	notifier := &recordingNotifier{}
	repo := &mockJobRepository{
		createFunc: func(ctx context.Context, job *model.JobSubmission) error {
			job.ID = 7
			return nil
		},
	}
	svc := NewJobService(repo, notifier)

	if err := svc.Submit(context.Background(), validJob()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.messages))
	}
	msg := notifier.messages[0]
	if msg.Title != "New Job Submission" {
		t.Errorf("unexpected title %q", msg.Title)
	}
	if !strings.Contains(msg.Content, "John Smith") {
		t.Errorf("expected client name in content, got %q", msg.Content)
	}
	if !strings.Contains(msg.Content, "kitchen") {
		t.Errorf("expected project type in content, got %q", msg.Content)
	}
	if !strings.Contains(msg.Content, "john@example.com") {
		t.Errorf("expected contact in content, got %q", msg.Content)
	}
}

// Out-of-scope flags never block creation; the record is persisted and the
// id returned as usual.
func TestJobService_Submit_OutOfScopeStillSucceeds(t *testing.T) {
	repo := &mockJobRepository{
		createFunc: func(ctx context.Context, job *model.JobSubmission) error {
			job.ID = 3
			return nil
		},
	}
	svc := NewJobService(repo, &recordingNotifier{})

	job := validJob()
	job.HasElectrical = true
	job.RequiresPermits = true
	if !job.OutOfScope() {
		t.Fatal("test setup: job should be out of scope")
	}

	if err := svc.Submit(context.Background(), job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != 3 {
		t.Errorf("expected assigned id 3, got %d", job.ID)
	}
}

func TestJobService_Submit_RepositoryError(t *testing.T) {
	notifier := &recordingNotifier{}
	repo := &mockJobRepository{
		createFunc: func(ctx context.Context, job *model.JobSubmission) error {
			return errors.New("db write failed")
		},
	}
	svc := NewJobService(repo, notifier)

	err := svc.Submit(context.Background(), validJob())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.messages) != 0 {
		t.Errorf("no notification should be sent when persistence fails, got %d", len(notifier.messages))
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus tests
// ---------------------------------------------------------------------------

func TestJobService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	called := false
	repo := &mockJobRepository{
		updateStatusFunc: func(ctx context.Context, id int64, status string) error {
			called = true
			return nil
		},
	}
	svc := NewJobService(repo, &recordingNotifier{})

	err := svc.UpdateStatus(context.Background(), 1, "archived")
	var ise *InvalidStatusError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidStatusError, got %v", err)
	}
	if called {
		t.Error("repository must not be called for an invalid status")
	}
}

func TestJobService_UpdateStatus_AllowsAnyMemberTransition(t *testing.T) {
	var got string
	repo := &mockJobRepository{
		updateStatusFunc: func(ctx context.Context, id int64, status string) error {
			got = status
			return nil
		},
	}
	svc := NewJobService(repo, &recordingNotifier{})

	// completed back to new is permitted: no adjacency graph is enforced.
	for _, status := range []string{"quoted", "scheduled", "completed", "rejected", "new"} {
		if err := svc.UpdateStatus(context.Background(), 1, status); err != nil {
			t.Fatalf("status %q: unexpected error: %v", status, err)
		}
		if got != status {
			t.Errorf("expected repo to receive %q, got %q", status, got)
		}
	}
}

func TestJobService_List_PassesOptions(t *testing.T) {
	var gotOpts model.JobListOptions
	repo := &mockJobRepository{
		listFunc: func(ctx context.Context, opts model.JobListOptions) ([]*model.JobSubmission, error) {
			gotOpts = opts
			return []*model.JobSubmission{{ID: 1}}, nil
		},
	}
	svc := NewJobService(repo, &recordingNotifier{})

	jobs, err := svc.List(context.Background(), model.JobListOptions{Status: model.JobStatusNew})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOpts.Status != model.JobStatusNew {
		t.Errorf("expected status filter to pass through, got %q", gotOpts.Status)
	}
	if len(jobs) != 1 {
		t.Errorf("expected 1 job, got %d", len(jobs))
	}
}
