package caretask

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/scheduling-of-care/backend/internal/application/adapter"
	"github.com/scheduling-of-care/backend/internal/domain/entity"
	domainerror "github.com/scheduling-of-care/backend/internal/domain/error"
)

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return client, nil
}

func (r *fakeClientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type fakeCategoryRepo struct {
	categories    map[uuid.UUID]*entity.CareCategory
	subcategories map[uuid.UUID]*entity.Subcategory
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.CareCategory) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareCategory, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.CareCategory, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.CareCategory) error {
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeCategoryRepo) CreateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	r.subcategories[subcategory.ID] = subcategory
	return nil
}

func (r *fakeCategoryRepo) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	subcategory, ok := r.subcategories[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return subcategory, nil
}

func (r *fakeCategoryRepo) UpdateSubcategory(ctx context.Context, subcategory *entity.Subcategory) error {
	return nil
}

func (r *fakeCategoryRepo) DeleteSubcategory(ctx context.Context, id uuid.UUID) error { return nil }

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*entity.CareTask
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.CareTask) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareTask, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return task, nil
}

func (r *fakeTaskRepo) List(ctx context.Context, filter adapter.CareTaskFilter) ([]*entity.CareTask, error) {
	return nil, nil
}

func (r *fakeTaskRepo) FindActiveRecurring(ctx context.Context) ([]*entity.CareTask, error) {
	return nil, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.CareTask) error { return nil }
func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type createTaskFixture struct {
	useCase    *CreateCareTaskUseCase
	userID     uuid.UUID
	clientID   uuid.UUID
	categoryID uuid.UUID
}

func newCreateTaskFixture(t *testing.T, now time.Time) createTaskFixture {
	t.Helper()

	userID := uuid.New()
	client := &entity.Client{ID: uuid.New(), UserID: userID, Name: "Test Client", IsActive: true}
	category := &entity.CareCategory{ID: uuid.New(), ClientID: client.ID, Name: "Medical"}

	clientRepo := &fakeClientRepo{clients: map[uuid.UUID]*entity.Client{client.ID: client}}
	categoryRepo := &fakeCategoryRepo{
		categories:    map[uuid.UUID]*entity.CareCategory{category.ID: category},
		subcategories: map[uuid.UUID]*entity.Subcategory{},
	}
	taskRepo := &fakeTaskRepo{tasks: map[uuid.UUID]*entity.CareTask{}}

	useCase := NewCreateCareTaskUseCase(taskRepo, categoryRepo, clientRepo).
		WithClock(func() time.Time { return now })

	return createTaskFixture{
		useCase:    useCase,
		userID:     userID,
		clientID:   client.ID,
		categoryID: category.ID,
	}
}

func TestCreateCareTaskValidation(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC)
	endBeforeStart := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	nextYear := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mutate   func(*CreateCareTaskInput)
		wantCode domainerror.CareTaskErrorCode
	}{
		{
			name:     "negative recurrence interval",
			mutate:   func(in *CreateCareTaskInput) { in.RecurrenceIntervalDays = -1 },
			wantCode: domainerror.ErrCodeInvalidRecurrence,
		},
		{
			name: "one-off with end date",
			mutate: func(in *CreateCareTaskInput) {
				in.RecurrenceIntervalDays = 0
				in.EndDate = &end
			},
			wantCode: domainerror.ErrCodeOneOffEndDate,
		},
		{
			name:     "recurring without end date",
			mutate:   func(in *CreateCareTaskInput) { in.EndDate = nil },
			wantCode: domainerror.ErrCodeEndDateRequired,
		},
		{
			name:     "end before start",
			mutate:   func(in *CreateCareTaskInput) { in.EndDate = &endBeforeStart },
			wantCode: domainerror.ErrCodeEndBeforeStart,
		},
		{
			name:     "start outside active year",
			mutate:   func(in *CreateCareTaskInput) { in.StartDate = nextYear },
			wantCode: domainerror.ErrCodeDateOutOfYear,
		},
		{
			name:     "blank name",
			mutate:   func(in *CreateCareTaskInput) { in.Name = "   " },
			wantCode: domainerror.ErrCodeMissingTaskFields,
		},
		{
			name:     "unknown task type",
			mutate:   func(in *CreateCareTaskInput) { in.TaskType = entity.TaskType("SOMETHING") },
			wantCode: domainerror.ErrCodeInvalidTaskType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newCreateTaskFixture(t, now)

			input := CreateCareTaskInput{
				UserID:                 fixture.userID,
				ClientID:               fixture.clientID,
				CategoryID:             fixture.categoryID,
				Name:                   "Physio",
				TaskType:               entity.TaskTypeGeneral,
				RecurrenceIntervalDays: 7,
				StartDate:              start,
				EndDate:                &end,
			}
			tt.mutate(&input)

			_, err := fixture.useCase.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			var taskErr *domainerror.CareTaskError
			if !errors.As(err, &taskErr) {
				t.Fatalf("expected CareTaskError, got %T: %v", err, err)
			}
			if taskErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, taskErr.Code)
			}
		})
	}
}

func TestCreateCareTaskRecurring(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC)

	fixture := newCreateTaskFixture(t, now)

	output, err := fixture.useCase.Execute(context.Background(), CreateCareTaskInput{
		UserID:                 fixture.userID,
		ClientID:               fixture.clientID,
		CategoryID:             fixture.categoryID,
		Name:                   "Physio",
		TaskType:               entity.TaskTypeGeneral,
		RecurrenceIntervalDays: 7,
		StartDate:              start,
		EndDate:                &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Recurrence != "Weekly" {
		t.Errorf("expected recurrence 'Weekly', got %q", output.Recurrence)
	}
	if !output.Task.IsActive {
		t.Error("expected new task to be active")
	}
}

func TestCreateCareTaskOneOff(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	fixture := newCreateTaskFixture(t, now)

	output, err := fixture.useCase.Execute(context.Background(), CreateCareTaskInput{
		UserID:                 fixture.userID,
		ClientID:               fixture.clientID,
		CategoryID:             fixture.categoryID,
		Name:                   "Wheelchair purchase",
		TaskType:               entity.TaskTypePurchase,
		RecurrenceIntervalDays: 0,
		StartDate:              start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Recurrence != "One-off" {
		t.Errorf("expected recurrence 'One-off', got %q", output.Recurrence)
	}
	if output.Task.EndDate != nil {
		t.Error("expected one-off task to have no end date")
	}
}

func TestCreateCareTaskRejectsForeignClient(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC)

	fixture := newCreateTaskFixture(t, now)

	_, err := fixture.useCase.Execute(context.Background(), CreateCareTaskInput{
		UserID:                 uuid.New(), // not the owner
		ClientID:               fixture.clientID,
		CategoryID:             fixture.categoryID,
		Name:                   "Physio",
		TaskType:               entity.TaskTypeGeneral,
		RecurrenceIntervalDays: 7,
		StartDate:              start,
		EndDate:                &end,
	})

	var clientErr *domainerror.ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("expected ClientError, got %T: %v", err, err)
	}
	if clientErr.Code != domainerror.ErrCodeNotAuthorizedClient {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedClient, clientErr.Code)
	}
}
