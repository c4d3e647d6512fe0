package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/config"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"github.com/staffdesk-io/staffdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockProjectRepo) DeleteWithAssignments(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) GetWithEmployees(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListWithEmployees(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) SearchWithEmployees(ctx context.Context, term string) ([]model.Project, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

type projectFixture struct {
	svc    ProjectService
	repo   *MockProjectRepo
	asg    *MockAssignmentRepo
	cache  *store.Cache
	status *store.StatusChannel
	feed   *fakeFeed
}

func newProjectFixture() *projectFixture {
	f := &projectFixture{
		repo:   &MockProjectRepo{},
		asg:    &MockAssignmentRepo{},
		cache:  store.NewCache(),
		status: store.NewStatusChannel(0),
		feed:   &fakeFeed{},
	}
	cfg := &config.Config{RabbitMQ: config.MQCfg{Queue: "test_audit"}}
	f.svc = NewProjectService(cfg, f.repo, f.asg, f.cache, f.status, f.feed, nil, nil, nil, zap.NewNop())
	return f
}

func TestProjectService_Create(t *testing.T) {
	f := newProjectFixture()
	id := uuid.New()

	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.Name == "Apollo"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Project).ID = id
	}).Return(nil)

	rec, err := f.svc.Create(context.Background(), "Apollo")

	assert.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Empty(t, rec.Related)
	assert.Equal(t, `Project "Apollo" created successfully!`, f.status.Snapshot().Success)

	cached, ok := f.cache.Projects.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "Apollo", cached.Name)
	f.repo.AssertExpectations(t)
}

func TestProjectService_CreateEmptyName(t *testing.T) {
	f := newProjectFixture()

	rec, err := f.svc.Create(context.Background(), "")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, "Project name is required", f.status.Snapshot().Error)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectService_RenameKeepsAssignments(t *testing.T) {
	f := newProjectFixture()
	id := uuid.New()
	empID := uuid.New()

	f.cache.Projects.Upsert(store.Record{
		ID:      id,
		Name:    "Apollo",
		Related: []store.Summary{{ID: empID, Name: "Ada"}},
	})

	f.repo.On("UpdateName", mock.Anything, id, "Apollo 11").Return(nil)

	rec, err := f.svc.Rename(context.Background(), id, "Apollo 11")

	assert.NoError(t, err)
	assert.Equal(t, "Apollo 11", rec.Name)
	assert.Equal(t, []store.Summary{{ID: empID, Name: "Ada"}}, rec.Related)
	assert.Equal(t, `Project "Apollo 11" updated successfully!`, f.status.Snapshot().Success)
}

func TestProjectService_Delete(t *testing.T) {
	f := newProjectFixture()
	id := uuid.New()
	f.cache.Projects.Upsert(store.Record{ID: id, Name: "Apollo"})

	f.repo.On("DeleteWithAssignments", mock.Anything, id).Return(nil)

	err := f.svc.Delete(context.Background(), id)

	assert.NoError(t, err)
	_, ok := f.cache.Projects.Get(id)
	assert.False(t, ok)
	assert.Equal(t, "Project deleted successfully!", f.status.Snapshot().Success)
}

func TestProjectService_SetEmployeesPublishesPerPair(t *testing.T) {
	f := newProjectFixture()
	id := uuid.New()
	e1, e2 := uuid.New(), uuid.New()

	f.asg.On("ReplaceForProject", mock.Anything, id, []uuid.UUID{e1, e2}).Return(nil)
	f.repo.On("GetWithEmployees", mock.Anything, id).Return(&model.Project{
		ID:   id,
		Name: "Apollo",
		Assignments: []model.Assignment{
			{EmployeeID: e1, ProjectID: id, Employee: &model.Employee{ID: e1, Name: "Ada"}},
			{EmployeeID: e2, ProjectID: id, Employee: &model.Employee{ID: e2, Name: "Grace"}},
		},
	}, nil)

	rec, err := f.svc.SetEmployees(context.Background(), id, []uuid.UUID{e1, e2})

	assert.NoError(t, err)
	assert.Len(t, rec.Related, 2)
	assert.Equal(t, "Employees assigned successfully!", f.status.Snapshot().Success)

	// One assignment event per employee so each employee-side watcher can
	// refresh its own record.
	events := f.feed.published()
	assert.Len(t, events, 2)
	assert.Equal(t, e1, events[0].Row.EmployeeID)
	assert.Equal(t, e2, events[1].Row.EmployeeID)
	assert.Equal(t, id, events[0].Row.ProjectID)
}

func TestProjectService_RemoveEmployeesSubset(t *testing.T) {
	f := newProjectFixture()
	id := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	f.cache.Projects.Upsert(store.Record{
		ID:   id,
		Name: "Apollo",
		Related: []store.Summary{
			{ID: a, Name: "Ada"},
			{ID: b, Name: "Barbara"},
			{ID: c, Name: "Grace"},
		},
	})

	f.asg.On("DeletePairsForProject", mock.Anything, id, []uuid.UUID{b}).Return(nil)
	f.repo.On("GetWithEmployees", mock.Anything, id).Return(&model.Project{
		ID:   id,
		Name: "Apollo",
		Assignments: []model.Assignment{
			{EmployeeID: a, ProjectID: id, Employee: &model.Employee{ID: a, Name: "Ada"}},
			{EmployeeID: c, ProjectID: id, Employee: &model.Employee{ID: c, Name: "Grace"}},
		},
	}, nil)

	rec, err := f.svc.RemoveEmployees(context.Background(), id, []uuid.UUID{b})

	assert.NoError(t, err)
	assert.Equal(t, []store.Summary{{ID: a, Name: "Ada"}, {ID: c, Name: "Grace"}}, rec.Related)
}

func TestProjectService_RefreshRemoteError(t *testing.T) {
	f := newProjectFixture()

	f.repo.On("ListWithEmployees", mock.Anything).Return(nil, errors.New("timeout"))

	err := f.svc.Refresh(context.Background())

	var re *RemoteError
	assert.ErrorAs(t, err, &re)
	assert.False(t, re.Write)
	assert.Equal(t, "Failed to fetch projects", f.status.Snapshot().Error)
}

func TestProjectService_SearchOverlaysList(t *testing.T) {
	f := newProjectFixture()
	kept := uuid.New()
	f.cache.Projects.Upsert(store.Record{ID: kept, Name: "Borealis"})

	match := uuid.New()
	f.repo.On("SearchWithEmployees", mock.Anything, "apo").Return([]model.Project{
		{ID: match, Name: "Apollo"},
	}, nil)

	results, err := f.svc.Search(context.Background(), "apo")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, match, results[0].ID)

	list := f.svc.List()
	assert.Len(t, list, 1)
	assert.Equal(t, match, list[0].ID)

	// Blank term drops the overlay again.
	_, err = f.svc.Search(context.Background(), "")
	assert.NoError(t, err)
	list = f.svc.List()
	assert.Len(t, list, 1)
	assert.Equal(t, kept, list[0].ID)
}
