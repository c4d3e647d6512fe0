package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/realtime"
	"github.com/staffdesk-io/staffdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffdesk-io/staffdesk/internal/modules/model"
)

type reconcilerFixture struct {
	rec     *Reconciler
	cache   *store.Cache
	empRepo *MockEmployeeRepo
	status  *store.StatusChannel
}

func newReconcilerFixture() *reconcilerFixture {
	f := &reconcilerFixture{
		cache:   store.NewCache(),
		empRepo: &MockEmployeeRepo{},
		status:  store.NewStatusChannel(0),
	}
	f.rec = NewReconciler(f.cache, f.empRepo, f.status, &fakeFeed{}, zap.NewNop())
	return f
}

func TestReconciler_EmployeeInsert(t *testing.T) {
	f := newReconcilerFixture()
	id := uuid.New()

	f.rec.applyEmployee(realtime.Event{
		Table: realtime.TableEmployees,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{ID: id, Name: "Ada"},
	})

	rec, ok := f.cache.Employees.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "Ada", rec.Name)
	assert.NotNil(t, rec.Related)
	assert.Equal(t, `Employee "Ada" added by another user`, f.status.Snapshot().Success)
}

func TestReconciler_EmployeeInsertEchoDedupes(t *testing.T) {
	f := newReconcilerFixture()
	id := uuid.New()
	projID := uuid.New()

	// The local mutation already applied its optimistic record.
	f.cache.Employees.Upsert(store.Record{
		ID:      id,
		Name:    "Ada",
		Related: []store.Summary{{ID: projID, Name: "Apollo"}},
	})

	f.rec.applyEmployee(realtime.Event{
		Table: realtime.TableEmployees,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{ID: id, Name: "Ada"},
	})

	assert.Equal(t, 1, f.cache.Employees.Len())
	rec, _ := f.cache.Employees.Get(id)
	assert.Equal(t, []store.Summary{{ID: projID, Name: "Apollo"}}, rec.Related)
	assert.Empty(t, f.status.Snapshot().Success, "an echo of our own insert is silent")
}

func TestReconciler_EmployeeUpdateKeepsRelations(t *testing.T) {
	f := newReconcilerFixture()
	id := uuid.New()
	projID := uuid.New()

	f.cache.Employees.Upsert(store.Record{
		ID:      id,
		Name:    "Ada",
		Related: []store.Summary{{ID: projID, Name: "Apollo"}},
	})

	f.rec.applyEmployee(realtime.Event{
		Table:  realtime.TableEmployees,
		Type:   realtime.EventUpdate,
		Row:    realtime.Row{ID: id, Name: "Ada King"},
		OldRow: realtime.Row{ID: id, Name: "Ada"},
	})

	rec, _ := f.cache.Employees.Get(id)
	assert.Equal(t, "Ada King", rec.Name)
	assert.Equal(t, []store.Summary{{ID: projID, Name: "Apollo"}}, rec.Related)
}

func TestReconciler_EmployeeDelete(t *testing.T) {
	f := newReconcilerFixture()
	id := uuid.New()
	f.cache.Employees.Upsert(store.Record{ID: id, Name: "Ada"})

	f.rec.applyEmployee(realtime.Event{
		Table:  realtime.TableEmployees,
		Type:   realtime.EventDelete,
		OldRow: realtime.Row{ID: id},
	})

	_, ok := f.cache.Employees.Get(id)
	assert.False(t, ok)
	assert.Equal(t, "Employee removed by another user", f.status.Snapshot().Success)

	// A second delivery of the same event changes nothing.
	f.rec.applyEmployee(realtime.Event{
		Table:  realtime.TableEmployees,
		Type:   realtime.EventDelete,
		OldRow: realtime.Row{ID: id},
	})
	assert.Equal(t, 0, f.cache.Employees.Len())
}

func TestReconciler_ProjectInsert(t *testing.T) {
	f := newReconcilerFixture()
	id := uuid.New()

	f.rec.applyProject(realtime.Event{
		Table: realtime.TableProjects,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{ID: id, Name: "Apollo"},
	})

	rec, ok := f.cache.Projects.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "Apollo", rec.Name)
	assert.Equal(t, `Project "Apollo" added by another user`, f.status.Snapshot().Success)
}

func TestReconciler_AssignmentChangeRefreshesEmployee(t *testing.T) {
	f := newReconcilerFixture()
	empID := uuid.New()
	projID := uuid.New()

	f.cache.Employees.Upsert(store.Record{ID: empID, Name: "Ada", Related: []store.Summary{}})

	f.empRepo.On("GetWithProjects", mock.Anything, empID).Return(&model.Employee{
		ID:   empID,
		Name: "Ada",
		Assignments: []model.Assignment{
			{EmployeeID: empID, ProjectID: projID, Project: &model.Project{ID: projID, Name: "Apollo"}},
		},
	}, nil)

	f.rec.applyAssignment(context.Background(), realtime.Event{
		Table: realtime.TableAssignments,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{EmployeeID: empID, ProjectID: projID},
	})

	rec, _ := f.cache.Employees.Get(empID)
	assert.Equal(t, []store.Summary{{ID: projID, Name: "Apollo"}}, rec.Related)
	f.empRepo.AssertExpectations(t)
}

func TestReconciler_AssignmentDeleteUsesOldRow(t *testing.T) {
	f := newReconcilerFixture()
	empID := uuid.New()

	f.cache.Employees.Upsert(store.Record{
		ID:      empID,
		Name:    "Ada",
		Related: []store.Summary{{ID: uuid.New(), Name: "Apollo"}},
	})

	f.empRepo.On("GetWithProjects", mock.Anything, empID).Return(&model.Employee{ID: empID, Name: "Ada"}, nil)

	f.rec.applyAssignment(context.Background(), realtime.Event{
		Table:  realtime.TableAssignments,
		Type:   realtime.EventDelete,
		OldRow: realtime.Row{EmployeeID: empID},
	})

	rec, _ := f.cache.Employees.Get(empID)
	assert.Empty(t, rec.Related)
}

func TestReconciler_AssignmentForVanishedEmployee(t *testing.T) {
	f := newReconcilerFixture()
	empID := uuid.New()
	f.cache.Employees.Upsert(store.Record{ID: empID, Name: "Ada"})

	f.empRepo.On("GetWithProjects", mock.Anything, empID).Return(nil, gorm.ErrRecordNotFound)

	f.rec.applyAssignment(context.Background(), realtime.Event{
		Table: realtime.TableAssignments,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{EmployeeID: empID},
	})

	_, ok := f.cache.Employees.Get(empID)
	assert.False(t, ok, "assignments of a concurrently deleted employee drop the record")
}

func TestReconciler_AssignmentWithoutEmployeeKeyIgnored(t *testing.T) {
	f := newReconcilerFixture()

	f.rec.applyAssignment(context.Background(), realtime.Event{
		Table: realtime.TableAssignments,
		Type:  realtime.EventInsert,
	})

	f.empRepo.AssertNotCalled(t, "GetWithProjects", mock.Anything, mock.Anything)
}
