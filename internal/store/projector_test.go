package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"github.com/stretchr/testify/assert"
)

func TestProjectEmployee(t *testing.T) {
	empID := uuid.New()
	projID := uuid.New()

	rec := ProjectEmployee(model.Employee{
		ID:   empID,
		Name: "Ada",
		Assignments: []model.Assignment{
			{EmployeeID: empID, ProjectID: projID, Project: &model.Project{ID: projID, Name: "Apollo"}},
		},
	})

	assert.Equal(t, empID, rec.ID)
	assert.Equal(t, "Ada", rec.Name)
	assert.Equal(t, []Summary{{ID: projID, Name: "Apollo"}}, rec.Related)
}

func TestProjectEmployee_NoAssignments(t *testing.T) {
	rec := ProjectEmployee(model.Employee{ID: uuid.New(), Name: "Ada"})

	assert.NotNil(t, rec.Related)
	assert.Empty(t, rec.Related)
}

func TestProjectEmployee_SkipsDanglingJoinRows(t *testing.T) {
	empID := uuid.New()
	projID := uuid.New()

	rec := ProjectEmployee(model.Employee{
		ID:   empID,
		Name: "Ada",
		Assignments: []model.Assignment{
			{EmployeeID: empID, ProjectID: uuid.New()}, // no preloaded project
			{EmployeeID: empID, ProjectID: projID, Project: &model.Project{ID: projID, Name: "Apollo"}},
		},
	})

	assert.Equal(t, []Summary{{ID: projID, Name: "Apollo"}}, rec.Related)
}

func TestProjectProject(t *testing.T) {
	projID := uuid.New()
	empID := uuid.New()

	rec := ProjectProject(model.Project{
		ID:   projID,
		Name: "Apollo",
		Assignments: []model.Assignment{
			{EmployeeID: empID, ProjectID: projID, Employee: &model.Employee{ID: empID, Name: "Ada"}},
		},
	})

	assert.Equal(t, projID, rec.ID)
	assert.Equal(t, []Summary{{ID: empID, Name: "Ada"}}, rec.Related)
}

func TestProjectEmployees(t *testing.T) {
	recs := ProjectEmployees([]model.Employee{
		{ID: uuid.New(), Name: "Ada"},
		{ID: uuid.New(), Name: "Grace"},
	})

	assert.Len(t, recs, 2)
	assert.Equal(t, "Ada", recs[0].Name)
	assert.Equal(t, "Grace", recs[1].Name)
}
