package store

import "github.com/staffdesk-io/staffdesk/internal/modules/model"

// The projector flattens the joined row shapes the backend returns into the
// Record form the rest of the core works with, so nothing outside this file
// needs to know how the join rows are nested.

// ProjectEmployee flattens an employee row fetched with its assignment rows.
// The relation list is always non-nil, even with no assignments.
func ProjectEmployee(e model.Employee) Record {
	related := make([]Summary, 0, len(e.Assignments))
	for _, a := range e.Assignments {
		if a.Project == nil {
			continue
		}
		related = append(related, Summary{ID: a.Project.ID, Name: a.Project.Name})
	}
	return Record{ID: e.ID, Name: e.Name, Related: related}
}

// ProjectProject is the project-side counterpart of ProjectEmployee.
func ProjectProject(p model.Project) Record {
	related := make([]Summary, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		if a.Employee == nil {
			continue
		}
		related = append(related, Summary{ID: a.Employee.ID, Name: a.Employee.Name})
	}
	return Record{ID: p.ID, Name: p.Name, Related: related}
}

func ProjectEmployees(es []model.Employee) []Record {
	out := make([]Record, 0, len(es))
	for _, e := range es {
		out = append(out, ProjectEmployee(e))
	}
	return out
}

func ProjectProjects(ps []model.Project) []Record {
	out := make([]Record, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProjectProject(p))
	}
	return out
}
