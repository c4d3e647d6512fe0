package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffdesk-io/staffdesk/internal/config"
	"github.com/staffdesk-io/staffdesk/internal/infra/blob"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"github.com/staffdesk-io/staffdesk/internal/modules/repo"
	"github.com/staffdesk-io/staffdesk/internal/realtime"
	"github.com/staffdesk-io/staffdesk/internal/store"
	"go.uber.org/zap"
)

// ProjectService is the project side of the mutation coordinator, symmetric
// to EmployeeService.
type ProjectService interface {
	List() []store.Record
	Refresh(ctx context.Context) error
	Create(ctx context.Context, name string) (*store.Record, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*store.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetEmployees(ctx context.Context, id uuid.UUID, employeeIDs []uuid.UUID) (*store.Record, error)
	RemoveEmployees(ctx context.Context, id uuid.UUID, employeeIDs []uuid.UUID) (*store.Record, error)
	Search(ctx context.Context, term string) ([]store.Record, error)
	ExportCSV(ctx context.Context) (string, error)
}

type projectService struct {
	r          repo.ProjectRepo
	ar         repo.AssignmentRepo
	cache      *store.Store
	overlay    *store.SearchOverlay
	status     *store.StatusChannel
	feed       realtime.Feed
	mq         *amqp.Connection
	blob       *blob.S3Deps
	presign    func() time.Duration
	auditQueue string
	log        *zap.Logger
}

func NewProjectService(
	cfg *config.Config,
	r repo.ProjectRepo,
	ar repo.AssignmentRepo,
	cache *store.Cache,
	status *store.StatusChannel,
	feed realtime.Feed,
	mqConn *amqp.Connection,
	s3 *blob.S3Deps,
	presign func() time.Duration,
	log *zap.Logger,
) ProjectService {
	return &projectService{
		r:          r,
		ar:         ar,
		cache:      cache.Projects,
		overlay:    store.NewSearchOverlay(),
		status:     status,
		feed:       feed,
		mq:         mqConn,
		blob:       s3,
		presign:    presign,
		auditQueue: cfg.RabbitMQ.Queue,
		log:        log,
	}
}

func (s *projectService) List() []store.Record {
	if results, ok := s.overlay.Results(); ok {
		return results
	}
	return s.cache.List()
}

func (s *projectService) Refresh(ctx context.Context) error {
	s.status.Begin()
	defer s.status.End()

	items, err := s.r.ListWithEmployees(ctx)
	if err != nil {
		s.status.Fail("Failed to fetch projects")
		return remoteRead(err)
	}
	s.cache.Replace(store.ProjectProjects(items))
	return nil
}

func (s *projectService) Create(ctx context.Context, name string) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	name = strings.TrimSpace(name)
	if name == "" {
		s.status.Fail("Project name is required")
		return nil, ErrEmptyName
	}

	proj := model.Project{Name: name}
	if err := s.r.Create(ctx, &proj); err != nil {
		s.status.Fail("Failed to create project")
		return nil, remoteWrite(err)
	}

	rec := store.Record{ID: proj.ID, Name: proj.Name, Related: []store.Summary{}}
	s.cache.Upsert(rec)

	s.publishChange(ctx, realtime.Event{
		Table: realtime.TableProjects,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{ID: proj.ID, Name: proj.Name},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableProjects, Action: string(realtime.EventInsert), RowID: proj.ID,
		Payload: map[string]interface{}{"name": proj.Name},
	})

	s.status.Succeed(fmt.Sprintf("Project %q created successfully!", proj.Name))
	return &rec, nil
}

func (s *projectService) Rename(ctx context.Context, id uuid.UUID, name string) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	name = strings.TrimSpace(name)
	if name == "" {
		s.status.Fail("Project name is required")
		return nil, ErrEmptyName
	}

	if err := s.r.UpdateName(ctx, id, name); err != nil {
		s.status.Fail("Failed to update project")
		return nil, remoteWrite(err)
	}

	s.cache.Upsert(store.Record{ID: id, Name: name})
	rec, _ := s.cache.Get(id)

	s.publishChange(ctx, realtime.Event{
		Table: realtime.TableProjects,
		Type:  realtime.EventUpdate,
		Row:   realtime.Row{ID: id, Name: name},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableProjects, Action: string(realtime.EventUpdate), RowID: id,
		Payload: map[string]interface{}{"name": name},
	})

	s.status.Succeed(fmt.Sprintf("Project %q updated successfully!", name))
	return &rec, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	s.status.Begin()
	defer s.status.End()

	if err := s.r.DeleteWithAssignments(ctx, id); err != nil {
		s.status.Fail("Failed to delete project")
		return remoteWrite(err)
	}

	s.cache.Remove(id)

	s.publishChange(ctx, realtime.Event{
		Table:  realtime.TableProjects,
		Type:   realtime.EventDelete,
		OldRow: realtime.Row{ID: id},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableProjects, Action: string(realtime.EventDelete), RowID: id,
	})

	s.status.Succeed("Project deleted successfully!")
	return nil
}

func (s *projectService) SetEmployees(ctx context.Context, id uuid.UUID, employeeIDs []uuid.UUID) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	if err := s.ar.ReplaceForProject(ctx, id, employeeIDs); err != nil {
		s.status.Fail("Failed to assign employees")
		return nil, remoteWrite(err)
	}

	rec, err := s.refetch(ctx, id)
	if err != nil {
		s.status.Fail("Failed to assign employees")
		return nil, err
	}

	// The assignment event names the employee FK; each employee side is
	// refreshed by its reconciler, the project side was refetched above.
	for _, eid := range employeeIDs {
		s.publishChange(ctx, realtime.Event{
			Table: realtime.TableAssignments,
			Type:  realtime.EventInsert,
			Row:   realtime.Row{EmployeeID: eid, ProjectID: id},
		})
	}
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableAssignments, Action: string(realtime.EventInsert), RowID: id,
		Payload: map[string]interface{}{"employee_ids": idStrings(employeeIDs)},
	})

	s.status.Succeed("Employees assigned successfully!")
	return rec, nil
}

func (s *projectService) RemoveEmployees(ctx context.Context, id uuid.UUID, employeeIDs []uuid.UUID) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	if err := s.ar.DeletePairsForProject(ctx, id, employeeIDs); err != nil {
		s.status.Fail("Failed to remove employees")
		return nil, remoteWrite(err)
	}

	rec, err := s.refetch(ctx, id)
	if err != nil {
		s.status.Fail("Failed to remove employees")
		return nil, err
	}

	for _, eid := range employeeIDs {
		s.publishChange(ctx, realtime.Event{
			Table:  realtime.TableAssignments,
			Type:   realtime.EventDelete,
			OldRow: realtime.Row{EmployeeID: eid, ProjectID: id},
		})
	}
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableAssignments, Action: string(realtime.EventDelete), RowID: id,
		Payload: map[string]interface{}{"employee_ids": idStrings(employeeIDs)},
	})

	s.status.Succeed("Employees removed successfully!")
	return rec, nil
}

func (s *projectService) Search(ctx context.Context, term string) ([]store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	term = strings.TrimSpace(term)
	if term == "" {
		s.overlay.Clear()
		return s.cache.List(), nil
	}

	items, err := s.r.SearchWithEmployees(ctx, term)
	if err != nil {
		s.status.Fail("Failed to search projects")
		return nil, remoteRead(err)
	}

	results := store.ProjectProjects(items)
	s.overlay.Set(results)
	return results, nil
}

func (s *projectService) ExportCSV(ctx context.Context) (string, error) {
	s.status.Begin()
	defer s.status.End()

	data, err := renderRosterCSV("employees", s.cache.List())
	if err != nil {
		s.status.Fail("Failed to export projects")
		return "", err
	}

	key, err := s.blob.UploadCSV(ctx, "exports/projects", data)
	if err != nil {
		s.status.Fail("Failed to export projects")
		return "", remoteWrite(err)
	}
	url, err := s.blob.PresignGet(ctx, key, s.presign())
	if err != nil {
		s.status.Fail("Failed to export projects")
		return "", remoteWrite(err)
	}

	s.status.Succeed("Projects exported successfully!")
	return url, nil
}

func (s *projectService) refetch(ctx context.Context, id uuid.UUID) (*store.Record, error) {
	proj, err := s.r.GetWithEmployees(ctx, id)
	if err != nil {
		return nil, remoteRead(err)
	}
	rec := store.ProjectProject(*proj)
	s.cache.Upsert(rec)
	return &rec, nil
}

func (s *projectService) publishChange(ctx context.Context, e realtime.Event) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, e); err != nil {
		s.log.Sugar().Warnw("publish change event", "table", e.Table, "type", e.Type, "err", err)
	}
}
