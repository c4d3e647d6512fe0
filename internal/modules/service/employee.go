package service

import (
	"bytes"
	"context"
	"encoding/csv"
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

// EmployeeService is the employee side of the mutation coordinator: every
// intent validates, performs the remote write(s), reconciles the cache and
// reports terminal state through the shared status channel. Remote failures
// never escape as panics or fatal errors; the next intent can always be tried.
type EmployeeService interface {
	List() []store.Record
	Refresh(ctx context.Context) error
	Create(ctx context.Context, name string) (*store.Record, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*store.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) (*store.Record, error)
	RemoveProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) (*store.Record, error)
	Search(ctx context.Context, term string) ([]store.Record, error)
	ExportCSV(ctx context.Context) (string, error)
}

type employeeService struct {
	r          repo.EmployeeRepo
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

func NewEmployeeService(
	cfg *config.Config,
	r repo.EmployeeRepo,
	ar repo.AssignmentRepo,
	cache *store.Cache,
	status *store.StatusChannel,
	feed realtime.Feed,
	mqConn *amqp.Connection,
	s3 *blob.S3Deps,
	presign func() time.Duration,
	log *zap.Logger,
) EmployeeService {
	return &employeeService{
		r:          r,
		ar:         ar,
		cache:      cache.Employees,
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

// List returns the search overlay when a search is active, otherwise the main
// cache contents.
func (s *employeeService) List() []store.Record {
	if results, ok := s.overlay.Results(); ok {
		return results
	}
	return s.cache.List()
}

func (s *employeeService) Refresh(ctx context.Context) error {
	s.status.Begin()
	defer s.status.End()

	items, err := s.r.ListWithProjects(ctx)
	if err != nil {
		s.status.Fail("Failed to fetch employees")
		return remoteRead(err)
	}
	s.cache.Replace(store.ProjectEmployees(items))
	return nil
}

func (s *employeeService) Create(ctx context.Context, name string) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	name = strings.TrimSpace(name)
	if name == "" {
		s.status.Fail("Employee name is required")
		return nil, ErrEmptyName
	}

	emp := model.Employee{Name: name}
	if err := s.r.Create(ctx, &emp); err != nil {
		s.status.Fail("Failed to add employee")
		return nil, remoteWrite(err)
	}

	// Optimistic hint; the realtime echo is authoritative and dedupes by id.
	rec := store.Record{ID: emp.ID, Name: emp.Name, Related: []store.Summary{}}
	s.cache.Upsert(rec)

	s.publishChange(ctx, realtime.Event{
		Table: realtime.TableEmployees,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{ID: emp.ID, Name: emp.Name},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableEmployees, Action: string(realtime.EventInsert), RowID: emp.ID,
		Payload: map[string]interface{}{"name": emp.Name},
	})

	s.status.Succeed(fmt.Sprintf("Employee %q added successfully!", emp.Name))
	return &rec, nil
}

func (s *employeeService) Rename(ctx context.Context, id uuid.UUID, name string) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	name = strings.TrimSpace(name)
	if name == "" {
		s.status.Fail("Employee name is required")
		return nil, ErrEmptyName
	}

	if err := s.r.UpdateName(ctx, id, name); err != nil {
		s.status.Fail("Failed to update employee")
		return nil, remoteWrite(err)
	}

	// Nil relation list keeps the previously known assignments intact.
	s.cache.Upsert(store.Record{ID: id, Name: name})
	rec, _ := s.cache.Get(id)

	s.publishChange(ctx, realtime.Event{
		Table: realtime.TableEmployees,
		Type:  realtime.EventUpdate,
		Row:   realtime.Row{ID: id, Name: name},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableEmployees, Action: string(realtime.EventUpdate), RowID: id,
		Payload: map[string]interface{}{"name": name},
	})

	s.status.Succeed(fmt.Sprintf("Employee %q updated successfully!", name))
	return &rec, nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	s.status.Begin()
	defer s.status.End()

	if err := s.r.DeleteWithAssignments(ctx, id); err != nil {
		s.status.Fail("Failed to delete employee")
		return remoteWrite(err)
	}

	s.cache.Remove(id)

	s.publishChange(ctx, realtime.Event{
		Table:  realtime.TableEmployees,
		Type:   realtime.EventDelete,
		OldRow: realtime.Row{ID: id},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableEmployees, Action: string(realtime.EventDelete), RowID: id,
	})

	s.status.Succeed("Employee deleted successfully!")
	return nil
}

func (s *employeeService) SetProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	if err := s.ar.ReplaceForEmployee(ctx, id, projectIDs); err != nil {
		s.status.Fail("Failed to assign projects")
		return nil, remoteWrite(err)
	}

	rec, err := s.refetch(ctx, id)
	if err != nil {
		s.status.Fail("Failed to assign projects")
		return nil, err
	}

	s.publishChange(ctx, realtime.Event{
		Table: realtime.TableAssignments,
		Type:  realtime.EventInsert,
		Row:   realtime.Row{EmployeeID: id},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableAssignments, Action: string(realtime.EventInsert), RowID: id,
		Payload: map[string]interface{}{"project_ids": idStrings(projectIDs)},
	})

	s.status.Succeed("Projects assigned successfully!")
	return rec, nil
}

func (s *employeeService) RemoveProjects(ctx context.Context, id uuid.UUID, projectIDs []uuid.UUID) (*store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	if err := s.ar.DeletePairsForEmployee(ctx, id, projectIDs); err != nil {
		s.status.Fail("Failed to remove projects")
		return nil, remoteWrite(err)
	}

	rec, err := s.refetch(ctx, id)
	if err != nil {
		s.status.Fail("Failed to remove projects")
		return nil, err
	}

	s.publishChange(ctx, realtime.Event{
		Table:  realtime.TableAssignments,
		Type:   realtime.EventDelete,
		OldRow: realtime.Row{EmployeeID: id},
	})
	publishAudit(ctx, s.mq, s.auditQueue, s.log, AuditEvent{
		Table: realtime.TableAssignments, Action: string(realtime.EventDelete), RowID: id,
		Payload: map[string]interface{}{"project_ids": idStrings(projectIDs)},
	})

	s.status.Succeed("Projects removed successfully!")
	return rec, nil
}

func (s *employeeService) Search(ctx context.Context, term string) ([]store.Record, error) {
	s.status.Begin()
	defer s.status.End()

	term = strings.TrimSpace(term)
	if term == "" {
		// Empty search falls back to the unfiltered main list.
		s.overlay.Clear()
		return s.cache.List(), nil
	}

	items, err := s.r.SearchWithProjects(ctx, term)
	if err != nil {
		s.status.Fail("Failed to search employees")
		return nil, remoteRead(err)
	}

	results := store.ProjectEmployees(items)
	s.overlay.Set(results)
	return results, nil
}

func (s *employeeService) ExportCSV(ctx context.Context) (string, error) {
	s.status.Begin()
	defer s.status.End()

	data, err := renderRosterCSV("projects", s.cache.List())
	if err != nil {
		s.status.Fail("Failed to export employees")
		return "", err
	}

	key, err := s.blob.UploadCSV(ctx, "exports/employees", data)
	if err != nil {
		s.status.Fail("Failed to export employees")
		return "", remoteWrite(err)
	}
	url, err := s.blob.PresignGet(ctx, key, s.presign())
	if err != nil {
		s.status.Fail("Failed to export employees")
		return "", remoteWrite(err)
	}

	s.status.Succeed("Employees exported successfully!")
	return url, nil
}

// refetch pulls the authoritative snapshot of one employee and replaces the
// cached record wholesale, relation list included.
func (s *employeeService) refetch(ctx context.Context, id uuid.UUID) (*store.Record, error) {
	emp, err := s.r.GetWithProjects(ctx, id)
	if err != nil {
		return nil, remoteRead(err)
	}
	rec := store.ProjectEmployee(*emp)
	s.cache.Upsert(rec)
	return &rec, nil
}

func (s *employeeService) publishChange(ctx context.Context, e realtime.Event) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, e); err != nil {
		s.log.Sugar().Warnw("publish change event", "table", e.Table, "type", e.Type, "err", err)
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// renderRosterCSV renders cached records as id,name,<relatedHeader> rows.
func renderRosterCSV(relatedHeader string, recs []store.Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"id", "name", relatedHeader}); err != nil {
		return nil, err
	}
	for _, rec := range recs {
		names := make([]string, 0, len(rec.Related))
		for _, rel := range rec.Related {
			names = append(names, rel.Name)
		}
		if err := w.Write([]string{rec.ID.String(), rec.Name, strings.Join(names, "; ")}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
