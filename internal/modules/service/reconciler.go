package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/repo"
	"github.com/staffdesk-io/staffdesk/internal/realtime"
	"github.com/staffdesk-io/staffdesk/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reconciler applies change-feed notifications to the cache. It watches the
// two base tables and the join table. Notifications may arrive before or
// after the local mutation that caused them completes; every apply path is
// idempotent so both orderings leave the same cache state.
type Reconciler struct {
	cache   *store.Cache
	empRepo repo.EmployeeRepo
	status  *store.StatusChannel
	feed    realtime.Feed
	log     *zap.Logger
}

func NewReconciler(
	cache *store.Cache,
	empRepo repo.EmployeeRepo,
	status *store.StatusChannel,
	feed realtime.Feed,
	log *zap.Logger,
) *Reconciler {
	return &Reconciler{
		cache:   cache,
		empRepo: empRepo,
		status:  status,
		feed:    feed,
		log:     log,
	}
}

// Run subscribes to the three table channels and applies events until ctx is
// cancelled. Reconnecting a dropped transport is the feed's concern.
func (r *Reconciler) Run(ctx context.Context) error {
	empSub, err := r.feed.Subscribe(ctx, realtime.TableEmployees)
	if err != nil {
		return fmt.Errorf("subscribe employees: %w", err)
	}
	defer empSub.Close()

	projSub, err := r.feed.Subscribe(ctx, realtime.TableProjects)
	if err != nil {
		return fmt.Errorf("subscribe projects: %w", err)
	}
	defer projSub.Close()

	asgSub, err := r.feed.Subscribe(ctx, realtime.TableAssignments)
	if err != nil {
		return fmt.Errorf("subscribe assignments: %w", err)
	}
	defer asgSub.Close()

	r.log.Sugar().Infow("realtime reconciler running",
		"employees", empSub.State().String(),
		"projects", projSub.State().String(),
		"assignments", asgSub.State().String(),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-empSub.Events():
			if !ok {
				return nil
			}
			r.applyEmployee(e)
		case e, ok := <-projSub.Events():
			if !ok {
				return nil
			}
			r.applyProject(e)
		case e, ok := <-asgSub.Events():
			if !ok {
				return nil
			}
			r.applyAssignment(ctx, e)
		case err := <-empSub.Errors():
			r.log.Sugar().Warnw("employee feed error", "err", err)
		case err := <-projSub.Errors():
			r.log.Sugar().Warnw("project feed error", "err", err)
		case err := <-asgSub.Errors():
			r.log.Sugar().Warnw("assignment feed error", "err", err)
		}
	}
}

func (r *Reconciler) applyEmployee(e realtime.Event) {
	switch e.Type {
	case realtime.EventInsert:
		// The creating client may have applied its own insert already.
		if _, ok := r.cache.Employees.Get(e.Row.ID); ok {
			return
		}
		r.cache.Employees.Upsert(store.Record{ID: e.Row.ID, Name: e.Row.Name, Related: []store.Summary{}})
		r.status.Succeed(fmt.Sprintf("Employee %q added by another user", e.Row.Name))
	case realtime.EventUpdate:
		// Base-table updates never carry relation data; nil keeps it.
		r.cache.Employees.Upsert(store.Record{ID: e.Row.ID, Name: e.Row.Name})
	case realtime.EventDelete:
		r.cache.Employees.Remove(e.OldRow.ID)
		r.status.Succeed("Employee removed by another user")
	}
}

func (r *Reconciler) applyProject(e realtime.Event) {
	switch e.Type {
	case realtime.EventInsert:
		if _, ok := r.cache.Projects.Get(e.Row.ID); ok {
			return
		}
		r.cache.Projects.Upsert(store.Record{ID: e.Row.ID, Name: e.Row.Name, Related: []store.Summary{}})
		r.status.Succeed(fmt.Sprintf("Project %q added by another user", e.Row.Name))
	case realtime.EventUpdate:
		r.cache.Projects.Upsert(store.Record{ID: e.Row.ID, Name: e.Row.Name})
	case realtime.EventDelete:
		r.cache.Projects.Remove(e.OldRow.ID)
		r.status.Succeed("Project removed by another user")
	}
}

// applyAssignment re-fetches the employee named by the notification's foreign
// key and replaces it wholesale, relation list included. The project side of
// the pair is not refreshed here; it stays as-is until its own listing is
// next fetched or searched.
func (r *Reconciler) applyAssignment(ctx context.Context, e realtime.Event) {
	empID := e.Row.EmployeeID
	if empID == uuid.Nil {
		empID = e.OldRow.EmployeeID
	}
	if empID == uuid.Nil {
		return
	}

	emp, err := r.empRepo.GetWithProjects(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.cache.Employees.Remove(empID)
			return
		}
		r.log.Sugar().Warnw("refresh employee after assignment change", "employee_id", empID, "err", err)
		r.status.Fail("Failed to refresh employee")
		return
	}
	r.cache.Employees.Upsert(store.ProjectEmployee(*emp))
}
