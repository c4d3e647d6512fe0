package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/serializer"
	"github.com/staffdesk-io/staffdesk/internal/modules/service"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(s service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: s}
}

type CreateEmployeeReq struct {
	Name string `form:"name" json:"name" binding:"required" example:"Ada Lovelace"`
}

type RenameEmployeeReq struct {
	Name string `form:"name" json:"name" binding:"required" example:"Ada King"`
}

type SetEmployeeProjectsReq struct {
	ProjectIDs []uuid.UUID `form:"project_ids" json:"project_ids"`
}

type RemoveEmployeeProjectsReq struct {
	ProjectIDs []uuid.UUID `form:"project_ids" json:"project_ids" binding:"required,min=1"`
}

type SearchReq struct {
	Q string `form:"q" json:"q" example:"ada"`
}

// ListEmployees godoc
//
//	@Summary		List employees
//	@Description	Return the cached employee listing, or the active search results when a search is in effect
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]store.Record}
//	@Router			/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// RefreshEmployees godoc
//
//	@Summary		Refresh employees
//	@Description	Re-fetch all employees with their projects and replace the cache wholesale
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]store.Record}
//	@Router			/employees/refresh [post]
func (h *EmployeeHandler) RefreshEmployees(c *gin.Context) {
	if err := h.svc.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateEmployee godoc
//
//	@Summary		Create employee
//	@Description	Create a new employee with an empty project list
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateEmployeeReq	true	"CreateEmployee payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=store.Record}
//	@Router			/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	req := CreateEmployeeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("Employee name is required", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: rec})
}

// RenameEmployee godoc
//
//	@Summary		Rename employee
//	@Description	Update an employee's name, keeping its project assignments intact
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Param			employee_id	path	string						true	"Employee ID"	Format(uuid)
//	@Param			payload		body	handler.RenameEmployeeReq	true	"RenameEmployee payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Record}
//	@Router			/employees/{employee_id} [put]
func (h *EmployeeHandler) RenameEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := RenameEmployeeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("Employee name is required", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

// DeleteEmployee godoc
//
//	@Summary		Delete employee
//	@Description	Delete an employee and all of its project assignments
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Param			employee_id	path	string	true	"Employee ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/employees/{employee_id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

// SetProjects godoc
//
//	@Summary		Set employee projects
//	@Description	Replace an employee's project assignments with the given set; an empty set clears them
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Param			employee_id	path	string							true	"Employee ID"	Format(uuid)
//	@Param			payload		body	handler.SetEmployeeProjectsReq	true	"SetProjects payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Record}
//	@Router			/employees/{employee_id}/projects [put]
func (h *EmployeeHandler) SetProjects(c *gin.Context) {
	id, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := SetEmployeeProjectsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.SetProjects(c.Request.Context(), id, req.ProjectIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

// RemoveProjects godoc
//
//	@Summary		Remove employee projects
//	@Description	Remove the given projects from an employee's assignments, leaving the rest intact
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Param			employee_id	path	string								true	"Employee ID"	Format(uuid)
//	@Param			payload		body	handler.RemoveEmployeeProjectsReq	true	"RemoveProjects payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Record}
//	@Router			/employees/{employee_id}/projects [delete]
func (h *EmployeeHandler) RemoveProjects(c *gin.Context) {
	id, err := uuid.Parse(c.Param("employee_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := RemoveEmployeeProjectsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.RemoveProjects(c.Request.Context(), id, req.ProjectIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

// SearchEmployees godoc
//
//	@Summary		Search employees
//	@Description	Case-insensitive substring search on employee names; an empty query clears the search and returns the full listing
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Param			q	query	string	false	"Search term"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]store.Record}
//	@Router			/employees/search [get]
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	req := SearchReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	results, err := h.svc.Search(c.Request.Context(), req.Q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: results})
}

// ExportEmployees godoc
//
//	@Summary		Export employees
//	@Description	Render the cached employee roster as CSV, upload it to blob storage and return a presigned download URL
//	@Tags			employee
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.ExportResp}
//	@Router			/employees/export [post]
func (h *EmployeeHandler) ExportEmployees(c *gin.Context) {
	url, err := h.svc.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: ExportResp{URL: url}})
}

// ExportResp carries the presigned download URL of a finished export.
type ExportResp struct {
	URL string `json:"url"`
}
