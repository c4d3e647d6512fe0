package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffdesk-io/staffdesk/internal/modules/serializer"
	"github.com/staffdesk-io/staffdesk/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name string `form:"name" json:"name" binding:"required" example:"Apollo"`
}

type RenameProjectReq struct {
	Name string `form:"name" json:"name" binding:"required" example:"Apollo 11"`
}

type SetProjectEmployeesReq struct {
	EmployeeIDs []uuid.UUID `form:"employee_ids" json:"employee_ids"`
}

type RemoveProjectEmployeesReq struct {
	EmployeeIDs []uuid.UUID `form:"employee_ids" json:"employee_ids" binding:"required,min=1"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	Return the cached project listing, or the active search results when a search is in effect
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]store.Record}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// RefreshProjects godoc
//
//	@Summary		Refresh projects
//	@Description	Re-fetch all projects with their employees and replace the cache wholesale
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]store.Record}
//	@Router			/projects/refresh [post]
func (h *ProjectHandler) RefreshProjects(c *gin.Context) {
	if err := h.svc.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.List()})
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a new project with an empty employee list
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=store.Record}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("Project name is required", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: rec})
}

// RenameProject godoc
//
//	@Summary		Rename project
//	@Description	Update a project's name, keeping its employee assignments intact
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.RenameProjectReq	true	"RenameProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Record}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) RenameProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := RenameProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("Project name is required", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project and all of its employee assignments
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
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

// SetEmployees godoc
//
//	@Summary		Set project employees
//	@Description	Replace a project's employee assignments with the given set; an empty set clears them
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string							true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.SetProjectEmployeesReq	true	"SetEmployees payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Record}
//	@Router			/projects/{project_id}/employees [put]
func (h *ProjectHandler) SetEmployees(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := SetProjectEmployeesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.SetEmployees(c.Request.Context(), id, req.EmployeeIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

// RemoveEmployees godoc
//
//	@Summary		Remove project employees
//	@Description	Remove the given employees from a project's assignments, leaving the rest intact
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string								true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.RemoveProjectEmployeesReq	true	"RemoveEmployees payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Record}
//	@Router			/projects/{project_id}/employees [delete]
func (h *ProjectHandler) RemoveEmployees(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := RemoveProjectEmployeesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rec, err := h.svc.RemoveEmployees(c.Request.Context(), id, req.EmployeeIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: rec})
}

// SearchProjects godoc
//
//	@Summary		Search projects
//	@Description	Case-insensitive substring search on project names; an empty query clears the search and returns the full listing
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			q	query	string	false	"Search term"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]store.Record}
//	@Router			/projects/search [get]
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
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

// ExportProjects godoc
//
//	@Summary		Export projects
//	@Description	Render the cached project roster as CSV, upload it to blob storage and return a presigned download URL
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.ExportResp}
//	@Router			/projects/export [post]
func (h *ProjectHandler) ExportProjects(c *gin.Context) {
	url, err := h.svc.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: ExportResp{URL: url}})
}
