package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-io/staffdesk/internal/modules/serializer"
	"github.com/staffdesk-io/staffdesk/internal/store"
)

type StatusHandler struct {
	status *store.StatusChannel
}

func NewStatusHandler(status *store.StatusChannel) *StatusHandler {
	return &StatusHandler{status: status}
}

// GetStatus godoc
//
//	@Summary		Get status
//	@Description	Return the shared loading/error/success snapshot of the mutation pipeline
//	@Tags			status
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Status}
//	@Router			/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: h.status.Snapshot()})
}

// ClearStatus godoc
//
//	@Summary		Clear status
//	@Description	Clear the error and success messages immediately instead of waiting for the auto-clear timer
//	@Tags			status
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=store.Status}
//	@Router			/status [delete]
func (h *StatusHandler) ClearStatus(c *gin.Context) {
	h.status.Clear()
	c.JSON(http.StatusOK, serializer.Response{Data: h.status.Snapshot()})
}
