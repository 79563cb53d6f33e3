package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/gin-gonic/gin"
)

// resourceHandler serves one screen: its list view, its state and its forms.
type resourceHandler[T domain.Record, C any, U any] struct {
	svc      portssvc.ResourceSvcFacade[T, C, U]
	messages store.Messages
}

func newResourceHandler[T domain.Record, C any, U any](svc portssvc.ResourceSvcFacade[T, C, U], plural, singular string) *resourceHandler[T, C, U] {
	return &resourceHandler[T, C, U]{svc: svc, messages: store.MessagesFor(plural, singular)}
}

// registerResourceRoutes mounts the CRUD routes of one screen on rg at path.
func registerResourceRoutes[T domain.Record, C any, U any](rg *gin.RouterGroup, path string, svc portssvc.ResourceSvcFacade[T, C, U], plural, singular string) *gin.RouterGroup {
	h := newResourceHandler(svc, plural, singular)

	group := rg.Group(path)
	{
		group.GET("", h.list)
		group.GET("/state", h.state)
		group.GET("/:id", h.get)
		group.POST("", h.create)
		group.PUT("/:id", h.update)
		group.DELETE("/:id", h.delete)
	}
	return group
}

// listQuery reads page and perPage; every other parameter is a filter.
func listQuery(c *gin.Context) domain.ListQuery {
	q := domain.ListQuery{}
	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "page":
			q.Page, _ = strconv.Atoi(values[0])
		case "perPage":
			q.PerPage, _ = strconv.Atoi(values[0])
		default:
			if q.Filters == nil {
				q.Filters = map[string]string{}
			}
			q.Filters[key] = values[0]
		}
	}
	return q
}

// list godoc
// @Summary List a page of records
// @Description Fetches a page into the screen's store and returns the resulting state and summary. A failed fetch still returns the previous page.
// @Tags resources
// @Produce  json
// @Param   resource path string true "Resource path, e.g. banking/accounts"
// @Param   page query int false "Page number"
// @Param   perPage query int false "Rows per page"
// @Success 200 {object} dto.ListResponse[domain.BankAccount]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ListResponse[domain.BankAccount] "Failed to fetch records"
// @Router /api/v1/{resource} [get]
func (h *resourceHandler[T, C, U]) list(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.svc.Fetch(ctx, listQuery(c))
	resp := dto.ListResponse[T]{ResourceState: state, Summary: []domain.Figure{}}
	if err != nil {
		status := statusFor(err)
		logFailure(c, err, h.messages.Fetch, status)
		if resp.Error == "" {
			resp.Error = apperrors.Normalize(err, h.messages.Fetch)
		}
		c.JSON(status, resp)
		return
	}

	figures, err := h.svc.Summarize(ctx, state.Records)
	if err != nil {
		resp.SummaryError = "Failed to compute summary"
	} else {
		resp.Summary = figures
	}
	c.JSON(http.StatusOK, resp)
}

// state godoc
// @Summary Get the screen state
// @Description Returns the records, pagination, loading flag and error currently held by the screen's store
// @Tags resources
// @Produce  json
// @Param   resource path string true "Resource path"
// @Success 200 {object} domain.ResourceState[domain.BankAccount]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/v1/{resource}/state [get]
func (h *resourceHandler[T, C, U]) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot())
}

// get godoc
// @Summary Get a record by ID
// @Tags resources
// @Produce  json
// @Param   resource path string true "Resource path"
// @Param   id path string true "Record ID"
// @Success 200 {object} domain.BankAccount
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /api/v1/{resource}/{id} [get]
func (h *resourceHandler[T, C, U]) get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.messages.Fetch)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// create godoc
// @Summary Create a record
// @Description Validates the form, posts it to the backend and appends the result to the current page
// @Tags resources
// @Accept  json
// @Produce  json
// @Param   resource path string true "Resource path"
// @Param   record body dto.CreateBankAccountRequest true "Form values"
// @Success 201 {object} domain.BankAccount
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Failed to create record"
// @Router /api/v1/{resource} [post]
func (h *resourceHandler[T, C, U]) create(c *gin.Context) {
	var req C
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, h.messages.Create)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// update godoc
// @Summary Update a record
// @Tags resources
// @Accept  json
// @Produce  json
// @Param   resource path string true "Resource path"
// @Param   id path string true "Record ID"
// @Param   record body dto.UpdateBankAccountRequest true "Changed fields"
// @Success 200 {object} domain.BankAccount
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /api/v1/{resource}/{id} [put]
func (h *resourceHandler[T, C, U]) update(c *gin.Context) {
	var req U
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, h.messages.Update)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// delete godoc
// @Summary Delete a record
// @Description Deletes the record and drops it, with any dependent rows, from the cached pages
// @Tags resources
// @Param   resource path string true "Resource path"
// @Param   id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /api/v1/{resource}/{id} [delete]
func (h *resourceHandler[T, C, U]) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.messages.Delete)
		return
	}
	c.Status(http.StatusNoContent)
}
