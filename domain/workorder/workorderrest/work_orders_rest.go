package workorderrest

import (
	"encoding/json"
	"net/http"

	"shopfloor/common"
	"shopfloor/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathWorkOrders           = "/v1/work-orders"
	PathWorkOrderValidations = "/v1/work-order-validations"
)

// WorkOrderManager is the part of *workorder.Store served over http.
type WorkOrderManager interface {
	Create(order domain.WorkOrder) error
	Update(id string, patch *domain.WorkOrderPatch) error
	Remove(id string)
	AssignEmployee(workOrderID string, employee domain.Employee)
	UnassignEmployee(workOrderID, employeeID string)
	RecordProgress(workOrderID string, produced uint64) error
	SetStatus(workOrderID string, status domain.Status) error
	Detail(id string) (*domain.WorkOrder, error)
	Query(q *domain.WorkOrderQuery) []domain.WorkOrder
}

type handler struct {
	orders WorkOrderManager
}

type ValidationBody struct {
	Messages []string `json:"messages"`
}

// RegisterWorkOrdersRestAPI mounts the work order routes, writeMiddlewares guard the mutating routes only.
func RegisterWorkOrdersRestAPI(r gin.IRouter, orders WorkOrderManager, writeMiddlewares ...gin.HandlerFunc) {
	h := &handler{orders: orders}

	g := r.Group(PathWorkOrders)
	g.GET("", h.handleQuery)
	g.GET(":id", h.handleDetail)

	w := g.Group("", writeMiddlewares...)
	w.POST("", h.handleCreate)
	w.PATCH(":id", h.handleUpdate)
	w.DELETE(":id", h.handleDelete)
	w.POST(":id/employees", h.handleAssign)
	w.DELETE(":id/employees/:employeeId", h.handleUnassign)
	w.PUT(":id/progress", h.handleRecordProgress)
	w.PUT(":id/status", h.handleSetStatus)

	r.POST(PathWorkOrderValidations, h.handleValidate)
}

func (h *handler) handleQuery(c *gin.Context) {
	query := domain.WorkOrderQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	if query.Status != "" && query.Status != domain.StatusAll && !query.Status.Valid() {
		panic(domain.ErrUnknownStatus)
	}
	orders := h.orders.Query(&query)
	c.JSON(http.StatusOK, &common.PagedBody{List: orders, Total: uint64(len(orders))})
}

func (h *handler) handleDetail(c *gin.Context) {
	detail, err := h.orders.Detail(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *handler) handleCreate(c *gin.Context) {
	order := domain.WorkOrder{}
	if err := c.ShouldBindBodyWith(&order, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	if err := h.orders.Create(order); err != nil {
		panic(err)
	}
	detail, err := h.orders.Detail(order.ID)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *handler) handleUpdate(c *gin.Context) {
	patch := domain.WorkOrderPatch{}
	if err := c.ShouldBindBodyWith(&patch, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	id := c.Param("id")
	if err := h.orders.Update(id, &patch); err != nil {
		panic(err)
	}
	updated, err := h.orders.Detail(id)
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) handleDelete(c *gin.Context) {
	h.orders.Remove(c.Param("id"))
	c.AbortWithStatus(http.StatusNoContent)
}

func (h *handler) handleAssign(c *gin.Context) {
	employee := domain.Employee{}
	if err := c.ShouldBindBodyWith(&employee, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	h.orders.AssignEmployee(c.Param("id"), employee)
	c.AbortWithStatus(http.StatusNoContent)
}

func (h *handler) handleUnassign(c *gin.Context) {
	h.orders.UnassignEmployee(c.Param("id"), c.Param("employeeId"))
	c.AbortWithStatus(http.StatusNoContent)
}

func (h *handler) handleRecordProgress(c *gin.Context) {
	recording := domain.ProgressRecording{}
	if err := c.ShouldBindBodyWith(&recording, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	if err := h.orders.RecordProgress(c.Param("id"), *recording.Produced); err != nil {
		panic(err)
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func (h *handler) handleSetStatus(c *gin.Context) {
	setting := domain.StatusSetting{}
	if err := c.ShouldBindBodyWith(&setting, binding.JSON); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	if err := h.orders.SetStatus(c.Param("id"), setting.Status); err != nil {
		panic(err)
	}
	c.AbortWithStatus(http.StatusNoContent)
}

// handleValidate reports problems of a draft, binding rules are skipped so an incomplete draft gets messages instead of 400.
func (h *handler) handleValidate(c *gin.Context) {
	order := domain.WorkOrder{}
	if err := json.NewDecoder(c.Request.Body).Decode(&order); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &ValidationBody{Messages: domain.ValidateWorkOrder(&order)})
}
