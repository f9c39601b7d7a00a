package bizerror_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopfloor/bizerror"
	"shopfloor/common"
	"shopfloor/domain"
	"shopfloor/testinfra"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	. "github.com/onsi/gomega"
)

func routerPanicking(err interface{}) *gin.Engine {
	router := gin.New()
	router.Use(bizerror.ErrorHandling())
	router.GET("/", func(c *gin.Context) {
		panic(err)
	})
	return router
}

func TestErrorHandling(t *testing.T) {
	RegisterTestingT(t)

	cases := []struct {
		name   string
		err    interface{}
		status int
		code   string
	}{
		{"should map not found to 404", domain.ErrNotFound, http.StatusNotFound, "common.record_not_found"},
		{"should map wrapped not found to 404", fmt.Errorf("detail: %w", domain.ErrNotFound), http.StatusNotFound, "common.record_not_found"},
		{"should map duplicated work order to 409", domain.ErrWorkOrderExisted, http.StatusConflict, "work_order.existed"},
		{"should map invalid target to 422", domain.ErrInvalidTarget, http.StatusUnprocessableEntity, "work_order.invalid_target"},
		{"should map unknown status to 400", domain.ErrUnknownStatus, http.StatusBadRequest, "work_order.unknown_status"},
		{"should map rate limiting to 429", common.ErrTooManyRequests, http.StatusTooManyRequests, "common.too_many_requests"},
		{"should map bad params to 400", &common.ErrBadParam{Cause: errors.New("bad")}, http.StatusBadRequest, "common.bad_param"},
		{"should map unexpected errors to 500", errors.New("boom"), http.StatusInternalServerError, "common.internal_server_error"},
		{"should map non error panics to 500", "boom", http.StatusInternalServerError, "common.internal_server_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body, _ := testinfra.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/", nil), routerPanicking(tc.err))
			Expect(status).To(Equal(tc.status))
			Expect(body).To(ContainSubstring(`"code":"` + tc.code + `"`))
		})
	}

	t.Run("should map body binding failures to 400", func(t *testing.T) {
		router := gin.New()
		router.Use(bizerror.ErrorHandling())
		router.POST("/", func(c *gin.Context) {
			payload := struct {
				Name string `json:"name" binding:"required"`
			}{}
			if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
				panic(err)
			}
			c.Status(http.StatusOK)
		})

		status, body, _ := testinfra.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/", nil), router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"bad_request.body_not_found","message":"body not found","data":null}`))

		status, body, _ = testinfra.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":}`)), router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(ContainSubstring(`"code":"bad_request.invalid_body_format"`))

		status, body, _ = testinfra.ExecuteRequest(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)), router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(ContainSubstring(`"code":"bad_request.validation_failed"`))
	})

	t.Run("should handle errors attached to the context", func(t *testing.T) {
		router := gin.New()
		router.Use(bizerror.ErrorHandling())
		router.GET("/", func(c *gin.Context) {
			_ = c.Error(domain.ErrNotFound)
		})
		status, _, _ := testinfra.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/", nil), router)
		Expect(status).To(Equal(http.StatusNotFound))
	})
}
