package servehttp_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopfloor/domain/overview"
	"shopfloor/domain/workorder"
	"shopfloor/event"
	"shopfloor/fixtures"
	"shopfloor/infra/metrics"
	"shopfloor/servehttp"
	"shopfloor/testinfra"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"golang.org/x/time/rate"
)

func newEngine(limit rate.Limit, burst int) *gin.Engine {
	doc, err := fixtures.Default()
	Expect(err).To(BeNil())

	bus := event.NewBus()
	m := metrics.New("shopfloor")
	bus.Subscribe(m.HandleEvent)
	store, err := workorder.NewStore(bus, doc.WorkOrders...)
	Expect(err).To(BeNil())

	return servehttp.NewEngine(&servehttp.Components{
		WorkOrders:     store,
		Directory:      doc.Directory(),
		Overview:       overview.NewService(store, bus, time.Minute),
		Metrics:        m,
		WriteRateLimit: limit,
		WriteRateBurst: burst,
	})
}

func request(engine http.Handler, method, path, body string) (int, string) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	status, respBody, _ := testinfra.ExecuteRequest(req, engine)
	return status, respBody
}

func TestEngine(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should serve the seeded work orders and directories", func(t *testing.T) {
		engine := newEngine(0, 0)

		status, body := request(engine, http.MethodGet, "/v1/work-orders", "")
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"total":5`))

		status, body = request(engine, http.MethodGet, "/v1/employees?team=T-BETA&status=active", "")
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"total":2`))

		status, body = request(engine, http.MethodGet, "/", "")
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(Equal("shopfloor"))
	})

	t.Run("should refresh the overview and count events after a change", func(t *testing.T) {
		engine := newEngine(0, 0)

		status, before := request(engine, http.MethodGet, "/v1/overview?date=2024-03-10", "")
		Expect(status).To(Equal(http.StatusOK))
		Expect(before).To(ContainSubstring(`"total":5`))

		status, _ = request(engine, http.MethodPost, "/v1/work-orders",
			`{"id":"WO-30001","site":"Plant A","workCenter":"CNC-01","status":"planned","target":10}`)
		Expect(status).To(Equal(http.StatusCreated))

		status, after := request(engine, http.MethodGet, "/v1/overview?date=2024-03-10", "")
		Expect(status).To(Equal(http.StatusOK))
		Expect(after).To(ContainSubstring(`"total":6`))

		status, body := request(engine, http.MethodGet, "/metrics", "")
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`shopfloor_work_order_events_total{category="CREATED"} 1`))
		Expect(body).To(ContainSubstring(`shopfloor_http_requests_total{method="POST",path="/v1/work-orders",status="201"} 1`))
	})

	t.Run("should limit only the mutating routes", func(t *testing.T) {
		engine := newEngine(rate.Every(time.Hour), 1)

		status, _ := request(engine, http.MethodPut, "/v1/work-orders/WO-24002/status", `{"status":"paused"}`)
		Expect(status).To(Equal(http.StatusNoContent))
		status, body := request(engine, http.MethodPut, "/v1/work-orders/WO-24002/status", `{"status":"completed"}`)
		Expect(status).To(Equal(http.StatusTooManyRequests))
		Expect(body).To(ContainSubstring(`"code":"common.too_many_requests"`))

		for i := 0; i < 3; i++ {
			status, _ = request(engine, http.MethodGet, "/v1/work-orders/WO-24002", "")
			Expect(status).To(Equal(http.StatusOK))
		}
	})
}
