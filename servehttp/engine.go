package servehttp

import (
	"net/http"

	"shopfloor/bizerror"
	"shopfloor/common"
	"shopfloor/domain/directory"
	"shopfloor/domain/directory/directoryrest"
	"shopfloor/domain/overview"
	"shopfloor/domain/overview/overviewrest"
	"shopfloor/domain/workorder"
	"shopfloor/domain/workorder/workorderrest"
	"shopfloor/infra/metrics"
	"shopfloor/infra/ratelimit"
	"shopfloor/infra/tracing"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type Components struct {
	WorkOrders *workorder.Store
	Directory  *directory.Directory
	Overview   *overview.Service
	Metrics    *metrics.Metrics

	WriteRateLimit rate.Limit
	WriteRateBurst int
}

// NewEngine mounts every route of the service. Tracing and metrics wrap the error handling
// so that they observe the translated status codes.
func NewEngine(c *Components) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(tracing.TracingIngress())
	if c.Metrics != nil {
		engine.Use(c.Metrics.Middleware())
		engine.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
	}
	engine.Use(bizerror.ErrorHandling())

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.GetServiceName())
	})

	workorderrest.RegisterWorkOrdersRestAPI(engine, c.WorkOrders, ratelimit.Limiter(c.WriteRateLimit, c.WriteRateBurst))
	overviewrest.RegisterOverviewRestAPI(engine, c.Overview)
	directoryrest.RegisterDirectoryRestAPI(engine, c.Directory)
	return engine
}
