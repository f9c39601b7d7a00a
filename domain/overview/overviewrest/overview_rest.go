package overviewrest

import (
	"net/http"
	"time"

	"shopfloor/common"
	"shopfloor/domain"
	"shopfloor/domain/overview"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathOverview = "/v1/overview"

	NowFunc = time.Now
)

type OverviewQuery struct {
	Date string `form:"date"`
}

type Summarizer interface {
	Summary(now time.Time) *overview.Summary
}

// RegisterOverviewRestAPI serves the summary of today, or of the day given by ?date=YYYY-MM-DD.
func RegisterOverviewRestAPI(r gin.IRouter, summarizer Summarizer, middleWares ...gin.HandlerFunc) {
	r.GET(PathOverview, append(middleWares, func(c *gin.Context) {
		query := OverviewQuery{}
		if err := c.MustBindWith(&query, binding.Query); err != nil {
			panic(&common.ErrBadParam{Cause: err})
		}
		now := NowFunc()
		if query.Date != "" {
			date, err := domain.ParseDate(query.Date)
			if err != nil {
				panic(&common.ErrBadParam{Cause: err})
			}
			now = date.Time()
		}
		c.JSON(http.StatusOK, summarizer.Summary(now))
	})...)
}
