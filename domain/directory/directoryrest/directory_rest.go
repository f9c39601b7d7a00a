package directoryrest

import (
	"net/http"

	"shopfloor/common"
	"shopfloor/domain"
	"shopfloor/domain/directory"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathEmployees = "/v1/employees"
	PathTeams     = "/v1/teams"
	PathSites     = "/v1/sites"
)

type KeywordQuery struct {
	Keyword string `form:"keyword"`
}

func RegisterDirectoryRestAPI(r gin.IRouter, dir *directory.Directory, middleWares ...gin.HandlerFunc) {
	g := r.Group("", middleWares...)

	g.GET(PathEmployees, func(c *gin.Context) {
		query := directory.PeopleQuery{}
		if err := c.MustBindWith(&query, binding.Query); err != nil {
			panic(&common.ErrBadParam{Cause: err})
		}
		people := dir.People(&query)
		c.JSON(http.StatusOK, &common.PagedBody{List: people, Total: uint64(len(people))})
	})
	g.GET(PathEmployees+"/:id", func(c *gin.Context) {
		person, found := dir.FindPerson(c.Param("id"))
		if !found {
			panic(domain.ErrNotFound)
		}
		c.JSON(http.StatusOK, person)
	})
	g.GET(PathTeams, func(c *gin.Context) {
		teams := dir.Teams(bindKeyword(c))
		c.JSON(http.StatusOK, &common.PagedBody{List: teams, Total: uint64(len(teams))})
	})
	g.GET(PathSites, func(c *gin.Context) {
		sites := dir.Sites(bindKeyword(c))
		c.JSON(http.StatusOK, &common.PagedBody{List: sites, Total: uint64(len(sites))})
	})
}

func bindKeyword(c *gin.Context) string {
	query := KeywordQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&common.ErrBadParam{Cause: err})
	}
	return query.Keyword
}
