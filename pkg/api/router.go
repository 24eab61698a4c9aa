package api

import (
	"github.com/Atul9/coveralls-api/pkg/api/health"
	"github.com/Atul9/coveralls-api/pkg/api/jobs"
	"github.com/Atul9/coveralls-api/pkg/global"
	"github.com/Atul9/coveralls-api/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// Router for the coveralls ingestion stub
type Router struct {
	logger  lumber.Logger
	store   *jobs.Store
	baseURL string
}

// NewRouter returns instance of Router
func NewRouter(logger lumber.Logger, store *jobs.Store, baseURL string) Router {
	return Router{
		logger:  logger,
		store:   store,
		baseURL: baseURL,
	}
}

//Handler function will perform all route operations
func (r Router) Handler() *gin.Engine {
	r.logger.Infof("Setting up routes")
	router := gin.New()
	router.Use(gin.LoggerWithWriter(lumber.NewLevelWriter(r.logger, lumber.Info)), gin.Recovery())
	router.GET(global.HealthRoute, health.Handler)
	router.POST(global.JobsRoute, jobs.Handler(r.logger, r.store, r.baseURL))
	router.GET("/jobs/:id", jobs.GetHandler(r.store))

	return router
}
