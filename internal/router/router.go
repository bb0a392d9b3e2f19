package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mishasvintus/cohort_gateway/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	healthHandler *handler.HealthHandler,
	cohortHandler *handler.CohortHandler,
	draftHandler *handler.DraftHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(), Metrics())

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Cohort endpoints
	r.GET("/cohorts", cohortHandler.ListCohorts)
	r.POST("/cohorts", cohortHandler.CreateCohort)
	r.GET("/cohorts/:id", cohortHandler.GetCohort)
	r.PUT("/cohorts/:id", cohortHandler.UpdateCohort)
	r.DELETE("/cohorts/:id", cohortHandler.DeleteCohort)
	r.GET("/cohorts/:id/members", cohortHandler.GetCohortMembers)
	r.GET("/cohorts/:id/phenotypes", cohortHandler.GetCohortPhenotypes)

	// Lookup endpoints
	r.GET("/concepts/:key/summary", cohortHandler.GetConceptSummary)
	r.POST("/members/decorate", cohortHandler.DecorateMembers)

	// Draft endpoints
	r.POST("/drafts", draftHandler.CreateDraft)
	r.GET("/drafts/:id", draftHandler.GetDraft)
	r.DELETE("/drafts/:id", draftHandler.DeleteDraft)
	r.POST("/drafts/:id/members", draftHandler.AddMembers)
	r.DELETE("/drafts/:id/members/:key", draftHandler.RemoveMember)
	r.POST("/drafts/:id/populate", draftHandler.PopulateDraft)
	r.POST("/drafts/:id/commit", draftHandler.CommitDraft)

	return r
}
