package main

import (
	"github.com/gin-gonic/gin"

	"msc-team.backend/internal/infrastructure/media"
	"msc-team.backend/internal/interfaces/http/handlers"
	"msc-team.backend/internal/interfaces/http/middleware"
	"msc-team.backend/pkg/metrics"
)

type routeDeps struct {
	teamMemberHandler *handlers.TeamMemberHandler
	uploader          media.Uploader
	uploadPolicy      media.Policy
	metrics           *metrics.Metrics
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		members := api.Group("/team-members")
		{
			members.POST("",
				middleware.IdempotencyMiddleware(),
				middleware.ImageUpload(d.uploader, d.uploadPolicy, true, d.metrics),
				d.teamMemberHandler.CreateTeamMember,
			)
			members.GET("", d.teamMemberHandler.ListTeamMembers)
			members.GET("/roster", d.teamMemberHandler.GetRoster)
			members.GET("/departments", d.teamMemberHandler.ListDepartments)
			members.GET("/rules", d.teamMemberHandler.GetValidationRules)
			members.GET("/:id", d.teamMemberHandler.GetTeamMember)
			members.PUT("/:id",
				middleware.ImageUpload(d.uploader, d.uploadPolicy, false, d.metrics),
				d.teamMemberHandler.UpdateTeamMember,
			)
			members.DELETE("/:id", d.teamMemberHandler.DeleteTeamMember)
		}
	}
}
