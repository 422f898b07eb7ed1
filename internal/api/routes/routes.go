package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cvlm/crm-backend/internal/api/handlers"
)

type Deps struct {
	Prospect *handlers.ProspectHandler
	Export   *handlers.ExportHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/prospects/import", d.Prospect.Import)
	r.GET("/prospects", d.Prospect.List)
	r.GET("/prospects/:id", d.Prospect.Get)
	r.PUT("/prospects/:id/promo-code", d.Prospect.SetOwnPromoCode)
	r.PUT("/prospects/:id/requests/:request_id/status", d.Prospect.SetRequestStatus)
	r.PUT("/prospects/:id/requests/:request_id/promo-code", d.Prospect.SetRequestPromoCode)
	r.PUT("/prospects/:id/requests/:request_id/details", d.Prospect.SetRequestDetails)

	r.GET("/promo-codes/:code/owner", d.Prospect.CodeOwner)

	r.GET("/export/csv", d.Export.CSV)
}
