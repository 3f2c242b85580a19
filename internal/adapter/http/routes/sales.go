package routes

import (
	"lotes_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSales = "/sales"

func addSaleRoutes(rg *gin.RouterGroup, participantHandler *handlers.ParticipantHandler, paymentHandler *handlers.SalePaymentHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("/:sale_id", participantHandler.GetSale)
		sales.GET("/:sale_id/participants/candidates", participantHandler.Candidates)
		sales.POST("/:sale_id/participants", participantHandler.Assign)

		sales.GET("/:sale_id/payments", paymentHandler.List)
		sales.GET("/:sale_id/payments/summary", paymentHandler.Summary)
		sales.POST("/:sale_id/payments/:payment_id/online", paymentHandler.PayOnline)
	}
}
