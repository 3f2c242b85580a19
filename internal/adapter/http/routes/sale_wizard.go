package routes

import (
	"lotes_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSaleWizards = "/sale-wizards"

func addSaleWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.SaleWizardHandler) {
	wizards := rg.Group(PathSaleWizards)
	{
		wizards.POST("", wizardHandler.Start)
		wizards.GET("/:id", wizardHandler.Get)
		wizards.DELETE("/:id", wizardHandler.Discard)

		// step 1: lot selection
		wizards.GET("/:id/lot-options", wizardHandler.LotOptions)
		wizards.PATCH("/:id/lot-selection/project", wizardHandler.ChangeProject)
		wizards.PATCH("/:id/lot-selection/stage", wizardHandler.ChangeStage)
		wizards.PATCH("/:id/lot-selection/block", wizardHandler.ChangeBlock)
		wizards.PATCH("/:id/lot-selection/lot", wizardHandler.SelectLot)

		// steps 2 and 3: sale type and financing
		wizards.PATCH("/:id/sale-type", wizardHandler.SetSaleType)
		wizards.PUT("/:id/financing", wizardHandler.ApplyFinancing)

		// step 4: client info
		wizards.PATCH("/:id/client/lead", wizardHandler.SelectLead)
		wizards.PATCH("/:id/client/address", wizardHandler.SetClientAddress)
		wizards.PATCH("/:id/client/toggles", wizardHandler.ToggleClientSections)
		wizards.PUT("/:id/client", wizardHandler.SubmitClientInfo)
		wizards.POST("/:id/lead-search", wizardHandler.SearchLeads)
		wizards.GET("/:id/leads", wizardHandler.Leads)

		wizards.POST("/:id/submit", wizardHandler.Submit)
	}
}
