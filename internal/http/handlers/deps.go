package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/mehuljariwala/admin-dashboard/internal/repos"
	"github.com/mehuljariwala/admin-dashboard/internal/services"
)

type Deps struct {
	PartyHandler     *PartyHandler
	RouteHandler     *RouteHandler
	ColorHandler     *ColorHandler
	DraftHandler     *DraftHandler
	OrderHandler     *OrderHandler
	InventoryHandler *InventoryHandler
	SubAdminHandler  *SubAdminHandler
	ReportHandler    *ReportHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	partyRepo := repos.NewPartyRepo(db)
	routeRepo := repos.NewRouteRepo(db)
	colorRepo := repos.NewColorRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	opRepo := repos.NewOperatorRepo(db)
	reportRepo := repos.NewReportRepo(db)

	catalogSvc := services.NewCatalogService(colorRepo)
	draftSvc := services.NewDraftService(partyRepo)
	orderSvc := services.NewOrderService(orderRepo, colorRepo)
	invSvc := services.NewInventoryService(invRepo, colorRepo)
	reportSvc := services.NewReportService(reportRepo)

	return &Deps{
		PartyHandler:     &PartyHandler{Parties: partyRepo},
		RouteHandler:     &RouteHandler{Routes: routeRepo},
		ColorHandler:     &ColorHandler{Colors: colorRepo, Catalog: catalogSvc},
		DraftHandler:     &DraftHandler{Drafts: draftSvc, Catalog: catalogSvc, Order: orderSvc},
		OrderHandler:     &OrderHandler{Orders: orderRepo, Parties: partyRepo},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		SubAdminHandler:  &SubAdminHandler{Operators: opRepo},
		ReportHandler:    &ReportHandler{Reports: reportSvc},
	}
}
