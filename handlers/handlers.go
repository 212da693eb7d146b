package handlers

import (
	"github.com/ashwinpura/hoteldesk-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	StayService    *services.StayService
	OrderService   *services.OrderService
	RoomService    *services.RoomService
	FolioService   *services.FolioService
	CashService    *services.CashService
	BanquetService *services.BanquetService
	AuditService   *services.AuditService
	ExcelService   *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	stayService := services.NewStayService()
	orderService := services.NewOrderService()
	folioService := services.NewFolioService()
	auditService := services.NewAuditService(stayService, orderService, folioService)
	return &HandlerServices{
		StayService:    stayService,
		OrderService:   orderService,
		RoomService:    services.NewRoomService(),
		FolioService:   folioService,
		CashService:    services.NewCashService(),
		BanquetService: services.NewBanquetService(folioService),
		AuditService:   auditService,
		ExcelService:   services.NewExcelService(auditService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
