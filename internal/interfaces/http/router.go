package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/receiving"
	"github.com/tu-usuario/rocketry-hub/internal/application/schedule"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *usecase.AuthUseCase
	InventoryUC    *usecase.InventoryUseCase
	RequestUC      *usecase.PurchaseRequestUseCase
	VendorUC       *usecase.VendorUseCase
	BOMUC          *usecase.BOMUseCase
	NotificationUC *usecase.NotificationUseCase
	Workflow       *receiving.WorkflowUseCase
	Scheduler      *schedule.Scheduler
	Hub            *ws.Hub
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Inventario confirmado
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Post("/import", inventoryHandler.Import)
	inventory.Get("/export", inventoryHandler.Export)
	inventory.Get("/template", inventoryHandler.Template)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Solicitudes de compra + workflow de recepción
	receivingHandler := NewReceivingHandler(deps.Workflow)
	requests := protected.Group("/purchase-requests")
	requestHandler := NewPurchaseRequestHandler(deps.RequestUC)
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)
	requests.Post("/import", requestHandler.Import)
	requests.Get("/export", requestHandler.Export)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id", requestHandler.Update)
	requests.Delete("/:id", requestHandler.Delete)
	requests.Post("/:id/approve", RequireRole("admin", "lead"), requestHandler.Approve)
	requests.Post("/:id/reject", RequireRole("admin", "lead"), requestHandler.Reject)
	requests.Post("/:id/move-to-pending", receivingHandler.MoveToPending)

	// Inventario pendiente de recepción
	pending := protected.Group("/pending")
	pending.Get("/", receivingHandler.ListPending)
	pending.Put("/:id", receivingHandler.EditPending)
	pending.Post("/:id/confirm", receivingHandler.ConfirmReceipt)
	protected.Get("/receiving-log", receivingHandler.ListLog)

	// Proveedores
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)
	vendors.Post("/:id/toggle-active", vendorHandler.ToggleActive)

	// Bills of materials
	bom := protected.Group("/bom")
	bomHandler := NewBOMHandler(deps.BOMUC)
	bom.Get("/", bomHandler.List)
	bom.Post("/", bomHandler.Create)
	bom.Get("/export", bomHandler.Export)
	bom.Get("/:id", bomHandler.GetByID)
	bom.Put("/:id", bomHandler.Update)
	bom.Delete("/:id", bomHandler.Delete)

	// Notificaciones
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Create)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Planificador semanal
	scheduleGroup := protected.Group("/schedule")
	scheduleHandler := NewScheduleHandler(deps.Scheduler)
	scheduleGroup.Get("/week", scheduleHandler.WeeklySchedule)
	scheduleGroup.Get("/members", scheduleHandler.ListMembers)
	scheduleGroup.Post("/members", scheduleHandler.AddMember)
	scheduleGroup.Get("/members/:id/workload", scheduleHandler.MemberWorkload)
	scheduleGroup.Get("/tasks", scheduleHandler.ListTasks)
	scheduleGroup.Post("/tasks", scheduleHandler.AddTask)
	scheduleGroup.Post("/tasks/:id/assign", scheduleHandler.AssignTask)
	scheduleGroup.Post("/tasks/:id/status", scheduleHandler.UpdateTaskStatus)

	// Websocket de eventos del tablero
	if deps.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
			deps.Hub.Register(conn)
			defer deps.Hub.Unregister(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}))
	}
}
