package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pourhouse/config"
	"pourhouse/internal/service"
	"pourhouse/internal/transport/websocket"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	hub      *websocket.NotificationHub
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, hub *websocket.NotificationHub) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		hub:      hub,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id", h.updateUser)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		business := api.Group("/business")
		{
			business.GET("/", h.getBusinessInfo)
			business.GET("/status", h.getBusinessStatus)
			business.GET("/hours", h.getWeekSchedule)

			manage := business.Group("/")
			manage.Use(h.authMiddleware(), h.managerMiddleware())
			{
				manage.PUT("/", h.updateBusinessInfo)
				manage.PUT("/hours", h.updateHours)
				manage.POST("/hero", h.uploadHeroImage)
			}
		}

		menu := api.Group("/menu")
		{
			menu.GET("/", h.getPublicMenu)
			menu.GET("/featured", h.getFeaturedItems)

			categories := menu.Group("/categories")
			{
				categories.GET("/", h.getCategories)

				manage := categories.Group("/")
				manage.Use(h.authMiddleware(), h.managerMiddleware())
				{
					manage.POST("/", h.createCategory)
					manage.PUT("/:id", h.updateCategory)
					manage.DELETE("/:id", h.deleteCategory)
				}
			}

			items := menu.Group("/items")
			{
				items.GET("/", h.getMenuItems)
				items.GET("/:id", h.getMenuItemByID)

				// Рецепты видны всему персоналу, правит их менеджер.
				items.GET("/:id/recipe", h.authMiddleware(), h.getRecipe)

				manage := items.Group("/")
				manage.Use(h.authMiddleware(), h.managerMiddleware())
				{
					manage.POST("/", h.createMenuItem)
					manage.PUT("/:id", h.updateMenuItem)
					manage.DELETE("/:id", h.deleteMenuItem)
					manage.POST("/:id/image", h.uploadMenuItemImage)

					manage.POST("/:id/recipe", h.createRecipe)
					manage.PUT("/:id/recipe", h.updateRecipe)
					manage.DELETE("/:id/recipe", h.deleteRecipe)
				}
			}
		}

		employees := api.Group("/employees")
		employees.Use(h.authMiddleware())
		{
			employees.GET("/me", h.getMyEmployeeProfile)

			manage := employees.Group("/")
			manage.Use(h.managerMiddleware())
			{
				manage.POST("/", h.createEmployee)
				manage.GET("/", h.getEmployees)
				manage.GET("/:id", h.getEmployeeByID)
				manage.PUT("/:id", h.updateEmployee)
				manage.DELETE("/:id", h.deleteEmployee)
			}
		}

		shifts := api.Group("/shifts")
		shifts.Use(h.authMiddleware())
		{
			shifts.GET("/me", h.getMyShifts)

			manage := shifts.Group("/")
			manage.Use(h.managerMiddleware())
			{
				manage.POST("/", h.createShift)
				manage.GET("/", h.getShifts)
				manage.GET("/:id", h.getShiftByID)
				manage.PUT("/:id", h.updateShift)
				manage.DELETE("/:id", h.deleteShift)
			}
		}

		contact := api.Group("/contact")
		{
			contact.POST("/", h.submitContact)

			manage := contact.Group("/")
			manage.Use(h.authMiddleware(), h.managerMiddleware())
			{
				manage.GET("/", h.getContactSubmissions)
				manage.GET("/:id", h.getContactSubmissionByID)
				manage.PUT("/:id/respond", h.respondContactSubmission)
				manage.DELETE("/:id", h.deleteContactSubmission)
			}
		}
	}

	// WebSocket-канал уведомлений, авторизация внутри обработчика.
	router.GET("/ws/notifications", h.hub.HandleWebSocket)
}
