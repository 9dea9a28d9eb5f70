package routes

import (
	"net/http"
	"time"

	"staybook/config"
	"staybook/handlers"
	"staybook/middleware"
	"staybook/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects everything route registration needs.
type HandlerBundle struct {
	Sessions *session.Manager
	Auth     *handlers.AuthHandler
	Wizard   *handlers.WizardHandler
	History  *handlers.HistoryHandler
	Browse   *handlers.BrowseHandler
	Admin    *handlers.AdminHandler
}

// RegisterAuthRoutes registers login/registration/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/register", hb.Auth.Register)
		api.POST("/logout", hb.Auth.Logout)

		api.GET("/me", middleware.SessionAuth(hb.Sessions), hb.Auth.Me)
	}
}

// RegisterBookingRoutes sets up the wizard endpoints. Room lookup and
// availability are public; submission requires a session.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/rooms/:roomId", hb.Wizard.StartWizard)
		api.GET("/availability", hb.Wizard.CheckAvailability)
		api.POST("/availability/bulk", hb.Browse.BulkAvailability)

		protected := api.Group("")
		protected.Use(middleware.SessionAuth(hb.Sessions))
		protected.POST("/rooms/:roomId/submit", hb.Wizard.Submit)
	}
}

// RegisterHistoryRoutes sets up the booking-history endpoints.
func RegisterHistoryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/my/bookings")
	{
		api.Use(middleware.SessionAuth(hb.Sessions))
		api.GET("", hb.History.List)
		api.GET("/:id/refund-preview", hb.History.RefundPreview)
		api.PATCH("/:id/cancel", hb.History.Cancel)
		api.GET("/:id/payment-qr", hb.History.PaymentQR)
		api.POST("/:id/attest-payment", hb.History.AttestPayment)
	}
}

// RegisterAdminRoutes sets up the back-office proxy endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.SessionAuth(hb.Sessions), middleware.RequireAdmin())
		api.GET("/users", hb.Admin.ListUsers)
		api.DELETE("/users/:id", hb.Admin.DeleteUser)
		api.GET("/bookings", hb.Admin.ListBookings)
		api.DELETE("/bookings/:id", hb.Admin.DeleteBooking)
		api.PATCH("/bookings/:id/confirm-payment", hb.Admin.ConfirmPayment)
		api.GET("/reports", hb.Admin.Reports)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Staybook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Session auth rides on a cookie, so the origin must be explicit for
	// credentialed requests.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
