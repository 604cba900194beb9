package routes

import (
	"os"

	"hotel-reservation/cache"
	"hotel-reservation/constants"
	adminController "hotel-reservation/controllers/admin"
	authController "hotel-reservation/controllers/auth"
	companyController "hotel-reservation/controllers/company"
	customerController "hotel-reservation/controllers/customer"
	"hotel-reservation/logger"
	"hotel-reservation/middleware"
	"hotel-reservation/repository"
	bookingService "hotel-reservation/services/booking"
	paymentService "hotel-reservation/services/payment"
	"hotel-reservation/storage"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, roomCache *cache.RoomCache) {
	imageRoot := os.Getenv("IMAGE_ROOT")
	if imageRoot == "" {
		imageRoot = "./uploads"
	}
	images := storage.NewImageStore(imageRoot)

	asyncLogger := logger.NewAsyncLogger(db)
	users := repository.NewUserRepository(db, images)
	hotels := repository.NewHotelRepository(db, images)
	imageLists := repository.NewImageListRepository(db, images)
	companies := repository.NewCompanyRepository(db)

	booking := bookingService.NewService(db, roomCache)
	payment := paymentService.NewService(db, paymentService.NewStripeClient(os.Getenv("STRIPE_SECRET_KEY")))

	auth := authController.NewAuthController(db)
	bookings := customerController.NewBookingController(db, booking, payment)
	adminUsers := adminController.NewUserController(users, asyncLogger)
	companyHotels := companyController.NewHotelController(db, hotels, imageLists, companies, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/register", auth.Register)
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/logout", auth.LogOut)

	/*=============================================================================
	| Customer Routes
	===============================================================================*/
	customer := api.Group("/customer")

	// Browsing is open; booking and payment need a customer account.
	customer.Get("/hotels/:id/rooms", bookings.Filter)
	customer.Get("/hotels/:id/availability", bookings.Availability)

	customerBooking := customer.Group("/booking").Use(middleware.RequireRoles(constants.RoleCustomer))
	customerBooking.Get("/", bookings.Index)
	customerBooking.Post("/", bookings.Store)
	customerBooking.Post("/:id/pay", bookings.Pay)
	customerBooking.Get("/checkout/success", bookings.CheckoutSuccess)
	customerBooking.Get("/checkout/cancel", bookings.CancelCheckout)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin").Use(middleware.RequireRoles(constants.RoleAdmin))
	admin.Get("/users", adminUsers.Index)
	admin.Post("/users/:id/lockout", adminUsers.Lockout)
	admin.Put("/users/:id", adminUsers.Edit)
	admin.Delete("/users/:id", adminUsers.Delete)

	/*=============================================================================
	| Company Routes
	===============================================================================*/
	company := api.Group("/company").Use(middleware.RequireRoles(constants.RoleCompany))
	company.Get("/hotels", companyHotels.Index)
	company.Get("/hotels/:id", companyHotels.Details)
	company.Post("/hotels", companyHotels.Create)
	company.Put("/hotels/:id", companyHotels.Edit)
	company.Delete("/hotels/:id", companyHotels.Delete)

	company.Get("/hotels/:id/images", companyHotels.ImageIndex)
	company.Post("/hotels/:id/images", companyHotels.ImageCreate)
	company.Delete("/hotels/:id/images/:imageId", companyHotels.ImageDelete)
	company.Delete("/hotels/:id/images", companyHotels.ImageDeleteAll)
}
