package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/pizzamaker/pizzamaker-api/docs" // Import generated docs
	"github.com/pizzamaker/pizzamaker-api/internal/config"
	"github.com/pizzamaker/pizzamaker-api/internal/controllers"
	"github.com/pizzamaker/pizzamaker-api/internal/database"
	"github.com/pizzamaker/pizzamaker-api/internal/mailer"
	"github.com/pizzamaker/pizzamaker-api/internal/middleware"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/services"
	"github.com/pizzamaker/pizzamaker-api/internal/token"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                *gorm.DB
	catalogService    services.CatalogService
	pizzaService      services.PizzaService
	orderService      services.OrderService
	userService       services.UserService
	pizzaController   controllers.PizzaController
	orderController   controllers.OrderController
	catalogController controllers.CatalogController
	authController    *controllers.AuthController
	configuration     *config.Config
)

// @title Pizzamaker API
// @version 1.0
// @description A storefront for composing custom pizzas and confirming orders by email
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	wireComponents()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema
// and seeds a starter catalog when the store is empty
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(
		&models.IngredientGroup{},
		&models.Ingredient{},
		&models.Pizza{},
		&models.PizzaLineItem{},
		&models.Order{},
		&models.User{},
	)
	checkPanicErr(err)

	// Seed only if the catalog is empty
	var count int64
	db.Model(&models.IngredientGroup{}).Count(&count)
	if count == 0 {
		log.Info("Catalog is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Catalog already seeded with initial data")
	}
}

// seedDatabase seeds the catalog with a starter set of groups and ingredients
func seedDatabase() {
	groups := map[string][]models.Ingredient{
		"Cheeses": {
			{Name: "Mozzarella", Cost: 1.5},
			{Name: "Parmesan", Cost: 2.0},
		},
		"Vegetables": {
			{Name: "Olives", Cost: 0.5},
			{Name: "Bell Peppers", Cost: 0.75},
			{Name: "Mushrooms", Cost: 0.8},
		},
		"Meats": {
			{Name: "Pepperoni", Cost: 2.5},
			{Name: "Ham", Cost: 2.25},
		},
	}
	for name, ingredients := range groups {
		group := models.IngredientGroup{Name: name}
		if err := db.Create(&group).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed group %s", name)
			continue
		}
		for _, ingredient := range ingredients {
			ingredient.GroupID = group.ID
			if err := db.Create(&ingredient).Error; err != nil {
				log.WithError(err).Errorf("Failed to seed ingredient %s", ingredient.Name)
			}
		}
	}
	log.Info("Database seeded successfully")
}

// wireComponents builds the mailer, token generator, services and controllers
func wireComponents() {
	smtpConfig := mailer.SMTPConfig{
		Host:     configuration.SMTPHost,
		Port:     configuration.SMTPPort,
		Username: configuration.SMTPUser,
		Password: configuration.SMTPPassword,
		From:     configuration.SMTPFrom,
	}
	var mail mailer.Mailer
	if smtpConfig.Configured() {
		mail = mailer.NewSMTPMailer(smtpConfig)
	} else {
		mail = mailer.NewLogMailer()
	}

	codes := token.NewGenerator(configuration.SecretKey)

	catalogService = services.NewCatalogService(db)
	pizzaService = services.NewPizzaService(db)
	orderService = services.NewOrderService(db, codes, mail, configuration.BaseURL)
	userService = services.NewUserService(db)

	pizzaController = controllers.NewPizzaController(pizzaService, orderService, catalogService)
	orderController = controllers.NewOrderController(orderService)
	catalogController = controllers.NewCatalogController(catalogService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Storefront routes
	router.GET("/", pizzaController.GetCatalog)
	router.POST("/create/", pizzaController.CreatePizza)

	// Order routes; the :id routes validate the UUID before any lookup
	router.GET("/order", orderController.ListOrders)
	order := router.Group("/order/:id")
	order.Use(middleware.ValidateUUIDParam("id"))
	{
		order.GET("", orderController.GetOrder)
		order.POST("", orderController.SubmitContact)
		order.GET("/confirm/:code", orderController.Confirm)
	}

	// Authentication routes for administrator accounts
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Administrator catalog CRUD (requires a valid admin JWT)
	admin := router.Group("/")
	admin.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/group", catalogController.ListGroups)
		admin.POST("/group", catalogController.CreateGroup)
		admin.PUT("/group/:id", catalogController.UpdateGroup)
		admin.DELETE("/group/:id", catalogController.DeleteGroup)

		admin.GET("/ingredient", catalogController.ListIngredients)
		admin.POST("/ingredient", catalogController.CreateIngredient)
		admin.PUT("/ingredient/:id", catalogController.UpdateIngredient)
		admin.DELETE("/ingredient/:id", catalogController.DeleteIngredient)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzamaker-api",
	})
}
