package main

import (
	"context"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/plazacomercial/locales-service/internal/app"
	"github.com/plazacomercial/locales-service/internal/config"
	"github.com/plazacomercial/locales-service/internal/controllers"
	"github.com/plazacomercial/locales-service/internal/middleware"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/observability"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/routes"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	categoriaRepo := repositories.NewCategoriaRepository(application.DB)
	zonaRepo := repositories.NewZonaRepository(application.DB)
	metrajeRepo := repositories.NewMetrajeRepository(application.DB)
	localRepo := repositories.NewLocalRepository(application.DB)
	clienteRepo := repositories.NewClienteRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)
	tokenRepo := repositories.NewTokenRepository(application.DB)

	if cfg.LDFlag_SeedDBWithTestData {
		if err := app.SeedAllTestData(context.Background(), application.Layout, app.SeedRepos{
			Categorias: categoriaRepo,
			Zonas:      zonaRepo,
			Metrajes:   metrajeRepo,
			Locales:    localRepo,
			Users:      userRepo,
		}, cfg.SeedStaffPassword); err != nil {
			utils.Logger.Fatal("Failed to seed test data:", err)
		}
	}

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	jwtService := services.NewJWTService(cfg, tokenRepo, userRepo)
	authService := services.NewAuthService(userRepo, tokenRepo, jwtService, metrics)
	tokenCleanupService := services.NewTokenCleanupService(tokenRepo)

	catalogService := services.NewCatalogService(application.Layout, localRepo, metrics)
	categoriaService := services.NewCategoriaService(categoriaRepo)
	zonaService := services.NewZonaService(zonaRepo, categoriaRepo)
	metrajeService := services.NewMetrajeService(metrajeRepo)
	localService := services.NewLocalService(localRepo, zonaRepo, metrajeRepo)
	clienteService := services.NewClienteService(clienteRepo, localRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	healthController := controllers.NewHealthController(application.DB)
	authController := controllers.NewAuthController(authService)
	categoriaController := controllers.NewCategoriaController(categoriaService)
	zonaController := controllers.NewZonaController(zonaService)
	metrajeController := controllers.NewMetrajeController(metrajeService)
	localController := controllers.NewLocalController(localService, catalogService)
	clienteController := controllers.NewClienteController(clienteService)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()
	router.Use(observability.HTTPMetricsMiddleware(metrics))

	// Health / metrics
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")
	router.Handle(routes.Metrics, observability.Handler(registry)).Methods("GET")

	// Auth
	router.HandleFunc(routes.UsersRegister, authController.RegisterHandler).Methods("POST")
	router.HandleFunc(routes.UsersLogin, authController.LoginHandler).Methods("POST")
	router.HandleFunc(routes.UsersRefresh, authController.RefreshHandler).Methods("POST")
	router.HandleFunc(routes.UsersLogout, authController.LogoutHandler).Methods("POST")

	// Public catalog reads
	router.Handle(routes.LocalesGrupos, handlers.CompressHandler(http.HandlerFunc(localController.GruposHandler))).Methods("GET")
	router.HandleFunc(routes.Locales, localController.ListHandler).Methods("GET")
	router.HandleFunc(routes.LocalByID, localController.GetHandler).Methods("GET")
	router.HandleFunc(routes.Categorias, categoriaController.ListHandler).Methods("GET")
	router.HandleFunc(routes.Zonas, zonaController.ListHandler).Methods("GET")
	router.HandleFunc(routes.ZonaByID, zonaController.GetHandler).Methods("GET")
	router.HandleFunc(routes.Metrajes, metrajeController.ListHandler).Methods("GET")

	authMW := middleware.AuthMiddleware(cfg.SecretKey)

	// Catalog writes: staff | marketing
	catalogWrite := router.NewRoute().Subrouter()
	catalogWrite.Use(authMW, middleware.RoleRequired(models.RoleStaff, models.RoleMarketing))
	catalogWrite.HandleFunc(routes.Categorias, categoriaController.CreateHandler).Methods("POST")
	catalogWrite.HandleFunc(routes.CategoriaByID, categoriaController.DeleteHandler).Methods("DELETE")
	catalogWrite.HandleFunc(routes.Zonas, zonaController.CreateHandler).Methods("POST")
	catalogWrite.HandleFunc(routes.ZonaByID, zonaController.UpdateHandler).Methods("PUT")
	catalogWrite.HandleFunc(routes.ZonaByID, zonaController.DeleteHandler).Methods("DELETE")
	catalogWrite.HandleFunc(routes.Metrajes, metrajeController.CreateHandler).Methods("POST")
	catalogWrite.HandleFunc(routes.MetrajeByID, metrajeController.DeleteHandler).Methods("DELETE")
	catalogWrite.HandleFunc(routes.Locales, localController.CreateHandler).Methods("POST")
	catalogWrite.HandleFunc(routes.LocalByID, localController.UpdateHandler).Methods("PUT")
	catalogWrite.HandleFunc(routes.LocalByID, localController.DeleteHandler).Methods("DELETE")

	// Clientes: staff | asesor
	clientesRouter := router.NewRoute().Subrouter()
	clientesRouter.Use(authMW, middleware.RoleRequired(models.RoleStaff, models.RoleAsesor))
	clientesRouter.HandleFunc(routes.ClientesExport, clienteController.ExportHandler).Methods("GET")
	clientesRouter.HandleFunc(routes.Clientes, clienteController.ListHandler).Methods("GET")
	clientesRouter.HandleFunc(routes.Clientes, clienteController.CreateHandler).Methods("POST")
	clientesRouter.HandleFunc(routes.ClienteByID, clienteController.GetHandler).Methods("GET")
	clientesRouter.HandleFunc(routes.ClienteByID, clienteController.UpdateHandler).Methods("PUT")
	clientesRouter.HandleFunc(routes.ClienteByID, clienteController.DeleteHandler).Methods("DELETE")

	// Staff only
	staffRouter := router.NewRoute().Subrouter()
	staffRouter.Use(authMW, middleware.RoleRequired(models.RoleStaff))
	staffRouter.HandleFunc(routes.ProtectedStaff, authController.StaffOnlyHandler).Methods("GET")

	//----------------------------------------------------------------------
	// Setup expired-token cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()
	_, schErr := c.AddFunc("@every 1h", func() {
		if e := tokenCleanupService.CleanupExpired(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled token cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule token cleanup job")
	}
	c.Start()
	defer c.Stop()

	allowedOrigins := []string{utils.CORSAllowAllOrigins}
	if cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = []string{cfg.AppUrl}
	}

	co := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	handler := handlers.CombinedLoggingHandler(utils.Logger.Writer(), co.Handler(router))

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
