// Package http wires the application together and exposes the Gin
// engine. The container builds every adapter, use case and handler from
// configuration; routes are registered per surface (auth, tenant,
// professional, messages).
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	authusecases "residconnect/internal/application/auth/usecases"
	messageusecases "residconnect/internal/application/message/usecases"
	professionalusecases "residconnect/internal/application/professional/usecases"
	ticketusecases "residconnect/internal/application/ticket/usecases"
	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/infrastructure/auth"
	"residconnect/internal/infrastructure/cache"
	"residconnect/internal/infrastructure/config"
	"residconnect/internal/infrastructure/email"
	"residconnect/internal/infrastructure/repository"
	"residconnect/internal/infrastructure/storage"
	authhandlers "residconnect/internal/interfaces/http/handlers/auth"
	messagehandlers "residconnect/internal/interfaces/http/handlers/message"
	tickethandlers "residconnect/internal/interfaces/http/handlers/ticket"
	"residconnect/internal/interfaces/http/middleware"
	"residconnect/internal/interfaces/http/routes"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/services/markdown"
)

// Container holds the wired application graph.
type Container struct {
	Engine *gin.Engine

	cfg *config.Config
	log logger.Interface
}

// NewContainer builds every layer from configuration. An optional redis
// client enables the table snapshot cache; pass nil to query the store
// directly.
func NewContainer(cfg *config.Config, rdb *redis.Client) (*Container, error) {
	log := logger.NewLogger()

	enforcer, err := authorization.NewEnforcer()
	if err != nil {
		return nil, err
	}

	// Record store adapter, optionally wrapped by the snapshot cache.
	schema := airtable.DefaultSchema()
	httpClient := airtable.NewHTTPClient(
		cfg.RecordStore.GetBaseURL(),
		cfg.RecordStore.ContentURL+"/"+cfg.RecordStore.BaseID,
		cfg.RecordStore.APIToken,
		log.Named("airtable"),
	)
	var client airtable.Client = httpClient
	if rdb != nil {
		ttl := time.Duration(cfg.Redis.SnapshotTTLSeconds) * time.Second
		client = cache.NewCachedClient(httpClient, rdb, ttl, log.Named("cache"))
	}

	tenantRepo := repository.NewTenantRepository(client, schema, log.Named("tenants"))
	professionalRepo := repository.NewProfessionalRepository(client, schema, log.Named("professionals"))
	ticketRepo := repository.NewTicketRepository(client, schema, log.Named("tickets"))
	messageRepo := repository.NewMessageRepository(client, schema, log.Named("messages"))

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpDays)
	invoiceStore := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicPath)
	markdownService := markdown.NewService()

	var notifier ticketusecases.AssignmentNotifier = email.NoopEmailService{}
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(&cfg.Email, log.Named("email"))
	}

	// Use cases.
	loginUC := authusecases.NewLoginUseCase(tenantRepo, professionalRepo, hasher, jwtService, log)
	registerUC := authusecases.NewRegisterUseCase(tenantRepo, hasher, jwtService, log)
	getProfileUC := authusecases.NewGetProfileUseCase(tenantRepo, professionalRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, tenantRepo, professionalRepo, notifier, log)
	listTenantTicketsUC := ticketusecases.NewListTenantTicketsUseCase(ticketRepo, log)
	listAssignedTicketsUC := ticketusecases.NewListAssignedTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, professionalRepo, invoiceStore, log)
	uploadImageUC := ticketusecases.NewUploadImageUseCase(httpClient, log)

	createMessageUC := messageusecases.NewCreateMessageUseCase(messageRepo, tenantRepo, professionalRepo, cfg.Residence.Name, log)
	listMessagesUC := messageusecases.NewListMessagesUseCase(messageRepo, tenantRepo, professionalRepo, markdownService, cfg.Residence.Name, log)

	// Handlers.
	authHandler := authhandlers.NewAuthHandler(loginUC, registerUC, getProfileUC)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		listTenantTicketsUC,
		listAssignedTicketsUC,
		getTicketUC,
		updateTicketUC,
		uploadImageUC,
	)
	messageHandler := messagehandlers.NewMessageHandler(createMessageUC, listMessagesUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	// Engine and routes.
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.ErrorHandler())
	if len(cfg.Server.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	}

	routes.SetupHealthRoutes(engine)
	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupTenantRoutes(engine, &routes.TenantRouteConfig{
		AuthHandler:    authHandler,
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
		Enforcer:       enforcer,
	})
	routes.SetupProfessionalRoutes(engine, &routes.ProfessionalRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
		Enforcer:       enforcer,
	})
	routes.SetupMessageRoutes(engine, &routes.MessageRouteConfig{
		MessageHandler: messageHandler,
		AuthMiddleware: authMiddleware,
		Enforcer:       enforcer,
	})

	// Invoice PDFs are served straight off the filesystem.
	engine.Static(cfg.Storage.PublicPath, invoiceStore.Dir())

	return &Container{
		Engine: engine,
		cfg:    cfg,
		log:    log,
	}, nil
}

// NewProfessionalProvisioner wires the CLI-only provisioning use case.
func NewProfessionalProvisioner(cfg *config.Config) professionalusecases.CreateProfessionalExecutor {
	log := logger.NewLogger()

	schema := airtable.DefaultSchema()
	client := airtable.NewHTTPClient(
		cfg.RecordStore.GetBaseURL(),
		cfg.RecordStore.ContentURL+"/"+cfg.RecordStore.BaseID,
		cfg.RecordStore.APIToken,
		log.Named("airtable"),
	)
	professionalRepo := repository.NewProfessionalRepository(client, schema, log.Named("professionals"))
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	return professionalusecases.NewCreateProfessionalUseCase(professionalRepo, hasher, log)
}
