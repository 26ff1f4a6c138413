package routes

import (
	"log/slog"
	"time"

	"work-wizard/internal/config"
	"work-wizard/internal/database"
	"work-wizard/internal/delivery/http/handler"
	"work-wizard/internal/delivery/http/middleware"
	"work-wizard/internal/domain/user"
	"work-wizard/internal/infrastructure/cache"
	"work-wizard/internal/infrastructure/payment"
	persistence "work-wizard/internal/infrastructure/persistence/postgres"
	"work-wizard/internal/infrastructure/upload"
	"work-wizard/internal/notify"
	"work-wizard/internal/pkg/jwt"
	"work-wizard/internal/repository"
	"work-wizard/internal/usecase"
	"work-wizard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the process-level collaborators into route wiring.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Events notify.Sink
	Hub    *ws.Hub
	Logger *slog.Logger
}

// Register builds the repository / usecase / handler graph and mounts every
// endpoint group. Public routes go first; everything registered after the
// auth middleware group requires a bearer token.
func Register(app *fiber.App, d Deps) {
	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	var userRepo user.Repository = persistence.NewUserRepository(d.DB)
	appRepo := repository.NewPostgresApplicationRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	companyRepo := repository.NewPostgresCompanyRepository(d.DB)
	skillRepo := repository.NewPostgresUserSkillRepository(d.DB)

	uploader := upload.NewClient(d.Config.Upload.ServiceURL, d.Logger)
	gateway := payment.NewHMACGateway(d.Config.Payment.KeyID, d.Config.Payment.KeySecret)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, uploader)
	skillUC := usecase.NewUserSkillUsecase(skillRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, jobRepo, uploader, d.Cache)
	jobUC := usecase.NewJobUsecase(jobRepo, d.Cache, cacheTTL(d.Config))
	applicationUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, d.Events)
	paymentUC := usecase.NewPaymentUsecase(gateway, userRepo)

	healthHandler := handler.NewHealthHandler(d.DB)
	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	skillHandler := handler.NewUserSkillHandler(skillUC)
	companyHandler := handler.NewCompanyHandler(companyUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	paymentHandler := handler.NewPaymentHandler(paymentUC)
	wsHandler := ws.NewHandler(d.Hub, d.Logger)

	healthHandler.RegisterRoutes(app)

	api := app.Group("/api")

	authHandler.RegisterRoutes(api.Group("/auth"))

	publicJob := api.Group("/job")
	jobHandler.RegisterPublicRoutes(publicJob)

	api.Get("/ws/applications", wsHandler.HandleApplicationsWS)

	protected := api.Group("", authMw.Middleware())

	userGrp := protected.Group("/user")
	userHandler.RegisterRoutes(userGrp)
	skillHandler.RegisterRoutes(userGrp)
	applicationHandler.RegisterUserRoutes(userGrp)

	jobGrp := protected.Group("/job")
	jobHandler.RegisterProtectedRoutes(jobGrp)
	companyHandler.RegisterRoutes(jobGrp)
	applicationHandler.RegisterJobRoutes(jobGrp)

	paymentHandler.RegisterRoutes(protected.Group("/payment"))
}

func cacheTTL(cfg config.Config) time.Duration {
	if cfg.Redis.TTL > 0 {
		return cfg.Redis.TTL
	}
	return 10 * time.Minute
}
