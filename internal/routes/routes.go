package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-crm/internal/audit"
	"github.com/BruksfildServices01/sales-crm/internal/auth"
	"github.com/BruksfildServices01/sales-crm/internal/config"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/handlers"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	infraRepo "github.com/BruksfildServices01/sales-crm/internal/infra/repository"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	"github.com/BruksfildServices01/sales-crm/internal/ratelimit"
	ucAuth "github.com/BruksfildServices01/sales-crm/internal/usecase/auth"
	ucDashboard "github.com/BruksfildServices01/sales-crm/internal/usecase/dashboard"
	ucLead "github.com/BruksfildServices01/sales-crm/internal/usecase/lead"
	ucSale "github.com/BruksfildServices01/sales-crm/internal/usecase/sale"
	ucStage "github.com/BruksfildServices01/sales-crm/internal/usecase/stage"
	ucUser "github.com/BruksfildServices01/sales-crm/internal/usecase/user"
	"github.com/BruksfildServices01/sales-crm/internal/validators"
)

// RegisterRoutes wires the whole API onto r. The returned func flushes the
// audit queue and releases the rate limiter; call it on shutdown.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) func() {

	httperr.UseJSONFieldNames()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.Metrics())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	leadRepo := infraRepo.NewLeadGormRepository(db)
	stageRepo := infraRepo.NewStageGormRepository(db)
	saleRepo := infraRepo.NewSaleGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)

	loginLimiter, redisClient := newLoginLimiter(cfg)

	var domainCheck func(string) bool
	if cfg.CheckEmailDomain {
		domainCheck = validators.IsEmailDomainValid
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(userRepo, tokens, auditDispatcher)
	meUC := ucAuth.NewMe(userRepo)

	listStagesUC := ucStage.NewListStages(stageRepo)
	createStageUC := ucStage.NewCreateStage(stageRepo, auditDispatcher)
	updateStageUC := ucStage.NewUpdateStage(stageRepo, auditDispatcher)
	reorderStagesUC := ucStage.NewReorderStages(stageRepo, auditDispatcher)

	createLeadUC := ucLead.NewCreateLead(leadRepo, auditDispatcher)
	getLeadUC := ucLead.NewGetLead(leadRepo)
	listLeadsUC := ucLead.NewListLeads(leadRepo)
	updateLeadUC := ucLead.NewUpdateLead(leadRepo, auditDispatcher)
	deleteLeadUC := ucLead.NewDeleteLead(leadRepo, auditDispatcher)
	moveLeadUC := ucLead.NewMoveLead(leadRepo, auditDispatcher)
	markSoldUC := ucLead.NewMarkSold(leadRepo, auditDispatcher)

	listSalesUC := ucSale.NewListSales(saleRepo)
	updateSaleUC := ucSale.NewUpdateSale(saleRepo, auditDispatcher)

	listUsersUC := ucUser.NewListUsers(userRepo)
	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher, domainCheck)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher, domainCheck)
	deactivateUserUC := ucUser.NewDeactivateUser(userRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC)
	meHandler := handlers.NewMeHandler(meUC)

	stageHandler := handlers.NewStageHandler(
		listStagesUC,
		createStageUC,
		updateStageUC,
		reorderStagesUC,
	)

	leadHandler := handlers.NewLeadHandler(
		createLeadUC,
		getLeadUC,
		listLeadsUC,
		updateLeadUC,
		deleteLeadUC,
		moveLeadUC,
		markSoldUC,
	)

	saleHandler := handlers.NewSaleHandler(listSalesUC, updateSaleUC)

	userHandler := handlers.NewUserHandler(
		listUsersUC,
		createUserUC,
		updateUserUC,
		deactivateUserUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewSummary(reportRepo),
		ucDashboard.NewFunnel(reportRepo),
		ucDashboard.NewTimeSeries(reportRepo),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🔧 OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		httperr.Respond(c, httperr.ErrNotFound("not_found"))
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", middleware.RateLimit(loginLimiter), authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			// ------------------------------
			// STAGES
			// ------------------------------
			secured.GET("/stages", stageHandler.List)

			stagesAdmin := secured.Group("/stages")
			stagesAdmin.Use(middleware.RequireRole(access.RoleAdmin))
			{
				stagesAdmin.POST("", stageHandler.Create)
				stagesAdmin.POST("/reorder", stageHandler.Reorder)
				stagesAdmin.PUT("/:id", stageHandler.Update)
			}

			// ------------------------------
			// LEADS
			// ------------------------------
			secured.GET("/leads", leadHandler.List)
			secured.POST("/leads", leadHandler.Create)
			secured.GET("/leads/:id", leadHandler.Get)
			secured.PUT("/leads/:id", leadHandler.Update)
			secured.DELETE("/leads/:id", leadHandler.Delete)
			secured.POST("/leads/:id/move", leadHandler.Move)
			secured.POST("/leads/:id/mark-sold", leadHandler.MarkSold)

			// ------------------------------
			// SALES
			// ------------------------------
			secured.GET("/sales", saleHandler.List)
			secured.PUT("/sales/:id", saleHandler.Update)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/summary", dashboardHandler.Summary)
			secured.GET("/dashboard/funnel", dashboardHandler.Funnel)
			secured.GET("/dashboard/timeseries", dashboardHandler.TimeSeries)

			// ------------------------------
			// USERS + AUDIT (ADMIN / MANAGER)
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(access.RoleAdmin, access.RoleManager))
			{
				staff.GET("/users", userHandler.List)
				staff.POST("/users", userHandler.Create)
				staff.PUT("/users/:id", userHandler.Update)
				staff.DELETE("/users/:id", userHandler.Deactivate)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return func() {
		auditDispatcher.Close()
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Printf("redis close: %v", err)
			}
		}
	}
}

// newLoginLimiter uses Redis when REDIS_URL is set and reachable, otherwise
// an in-process window.
func newLoginLimiter(cfg *config.Config) (ratelimit.Limiter, *redis.Client) {
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(cfg.RedisURL)
		if err == nil {
			return ratelimit.NewRedisLimiter(client, "crm:login:", cfg.LoginRateLimit, cfg.LoginRateWindow), client
		}
		log.Printf("redis unavailable, login limiter in memory: %v", err)
	}
	return ratelimit.NewMemoryLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow), nil
}
