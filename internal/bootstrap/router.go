package bootstrap

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/config"
	adminmw "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/admin/middleware"
	httpapi "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/api/http"
	catalogdomain "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
	cataloghttp "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/http"
	catalogservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/service"
	entitlementhttp "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/http"
	entitlementrepo "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/repository"
	entitlementservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/service"
	guideshttp "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/guides/http"
	guidesservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/guides/service"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments"
	paymentshttp "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments/http"
	paymentsrepo "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments/repository"
	paymentsservice "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Ideas       map[string][]catalogdomain.ProjectIdea
	Redis       *redis.Client
	DB          *pgxpool.Pool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	accountRepo := entitlementrepo.NewAccountRepository(dep.Redis)

	var auditRepo *paymentsrepo.AuditRepository
	var audit paymentsservice.AuditLog
	if dep.DB != nil {
		auditRepo = paymentsrepo.NewAuditRepository(dep.DB)
		audit = auditRepo
	}

	catalogSvc := catalogservice.NewCatalogService(dep.Ideas, rand.New(rand.NewSource(time.Now().UnixNano())))
	entitlementSvc := entitlementservice.NewEntitlementService(accountRepo)
	guideSvc := guidesservice.NewGuideService(catalogSvc, entitlementSvc, accountRepo)
	paymentSvc := paymentsservice.NewPaymentService(accountRepo, audit)

	intent := payments.BuildUPIIntent(dep.Config.Payment.UPIID, dep.Config.Payment.PayeeName, dep.Config.Payment.Amount)

	api := r.Group("/api/v1")
	cataloghttp.New(catalogSvc).Register(api)
	entitlementhttp.New(entitlementSvc).Register(api)
	guideshttp.New(guideSvc).Register(api)

	paymentsHandler := paymentshttp.New(paymentSvc, auditRepo, intent)
	paymentsHandler.Register(api)

	admin := api.Group("/admin")
	admin.Use(adminmw.AdminKeyMiddleware(dep.Config.Admin.APIKey))
	paymentsHandler.RegisterAdmin(admin)

	return r
}
