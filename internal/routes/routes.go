package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/auth"
	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	dbpkg "github.com/BruksfildServices01/estetica-agenda/internal/db"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/handlers"
	infraRepo "github.com/BruksfildServices01/estetica-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/estetica-agenda/internal/middleware"
	"github.com/BruksfildServices01/estetica-agenda/internal/pix"
	ucAppointment "github.com/BruksfildServices01/estetica-agenda/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	store := newStore(cfg)

	auditLogger := audit.New(cfg.AuditFile)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	strategy := auth.New(cfg)

	pixClient := newPixClient(cfg)
	pixGateway := pix.NewGateway(cfg, store, auditDispatcher, pixClient)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateManualAppointment(store, auditDispatcher)
	updateUC := ucAppointment.NewUpdateObservation(store, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(store, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(store)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(strategy, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(createUC, updateUC, deleteUC, listUC)
	pixHandler := handlers.NewPixHandler(pixGateway)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 💸 PIX (público — chamado pelo checkout)
		// ------------------------------
		api.POST("/pix/generate", pixHandler.Generate)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(strategy))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
		}
	}
}

// newStore escolhe o motor de persistência: Postgres quando DATABASE_URL
// está configurado, senão o arquivo JSON legado.
func newStore(cfg *config.Config) domain.Store {
	if cfg.DatabaseURL != "" {
		return infraRepo.NewAppointmentGormStore(dbpkg.NewDB(cfg))
	}
	return infraRepo.NewAppointmentFileStore(cfg.DataFile)
}

// newPixClient devolve nil quando o canal mTLS não pode ser montado — o
// gateway opera em mock nesse caso.
func newPixClient(cfg *config.Config) *pix.Client {
	if cfg.MockMode {
		return nil
	}

	cache := newTokenCache(cfg)

	client, err := pix.NewClient(cfg.Inter, cache)
	if err != nil {
		log.Printf("Banco Inter certificates not found. Using MOCK MODE. (%v)", err)
		return nil
	}
	return client
}

func newTokenCache(cfg *config.Config) pix.TokenCache {
	if cfg.RedisURL != "" {
		cache, err := pix.NewRedisTokenCache(cfg.RedisURL)
		if err == nil {
			return cache
		}
		log.Printf("invalid REDIS_URL, falling back to in-memory token cache: %v", err)
	}
	return pix.NewMemoryTokenCache()
}
