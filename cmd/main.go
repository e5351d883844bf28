package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/traitlab/darkmirror/config"
	"github.com/traitlab/darkmirror/database"
	"github.com/traitlab/darkmirror/internal/cache"
	adminctrl "github.com/traitlab/darkmirror/internal/controller/admin"
	userctrl "github.com/traitlab/darkmirror/internal/controller/user"
	"github.com/traitlab/darkmirror/internal/logger"
	"github.com/traitlab/darkmirror/internal/middleware"
	"github.com/traitlab/darkmirror/internal/model"
	"github.com/traitlab/darkmirror/internal/repository"
	"github.com/traitlab/darkmirror/internal/scoring"
	"github.com/traitlab/darkmirror/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Dark Mirror API
// @version 1.0
// @description REST API for dark-trait personality assessments: Likert questionnaires, trait scoring, and per-user result history.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			scoring.NewCatalog,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewAssessmentRepository,
			repository.NewResultRepository,
			repository.NewAnswerRepository,
		),

		// Services
		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewAdminAssessmentService,
			func(repo repository.AssessmentRepository, cfg *config.Config) service.AssessmentService {
				ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
				return service.NewAssessmentService(repo, cache.New(ttl))
			},
			func(
				assessmentRepo repository.AssessmentRepository,
				resultRepo repository.ResultRepository,
				answerRepo repository.AnswerRepository,
				cfg *config.Config,
				db *gorm.DB,
			) service.SubmissionService {
				ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
				return service.NewSubmissionService(assessmentRepo, resultRepo, answerRepo, cache.New(ttl), db)
			},
		),

		// Controllers
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewAssessmentController,
			userctrl.NewResultController,
			adminctrl.NewAdminAssessmentController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAssessments),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	registerValidations()

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html; docs are generated with `swag init`.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// registerValidations adds the custom binding rules used by admin DTOs.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("likertscale", func(fl validator.FieldLevel) bool {
			scale := fl.Field().Int()
			return scale == 5 || scale == 7
		})
	}
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *userctrl.AuthController,
	assessmentCtrl *userctrl.AssessmentController,
	resultCtrl *userctrl.ResultController,
	adminCtrl *adminctrl.AdminAssessmentController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)

		// Assessment listing carries no sensitive data and needs no session.
		api.GET("/assessments", assessmentCtrl.ListAssessments)

		authed := api.Group("")
		authed.Use(middleware.Auth(tokens))
		{
			authed.GET("/assessments/:assessment_id/questions", assessmentCtrl.GetQuestions)
			authed.POST("/assessments/:assessment_id/results", resultCtrl.SubmitResult)
			authed.GET("/users/:user_id/results", resultCtrl.GetUserResults)
			authed.GET("/results/:result_id", resultCtrl.GetResultDetails)
			authed.GET("/results/:result_id/export", resultCtrl.ExportResult)
		}

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.Auth(tokens), middleware.RequireAdmin())
		{
			adminGroup.POST("/assessments", adminCtrl.CreateAssessment)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Dark Mirror API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Assessment{},
		&model.Item{},
		&model.AssessmentResult{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedAssessments loads the built-in scales into the store on first start.
// Existing rows are left untouched; definitions are immutable reference data.
func SeedAssessments(db *gorm.DB, catalog *scoring.Catalog) error {
	for _, def := range catalog.All() {
		var count int64
		if err := db.Model(&model.Assessment{}).Where("id = ?", def.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		assessment := model.Assessment{
			ID:       def.ID,
			Name:     def.Name,
			ScaleMax: def.ScaleMax,
		}
		for _, item := range def.Items {
			assessment.Items = append(assessment.Items, model.Item{
				Text:              item.Text,
				Trait:             item.Trait,
				Reversed:          item.Reversed,
				OrderInAssessment: item.Order,
			})
		}
		if err := db.Create(&assessment).Error; err != nil {
			log.Error().Err(err).Str("assessmentID", def.ID).Msg("Failed to seed assessment")
			return err
		}
		log.Info().Str("assessmentID", def.ID).Int("itemCount", len(assessment.Items)).Msg("Seeded assessment")
	}
	return nil
}
