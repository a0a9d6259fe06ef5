package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/htloc/toeic-practice-api/config"
	"github.com/htloc/toeic-practice-api/database"
	_ "github.com/htloc/toeic-practice-api/docs" // Swagger docs - auto-generated
	adminctrl "github.com/htloc/toeic-practice-api/internal/controller/admin"
	userctrl "github.com/htloc/toeic-practice-api/internal/controller/user"
	"github.com/htloc/toeic-practice-api/internal/logger"
	"github.com/htloc/toeic-practice-api/internal/middleware"
	"github.com/htloc/toeic-practice-api/internal/model"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/htloc/toeic-practice-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title TOEIC Practice Exam API
// @version 1.0
// @description API for assembling TOEIC practice exams and grading submissions.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewExamPartRepository,
			repository.NewQuestionRepository,
			repository.NewExamResultRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewExamService,
			service.NewExamPartService,
			service.NewQuestionService,
			service.NewExamResultService,
			service.NewUserService,
			service.NewStatisticsService,
			func(
				examRepo repository.ExamRepository,
				partRepo repository.ExamPartRepository,
				questionRepo repository.QuestionRepository,
			) service.ExamAssemblyService {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				return service.NewExamAssemblyService(examRepo, partRepo, questionRepo, service.DefaultPartQuestionLimits, rng)
			},
			func(
				cfg *config.Config,
				userRepo repository.UserRepository,
				examRepo repository.ExamRepository,
				partRepo repository.ExamPartRepository,
				questionRepo repository.QuestionRepository,
				resultRepo repository.ExamResultRepository,
			) service.SubmissionService {
				return service.NewSubmissionService(userRepo, examRepo, partRepo, questionRepo, resultRepo, cfg.Grading.StrictMissingQuestion)
			},
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewExamController,
			userctrl.NewExamResultController,
			adminctrl.NewExamController,
			adminctrl.NewExamPartController,
			adminctrl.NewQuestionController,
			adminctrl.NewExamResultController,
			adminctrl.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
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

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userExamCtrl *userctrl.ExamController,
	userResultCtrl *userctrl.ExamResultController,
	adminExamCtrl *adminctrl.ExamController,
	adminPartCtrl *adminctrl.ExamPartController,
	adminQuestionCtrl *adminctrl.QuestionController,
	adminResultCtrl *adminctrl.ExamResultController,
	adminUserCtrl *adminctrl.UserController,
) {
	authRequired := middleware.RequireAuth(cfg.Auth.JWTSecret)

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/exams", userExamCtrl.GetAllExams)
		userAPIGroup.GET("/exams/:exam_id", userExamCtrl.GetExam)
		userAPIGroup.GET("/exams/:exam_id/questions", userExamCtrl.GetExamQuestions)
		userAPIGroup.GET("/exams/:exam_id/questions/paged", userExamCtrl.GetExamQuestionsPaged)

		userAPIGroup.POST("/exam-results/submit", authRequired, userResultCtrl.SubmitExamAnswers)
		userAPIGroup.GET("/exam-results/me", authRequired, userResultCtrl.GetMyExamResults)

		userAPIGroup.GET("/statistics/daily-attempts", userResultCtrl.GetDailyExamAttempts)
		userAPIGroup.GET("/statistics/average-score", userResultCtrl.GetAverageScoreLast7Days)
	}

	adminAPIGroup := router.Group("/api/v1/admin")
	{
		examsGroup := adminAPIGroup.Group("/exams")
		examsGroup.POST("", adminExamCtrl.CreateExam)
		examsGroup.PUT("/:id", adminExamCtrl.UpdateExam)
		examsGroup.DELETE("/:id", adminExamCtrl.DeleteExam)

		partsGroup := adminAPIGroup.Group("/exam-parts")
		partsGroup.POST("", adminPartCtrl.CreatePart)
		partsGroup.GET("", adminPartCtrl.GetAllParts)
		partsGroup.GET("/:id", adminPartCtrl.GetPart)
		partsGroup.PUT("/:id", adminPartCtrl.UpdatePart)
		partsGroup.DELETE("/:id", adminPartCtrl.DeletePart)

		questionsGroup := adminAPIGroup.Group("/questions")
		questionsGroup.POST("", adminQuestionCtrl.CreateQuestion)
		questionsGroup.GET("", adminQuestionCtrl.GetAllQuestions)
		questionsGroup.GET("/count", adminQuestionCtrl.CountQuestions)
		questionsGroup.GET("/:id", adminQuestionCtrl.GetQuestion)
		questionsGroup.PUT("/:id", adminQuestionCtrl.UpdateQuestion)
		questionsGroup.PUT("/:id/image", adminQuestionCtrl.UpdateQuestionImage)
		questionsGroup.DELETE("/:id", adminQuestionCtrl.DeleteQuestion)

		resultsGroup := adminAPIGroup.Group("/exam-results")
		resultsGroup.POST("", adminResultCtrl.CreateExamResult)
		resultsGroup.GET("", adminResultCtrl.GetAllExamResults)
		resultsGroup.GET("/:id", adminResultCtrl.GetExamResult)
		resultsGroup.PUT("/:id", adminResultCtrl.UpdateExamResult)
		resultsGroup.DELETE("/:id", adminResultCtrl.DeleteExamResult)

		usersGroup := adminAPIGroup.Group("/users")
		usersGroup.GET("", adminUserCtrl.GetAllUsers)
		usersGroup.GET("/:user_id", adminUserCtrl.GetUser)
		usersGroup.GET("/:user_id/exam-results", adminResultCtrl.GetExamResultsByUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("TOEIC Practice API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Exam{},
		&model.ExamPart{},
		&model.Question{},
		&model.ExamResult{},
		&model.Detail{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
