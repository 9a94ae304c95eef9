package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "escola_crm/docs" // This will be auto-generated
	"escola_crm/internal/adapter/http/handlers"
	repository2 "escola_crm/internal/adapter/persistence/repository"
	"escola_crm/internal/infrastructure/database"
	"escola_crm/internal/infrastructure/queue"
	"escola_crm/internal/infrastructure/render"
	"escola_crm/internal/infrastructure/storage"
	"escola_crm/internal/jobs"
	"escola_crm/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	enrollmentRepo := repository2.NewEnrollmentDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	courseRepo := repository2.NewCourseDynamoRepository(ddb)
	periodRepo := repository2.NewPeriodDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	metadataRepo := repository2.NewMetadataDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)

	artifactStorage := storage.NewLocalStorageFromEnv()
	downloader := storage.NewHTTPDownloader()
	renderer := render.NewChain(render.NewWkhtmltopdfEngine(), render.NewChromedpEngine())

	asynqClient := asynq.NewClient(queue.RedisConfigFromEnv())
	enqueuer := jobs.NewEnqueuer(asynqClient)

	metadataUseCase := usecase.NewMetadataUseCase(metadataRepo)
	contractResolver := usecase.NewContractResolver(contractRepo)
	documentUseCase := usecase.NewDocumentUseCase(
		enrollmentRepo, clientRepo, courseRepo, periodRepo,
		contractResolver, renderer, artifactStorage, documentRepo, metadataUseCase,
	)
	proposalUseCase := usecase.NewProposalUseCase(
		enrollmentRepo, clientRepo, periodRepo,
		metadataUseCase, documentUseCase, enqueuer,
	)
	webhookUseCase := usecase.NewWebhookUseCase(enrollmentRepo, metadataUseCase, artifactStorage, downloader)

	enrollmentHandler := handlers.NewEnrollmentHandler(proposalUseCase)
	documentHandler := handlers.NewDocumentHandler(proposalUseCase, documentUseCase, artifactStorage)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rendered artifacts are served straight from the uploads root.
	router.Static("/uploads", uploadsDir())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEnrollmentRoutes(v1, enrollmentHandler, documentHandler)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func uploadsDir() string {
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		return v
	}
	return "uploads"
}
