package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"

	repository2 "escola_crm/internal/adapter/persistence/repository"
	"escola_crm/internal/infrastructure/database"
	"escola_crm/internal/infrastructure/queue"
	"escola_crm/internal/infrastructure/render"
	"escola_crm/internal/infrastructure/signature"
	"escola_crm/internal/infrastructure/storage"
	"escola_crm/internal/jobs"
	"escola_crm/internal/usecase"
)

// The worker consumes the post-approval chain: proposal render, contract
// render, envelope dispatch. It shares the repositories and rendering stack
// with the API and only differs in its entry point.
func main() {
	redisOpt := queue.RedisConfigFromEnv()
	if err := queue.PingRedis(context.Background(), redisOpt); err != nil {
		log.Fatalf("Failed to reach the job broker: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	enrollmentRepo := repository2.NewEnrollmentDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	courseRepo := repository2.NewCourseDynamoRepository(ddb)
	periodRepo := repository2.NewPeriodDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	metadataRepo := repository2.NewMetadataDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	signerRepo := repository2.NewSignerContactDynamoRepository(ddb)

	artifactStorage := storage.NewLocalStorageFromEnv()
	renderer := render.NewChain(render.NewWkhtmltopdfEngine(), render.NewChromedpEngine())

	gateway, err := signature.NewZapSignGateway()
	if err != nil {
		log.Fatalf("Signature gateway not configured: %v", err)
	}

	metadataUseCase := usecase.NewMetadataUseCase(metadataRepo)
	contractResolver := usecase.NewContractResolver(contractRepo)
	documentUseCase := usecase.NewDocumentUseCase(
		enrollmentRepo, clientRepo, courseRepo, periodRepo,
		contractResolver, renderer, artifactStorage, documentRepo, metadataUseCase,
	)
	envelopeUseCase := usecase.NewEnvelopeUseCase(enrollmentRepo, clientRepo, signerRepo, metadataUseCase, gateway)

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()
	enqueuer := jobs.NewEnqueuer(asynqClient)

	worker := jobs.NewWorker(documentUseCase, envelopeUseCase, enqueuer)

	mux := asynq.NewServeMux()
	worker.Register(mux)

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: workerConcurrency(),
	})
	if err := srv.Run(mux); err != nil {
		log.Fatalf("Failed to startup the worker: %v", err)
	}
}

func workerConcurrency() int {
	if v := os.Getenv("WORKER_CONCURRENCY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 5
}
