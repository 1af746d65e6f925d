package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/Jfrancis347/personalised-video-2/application/ports/outbound"
	"github.com/Jfrancis347/personalised-video-2/application/services"
	"github.com/Jfrancis347/personalised-video-2/config"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/adapters"
	"github.com/Jfrancis347/personalised-video-2/infrastructure/gin_interface/controllers"
	"github.com/Jfrancis347/personalised-video-2/middleware"
	mock_vendor "github.com/Jfrancis347/personalised-video-2/mock"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	heygenConfig, err := config.GetHeyGenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get heygen config")
	}

	hubspotConfig, err := config.GetHubSpotConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get hubspot config")
	}

	facebookConfig, err := config.GetFacebookConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get facebook config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	pollerConfig, err := config.GetPollerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get poller config")
	}

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	var heygenClient outbound.VideoVendorPort = adapters.NewHeyGenClient(contentFetcher, heygenConfig, zeroLogger)
	if os.Getenv("MOCK_VENDOR") == "true" {
		heygenClient = mock_vendor.NewVendor(zeroLogger)
	}
	hubspotClient := adapters.NewHubSpotClient(contentFetcher, hubspotConfig, zeroLogger)
	facebookInsights := adapters.NewFacebookInsightsClient(contentFetcher, facebookConfig, zeroLogger)

	generationStore := adapters.NewDynamoGenerationStore(zeroLogger, dynamoClient, dynamoConfig)
	projectStore := adapters.NewDynamoProjectStore(zeroLogger, dynamoClient, dynamoConfig)
	avatarRequestStore := adapters.NewDynamoAvatarRequestStore(zeroLogger, dynamoClient, dynamoConfig)
	avatarMediaStore := adapters.NewS3AvatarMediaStore(s3Client, s3Config)

	orchestrator := services.NewGenerationOrchestrator(zeroLogger, heygenClient, generationStore)
	campaignSender := services.NewCampaignSender(zeroLogger, orchestrator, workerPool)
	adsMetrics := services.NewAdsMetricsService(zeroLogger, facebookInsights)
	avatarRequests := services.NewAvatarRequestService(zeroLogger, avatarRequestStore, avatarMediaStore)
	projectRequests := services.NewProjectRequestService(zeroLogger, projectStore)

	poller := services.NewStatusPoller(zeroLogger, orchestrator, projectStore, generationStore,
		workerPool, pollerConfig.Interval)
	if err := poller.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start status poller")
	}
	defer poller.Stop()

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}

	router.Use(authHandler.AuthMiddleware())

	controllers.NewHealthController().RegisterRoutes(router)
	controllers.NewGenerationsController(zeroLogger, orchestrator, campaignSender, projectStore,
		generationStore, hubspotClient).RegisterRoutes(router)
	controllers.NewContactsController(zeroLogger, hubspotClient).RegisterRoutes(router)
	controllers.NewAvatarsController(zeroLogger, heygenClient).RegisterRoutes(router)
	controllers.NewAvatarRequestsController(zeroLogger, avatarRequests).RegisterRoutes(router)
	controllers.NewProjectRequestsController(zeroLogger, projectRequests).RegisterRoutes(router)
	controllers.NewAdsMetricsController(zeroLogger, adsMetrics).RegisterRoutes(router)
	controllers.NewWebhooksController(zeroLogger, orchestrator, projectStore, hubspotClient).RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
