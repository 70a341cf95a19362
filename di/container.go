package di

import (
	"context"
	"fmt"
	"log"
	"ttc-rider-server/api"
	"ttc-rider-server/api/weather"
	"ttc-rider-server/config"
	daoredis "ttc-rider-server/dao/redis"
	"ttc-rider-server/db"
	"ttc-rider-server/ml"
	"ttc-rider-server/server"
	"ttc-rider-server/server/handlers"

	services "ttc-rider-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisOptionsDao         *daoredis.RedisOptionsDAO
	RidershipStore          *db.RidershipStore
	Model                   *ml.LinearModel
	PredictionService       *services.PredictionService
	OptionsService          *services.OptionsService
	OptionsRefresherService *services.OptionsRefresherService
	WeatherAPI              weather.WeatherAPI
	PredictHandler          *handlers.PredictHandler
	OptionsHandler          *handlers.OptionsHandler
	ProfileHandler          *handlers.ProfileHandler
	HealthHandler           *handlers.HealthHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	TTCRiderHttpServer      *server.TTCRiderHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		log.Printf("Using in-memory redis mock")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Options DAO
	redisOptionsDao := daoredis.NewRedisOptionsDAO(redisClient)

	// Open the ridership store (populated by the -train import step)
	ridershipStore, err := db.OpenRidershipStore(config.GetRidershipDBPath())
	if err != nil {
		panic(fmt.Sprintf("Failed to open ridership store: %v", err))
	}

	// Load the trained model and its metadata; the loader refuses to
	// serve a model whose feature schema drifted from the transforms.
	model, meta, err := ml.LoadModel(
		config.GetArtifactPath(ml.ModelArtifactFile),
		config.GetArtifactPath(ml.MetaArtifactFile))
	if err != nil {
		panic(fmt.Sprintf("Failed to load model artifacts: %v", err))
	}
	log.Printf("Loaded model %s", meta.ModelVersion)

	// Initialize WeatherApi - mock outside prod
	var weatherApiClient weather.WeatherAPI
	if env != "prod" {
		weatherApiClient = weather.NewWeatherApiClientMock()
		log.Printf("Using mock weather api")
	} else {
		log.Printf("Using prod weather api")
		httpClient := api.NewHTTPClient(config.WEATHER_ENDPOINT_BASE_V1)

		weatherApiClient = weather.NewWeatherApiClient(httpClient)
		weatherApiClient.SetCredentials(config.WeatherAPIKey())
	}

	// Initialize service layer
	predictionService := services.NewPredictionService(model, meta)
	optionsService := services.NewOptionsService(ridershipStore, redisOptionsDao)
	optionsRefresherService := services.NewOptionsRefresherService(optionsService)

	// Initialize handlers
	predictHandler := handlers.NewPredictHandler(predictionService)
	optionsHandler := handlers.NewOptionsHandler(optionsService)
	profileHandler := handlers.NewProfileHandler(predictionService)
	healthHandler := handlers.NewHealthHandler(predictionService, weatherApiClient)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(predictHandler, optionsHandler, profileHandler, healthHandler, muxRouter)

	// initialize the rider server
	ttcRiderHttpServer := server.NewTTCRiderHttpServer(router, muxRouter, config.SERVER_ADDRESS)

	return &Container{
		RedisClient:             redisClient,
		RedisOptionsDao:         redisOptionsDao,
		RidershipStore:          ridershipStore,
		Model:                   model,
		PredictionService:       predictionService,
		OptionsService:          optionsService,
		OptionsRefresherService: optionsRefresherService,
		WeatherAPI:              weatherApiClient,
		PredictHandler:          predictHandler,
		OptionsHandler:          optionsHandler,
		ProfileHandler:          profileHandler,
		HealthHandler:           healthHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		TTCRiderHttpServer:      ttcRiderHttpServer,
	}
}
