package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Server config
const SERVER_ADDRESS = ":8080"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Options refresher config
const OPTIONS_REFRESHER_SCHEDULE_MINUTES = 60

// Weather API config (enrichment only)
const WEATHER_ENDPOINT_BASE_V1 = "http://api.weatherapi.com/v1"
const WEATHER_CITY = "Toronto"
const WEATHER_API_KEY_ENV = "WEATHER_API_KEY"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const RIDERSHIP_CSV_RESOURCE = "TTC_Ridership_Long_Format.csv"
const CURRENT_CONDITIONS_RESOURCE = "current_conditions.json"

// Artifact paths
const ARTIFACTS_PATH_PREFIX = "artifacts"

// Data paths
const RIDERSHIP_DB_FILE = "data/ridership.db"

// LoadEnv loads .env (then .env.local overrides) from the project root.
// Missing files are fine; real environment variables always win.
func LoadEnv() {
	if err := godotenv.Load(filepath.Join(BaseDir(), ".env")); err == nil {
		log.Println("Loaded .env")
	}
	_ = godotenv.Overload(filepath.Join(BaseDir(), ".env.local"))
}

// WeatherAPIKey returns the weatherapi.com key from the environment.
func WeatherAPIKey() string {
	return os.Getenv(WEATHER_API_KEY_ENV)
}

// RedisAddress returns the Redis address, honoring the REDIS_ADDR override.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

func GetArtifactPath(artifact_file string) string {
	return filepath.Join(BaseDir(), ARTIFACTS_PATH_PREFIX, artifact_file)
}

func GetRidershipDBPath() string {
	return filepath.Join(BaseDir(), RIDERSHIP_DB_FILE)
}
