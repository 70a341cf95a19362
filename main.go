package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"
	"ttc-rider-server/config"
	"ttc-rider-server/db"
	"ttc-rider-server/di"
	"ttc-rider-server/ml"
	"ttc-rider-server/util"
)

// train imports the long-format ridership CSV into the sqlite store,
// fits the model and writes model.json/meta.json into artifacts/.
// Run it once before serving (and again whenever the data changes).
func train() error {
	csvPath := config.GetResourcePath(config.RIDERSHIP_CSV_RESOURCE)
	log.Printf("[MAIN] Reading ridership data from %s", csvPath)
	rows, err := util.ReadRidershipCSV(csvPath)
	if err != nil {
		return fmt.Errorf("failed to read ridership csv: %w", err)
	}
	log.Printf("[MAIN] Read %d ridership rows", len(rows))

	store, err := db.OpenRidershipStore(config.GetRidershipDBPath())
	if err != nil {
		return fmt.Errorf("failed to open ridership store: %w", err)
	}
	defer store.Close()

	if err := store.ReplaceAll(rows); err != nil {
		return fmt.Errorf("failed to import ridership rows: %w", err)
	}

	result, err := ml.Train(rows)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	log.Printf("[MAIN] Trained %s - r2: %.4f rmse: %.2f mae: %.2f",
		result.Meta.ModelVersion,
		result.Meta.Metrics.R2,
		result.Meta.Metrics.RMSE,
		result.Meta.Metrics.MAE)

	artifactsDir := filepath.Join(config.BaseDir(), config.ARTIFACTS_PATH_PREFIX)
	if err := result.SaveArtifacts(artifactsDir); err != nil {
		return fmt.Errorf("failed to save artifacts: %w", err)
	}
	log.Printf("[MAIN] Artifacts written to %s", artifactsDir)
	return nil
}

func main() {
	trainMode := flag.Bool("train", false, "import the ridership CSV and fit a new model instead of serving")
	env := flag.String("env", "prod", "runtime environment (prod uses real redis and the weather api)")
	flag.Parse()

	config.LoadEnv()

	if *trainMode {
		if err := train(); err != nil {
			log.Fatalf("[MAIN] %v", err)
		}
		return
	}

	container := di.NewContainer(*env)

	fmt.Println("refreshing options cache!")
	if err := container.OptionsRefresherService.Refresh(); err != nil {
		log.Printf("[MAIN] Initial options refresh failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.OptionsRefresherService.StartPeriodicJob(config.OPTIONS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.TTCRiderHttpServer.Start()
}
