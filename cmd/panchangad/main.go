package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"panchangad"
	"panchangad/config"
	"panchangad/internal/server"
	"panchangad/internal/store"
	"panchangad/panchanga"
)

const sunriseSchedule = "@sunrise"

var (
	configFile string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "panchangad",
	Short: "Hindu calendrical (Panchanga) computation service",
	Long: `panchangad serves the five traditional Panchanga elements (tithi,
nakshatra, yoga, karana, rashi) for a civil date, time and UTC
offset, computed from truncated solar and lunar longitude series
with the Lahiri ayanamsa.

Run without arguments to start the HTTP service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service and almanac scheduler",
	RunE:  serve,
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the Panchanga for one civil moment and print it",
	RunE:  computeOne,
}

var (
	computeDate string
	computeTime string
	computeZone string
)

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Open(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	almanac := panchangad.Almanac{
		Location: panchangad.Location{
			Latitude:         cfg.Location.Latitude,
			Longitude:        cfg.Location.Longitude,
			UTCOffsetMinutes: cfg.Location.UTCOffsetMinutes,
		},
		Log:   logger,
		Store: st,
	}

	now := time.Now() // used for logging cron entries
	almanacCron := cron.New()
	for _, job := range cfg.Jobs {
		var schedule cron.Schedule
		if job.Schedule == sunriseSchedule {
			schedule = almanac
		} else {
			schedule, err = cron.ParseStandard(job.Schedule)
			if err != nil {
				logger.Error("parse schedule", zap.String("schedule", job.Schedule), zap.Error(err))
				continue
			}
		}

		almanacCron.Schedule(schedule, almanac)
		logger.Info("almanac job",
			zap.String("schedule", job.Schedule),
			zap.Time("next", schedule.Next(now)),
		)
	}

	srv := http.Server{
		Addr:    cfg.Listen,
		Handler: server.New(logger, st).Handler(),
	}

	almanacCron.Start()
	defer almanacCron.Stop()

	logger.Info("listening", zap.String("addr", srv.Addr))
	return srv.ListenAndServe()
}

func computeOne(cmd *cobra.Command, args []string) error {
	moment, err := server.ParseMoment(server.PanchangRequest{
		Date: computeDate,
		Time: computeTime,
		Zone: computeZone,
	})
	if err != nil {
		return err
	}

	result, err := panchanga.Compute(moment)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	computeCmd.Flags().StringVar(&computeDate, "date", "", "civil date, DD/MM/YYYY")
	computeCmd.Flags().StringVar(&computeTime, "time", "", "civil time, HH:MM (24-hour)")
	computeCmd.Flags().StringVar(&computeZone, "zone", "+00:00", "UTC offset, ±HH:MM")
	_ = computeCmd.MarkFlagRequired("date")
	_ = computeCmd.MarkFlagRequired("time")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(computeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
