package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
	"travelpins/internal/adapters/export"
	"travelpins/internal/adapters/repositories"
	"travelpins/internal/config"
	"travelpins/internal/platform/graceful"
	"travelpins/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := graceful.Context(context.Background())
	err := rootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var cfg store.Config

	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Maintenance commands for the travel pins store",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.SQLitePath, "db", config.Get("DB_PATH", "data/pins.db"), "SQLite database path")
	root.PersistentFlags().StringVar(&cfg.DatabaseURL, "database-url", config.Get("DATABASE_URL", ""), "Postgres URL; overrides --db when set")

	root.AddCommand(
		initCommand(&cfg),
		seedCommand(&cfg),
		exportCommand(&cfg),
	)
	return root
}

func initCommand(cfg *store.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the places table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("Initializing database schema...")
			st, err := store.Open(*cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			log.Println("Schema ready.")
			return nil
		},
	}
}

func seedCommand(cfg *store.Config) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo pins from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(*cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			log.Println("Seeding database...")
			n, err := repositories.SeedFromJSON(cmd.Context(), st.Repo, seedPath)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			log.Printf("Seeding complete. inserted=%d", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&seedPath, "file", config.Get("SEED_PATH", "data/seeds/pins.json"), "seed file")
	return cmd
}

func exportCommand(cfg *store.Config) *cobra.Command {
	var bucket string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload a JSON snapshot of all pins to an S3-compatible bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, err := export.NewMinioExporter(export.MinioConfig{
				Endpoint:  config.Get("MINIO_ENDPOINT", ""),
				AccessKey: config.Get("MINIO_ACCESS_KEY", ""),
				SecretKey: config.Get("MINIO_SECRET_KEY", ""),
				UseSSL:    config.Bool("MINIO_USE_SSL"),
			})
			if err != nil {
				return err
			}

			st, err := store.Open(*cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			pins, err := st.Repo.List(ctx)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			key, err := exporter.Export(ctx, bucket, pins, time.Now())
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Printf("Exported %d pins to %s/%s\n", len(pins), bucket, key)
			return nil
		},
	}
	cmd.Flags().StringVar(&bucket, "bucket", config.Get("EXPORT_BUCKET", "travelpins"), "destination bucket")
	return cmd
}
