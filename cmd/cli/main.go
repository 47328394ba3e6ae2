package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/config"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file to import")

	if len(os.Args) < 2 {
		fmt.Println("expected 'export' or 'import' subcommands")
		os.Exit(1)
	}

	cfg := config.Load()
	// Logs go to stderr so an export can be piped.
	logger.Initialize(cfg.LogLevel, cfg.AppEnv)
	log.Logger = log.Output(os.Stderr)

	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to db")
	}
	defer repo.Close()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		doExport(repo)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		doImport(repo, *importFile)
	default:
		fmt.Println("expected 'export' or 'import' subcommands")
		os.Exit(1)
	}
}

func doExport(repo *sqlite.SQLiteRepository) {
	products, err := repo.Dump(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(products); err != nil {
		log.Fatal().Err(err).Msg("Encode failed")
	}
}

func doImport(repo *sqlite.SQLiteRepository, filename string) {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open file")
	}
	defer file.Close()

	var products []domain.Product
	if err := json.NewDecoder(file).Decode(&products); err != nil {
		log.Fatal().Err(err).Msg("Decode failed")
	}

	ctx := context.Background()
	count := 0
	for i := range products {
		p := &products[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		// IDs are kept so redirect links stay valid across environments.
		existing, _ := repo.GetByID(ctx, p.ID)
		if existing != nil {
			log.Info().Str("id", p.ID).Msg("Skipping existing product")
			continue
		}

		if err := repo.Import(ctx, p); err != nil {
			log.Error().Err(err).Str("id", p.ID).Msg("Failed to import product")
			continue
		}
		count++
	}
	log.Info().Int("count", count).Msg("Imported products")
}
