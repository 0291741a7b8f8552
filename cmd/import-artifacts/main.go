// Command import-artifacts copies exported model artifacts into the registry table.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hotel-cancellation/config"
	"hotel-cancellation/services"
)

func main() {
	classifier := flag.String("classifier", "artifacts/classifier.json", "exported classifier")
	scaler := flag.String("scaler", "artifacts/scaler.json", "exported scaler")
	schema := flag.String("schema", "artifacts/model_columns.json", "exported feature schema")
	version := flag.String("version", "", "registry version (defaults to the schema version)")
	timeout := flag.Duration("timeout", 30*time.Second, "import timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	read := func(path string) []byte {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		return data
	}
	clfData, scalerData, schemaData := read(*classifier), read(*scaler), read(*schema)

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Artifact registry connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	registry := services.NewRegistryService(db, "")
	artifacts, err := registry.Import(ctx, *version, clfData, scalerData, schemaData)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	stored := *version
	if stored == "" {
		stored = artifacts.Schema.Version()
	}
	log.Printf("✅ Imported artifacts version %s (%d columns)", stored, artifacts.Schema.Len())
}
