// Command export moves a favorites set between a store and a JSON dump, for
// carrying favorites across devices or from the SQLite backend to MySQL.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"pokexplorer/internal/config"
	"pokexplorer/internal/model"
	"pokexplorer/internal/store"
)

func main() {
	dsn := flag.String("db", "", "favorites store DSN (default from config)")
	out := flag.String("out", "", "write favorites to this JSON file ('-' for stdout)")
	in := flag.String("in", "", "load favorites from this JSON file")
	flag.Parse()

	if (*out == "") == (*in == "") {
		log.Fatal("exactly one of -out or -in is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dsn == "" {
		*dsn = cfg.DBPath
	}

	favorites, err := store.New(*dsn)
	if err != nil {
		log.Fatalf("Failed to open favorites store: %v", err)
	}
	defer favorites.Close()

	ctx := context.Background()
	if *out != "" {
		if err := exportFavorites(ctx, favorites, *out); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}
	if err := importFavorites(ctx, favorites, *in); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func exportFavorites(ctx context.Context, favorites *store.Store, path string) error {
	items, err := favorites.List(ctx)
	if err != nil {
		return err
	}

	w := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return err
	}
	if path != "-" {
		log.Printf("Exported %d favorites to %s", len(items), path)
	}
	return nil
}

func importFavorites(ctx context.Context, favorites *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(items) == 0 {
		log.Printf("Nothing to import from %s", path)
		return nil
	}

	if err := favorites.Put(ctx, items...); err != nil {
		return err
	}
	log.Printf("Imported %d favorites from %s", len(items), path)
	return nil
}
