// Command reconcile-regions sweeps every trip and repairs wishlist items
// that carry a stale region id. The API does the same repair lazily on
// region listing; this tool exists for one-off backfills after bulk data
// imports.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/vracar/tripfolio/internal/config"
	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	regionService := services.NewRegionService(db)
	wishlistService := services.NewWishlistService(db)

	rows, err := db.Pool.Query(ctx, `SELECT id FROM trips ORDER BY created_at`)
	if err != nil {
		log.Fatalf("Failed to list trips: %v", err)
	}
	defer rows.Close()

	var tripIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			log.Fatalf("Failed to scan trip id: %v", err)
		}
		tripIDs = append(tripIDs, id)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Failed to list trips: %v", err)
	}

	for _, tripID := range tripIDs {
		regions, err := regionService.List(ctx, tripID)
		if err != nil {
			log.Printf("Skipping trip %s: failed to list regions: %v", tripID, err)
			continue
		}
		wishlistService.ReconcileRegions(ctx, tripID, regions)
	}

	fmt.Printf("Reconciled %d trips\n", len(tripIDs))
}
