package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/solarcalc/pkg/calculator"
	"github.com/raterudder/solarcalc/pkg/log"
	"github.com/raterudder/solarcalc/pkg/storage"
	"github.com/raterudder/solarcalc/pkg/types"
)

// seed stores the standard template of every supported home size so a fresh
// database has configurations to load.
func main() {
	_ = godotenv.Load()

	s := storage.Configured()
	bedroomCounts := []int{1, 2, 3, 4}
	lflag.JSON(&bedroomCounts, "seed-bedrooms", bedroomCounts, "JSON list of bedroom counts to seed a template for")
	lflag.Configure()

	ctx := context.Background()
	err := run(ctx, s, bedroomCounts)
	if cerr := s.Close(); cerr != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to close storage", slog.Any("error", cerr))
	}
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to seed configurations", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, s storage.Database, bedroomCounts []int) error {
	calc := calculator.New(nil, nil, nil)
	for _, bedrooms := range bedroomCounts {
		form := calc.StandardTemplate(bedrooms)
		cfg := &types.SavedConfiguration{
			Appliances: form.Appliances,
			Settings:   form.Settings,
		}
		key := fmt.Sprintf("template-%d-bedroom", bedrooms)
		if err := s.SetConfiguration(ctx, key, cfg); err != nil {
			return fmt.Errorf("failed to seed %s: %w", key, err)
		}
		log.Ctx(ctx).InfoContext(ctx, "seeded configuration", slog.String("key", key), slog.Int("appliances", len(cfg.Appliances)))
	}
	return nil
}
