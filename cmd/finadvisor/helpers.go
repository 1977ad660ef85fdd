package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Goutham-1610/finance-advisor/internal/common"
	"github.com/Goutham-1610/finance-advisor/internal/config"
	"github.com/Goutham-1610/finance-advisor/internal/engine"
	"github.com/Goutham-1610/finance-advisor/internal/model"
	"github.com/Goutham-1610/finance-advisor/internal/storage"
)

// openEngine opens the configured database, migrates it, and returns an
// engine trained on the stored history. The caller must Close the storage.
func openEngine(ctx context.Context) (*engine.FinanceEngine, *storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, nil, common.NewUserError("could not open the database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, nil, common.NewUserError("could not upgrade the database schema", err)
	}

	eng := engine.New(store)
	if _, err := eng.Retrain(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return eng, store, nil
}

// parseDateArg accepts YYYY-MM-DD dates.
func parseDateArg(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return date, nil
}

// parseCategoryFlag converts an optional category flag, returning nil when
// the flag was not set.
func parseCategoryFlag(s string) (*model.Category, error) {
	if s == "" {
		return nil, nil
	}
	category, err := model.ParseCategory(s)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
