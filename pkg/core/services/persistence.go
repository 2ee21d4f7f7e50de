package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/georgstage/vagtplan/pkg/core/registry"
	"github.com/georgstage/vagtplan/pkg/db"
)

// LoadRegistry hydrates the registry collections from the store.
func LoadRegistry(ctx context.Context, store db.Store, reg *registry.Registry, logger *zap.Logger) error {
	logger.Debug("Loading roster collections")

	periods, err := store.GetPeriods(ctx)
	if err != nil {
		return fmt.Errorf("failed to load duty periods: %w", err)
	}
	lists, err := store.GetLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to load duty lists: %w", err)
	}
	exclusions, err := store.GetExclusions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster exclusions: %w", err)
	}
	specialDuties, err := store.GetSpecialDuties(ctx)
	if err != nil {
		return fmt.Errorf("failed to load special duties: %w", err)
	}

	reg.Periods = periods
	reg.Lists = lists
	reg.Exclusions = exclusions
	reg.SpecialDuties = specialDuties

	logger.Debug("Roster collections loaded",
		zap.Int("periods", len(periods)),
		zap.Int("lists", len(lists)),
		zap.Int("exclusions", len(exclusions)),
		zap.Int("special_duties", len(specialDuties)))
	return nil
}

// SaveRegistry syncs the registry collections back to the store: rows whose
// entity no longer exists are deleted, everything else is upserted.
func SaveRegistry(ctx context.Context, store db.Store, reg *registry.Registry, logger *zap.Logger) error {
	stored, err := store.GetPeriods(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stored periods: %w", err)
	}
	keepPeriods := make(map[uuid.UUID]bool, len(reg.Periods))
	for _, p := range reg.Periods {
		keepPeriods[p.ID] = true
	}
	for _, p := range stored {
		if !keepPeriods[p.ID] {
			// Cascades to the period's duty lists.
			if err := store.DeletePeriod(ctx, p.ID); err != nil {
				return err
			}
		}
	}
	for _, p := range reg.Periods {
		if err := store.UpsertPeriod(ctx, p); err != nil {
			return err
		}
	}

	storedLists, err := store.GetLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stored lists: %w", err)
	}
	keepLists := make(map[uuid.UUID]bool, len(reg.Lists))
	for _, l := range reg.Lists {
		keepLists[l.ID] = true
	}
	for _, l := range storedLists {
		if !keepLists[l.ID] {
			if err := store.DeleteList(ctx, l.ID); err != nil {
				return err
			}
		}
	}
	for _, l := range reg.Lists {
		if err := store.UpsertList(ctx, l); err != nil {
			return err
		}
	}

	storedExclusions, err := store.GetExclusions(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stored exclusions: %w", err)
	}
	keepExclusions := make(map[uuid.UUID]bool, len(reg.Exclusions))
	for _, e := range reg.Exclusions {
		keepExclusions[e.ID] = true
	}
	for _, e := range storedExclusions {
		if !keepExclusions[e.ID] {
			if err := store.DeleteExclusion(ctx, e.ID); err != nil {
				return err
			}
		}
	}
	for _, e := range reg.Exclusions {
		if err := store.UpsertExclusion(ctx, e); err != nil {
			return err
		}
	}

	for _, hu := range reg.SpecialDuties {
		if err := store.UpsertSpecialDuty(ctx, hu); err != nil {
			return err
		}
	}

	logger.Debug("Roster collections saved",
		zap.Int("periods", len(reg.Periods)),
		zap.Int("lists", len(reg.Lists)),
		zap.Int("exclusions", len(reg.Exclusions)),
		zap.Int("special_duties", len(reg.SpecialDuties)))
	return nil
}
