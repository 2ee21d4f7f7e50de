// Package db defines the storage interfaces of the roster core. The core has
// no file-format responsibility of its own; it only requires that entities
// round-trip through whatever store the host chooses, preserving enum wire
// values, ISO-8601 dates, and the period/list UUID linkage.
package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/georgstage/vagtplan/pkg/core/model"
)

// PeriodStore persists duty periods.
type PeriodStore interface {
	GetPeriods(ctx context.Context) ([]*model.DutyPeriod, error)
	UpsertPeriod(ctx context.Context, period *model.DutyPeriod) error
	DeletePeriod(ctx context.Context, id uuid.UUID) error
}

// ListStore persists duty lists.
type ListStore interface {
	GetLists(ctx context.Context) ([]*model.DutyList, error)
	UpsertList(ctx context.Context, list *model.DutyList) error
	DeleteList(ctx context.Context, id uuid.UUID) error
	DeleteListsForPeriod(ctx context.Context, periodID uuid.UUID) error
}

// ExclusionStore persists roster exclusions.
type ExclusionStore interface {
	GetExclusions(ctx context.Context) ([]model.RosterExclusion, error)
	UpsertExclusion(ctx context.Context, e model.RosterExclusion) error
	DeleteExclusion(ctx context.Context, id uuid.UUID) error
}

// SpecialDutyStore persists special-duty (HU) records, one per date.
type SpecialDutyStore interface {
	GetSpecialDuties(ctx context.Context) ([]model.SpecialDuty, error)
	UpsertSpecialDuty(ctx context.Context, hu model.SpecialDuty) error
}

// Store bundles every collection the registry hydrates from.
type Store interface {
	PeriodStore
	ListStore
	ExclusionStore
	SpecialDutyStore
	Close()
}
