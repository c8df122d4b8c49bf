// Package engine is the boundary the command line (or any other front end)
// talks to. It resolves names from user input, gates every application on
// validity, and records what happened through the logger and OTel counters.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/armourforge/vehicle-builder/internal/factory"
	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/internal/rules"
	"github.com/armourforge/vehicle-builder/pkg/core"
)

// ErrNotValid is returned by Apply when the modification is not legal for the unit.
var ErrNotValid = errors.New("modification not valid for unit")

// Logger interface for pluggable logging.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Catalog is the static data the engine builds units from.
type Catalog interface {
	VehicleClasses() []core.VehicleClass
	VehicleClass(name string) (core.VehicleClass, error)
	WeaponType(name string) (core.WeaponType, error)
	MountType(key string) (core.MountType, error)
}

// Option is a modification that may currently be applied to a unit.
type Option struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Cost       int    `json:"cost"`
	MaxAllowed string `json:"maxAllowed"`
}

// Engine exposes the modification rules by name.
type Engine struct {
	catalog    Catalog
	applicator *rules.Applicator
	logger     Logger

	built    metric.Int64Counter
	applied  metric.Int64Counter
	rejected metric.Int64Counter
}

// New creates an engine over cat.
// Uses the global OTel meter for metrics (no-op if not configured).
func New(cat Catalog, logger Logger) (*Engine, error) {
	e := &Engine{
		catalog:    cat,
		applicator: rules.NewApplicator(cat),
		logger:     logger,
	}

	m := meter()

	var err error
	e.built, err = m.Int64Counter(
		"engine.units.built",
		metric.WithDescription("Units built from a vehicle class"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating built counter: %w", err)
	}

	e.applied, err = m.Int64Counter(
		"engine.modifications.applied",
		metric.WithDescription("Modification instances applied"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating applied counter: %w", err)
	}

	e.rejected, err = m.Int64Counter(
		"engine.modifications.rejected",
		metric.WithDescription("Modification applications rejected as invalid"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}

	return e, nil
}

// Classes lists every vehicle class in catalog order.
func (e *Engine) Classes() []core.VehicleClass {
	return e.catalog.VehicleClasses()
}

// Build creates the default unit for the named class.
func (e *Engine) Build(className string) (core.Unit, error) {
	vc, err := e.catalog.VehicleClass(className)
	if err != nil {
		return core.Unit{}, err
	}
	u := factory.Build(vc)
	e.built.Add(context.Background(), 1, metric.WithAttributes(attribute.String("class", vc.Name)))
	e.logger.Debug("unit built", "class", vc.Name, "mounts", len(u.Mounts))
	return u, nil
}

// IsValid reports whether the named modification may be applied to u.
func (e *Engine) IsValid(u core.Unit, modName string) (bool, error) {
	name, err := modification.Parse(modName)
	if err != nil {
		return false, err
	}
	return rules.IsValid(u, name)
}

// CostToApplyNext returns the cost of one more instance of the named modification.
func (e *Engine) CostToApplyNext(u core.Unit, modName string) (int, error) {
	name, err := modification.Parse(modName)
	if err != nil {
		return 0, err
	}
	return rules.CostToApplyNext(u, name)
}

// CostOfApplied returns the total cost of the instances of the named
// modification currently on u. Modifications not applied cost nothing.
func (e *Engine) CostOfApplied(u core.Unit, modName string) (int, error) {
	name, err := modification.Parse(modName)
	if err != nil {
		return 0, err
	}
	q := u.Quantity(name.String())
	if q == 0 {
		return 0, nil
	}
	return rules.CostOfApplied(u, core.AppliedModification{Name: name.String(), Quantity: q})
}

// Apply returns a new unit with one instance of the named modification
// applied. Invalid applications fail with ErrNotValid and leave u as it was.
func (e *Engine) Apply(u core.Unit, modName string) (core.Unit, error) {
	name, err := modification.Parse(modName)
	if err != nil {
		return core.Unit{}, err
	}
	modAttr := metric.WithAttributes(attribute.String("modification", name.String()))

	ok, err := rules.IsValid(u, name)
	if err != nil {
		return core.Unit{}, err
	}
	if !ok {
		e.rejected.Add(context.Background(), 1, modAttr)
		e.logger.Debug("modification rejected", "unit", u.Name, "modification", name.String())
		return core.Unit{}, fmt.Errorf("%w: %s on %s", ErrNotValid, name, u.Name)
	}

	out, err := e.applicator.Apply(u, name)
	if err != nil {
		e.logger.Error("applying modification failed", "unit", u.Name, "modification", name.String(), "error", err)
		return core.Unit{}, err
	}

	e.applied.Add(context.Background(), 1, modAttr)
	e.logger.Debug("modification applied", "unit", u.Name, "modification", name.String(),
		"quantity", out.Quantity(name.String()))
	return out, nil
}

// ApplyAll applies each named modification in turn, stopping at the first failure.
func (e *Engine) ApplyAll(u core.Unit, modNames ...string) (core.Unit, error) {
	for _, n := range modNames {
		next, err := e.Apply(u, n)
		if err != nil {
			return core.Unit{}, err
		}
		u = next
	}
	return u, nil
}

// Available lists every modification currently valid for u, in catalog order,
// with the cost of applying it.
func (e *Engine) Available(u core.Unit) ([]Option, error) {
	var out []Option
	for _, name := range modification.All() {
		ok, err := rules.IsValid(u, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		cost, err := rules.CostToApplyNext(u, name)
		if err != nil {
			return nil, err
		}
		def, err := modification.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Option{
			Name:       name.String(),
			Kind:       def.Kind.String(),
			Cost:       cost,
			MaxAllowed: def.MaxAllowed.String(),
		})
	}
	return out, nil
}

// Cost returns the total points cost of u.
func (e *Engine) Cost(u core.Unit) (int, error) {
	return rules.UnitCost(u)
}

// OverMaxCost reports whether u costs more than its class allows.
func (e *Engine) OverMaxCost(u core.Unit) (bool, error) {
	return rules.OverMaxCost(u)
}

// EquipWeapon fits the named weapon type to a mount.
func (e *Engine) EquipWeapon(u core.Unit, mountID, weaponName string) (core.Unit, error) {
	wt, err := e.catalog.WeaponType(weaponName)
	if err != nil {
		return core.Unit{}, err
	}
	return u.EquipWeapon(mountID, wt)
}

// UnequipWeapon empties a mount.
func (e *Engine) UnequipWeapon(u core.Unit, mountID string) (core.Unit, error) {
	return u.UnequipWeapon(mountID)
}
