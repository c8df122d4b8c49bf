package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/armourforge/vehicle-builder/internal/catalog"
	"github.com/armourforge/vehicle-builder/internal/dispatcher"
	"github.com/armourforge/vehicle-builder/internal/engine"
	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/armourforge/vehicle-builder/pkg/core"
)

// app holds what the command handlers share.
type app struct {
	engine  *engine.Engine
	catalog *catalog.Catalog
	store   storage.Backend
	log     *slog.Logger
	opts    options
}

// ClassSummary is one row of the classes command.
type ClassSummary struct {
	Name     string           `json:"name"`
	Size     core.VehicleSize `json:"size"`
	BaseCost int              `json:"baseCost"`
	MaxCost  int              `json:"maxCost"`
	Special  []string         `json:"special"`
}

// BuildResult is what the build command prints.
type BuildResult struct {
	ID          string    `json:"id,omitempty"`
	Cost        int       `json:"cost"`
	MaxCost     int       `json:"maxCost"`
	OverMaxCost bool      `json:"overMaxCost"`
	Unit        core.Unit `json:"unit"`
}

// SavedSummary is one row of the saved command.
type SavedSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassName string `json:"className"`
	Cost      int    `json:"cost"`
	SavedAt   string `json:"savedAt"`
}

func (a *app) register(d *dispatcher.Dispatcher) {
	d.Register("classes", a.classes, dispatcher.Usage("list vehicle classes"), dispatcher.Logged())
	d.Register("mods", a.mods, dispatcher.Usage("<class> list modifications available to a fresh unit"), dispatcher.MinArgs(1), dispatcher.Logged())
	d.Register("weapons", a.weapons, dispatcher.Usage("<class> list compatible weapons per mount"), dispatcher.MinArgs(1), dispatcher.Logged())
	d.Register("build", a.build, dispatcher.Usage("<class> [modification...] build, price and optionally save a unit"), dispatcher.MinArgs(1), dispatcher.Logged())
	d.Register("saved", a.saved, dispatcher.Usage("list saved builds"), dispatcher.Logged())
	d.Register("show", a.show, dispatcher.Usage("<id> print a saved build"), dispatcher.MinArgs(1), dispatcher.Logged())
	d.Register("delete", a.remove, dispatcher.Usage("<id> delete a saved build"), dispatcher.MinArgs(1), dispatcher.Logged())
}

func (a *app) classes(dispatcher.Event) (any, error) {
	var out []ClassSummary
	for _, vc := range a.engine.Classes() {
		out = append(out, ClassSummary{
			Name:     vc.Name,
			Size:     vc.Size,
			BaseCost: vc.BaseCost,
			MaxCost:  vc.MaxCost,
			Special:  vc.Special,
		})
	}
	return out, nil
}

func (a *app) mods(e dispatcher.Event) (any, error) {
	u, err := a.engine.Build(e.Args[0])
	if err != nil {
		return nil, err
	}
	return a.engine.Available(u)
}

func (a *app) weapons(e dispatcher.Event) (any, error) {
	u, err := a.engine.Build(e.Args[0])
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(u.Mounts))
	for _, m := range u.Mounts {
		names := []string{}
		for _, w := range a.catalog.CompatibleWeapons(m) {
			names = append(names, w.Name)
		}
		out[m.ID] = names
	}
	return out, nil
}

func (a *app) build(e dispatcher.Event) (any, error) {
	u, err := a.engine.Build(e.Args[0])
	if err != nil {
		return nil, err
	}
	if a.opts.name != "" {
		u = u.WithName(a.opts.name)
	}

	// weapons on class mounts go first so weapon-dependent modifications can see them
	deferred, err := a.equip(&u, a.opts.weapons, true)
	if err != nil {
		return nil, err
	}
	if u, err = a.engine.ApplyAll(u, e.Args[1:]...); err != nil {
		return nil, err
	}
	if _, err = a.equip(&u, deferred, false); err != nil {
		return nil, err
	}

	cost, err := a.engine.Cost(u)
	if err != nil {
		return nil, err
	}
	over, err := a.engine.OverMaxCost(u)
	if err != nil {
		return nil, err
	}
	if over {
		a.log.Warn("Unit exceeds class max cost", "class", u.Class.Name, "cost", cost, "maxCost", u.Class.MaxCost)
	}

	res := BuildResult{Cost: cost, MaxCost: u.Class.MaxCost, OverMaxCost: over, Unit: u}
	if a.opts.save {
		bd := &storage.Build{Name: u.Name, ClassName: u.Class.Name, Cost: cost, Unit: u}
		if err := a.store.Save(bd); err != nil {
			return nil, fmt.Errorf("saving build: %w", err)
		}
		a.log.Info("Build saved", "id", bd.ID, "name", bd.Name)
		res.ID = bd.ID
	}
	return res, nil
}

// equip fits MOUNT=WEAPON pairs to u. With skipMissing, pairs naming a mount
// the unit does not have yet are returned instead of failing.
func (a *app) equip(u *core.Unit, pairs []string, skipMissing bool) ([]string, error) {
	var deferred []string
	for _, pair := range pairs {
		mountID, weapon, ok := strings.Cut(pair, "=")
		if !ok || mountID == "" || weapon == "" {
			return nil, fmt.Errorf("bad weapon pair %q, want MOUNT=WEAPON", pair)
		}
		out, err := a.engine.EquipWeapon(*u, mountID, weapon)
		if skipMissing && errors.Is(err, core.ErrUnknownMount) {
			deferred = append(deferred, pair)
			continue
		}
		if err != nil {
			return nil, err
		}
		*u = out
	}
	return deferred, nil
}

func (a *app) saved(dispatcher.Event) (any, error) {
	builds, err := a.store.List()
	if err != nil {
		return nil, err
	}
	out := make([]SavedSummary, 0, len(builds))
	for _, b := range builds {
		out = append(out, SavedSummary{
			ID:        b.ID,
			Name:      b.Name,
			ClassName: b.ClassName,
			Cost:      b.Cost,
			SavedAt:   b.SavedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}

func (a *app) show(e dispatcher.Event) (any, error) {
	return a.store.Get(e.Args[0])
}

func (a *app) remove(e dispatcher.Event) (any, error) {
	if err := a.store.Delete(e.Args[0]); err != nil {
		return nil, err
	}
	return "deleted " + e.Args[0], nil
}
