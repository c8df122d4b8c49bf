// Package catalog holds the read-only catalog of weapon types, mount types and
// vehicle classes that units are built from.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/armourforge/vehicle-builder/pkg/core"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
	ErrUnknownWeaponType   = errors.New("unknown weapon type")
	ErrUnknownMountType    = errors.New("unknown mount type")
)

//go:embed catalog.yaml
var embedded []byte

// Catalog is an immutable lookup over the static game data.
type Catalog struct {
	weapons      []core.WeaponType
	weaponByName map[string]core.WeaponType
	mountByKey   map[string]core.MountType
	classes      []core.VehicleClass
	classByName  map[string]core.VehicleClass
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, decoded on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(bytes.NewReader(embedded))
	})
	return defaultCat, defaultErr
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{
		weaponByName: make(map[string]core.WeaponType, len(doc.WeaponTypes)),
		mountByKey:   make(map[string]core.MountType, len(doc.MountTypes)),
		classByName:  make(map[string]core.VehicleClass, len(doc.VehicleClasses)),
	}

	for _, w := range doc.WeaponTypes {
		if _, dup := c.weaponByName[w.Name]; dup {
			return nil, fmt.Errorf("duplicate weapon type %q", w.Name)
		}
		wt := w.toCore()
		c.weapons = append(c.weapons, wt)
		c.weaponByName[wt.Name] = wt
	}

	for _, m := range doc.MountTypes {
		if _, dup := c.mountByKey[m.Key]; dup {
			return nil, fmt.Errorf("duplicate mount type %q", m.Key)
		}
		mt, err := m.toCore()
		if err != nil {
			return nil, err
		}
		c.mountByKey[mt.Key] = mt
	}

	for _, v := range doc.VehicleClasses {
		if _, dup := c.classByName[v.Name]; dup {
			return nil, fmt.Errorf("duplicate vehicle class %q", v.Name)
		}
		vc, err := v.toCore(c.mountByKey)
		if err != nil {
			return nil, err
		}
		c.classes = append(c.classes, vc)
		c.classByName[vc.Name] = vc
	}

	return c, nil
}

// VehicleClasses returns every class in catalog order.
func (c *Catalog) VehicleClasses() []core.VehicleClass {
	out := make([]core.VehicleClass, len(c.classes))
	for i, vc := range c.classes {
		out[i] = vc.Clone()
	}
	return out
}

// VehicleClass looks a class up by name.
func (c *Catalog) VehicleClass(name string) (core.VehicleClass, error) {
	vc, ok := c.classByName[name]
	if !ok {
		return core.VehicleClass{}, fmt.Errorf("%w: %q", ErrUnknownVehicleClass, name)
	}
	return vc.Clone(), nil
}

// WeaponTypes returns every weapon type in catalog order.
func (c *Catalog) WeaponTypes() []core.WeaponType {
	out := make([]core.WeaponType, len(c.weapons))
	copy(out, c.weapons)
	return out
}

// WeaponType looks a weapon type up by name.
func (c *Catalog) WeaponType(name string) (core.WeaponType, error) {
	wt, ok := c.weaponByName[name]
	if !ok {
		return core.WeaponType{}, fmt.Errorf("%w: %q", ErrUnknownWeaponType, name)
	}
	return wt, nil
}

// MountType looks a mount type up by key.
func (c *Catalog) MountType(key string) (core.MountType, error) {
	mt, ok := c.mountByKey[key]
	if !ok {
		return core.MountType{}, fmt.Errorf("%w: %q", ErrUnknownMountType, key)
	}
	return mt, nil
}

// CompatibleWeapons lists the weapon types a mount accepts, in catalog order.
func (c *Catalog) CompatibleWeapons(m core.Mount) []core.WeaponType {
	return m.CompatibleWeapons(c.weapons)
}
