package catalog

import "strings"

// Catalog is the studio's static reference data: the per-model price table,
// the per-size fallback prices and the fixed etc service list. It is built
// once at startup and never mutated. Model names are free-text keys, matched
// case-sensitively; the slice keeps insertion order for listings.
type Catalog struct {
	vehicles []Vehicle
	byModel  map[string]int

	etc     []EtcService
	etcByID map[string]int
}

func New() *Catalog {
	c := &Catalog{
		vehicles: vehicleTable,
		byModel:  make(map[string]int, len(vehicleTable)),
		etc:      etcTable,
		etcByID:  make(map[string]int, len(etcTable)),
	}
	for i, v := range c.vehicles {
		c.byModel[v.Model] = i
	}
	for i, s := range c.etc {
		c.etcByID[s.ID] = i
	}
	return c
}

// Lookup returns the catalog row for an exact model name.
func (c *Catalog) Lookup(model string) (Vehicle, bool) {
	i, ok := c.byModel[model]
	if !ok {
		return Vehicle{}, false
	}
	return c.vehicles[i], true
}

// SizeOf resolves a model's size class, defaulting to Sedan for models the
// catalog does not know.
func (c *Catalog) SizeOf(model string) SizeClass {
	if v, ok := c.Lookup(model); ok {
		return v.Size
	}
	return SizeSedan
}

// Fallback returns the by-size prices used when a model is uncatalogued.
// Unknown size classes price as Sedan.
func (c *Catalog) Fallback(size SizeClass) Vehicle {
	if v, ok := fallbackTable[size]; ok {
		return v
	}
	return fallbackTable[SizeSedan]
}

// Models lists model names in catalog order, optionally filtered by size.
func (c *Catalog) Models(size SizeClass) []string {
	out := make([]string, 0, len(c.vehicles))
	for _, v := range c.vehicles {
		if size != "" && v.Size != size {
			continue
		}
		out = append(out, v.Model)
	}
	return out
}

// Search lists model names containing q (case-insensitive), optionally
// filtered by size. An empty q behaves like Models.
func (c *Catalog) Search(q string, size SizeClass) []string {
	if q == "" {
		return c.Models(size)
	}
	q = strings.ToLower(q)
	out := make([]string, 0)
	for _, v := range c.vehicles {
		if size != "" && v.Size != size {
			continue
		}
		if strings.Contains(strings.ToLower(v.Model), q) {
			out = append(out, v.Model)
		}
	}
	return out
}

// EtcServices returns the fixed partial-work price list in display order.
func (c *Catalog) EtcServices() []EtcService {
	return c.etc
}

// EtcByID returns a single etc entry.
func (c *Catalog) EtcByID(id string) (EtcService, bool) {
	i, ok := c.etcByID[id]
	if !ok {
		return EtcService{}, false
	}
	return c.etc[i], true
}
