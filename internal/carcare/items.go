package carcare

import "lumiere-studio/internal/catalog"

// ItemKind separates flat-job line items from per-physical-part ones.
type ItemKind string

const (
	KindPackage ItemKind = "package"
	KindUnit    ItemKind = "unit"
)

// Item is one maintenance line item offered for a vehicle. Unit-kind items
// (spark plugs, ignition coils) price per part with DefaultQty equal to the
// estimated cylinder count; package-kind items price as one job.
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Kind       ItemKind `json:"kind"`
	Spec       string   `json:"spec"`
	Interval   string   `json:"interval"`
	UnitPrice  int64    `json:"unitPrice"`
	DefaultQty int      `json:"defaultQty"`
}

// DefaultItemID is the item pre-selected whenever a new vehicle enters the
// car-care estimator.
const DefaultItemID = "oil"

// rules carries the size-class pricing assumptions. Sedan is the baseline;
// the other classes override individual fields.
type rules struct {
	oil        int64
	diff       int64
	brakeFluid int64
	plugTotal  int64
	coilTotal  int64
	padsFront  int64
	padsRear   int64

	oilSpec     string
	oilCapacity string
	cylinders   int
}

func rulesFor(size catalog.SizeClass) rules {
	r := rules{
		oil:         180_000,
		diff:        120_000,
		brakeFluid:  100_000,
		plugTotal:   200_000,
		coilTotal:   300_000,
		padsFront:   250_000,
		padsRear:    200_000,
		oilSpec:     "5W-30 Premium Synthetic",
		oilCapacity: "6.5L",
		cylinders:   6,
	}

	switch size {
	case catalog.SizeCompact:
		r.oil = 150_000
		r.oilSpec = "0W-20 Long-life Synthetic"
		r.oilCapacity = "4.5L"
		r.plugTotal = 160_000
		r.coilTotal = 200_000
		r.padsFront = 180_000
		r.padsRear = 150_000
		r.cylinders = 4
	case catalog.SizeSUV:
		r.oil = 280_000
		r.oilSpec = "5W-40 Heavy Duty Synthetic"
		r.oilCapacity = "7.5L"
		r.diff = 180_000 // AWD assumed
		r.padsFront = 300_000
		r.padsRear = 250_000
	case catalog.SizeSupercar:
		r.oil = 550_000
		r.oilSpec = "10W-60 Racing Grade Ester"
		r.oilCapacity = "9.5L"
		r.diff = 350_000
		r.brakeFluid = 200_000
		r.plugTotal = 480_000
		r.coilTotal = 800_000
		r.padsFront = 800_000
		r.padsRear = 600_000
		r.cylinders = 8
	}

	return r
}

// unitPrice derives a clean per-part price from the size class's assumed
// total, rounded to the nearest 1,000 KRW.
func unitPrice(total int64, cylinders int) int64 {
	perUnit := total / int64(cylinders)
	return (perUnit + 500) / 1000 * 1000
}

// ItemsFor builds the fixed seven-item maintenance list for a size class.
func ItemsFor(size catalog.SizeClass) []Item {
	r := rulesFor(size)

	plugUnit := unitPrice(r.plugTotal, r.cylinders)
	coilUnit := unitPrice(r.coilTotal, r.cylinders)

	return []Item{
		{ID: "oil", Name: "Engine Oil Package", Kind: KindPackage,
			Spec:     r.oilSpec + " (" + r.oilCapacity + ") + Oil/Air Filters",
			Interval: "10,000km / 1년", UnitPrice: r.oil, DefaultQty: 1},
		{ID: "diff", Name: "Differential Oil", Kind: KindPackage,
			Spec:     "75W-90 Synthetic Gear Oil",
			Interval: "40,000km / 2년", UnitPrice: r.diff, DefaultQty: 1},
		{ID: "brake_fluid", Name: "Brake Fluid Flush", Kind: KindPackage,
			Spec:     "DOT 4 Plus / DOT 5.1 High Temp",
			Interval: "20,000km / 2년", UnitPrice: r.brakeFluid, DefaultQty: 1},
		{ID: "spark_plugs", Name: "Spark Plugs", Kind: KindUnit,
			Spec:     "High Performance Iridium",
			Interval: "40,000km / 3년", UnitPrice: plugUnit, DefaultQty: r.cylinders},
		{ID: "ignition_coils", Name: "Ignition Coils", Kind: KindUnit,
			Spec:     "OEM Grade / Reinforced",
			Interval: "80,000km / 5년", UnitPrice: coilUnit, DefaultQty: r.cylinders},
		{ID: "brake_pads_f", Name: "Brake Pads (Front)", Kind: KindPackage,
			Spec:     "Low-Dust / Low-Noise Ceramic",
			Interval: "Sensor Warning", UnitPrice: r.padsFront, DefaultQty: 1},
		{ID: "brake_pads_r", Name: "Brake Pads (Rear)", Kind: KindPackage,
			Spec:     "Low-Dust / Low-Noise Ceramic",
			Interval: "Sensor Warning", UnitPrice: r.padsRear, DefaultQty: 1},
	}
}

// Engine resolves maintenance items for a model via the price catalog.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Items returns the maintenance list for a model. Uncatalogued models use
// the Sedan rules.
func (e *Engine) Items(model string) []Item {
	return ItemsFor(e.cat.SizeOf(model))
}
