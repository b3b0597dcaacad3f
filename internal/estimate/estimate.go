package estimate

import (
	"math"

	"lumiere-studio/internal/catalog"
)

const (
	// FrontPackagePrice is the flat front-package price (front bumper +
	// fenders + side mirrors + windshield + light PPF), independent of
	// model and size.
	FrontPackagePrice int64 = 2_600_000

	// MatteSurcharge derives a matte quote from the transparent base when
	// the catalog carries no explicit matte price.
	MatteSurcharge int64 = 300_000

	roundStep int64 = 10_000

	// coverageMultiplier is an extension point for partial-coverage
	// discounts. Every current path uses 1.0.
	coverageMultiplier = 1.0
)

// Status tags a price range. Zero amounts are never rendered as quotes:
// a package either carries a priced range, is structurally absent for the
// coverage (not_offered), or is quoted on request only (ask_separately).
type Status string

const (
	StatusPriced        Status = "priced"
	StatusNotOffered    Status = "not_offered"
	StatusAskSeparately Status = "ask_separately"
)

// PriceRange is a displayed quote band in KRW, VAT inclusive. Min and Max
// are zero unless Status is priced.
type PriceRange struct {
	Status Status `json:"status"`
	Min    int64  `json:"min"`
	Max    int64  `json:"max"`
}

// Priced reports whether the range carries a real quote.
func (r PriceRange) Priced() bool { return r.Status == StatusPriced }

func notOffered() PriceRange    { return PriceRange{Status: StatusNotOffered} }
func askSeparately() PriceRange { return PriceRange{Status: StatusAskSeparately} }

// PackageType selects one of the four protection packages.
type PackageType string

const (
	PackageTransparent PackageType = "transparent"
	PackageMatte       PackageType = "matte"
	PackageColor       PackageType = "color"
	PackageWrap        PackageType = "wrap"
)

func (p PackageType) Valid() bool {
	switch p {
	case PackageTransparent, PackageMatte, PackageColor, PackageWrap:
		return true
	}
	return false
}

// FullEstimate holds one range per protection package.
type FullEstimate struct {
	Transparent PriceRange `json:"transparent"`
	Matte       PriceRange `json:"matte"`
	Color       PriceRange `json:"color"`
	Wrap        PriceRange `json:"wrap"`
}

// Range returns the band for the selected package, falling back to
// transparent for anything invalid.
func (e FullEstimate) Range(p PackageType) PriceRange {
	switch p {
	case PackageMatte:
		return e.Matte
	case PackageColor:
		return e.Color
	case PackageWrap:
		return e.Wrap
	default:
		return e.Transparent
	}
}

// Round5Pct converts a raw amount into the displayed band: min is the
// amount and max adds the 5% on-site margin, both rounded to the nearest
// 10,000 KRW (half away from zero). Non-positive amounts stay sentinel.
// The 5% markup can round back onto min for small amounts; the collapsed
// band is intentional.
func Round5Pct(amount int64) PriceRange {
	if amount <= 0 {
		return askSeparately()
	}
	return PriceRange{
		Status: StatusPriced,
		Min:    roundTo(amount, roundStep),
		Max:    roundTo(amount*105/100, roundStep),
	}
}

func roundTo(v, step int64) int64 {
	return (v + step/2) / step * step
}

// Engine computes PPF estimates against the price catalog. Computation is
// synchronous, deterministic and never fails; unknown models degrade to
// by-size fallback pricing.
type Engine struct {
	cat *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Compute derives the full set of package ranges for a selection. A known
// model prices from its catalog row regardless of the size argument; the
// size only matters for uncatalogued models.
func (e *Engine) Compute(model string, size catalog.SizeClass, coverage catalog.Coverage) FullEstimate {
	switch coverage {
	case catalog.CoverageFrontPackage:
		return FullEstimate{
			Transparent: Round5Pct(scale(FrontPackagePrice)),
			Matte:       notOffered(),
			Color:       notOffered(),
			Wrap:        notOffered(),
		}
	case catalog.CoverageEtc:
		// Etc work is priced by the flat service list, not by package.
		return FullEstimate{
			Transparent: notOffered(),
			Matte:       notOffered(),
			Color:       notOffered(),
			Wrap:        notOffered(),
		}
	}

	var transparent, wrap, color, matte int64
	if v, ok := e.cat.Lookup(model); ok {
		transparent, wrap, color = v.Transparent, v.Wrap, v.Color
		if v.Matte > 0 {
			matte = v.Matte
		} else {
			matte = v.Transparent + MatteSurcharge
		}
	} else {
		f := e.cat.Fallback(size)
		transparent, wrap, color = f.Transparent, f.Wrap, f.Color
		matte = f.Transparent + MatteSurcharge
	}

	return FullEstimate{
		Transparent: Round5Pct(scale(transparent)),
		Matte:       Round5Pct(scale(matte)),
		Color:       Round5Pct(scale(color)),
		Wrap:        Round5Pct(scale(wrap)),
	}
}

func scale(amount int64) int64 {
	if coverageMultiplier == 1.0 {
		return amount
	}
	return int64(math.Round(float64(amount) * coverageMultiplier))
}
