package catalog

// SizeClass is the coarse vehicle category driving fallback pricing and
// maintenance defaults. The set is closed.
type SizeClass string

const (
	SizeCompact  SizeClass = "compact"
	SizeSedan    SizeClass = "sedan"
	SizeSUV      SizeClass = "suv"
	SizeSupercar SizeClass = "supercar"
)

// SizeClasses returns all classes in display order.
func SizeClasses() []SizeClass {
	return []SizeClass{SizeCompact, SizeSedan, SizeSUV, SizeSupercar}
}

func (s SizeClass) Valid() bool {
	switch s {
	case SizeCompact, SizeSedan, SizeSUV, SizeSupercar:
		return true
	}
	return false
}

// Label returns the customer-facing label used by the studio's front-end.
func (s SizeClass) Label() string {
	switch s {
	case SizeCompact:
		return "소형 / 쿠페 (Compact)"
	case SizeSedan:
		return "세단 / 중형 (Sedan)"
	case SizeSUV:
		return "SUV / 대형 (Large)"
	case SizeSupercar:
		return "슈퍼카 / 럭셔리 (Exotic)"
	}
	return string(s)
}

// Coverage is the scope of film application.
type Coverage string

const (
	CoverageFullBody     Coverage = "full_body"
	CoverageFrontPackage Coverage = "front_package"
	CoverageEtc          Coverage = "etc"
)

func (c Coverage) Valid() bool {
	switch c {
	case CoverageFullBody, CoverageFrontPackage, CoverageEtc:
		return true
	}
	return false
}

// FilmGrade is passed through to the advisory collaborator; pricing does
// not depend on it.
type FilmGrade string

const (
	GradeStandard FilmGrade = "standard_gloss"
	GradePremium  FilmGrade = "premium_self_healing"
	GradeMatte    FilmGrade = "matte_satin"
	GradeColored  FilmGrade = "color_change"
)

// Vehicle is one price-catalog row. Prices are KRW, VAT inclusive.
// Color == 0 means color PPF is not offered for the model (quoted on
// request). Matte == 0 means matte is derived as transparent + surcharge.
type Vehicle struct {
	Model       string    `json:"model"`
	Size        SizeClass `json:"size"`
	Transparent int64     `json:"priceTransparent"`
	Wrap        int64     `json:"priceWrap"`
	Color       int64     `json:"priceColor"`
	Matte       int64     `json:"priceMatte,omitempty"`
}

// EtcService is one entry of the fixed partial-work price list. PriceText
// is the display string (ranges, per-door pricing etc.); BasePrice anchors
// the booking deposit.
type EtcService struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PriceText string `json:"price"`
	BasePrice int64  `json:"basePrice"`
}
