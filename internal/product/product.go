// Package product defines the shared domain model: the loosely-typed
// RawExtract accepted from upstream extractors, the strictly-typed
// CanonicalProduct the normalizer emits, and the controlled vocabularies
// both sides share. This package is at the bottom of the dependency graph
// and should not import any other internal packages.
package product

// Rating constants, ordered Bad < OK < Good.
const (
	RatingBad  = "Bad"
	RatingOK   = "OK"
	RatingGood = "Good"
)

// Letter grades, ordered worst to best.
const (
	GradeD     = "D"
	GradeC     = "C"
	GradeB     = "B"
	GradeA     = "A"
	GradeAPlus = "A+"
)

// Scoring parameter identifiers. The scorer emits exactly these eleven,
// in this order.
const (
	ParamRoomRent       = "room_rent"
	ParamPrePost        = "pre_post"
	ParamDaycare        = "daycare"
	ParamAyush          = "ayush"
	ParamDomiciliary    = "domiciliary"
	ParamNCB            = "ncb"
	ParamRecharge       = "recharge"
	ParamCopay          = "copay"
	ParamCataract       = "cataract"
	ParamWaitingPeriods = "waiting_periods"
	ParamTopUp          = "topup_friendliness"
)

// ParameterOrder is the canonical emission order for score details.
var ParameterOrder = []string{
	ParamRoomRent,
	ParamPrePost,
	ParamDaycare,
	ParamAyush,
	ParamDomiciliary,
	ParamNCB,
	ParamRecharge,
	ParamCopay,
	ParamCataract,
	ParamWaitingPeriods,
	ParamTopUp,
}

// Room rent limit types.
const (
	RoomNoCap         = "no_cap"
	RoomPercentOfSI   = "percent_of_SI"
	RoomSinglePrivate = "single_private_room"
	RoomTwinSharing   = "twin_sharing"
	RoomRupeeCap      = "rupee_cap"
)

// Proportionate deduction outcomes.
const (
	DeductionApplies       = "applies"
	DeductionNotApplicable = "not_applicable"
	DeductionWaivedAddon   = "waived_with_addon"
)

// AYUSH limit types.
const (
	AyushNotCovered = "not_covered"
	AyushUpToSI     = "up_to_SI"
	AyushPercent    = "percent"
	AyushRupeeCap   = "rupee_cap"
)

// Daycare coverage categories.
const (
	DaycareAllCovered    = "all_covered"
	DaycareExtensiveList = "extensive_list"
	DaycareLimitedList   = "limited_list"
	DaycareUnspecified   = "unspecified"
	DaycareNotCovered    = "not_covered"
)

// Recharge modes.
const (
	RechargeUnlimited = "unlimited"
	RechargeTwice     = "twice"
	RechargeOnce      = "once"
	RechargeNA        = "na"
)

// No-claim bonus claim impact.
const (
	NCBReduces  = "reduces"
	NCBNoImpact = "no_impact"
)

// Mandatory copay types.
const (
	CopayNone    = "none"
	CopayAge     = "age"
	CopayZone    = "zone"
	CopayNetwork = "network"
	CopayDisease = "disease_specific"
)

// Cataract sublimit types.
const (
	CataractNotApplicable = "not_applicable"
	CataractPercentOfSI   = "percent_of_SI"
	CataractRupeeCap      = "rupee_cap"
)

// Deductible types.
const (
	DeductiblePerClaim = "per_claim"
	DeductiblePerYear  = "per_year"
)

// How a top-up deductible is applied.
const (
	TopUpAggregateYear = "aggregate_year"
	TopUpPerClaim      = "per_claim"
)

// Top-up coverage components above the deductible.
const (
	CoverageIPD     = "IPD"
	CoveragePrePost = "pre_post"
	CoverageDaycare = "daycare"
	CoverageAyush   = "ayush"
)

// DefaultBaseSI is assumed when the raw sum insured is absent or unparseable.
const DefaultBaseSI = 500000

// Waiting period defaults applied when the raw block is silent.
const (
	DefaultInitialWaitingDays     = 30
	DefaultSpecificAilmentsMonths = 24
	DefaultPEDMonths              = 48
)

// DefaultExtractionConfidence is assumed when provenance omits a confidence.
const DefaultExtractionConfidence = 0.5
