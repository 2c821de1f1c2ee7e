package product

// CanonicalProduct is the fully-typed, schema-conformant record the
// normalizer produces. Every field is always present in the JSON encoding;
// unknown or unparseable raw values become explicit nulls, never guesses.
// Values are created fresh per call and never mutated after construction.
type CanonicalProduct struct {
	Product         ProductInfo     `json:"product"`
	SumInsured      SumInsured      `json:"sumInsured"`
	Deductible      Deductible      `json:"deductible"`
	RoomRent        RoomRent        `json:"roomRent"`
	Hospitalization Hospitalization `json:"hospitalization"`
	Transport       TransportCover  `json:"transport"`
	OrganDonor      OrganDonor      `json:"organDonor"`
	Bonuses         Bonuses         `json:"bonuses"`
	WaitingPeriods  WaitingPeriods  `json:"waitingPeriods"`
	Copay           CopayAndZones   `json:"copay"`
	Sublimits       Sublimits       `json:"sublimits"`
	ValueAdds       ValueAdds       `json:"valueAdds"`
	TopUpSpecifics  TopUpSpecifics  `json:"topUpSpecifics"`
	Provenance      Provenance      `json:"provenance"`
	Notes           *string         `json:"notes"`
}

type ProductInfo struct {
	Insurer    string  `json:"insurer"`
	PlanName   string  `json:"planName"`
	Variant    *string `json:"variant"`
	UIN        *string `json:"uin"`
	PolicyType *string `json:"policyType"`
	IsTopUp    bool    `json:"isTopUp"`
	Geography  *string `json:"geography"`
}

// SumInsured invariant: AvailableBands is deduplicated, ascending, and
// always contains BaseSI.
type SumInsured struct {
	BaseSI         float64   `json:"baseSI"`
	AvailableBands []float64 `json:"availableBands"`
}

type Deductible struct {
	Applies          bool     `json:"applies"`
	Amount           *float64 `json:"amount"`
	Type             *string  `json:"type"`
	AggregateApplies *bool    `json:"aggregateApplies"`
}

// RoomRent invariant: ProportionateDeduction is not_applicable whenever
// LimitType is no_cap, overriding any raw waiver signal.
type RoomRent struct {
	LimitType             string   `json:"limitType"`
	LimitValue            *float64 `json:"limitValue"`
	ICULimitType          *string  `json:"icuLimitType"`
	ICULimitValue         *float64 `json:"icuLimitValue"`
	ProportionateDeduction string  `json:"proportionateDeduction"`
	RoomModifierOption    bool     `json:"roomModifierOption"`
}

type Hospitalization struct {
	Daycare     string      `json:"daycare"`
	PreDays     *int        `json:"preDays"`
	PostDays    *int        `json:"postDays"`
	Domiciliary Domiciliary `json:"domiciliary"`
	Ayush       AyushLimit  `json:"ayush"`
}

type Domiciliary struct {
	Covered         bool  `json:"covered"`
	MinDays         *int  `json:"minDays"`
	HasNegativeList *bool `json:"hasNegativeList"`
}

type AyushLimit struct {
	LimitType  string   `json:"limitType"`
	LimitValue *float64 `json:"limitValue"`
}

type TransportCover struct {
	AmbulanceCovered bool     `json:"ambulanceCovered"`
	AmbulanceLimit   *float64 `json:"ambulanceLimit"`
	AirAmbulance     *bool    `json:"airAmbulance"`
}

type OrganDonor struct {
	Covered bool     `json:"covered"`
	Limit   *float64 `json:"limit"`
}

type Bonuses struct {
	NoClaimBonus NoClaimBonus `json:"noClaimBonus"`
	Recharge     Recharge     `json:"recharge"`
}

type NoClaimBonus struct {
	AccrualPercent *float64 `json:"accrualPercent"`
	MaxPercent     *float64 `json:"maxPercent"`
	ClaimImpact    *string  `json:"claimImpact"`
}

type Recharge struct {
	Mode               string `json:"mode"`
	SameIllnessAllowed *bool  `json:"sameIllnessAllowed"`
}

type WaitingPeriods struct {
	InitialDays                int  `json:"initialDays"`
	SpecificAilmentsMonths     int  `json:"specificAilmentsMonths"`
	PEDMonths                  int  `json:"pedMonths"`
	PEDReductionAvailable      bool `json:"pedReductionAvailable"`
	SpecificReductionAvailable bool `json:"specificReductionAvailable"`
}

// CopayAndZones invariant: MandatoryCopayPercent is null whenever
// MandatoryCopayType is none.
type CopayAndZones struct {
	MandatoryCopayType    string   `json:"mandatoryCopayType"`
	MandatoryCopayPercent *float64 `json:"mandatoryCopayPercent"`
	ZoneBasedPricing      *bool    `json:"zoneBasedPricing"`
}

type Sublimits struct {
	Cataract        CataractSublimit          `json:"cataract"`
	DiseaseSpecific []DiseaseSpecificSublimit `json:"diseaseSpecific"`
}

type CataractSublimit struct {
	LimitType  string   `json:"limitType"`
	LimitValue *float64 `json:"limitValue"`
	PerEye     *bool    `json:"perEye"`
}

type DiseaseSpecificSublimit struct {
	Name       string   `json:"name"`
	LimitValue *float64 `json:"limitValue"`
}

type ValueAdds struct {
	AnnualHealthCheckup bool     `json:"annualHealthCheckup"`
	OPDCover            bool     `json:"opdCover"`
	WellnessProgram     bool     `json:"wellnessProgram"`
	TeleConsultation    bool     `json:"teleConsultation"`
	Others              []string `json:"others"`
}

// TopUpSpecifics invariant: HowDeductibleApplies and RoomRuleOnTopUp are
// null for non-top-up products regardless of raw input.
type TopUpSpecifics struct {
	HowDeductibleApplies    *string  `json:"howDeductibleApplies"`
	CoverageAboveDeductible []string `json:"coverageAboveDeductible"`
	RoomRuleOnTopUp         *string  `json:"roomRuleOnTopUp"`
}

type Provenance struct {
	SourceType           string  `json:"sourceType"`
	SourceName           string  `json:"sourceName"`
	SourceDate           *string `json:"sourceDate"`
	ExtractionConfidence float64 `json:"extractionConfidence"`
}
