package product

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexNumber is a numeric-or-string JSON scalar. Upstream extractors emit
// amounts as 500000, "500000", "Rs. 5,00,000" or "5 lakh" depending on the
// source; FlexNumber preserves the raw text and leaves interpretation to the
// normalizer's coercion rules.
type FlexNumber string

// UnmarshalJSON accepts a JSON number, string, or null.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexNumber(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// MarshalJSON emits the preserved text as a JSON string.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// String returns the preserved raw text.
func (n FlexNumber) String() string { return string(n) }

// RawExtract is the loosely-structured input record. Every block except the
// product identity and provenance is optional, and free-text fields carry
// whatever the upstream source produced.
type RawExtract struct {
	Product         RawProductInfo      `json:"product"`
	SumInsured      *RawSumInsured      `json:"sumInsured,omitempty"`
	Deductible      *RawDeductible      `json:"deductible,omitempty"`
	RoomRent        *RawRoomRent        `json:"roomRent,omitempty"`
	Hospitalization *RawHospitalization `json:"hospitalization,omitempty"`
	Transport       *RawTransport       `json:"transport,omitempty"`
	OrganDonor      *RawOrganDonor      `json:"organDonor,omitempty"`
	Bonuses         *RawBonuses         `json:"bonuses,omitempty"`
	WaitingPeriods  *RawWaitingPeriods  `json:"waitingPeriods,omitempty"`
	Copay           *RawCopay           `json:"copay,omitempty"`
	Sublimits       *RawSublimits       `json:"sublimits,omitempty"`
	ValueAdds       *RawValueAdds       `json:"valueAdds,omitempty"`
	TopUp           *RawTopUp           `json:"topUp,omitempty"`
	Provenance      RawProvenance       `json:"provenance"`
	Notes           []string            `json:"notes,omitempty"`
}

// RawProductInfo identifies the product. Insurer and PlanName are the only
// required fields in the whole extract.
type RawProductInfo struct {
	Insurer    string  `json:"insurer"`
	PlanName   string  `json:"planName"`
	Variant    *string `json:"variant,omitempty"`
	UIN        *string `json:"uin,omitempty"`
	PolicyType *string `json:"policyType,omitempty"`
	IsTopUp    *bool   `json:"isTopUp,omitempty"`
	Geography  *string `json:"geography,omitempty"`
}

type RawSumInsured struct {
	Base  *FlexNumber  `json:"base,omitempty"`
	Bands []FlexNumber `json:"bands,omitempty"`
}

type RawDeductible struct {
	Applies          *bool       `json:"applies,omitempty"`
	Amount           *FlexNumber `json:"amount,omitempty"`
	Type             *string     `json:"type,omitempty"`
	AggregateApplies *bool       `json:"aggregateApplies,omitempty"`
}

// RawRoomRent carries raw descriptive text; the normalizer's decision table
// turns it into a structured limit.
type RawRoomRent struct {
	Text         *string `json:"text,omitempty"`
	ICUText      *string `json:"icuText,omitempty"`
	AddonInfo    *string `json:"addonInfo,omitempty"`
	ModifierFlag *bool   `json:"modifierFlag,omitempty"`
}

type RawHospitalization struct {
	DaycareText *string         `json:"daycareText,omitempty"`
	AyushText   *string         `json:"ayushText,omitempty"`
	AyushLimit  *FlexNumber     `json:"ayushLimit,omitempty"`
	PreDays     *FlexNumber     `json:"preDays,omitempty"`
	PostDays    *FlexNumber     `json:"postDays,omitempty"`
	Domiciliary *RawDomiciliary `json:"domiciliary,omitempty"`
}

type RawDomiciliary struct {
	Covered         *bool       `json:"covered,omitempty"`
	MinDays         *FlexNumber `json:"minDays,omitempty"`
	HasNegativeList *bool       `json:"hasNegativeList,omitempty"`
}

type RawTransport struct {
	AmbulanceText   *string     `json:"ambulanceText,omitempty"`
	AmbulanceAmount *FlexNumber `json:"ambulanceAmount,omitempty"`
	AirAmbulance    *bool       `json:"airAmbulance,omitempty"`
}

type RawOrganDonor struct {
	Covered *bool       `json:"covered,omitempty"`
	Text    *string     `json:"text,omitempty"`
	Limit   *FlexNumber `json:"limit,omitempty"`
}

// RawBonuses holds NCB and recharge benefits as free text.
type RawBonuses struct {
	NCBText      *string `json:"ncbText,omitempty"`
	RechargeText *string `json:"rechargeText,omitempty"`
}

type RawWaitingPeriods struct {
	InitialDays                *FlexNumber `json:"initialDays,omitempty"`
	SpecificAilmentsMonths     *FlexNumber `json:"specificAilmentsMonths,omitempty"`
	PEDMonths                  *FlexNumber `json:"pedMonths,omitempty"`
	PEDReductionAvailable      *bool       `json:"pedReductionAvailable,omitempty"`
	SpecificReductionAvailable *bool       `json:"specificReductionAvailable,omitempty"`
}

type RawCopay struct {
	MandatoryType *string     `json:"mandatoryType,omitempty"`
	Percent       *FlexNumber `json:"percent,omitempty"`
	ZoneBased     *bool       `json:"zoneBased,omitempty"`
}

type RawSublimits struct {
	Text            *string              `json:"text,omitempty"`
	CataractText    *string              `json:"cataractText,omitempty"`
	CataractAmount  *FlexNumber          `json:"cataractAmount,omitempty"`
	DiseaseSpecific []RawDiseaseSublimit `json:"diseaseSpecific,omitempty"`
}

type RawDiseaseSublimit struct {
	Name   string      `json:"name"`
	Text   *string     `json:"text,omitempty"`
	Amount *FlexNumber `json:"amount,omitempty"`
}

type RawValueAdds struct {
	AnnualHealthCheckup *bool    `json:"annualHealthCheckup,omitempty"`
	OPDCover            *bool    `json:"opdCover,omitempty"`
	WellnessProgram     *bool    `json:"wellnessProgram,omitempty"`
	TeleConsultation    *bool    `json:"teleConsultation,omitempty"`
	Others              []string `json:"others,omitempty"`
}

// RawTopUp carries top-up-only facts. The normalizer discards the gated
// fields entirely when the product itself is not a top-up.
type RawTopUp struct {
	HowDeductibleApplies    *string  `json:"howDeductibleApplies,omitempty"`
	CoverageAboveDeductible []string `json:"coverageAboveDeductible,omitempty"`
	RoomRuleOnTopUp         *string  `json:"roomRuleOnTopUp,omitempty"`
}

// RawProvenance records where the extract came from. Mandatory.
type RawProvenance struct {
	SourceType           string   `json:"sourceType"`
	SourceName           string   `json:"sourceName"`
	SourceDate           *string  `json:"sourceDate,omitempty"`
	ExtractionConfidence *float64 `json:"extractionConfidence,omitempty"`
}
