package core

// Technology identifies an access technology family a line can be provisioned
// with. The values double as the catalog's technology tags.
type Technology string

const (
	TechnologyFTTP  Technology = "fttp"
	TechnologyFTTC  Technology = "fttc"
	TechnologySOGEA Technology = "sogea"
	TechnologyADSL  Technology = "adsl"
)

// CandidateAddress is one address resolved for a postcode by the carrier's
// address-search operation. Candidates are ephemeral: they live for the
// duration of the request that produced them and are never persisted.
type CandidateAddress struct {
	SubPremises        string        `json:"sub_premises,omitempty"`
	PremisesName       string        `json:"premises_name,omitempty"`
	ThoroughfareNumber string        `json:"thoroughfare_number,omitempty"`
	ThoroughfareName   string        `json:"thoroughfare_name,omitempty"`
	PostTown           string        `json:"post_town,omitempty"`
	Postcode           string        `json:"postcode,omitempty"`
	Country            string        `json:"country,omitempty"`
	Reference          LineReference `json:"reference"`
}

// LineReference is the carrier's handle for a physical line: the pair of
// identifiers the line-characteristics operation keys on.
type LineReference struct {
	RefNum       string `json:"ref_num"`
	DistrictCode string `json:"district_code"`
}

// Valid reports whether both halves of the reference carry real values. The
// carrier represents absent fields with the literal token null, which parsing
// strips, so empty means absent.
func (r LineReference) Valid() bool {
	return r.RefNum != "" && r.DistrictCode != ""
}

// TechnologyAvailability is the raw outcome of one line-characteristics call:
// the per-technology signals, the switch identifiers observed in the
// response, and the service gate computed from the switch allow-list.
type TechnologyAvailability struct {
	FTTP     bool `json:"fttp"`
	P2PFibre bool `json:"p2p_fibre"`
	FTTC     bool `json:"fttc"`
	SOGEA    bool `json:"sogea"`
	ADSL     bool `json:"adsl"`

	// SwitchIDs lists every switch identifier element found in the
	// response, in document order.
	SwitchIDs []string `json:"switch_ids,omitempty"`

	// HasService is true iff at least one observed switch identifier is on
	// the allow-list. The technology booleans alone never imply service.
	HasService bool `json:"has_service"`
}

// CoverageArea is an administrator-managed coverage record: a postcode
// prefix, a display name, and (via the store) a set of linked packages.
// Prefix uniqueness is not enforced; the matcher takes the first active hit.
type CoverageArea struct {
	ID     int64  `json:"id"`
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// CatalogPackage is one sellable broadband package. The resolution subsystem
// treats the catalog as read-only; writes come from seeding and admin tools.
type CatalogPackage struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Speed        string     `json:"speed"`
	MonthlyPence int64      `json:"monthly_pence"`
	Features     []string   `json:"features,omitempty"`
	Technology   Technology `json:"technology"`
	Active       bool       `json:"active"`
	Popular      bool       `json:"popular"`
	SortOrder    int        `json:"sort_order"`
}
