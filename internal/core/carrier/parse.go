package carrier

import (
	"github.com/briteline/briteline/internal/core"
)

// parseAddressSearchResponse extracts every address match from an
// address-search response body. A match is kept when it carries a reference
// number, a thoroughfare name, or a postcode; blocks with none of the three
// are noise and dropped. A body with no recognizable matches yields an
// empty slice, not an error.
func parseAddressSearchResponse(body string) []core.CandidateAddress {
	doc := parseDocument(body)
	var out []core.CandidateAddress
	for _, m := range doc.findAll("AddressMatch") {
		addr := core.CandidateAddress{
			SubPremises:        m.childValue("SubPremises"),
			PremisesName:       m.childValue("PremisesName"),
			ThoroughfareNumber: m.childValue("ThoroughfareNumber"),
			ThoroughfareName:   m.childValue("ThoroughfareName"),
			PostTown:           m.childValue("PostTown"),
			Postcode:           m.childValue("Postcode"),
			Country:            m.childValue("Country"),
		}
		if ref := m.find("AddressReference"); ref != nil {
			addr.Reference = core.LineReference{
				RefNum:       ref.childValue("RefNum"),
				DistrictCode: ref.childValue("DistrictCode"),
			}
		}
		if addr.Reference.RefNum == "" && addr.ThoroughfareName == "" && addr.Postcode == "" {
			continue
		}
		out = append(out, addr)
	}
	return out
}

// technology flag element names in a line-characteristics response. A flag
// is set when the element exists anywhere in the document with an
// affirmative value; an absent element means no.
var technologyFlags = map[string]func(*core.TechnologyAvailability){
	"FTTPAvailable":     func(a *core.TechnologyAvailability) { a.FTTP = true },
	"P2PFibreAvailable": func(a *core.TechnologyAvailability) { a.P2PFibre = true },
	"FTTCAvailable":     func(a *core.TechnologyAvailability) { a.FTTC = true },
	"SOGEAAvailable":    func(a *core.TechnologyAvailability) { a.SOGEA = true },
	"ADSLAvailable":     func(a *core.TechnologyAvailability) { a.ADSL = true },
}

// switchIDElement is the local name of the exchange switch identifier
// element. Responses usually prefix it (ns2:L2SID and similar); only the
// local name is matched.
const switchIDElement = "L2SID"

// parseLineCharacteristicsResponse extracts the technology flags and every
// switch identifier from a line-characteristics response body. The gate is
// not computed here; the resolver applies the allow-list.
func parseLineCharacteristicsResponse(body string) core.TechnologyAvailability {
	doc := parseDocument(body)
	var av core.TechnologyAvailability
	for name, set := range technologyFlags {
		if el := doc.find(name); el != nil && affirmative(el.value()) {
			set(&av)
		}
	}
	for _, el := range doc.findAll(switchIDElement) {
		if v := el.value(); v != "" {
			av.SwitchIDs = append(av.SwitchIDs, v)
		}
	}
	return av
}
