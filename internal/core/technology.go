package core

import "sort"

// TechnologySet is an unordered set of access technologies.
type TechnologySet map[Technology]bool

// Has reports whether t is in the set.
func (s TechnologySet) Has(t Technology) bool { return s[t] }

// Sorted returns the set's members in stable lexical order.
func (s TechnologySet) Sorted() []Technology {
	out := make([]Technology, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// compositionRule maps a raw availability signal onto the package
// technologies it makes sellable. The rules are additive: every rule whose
// signal fires contributes its grants to the offerable set.
type compositionRule struct {
	signal func(TechnologyAvailability) bool
	grants []Technology
}

// compositionRules encodes which package technologies each carrier signal
// unlocks. Full-fibre signals sell only full-fibre packages; a
// cabinet-fibre signal sells both FTTC and its voice-free variant; a
// copper-only line still supports FTTC-class products.
var compositionRules = []compositionRule{
	{
		signal: func(a TechnologyAvailability) bool { return a.FTTP || a.P2PFibre },
		grants: []Technology{TechnologyFTTP},
	},
	{
		signal: func(a TechnologyAvailability) bool { return a.FTTC || a.SOGEA },
		grants: []Technology{TechnologyFTTC, TechnologySOGEA},
	},
	{
		signal: func(a TechnologyAvailability) bool { return a.ADSL },
		grants: []Technology{TechnologyADSL, TechnologyFTTC},
	},
}

// OfferableTechnologies derives the set of sellable package technologies
// from one line's availability. The service gate dominates: when no
// allow-listed switch serves the line the set is empty no matter which
// technology signals fired.
func OfferableTechnologies(a TechnologyAvailability) TechnologySet {
	set := TechnologySet{}
	if !a.HasService {
		return set
	}
	for _, rule := range compositionRules {
		if rule.signal(a) {
			for _, t := range rule.grants {
				set[t] = true
			}
		}
	}
	return set
}

// ServiceGate reports whether any observed switch identifier appears on the
// allow-list. An empty allow-list or an empty observation both gate closed.
func ServiceGate(switchIDs, allowList []string) bool {
	if len(switchIDs) == 0 || len(allowList) == 0 {
		return false
	}
	allowed := make(map[string]bool, len(allowList))
	for _, id := range allowList {
		allowed[id] = true
	}
	for _, id := range switchIDs {
		if allowed[id] {
			return true
		}
	}
	return false
}
