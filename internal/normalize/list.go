package normalize

import (
	"fmt"
	"strings"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// CoerceList resolves a list-valued field and flattens it into display
// strings. A resolved value that is not a list yields an empty slice:
// absence of a usable list is absence of data, and scalars are never wrapped
// into a single-item list here. Structured elements are rendered through
// renderObject; plain scalars are stringified and trimmed. Elements that
// render empty are dropped; source order is preserved.
func CoerceList(bag types.Bag, keys []string, renderObject func(types.Object) string) []string {
	out := []string{}

	v, ok := Resolve(bag, keys)
	if !ok {
		return out
	}
	list, ok := v.(types.List)
	if !ok {
		return out
	}

	for _, item := range list {
		var s string
		switch t := item.(type) {
		case types.Object:
			if renderObject != nil {
				s = renderObject(t)
			}
		default:
			s = types.AsString(t)
		}
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// renderExperience formats a structured experience entry for display,
// e.g. "Engineer at Acme (2020-2022)".
func renderExperience(obj types.Object) string {
	role := objectString(obj, roleKeys)
	company := objectString(obj, companyKeys)
	period := objectString(obj, periodKeys)
	if role == "" && company == "" && period == "" {
		return ""
	}
	return fmt.Sprintf("%s at %s (%s)", role, company, period)
}

// renderEducation formats a structured education entry for display,
// e.g. "MSc Computer Science, Paris (2021)". The institution stands in when
// no dedicated location field is present.
func renderEducation(obj types.Object) string {
	place := objectString(obj, locationKeys)
	if place == "" {
		place = objectString(obj, institutionKeys)
	}
	degree := objectString(obj, degreeKeys)
	year := objectString(obj, yearKeys)
	if degree == "" && place == "" && year == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s (%s)", degree, place, year)
}
