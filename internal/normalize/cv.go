package normalize

import (
	"fmt"
	"log/slog"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// NormalizeCV maps a raw field bag into a canonical CV record. It never
// fails: an unexpected panic while walking malformed data is recovered,
// logged, and converted into the minimal default record.
func NormalizeCV(bag types.Bag, logger *slog.Logger) (rec *types.CVRecord, out Outcome) {
	if logger == nil {
		logger = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("cv normalization recovered", "panic", r)
			rec = minimalCV()
			out = defaulted(fmt.Sprintf("%v", r))
		}
	}()

	rec = &types.CVRecord{
		Name:            ResolveStringDefault(bag, nameKeys, types.DefaultCVName),
		Email:           ResolveString(bag, emailKeys),
		Phone:           ResolveString(bag, phoneKeys),
		Address:         ResolveString(bag, addressKeys),
		DesiredPosition: ResolveString(bag, positionKeys),

		ExperienceEntries: CoerceList(bag, experienceKeys, renderExperience),
		EducationEntries:  CoerceList(bag, educationKeys, renderEducation),
		// Skills are plain strings; structured entries have no display
		// template here and are dropped.
		Skills: CoerceList(bag, skillKeys, nil),
	}
	return rec, ok()
}

// minimalCV is the always-valid fallback record.
func minimalCV() *types.CVRecord {
	return &types.CVRecord{
		Name:              types.DefaultCVName,
		ExperienceEntries: []string{},
		EducationEntries:  []string{},
		Skills:            []string{},
	}
}
