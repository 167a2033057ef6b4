package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// syntheticSectionTitle names the section synthesized from a flat content
// string when the bag carries no section or chapter list.
const syntheticSectionTitle = "Content"

// NormalizeReport maps a raw field bag into a canonical report record.
// Total function: unexpected panics are recovered into the minimal default.
func NormalizeReport(bag types.Bag, logger *slog.Logger) (rec *types.ReportRecord, out Outcome) {
	if logger == nil {
		logger = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("report normalization recovered", "panic", r)
			rec = minimalReport()
			out = defaulted(fmt.Sprintf("%v", r))
		}
	}()

	rec = &types.ReportRecord{
		Title:       ResolveStringDefault(bag, titleKeys, types.DefaultReportTitle),
		Author:      ResolveStringDefault(bag, authorKeys, types.DefaultReportAuthor),
		Date:        CoerceDate(ResolveString(bag, reportDateKeys)),
		Summary:     ResolveString(bag, summaryKeys),
		Sections:    coerceSections(bag),
		Conclusions: ResolveString(bag, conclusionKeys),
	}
	return rec, ok()
}

// coerceSections builds the section slice from, in order of preference: a
// sections list, a chapters list, or a single flat content string promoted
// to one synthetic section. Always returns a well-typed slice.
func coerceSections(bag types.Bag) []types.Section {
	for _, keys := range [][]string{sectionListKeys, chapterListKeys} {
		v, ok := Resolve(bag, keys)
		if !ok {
			continue
		}
		list, ok := v.(types.List)
		if !ok {
			// Wrong shape is treated as absent, not as an error.
			continue
		}
		return sectionsFromList(list)
	}

	if content := ResolveString(bag, contentKeys); content != "" {
		return []types.Section{{Title: syntheticSectionTitle, Content: content}}
	}
	return []types.Section{}
}

// sectionsFromList converts list elements into sections. Structured elements
// map title/content key variants; bare strings become untitled sections.
func sectionsFromList(list types.List) []types.Section {
	sections := []types.Section{}
	for _, item := range list {
		switch t := item.(type) {
		case types.Object:
			sec := types.Section{
				Title:   objectString(t, sectionTitleKeys),
				Content: objectString(t, sectionContentKeys),
			}
			if sec.Title != "" || sec.Content != "" {
				sections = append(sections, sec)
			}
		default:
			if s := strings.TrimSpace(types.AsString(t)); s != "" {
				sections = append(sections, types.Section{Content: s})
			}
		}
	}
	return sections
}

// minimalReport is the always-valid fallback record.
func minimalReport() *types.ReportRecord {
	return &types.ReportRecord{
		Title:    types.DefaultReportTitle,
		Author:   types.DefaultReportAuthor,
		Date:     timeNow(),
		Sections: []types.Section{},
	}
}
