package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

func TestNormalizeReport(t *testing.T) {
	bag := types.Bag{
		"titre":  types.String("Rapport annuel"),
		"auteur": types.String("Direction"),
		"date":   types.String("2024-03-01"),
		"resume": types.String("Vue d'ensemble de l'année."),
		"sections": types.List{
			types.Object{"titre": types.String("Introduction"), "contenu": types.String("Contexte.")},
			types.Object{"title": types.String("Results"), "content": types.String("Numbers.")},
		},
		"conclusions": types.String("Une bonne année."),
	}

	rec, out := NormalizeReport(bag, nil)

	assert.False(t, out.Defaulted)
	assert.Equal(t, "Rapport annuel", rec.Title)
	assert.Equal(t, "Direction", rec.Author)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, "Vue d'ensemble de l'année.", rec.Summary)
	assert.Equal(t, []types.Section{
		{Title: "Introduction", Content: "Contexte."},
		{Title: "Results", Content: "Numbers."},
	}, rec.Sections)
	assert.Equal(t, "Une bonne année.", rec.Conclusions)
	assert.NoError(t, rec.Validate())
}

func TestNormalizeReportFlatContentSynthesizesSection(t *testing.T) {
	rec, _ := NormalizeReport(types.Bag{"content": types.String("Hello")}, nil)

	assert.Equal(t, []types.Section{{Title: "Content", Content: "Hello"}}, rec.Sections)
}

func TestNormalizeReportChaptersFallback(t *testing.T) {
	bag := types.Bag{
		"chapitres": types.List{
			types.Object{"titre": types.String("Chapitre 1"), "contenu": types.String("Texte.")},
		},
	}

	rec, _ := NormalizeReport(bag, nil)
	assert.Equal(t, []types.Section{{Title: "Chapitre 1", Content: "Texte."}}, rec.Sections)
}

func TestNormalizeReportSectionsTakePrecedenceOverChapters(t *testing.T) {
	bag := types.Bag{
		"sections":  types.List{types.String("from sections")},
		"chapitres": types.List{types.String("from chapters")},
		"contenu":   types.String("flat content"),
	}

	rec, _ := NormalizeReport(bag, nil)
	assert.Equal(t, []types.Section{{Content: "from sections"}}, rec.Sections)
}

func TestNormalizeReportScalarSectionsTreatedAsAbsent(t *testing.T) {
	// A scalar where a list is expected is malformed data, not an error:
	// coercion falls through to the flat content string.
	bag := types.Bag{
		"sections": types.String("not a list"),
		"contenu":  types.String("the real content"),
	}

	rec, _ := NormalizeReport(bag, nil)
	assert.Equal(t, []types.Section{{Title: "Content", Content: "the real content"}}, rec.Sections)
}

func TestNormalizeReportDefaults(t *testing.T) {
	rec, out := NormalizeReport(types.Bag{}, nil)

	assert.False(t, out.Defaulted)
	assert.Equal(t, types.DefaultReportTitle, rec.Title)
	assert.Equal(t, types.DefaultReportAuthor, rec.Author)
	assert.WithinDuration(t, time.Now(), rec.Date, 5*time.Second)
	assert.NotNil(t, rec.Sections)
	assert.Empty(t, rec.Sections)
	assert.NoError(t, rec.Validate())
}
