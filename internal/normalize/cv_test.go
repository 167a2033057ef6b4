package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

func TestNormalizeCV(t *testing.T) {
	bag := types.Bag{
		"nom":       types.String("Marie Dupont"),
		"email":     types.String("marie@example.com"),
		"téléphone": types.String("06 01 02 03 04"),
		"adresse":   types.String("12 rue de la Paix, Paris"),
		"poste":     types.String("Software Engineer"),
		"experiences": types.List{
			types.Object{
				"role":    types.String("Engineer"),
				"company": types.String("Acme"),
				"period":  types.String("2020-2022"),
			},
			types.String("Intern at StartupCo"),
		},
		"formations": types.List{
			types.Object{
				"diplôme":       types.String("Master Informatique"),
				"établissement": types.String("ESILV"),
				"année":         types.String("2019"),
			},
		},
		"compétences": types.List{types.String("Go"), types.String("SQL"), types.String("")},
	}

	rec, out := NormalizeCV(bag, nil)

	assert.False(t, out.Defaulted)
	assert.Equal(t, "Marie Dupont", rec.Name)
	assert.Equal(t, "marie@example.com", rec.Email)
	assert.Equal(t, "06 01 02 03 04", rec.Phone)
	assert.Equal(t, "12 rue de la Paix, Paris", rec.Address)
	assert.Equal(t, "Software Engineer", rec.DesiredPosition)
	assert.Equal(t, []string{"Engineer at Acme (2020-2022)", "Intern at StartupCo"}, rec.ExperienceEntries)
	assert.Equal(t, []string{"Master Informatique, ESILV (2019)"}, rec.EducationEntries)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
	assert.NoError(t, rec.Validate())
}

func TestNormalizeCVEmptyBag(t *testing.T) {
	rec, out := NormalizeCV(types.Bag{}, nil)

	assert.False(t, out.Defaulted, "an empty bag is sparse data, not a failure")
	assert.Equal(t, types.DefaultCVName, rec.Name)
	assert.Empty(t, rec.ExperienceEntries)
	assert.NotNil(t, rec.ExperienceEntries)
	assert.NotNil(t, rec.EducationEntries)
	assert.NotNil(t, rec.Skills)
	assert.NoError(t, rec.Validate())
}

func TestNormalizeCVNilBag(t *testing.T) {
	rec, _ := NormalizeCV(nil, nil)

	require.NotNil(t, rec)
	assert.Equal(t, types.DefaultCVName, rec.Name)
	assert.NoError(t, rec.Validate())
}

func TestNormalizeCVKeyVariantPrecedence(t *testing.T) {
	// Both variants present: the declared priority order decides.
	// "experiences" precedes "expérience" in the experience key group.
	bag := types.Bag{
		"experiences": types.List{types.String("from plural key")},
		"expérience":  types.List{types.String("from accented key")},
	}

	rec, _ := NormalizeCV(bag, nil)
	assert.Equal(t, []string{"from plural key"}, rec.ExperienceEntries)

	// "nom" precedes "name".
	rec, _ = NormalizeCV(types.Bag{
		"name": types.String("English"),
		"nom":  types.String("French"),
	}, nil)
	assert.Equal(t, "French", rec.Name)
}

func TestNormalizeCVMalformedShapes(t *testing.T) {
	// Wrong shapes are treated as absent, never as errors.
	bag := types.Bag{
		"nom":         types.List{types.String("a list, not a name")},
		"experiences": types.String("not a list"),
		"competences": types.Number(7),
	}

	rec, out := NormalizeCV(bag, nil)

	assert.False(t, out.Defaulted)
	assert.Equal(t, types.DefaultCVName, rec.Name)
	assert.Empty(t, rec.ExperienceEntries)
	assert.Empty(t, rec.Skills)
	assert.NoError(t, rec.Validate())
}
