package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		hasError bool
	}{
		{"social", Social, false},
		{"Physical", Physical, false},
		{" ABSTRACT ", Abstract, false},
		{"mystical", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseCategory(tc.input)
		if tc.hasError {
			assert.Error(t, err, "ParseCategory(%q)", tc.input)
			continue
		}
		require.NoError(t, err, "ParseCategory(%q)", tc.input)
		assert.Equal(t, tc.expected, got)
	}
}

func TestEntryCostAndModifier(t *testing.T) {
	tests := []struct {
		rating   rules.SkillRating
		modifier int
		cost     int
	}{
		{rules.Poor, -1, -5},
		{rules.Average, 0, 0},
		{rules.Good, 1, 0},
		{rules.Great, 2, 0},
		{rules.Exceptional, 3, 5},
		{rules.Extraordinary, 4, 10},
		{"Legendary", 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.rating), func(t *testing.T) {
			e := Entry{SkillID: "ScholarsMind", Rating: tt.rating}
			assert.Equal(t, tt.modifier, e.Modifier())
			assert.Equal(t, tt.cost, e.PointCost())
		})
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("SilverTongue")
	assert.Equal(t, "SilverTongue", e.SkillID)
	assert.Equal(t, rules.Average, e.Rating)
	assert.Empty(t, e.Specialty)
}

func TestTotals(t *testing.T) {
	entries := []Entry{
		{SkillID: "SilverTongue", Rating: rules.Extraordinary},
		{SkillID: "WayOfTheRogue", Rating: rules.Poor},
		{SkillID: "ScholarsMind", Rating: rules.Exceptional},
		{SkillID: "ArtisansCraft", Rating: rules.Great},
	}

	assert.Equal(t, 10-5+5+0, TotalCost(entries))
	assert.Equal(t, 4-1+3+2, TotalModifier(entries))
	assert.Zero(t, TotalCost(nil))
	assert.Zero(t, TotalModifier(nil))
}

func TestCanSelect(t *testing.T) {
	great := Entry{SkillID: "A", Rating: rules.Great}
	exceptional := Entry{SkillID: "B", Rating: rules.Exceptional}
	entries := []Entry{great, exceptional} // modifier total 5

	tests := []struct {
		name      string
		candidate rules.SkillRating
		current   Entry
		cap, max  int
		want      bool
	}{
		{"raise within limits", rules.Extraordinary, great, 4, 10, true},
		{"raise over maximum", rules.Extraordinary, great, 4, 6, false},
		{"raise to exactly maximum", rules.Exceptional, great, 4, 6, true},
		{"over cap", rules.Exceptional, great, 2, 10, false},
		{"current always allowed", rules.Great, great, 1, 0, true},
		{"lowering allowed when over maximum", rules.Poor, exceptional, 4, 3, true},
		{"lowering still blocked if total stays over", rules.Good, exceptional, 4, 2, false},
		{"unknown rating", "Legendary", great, 4, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSelect(tt.candidate, tt.current, entries, tt.cap, tt.max))
		})
	}
}

func TestCanSelectDoesNotMutate(t *testing.T) {
	entries := []Entry{{SkillID: "A", Rating: rules.Good}}
	before := append([]Entry(nil), entries...)

	CanSelect(rules.Great, entries[0], entries, 4, 10)
	Options(entries[0], entries, 4, 10)

	assert.Equal(t, before, entries)
}

func TestOptions(t *testing.T) {
	great := Entry{SkillID: "A", Rating: rules.Great}
	entries := []Entry{great, {SkillID: "B", Rating: rules.Exceptional}}

	assert.Equal(t,
		[]rules.SkillRating{rules.Poor, rules.Average, rules.Good, rules.Great},
		Options(great, entries, 2, 10))

	assert.Equal(t,
		[]rules.SkillRating{rules.Poor, rules.Average, rules.Good, rules.Great, rules.Exceptional},
		Options(great, entries, 4, 6))

	// A brand new Average skill on a character with no headroom left.
	fresh := NewEntry("C")
	full := append(entries, fresh)
	assert.Equal(t,
		[]rules.SkillRating{rules.Poor, rules.Average},
		Options(fresh, full, 4, 5))
}

func TestRegistryLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	content := `skills:
  ScholarsMind:
    name: Scholar's Mind
    category: abstract
    order: 2
  SilverTongue:
    name: Silver Tongue
    emoji: "🗣️"
    category: social
    order: 1
  Nameless:
    category: physical
    order: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := NewRegistry()
	require.NoError(t, r.LoadFromYAML(path))
	assert.Equal(t, 3, r.Count())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "SilverTongue", all[0].ID)
	assert.Equal(t, "ScholarsMind", all[1].ID)
	assert.Equal(t, "Nameless", all[2].ID)
	assert.Equal(t, "Nameless", all[2].Name, "name falls back to id")

	skill, ok := r.GetSkill("ScholarsMind")
	require.True(t, ok)
	assert.Equal(t, Abstract, skill.Category)
	assert.True(t, r.HasSkill("SilverTongue"))
	assert.False(t, r.HasSkill("Juggling"))

	avail := r.Available([]Entry{{SkillID: "SilverTongue"}})
	require.Len(t, avail, 2)
	assert.Equal(t, "ScholarsMind", avail[0].ID)
}

func TestRegistryLoadErrors(t *testing.T) {
	dir := t.TempDir()

	r := NewRegistry()
	assert.Error(t, r.LoadFromYAML(filepath.Join(dir, "missing.yaml")))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("skills: [not, a, map"), 0644))
	assert.Error(t, r.LoadFromYAML(bad))

	badCategory := filepath.Join(dir, "category.yaml")
	require.NoError(t, os.WriteFile(badCategory, []byte("skills:\n  X:\n    category: mystical\n"), 0644))
	err := r.LoadFromYAML(badCategory)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skill X")
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()
	r.Add(&Skill{ID: "A", Name: "A", Category: Social})
	r.Add(&Skill{ID: "B", Name: "B", Category: Social})
	r.Add(&Skill{ID: "A", Name: "A2", Category: Physical})

	require.Equal(t, 2, r.Count())
	all := r.All()
	assert.Equal(t, "A2", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
}

func TestShippedSkillCatalog(t *testing.T) {
	dir := findDataDir()
	if dir == "" {
		t.Skip("data directory not found")
	}

	r := NewRegistry()
	require.NoError(t, r.LoadFromYAML(filepath.Join(dir, "skills.yaml")))
	assert.Equal(t, 12, r.Count())

	counts := make(map[Category]int)
	for _, s := range r.All() {
		counts[s.Category]++
		assert.NotEmpty(t, s.Name, s.ID)
	}
	assert.Equal(t, map[Category]int{Social: 4, Physical: 4, Abstract: 4}, counts)
}

// findDataDir looks for the data directory
func findDataDir() string {
	candidates := []string{
		"../../data",
		"../../../data",
		"data",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(filepath.Join(candidate, "skills.yaml")); err == nil {
			return candidate
		}
	}

	return ""
}
