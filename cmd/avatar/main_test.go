package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawnchairsociety/amberesque/internal/character"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/lawnchairsociety/amberesque/internal/savefile"
)

// findDataDir looks for the data directory
func findDataDir() string {
	for _, candidate := range []string{"../../data", "data"} {
		if _, err := os.Stat(filepath.Join(candidate, "powers.yaml")); err == nil {
			return candidate
		}
	}
	return ""
}

// run executes the CLI with catalogs from the repo data directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := findDataDir()
	if dir == "" {
		t.Skip("data directory not found")
	}
	t.Setenv("AVATAR_SKILLS_PATH", filepath.Join(dir, "skills.yaml"))
	t.Setenv("AVATAR_POWERS_PATH", filepath.Join(dir, "powers.yaml"))

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", missing, "--logging", missing, "--no-color"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestBuildCharacter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corwin.json")

	out, err := run(t, "new", path, "--name", "Corwin")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	_, err = run(t, "new", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, "skill", path, "SilverTongue", "Extraordinary", "--specialty", "Court intrigue")
	require.NoError(t, err)
	assert.Contains(t, out, "10 spent, 90 Stuff, 26 Surge")

	_, err = run(t, "skill", path, "WayOfTheRogue", "Extraordinary")
	require.NoError(t, err)
	_, err = run(t, "skill", path, "ScholarsMind", "Great")
	require.NoError(t, err)

	// 4 + 4 + 2 already uses the maximum of 10
	_, err = run(t, "skill", path, "UnseenHand", "Good")
	assert.ErrorContains(t, err, "cannot be Good")

	out, err = run(t, "power", path, "PatternImprint", "--points", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "100 spent, 0 Stuff, 8 Surge")

	out, err = run(t, "ally", path, "Eric", "--loyalty", "nemesis")
	require.NoError(t, err)
	assert.Contains(t, out, "94 spent, 6 Stuff, 9 Surge")

	_, err = run(t, "artifact", path, "Jewel of Judgement", "--cost", "3", "--quantity", "2")
	require.NoError(t, err)
	_, err = run(t, "shadow", path, "Avalon", "--cost", "-5")
	require.NoError(t, err)

	in, err := savefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Corwin", in.Name)
	require.Len(t, in.Powers, 1)
	assert.Equal(t, "Pattern Adept", in.Powers[0].Label)
	assert.Equal(t, powers.LabelTier, in.Powers[0].LabelState)
	assert.Equal(t, character.Nemesis, in.Allies[0].Loyalty)
	assert.Equal(t, rules.Extraordinary, in.Skills[0].Rating)
	assert.Equal(t, "Court intrigue", in.Skills[0].Specialty)

	snap := character.Compute(in)
	assert.Equal(t, 95, snap.TotalSpent)
	assert.Equal(t, 5, snap.Stuff)

	out, err = run(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Corwin")
	assert.Contains(t, out, "Pattern Imprint [80] Pattern Adept (Advanced)")

	out, err = run(t, "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "{{monster,frame")
	assert.Contains(t, out, "***9 Surge Points*** (+5 Good Stuff)")
}

func TestPowerLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fiona.yaml")
	_, err := run(t, "new", path, "--name", "Fiona")
	require.NoError(t, err)

	_, err = run(t, "power", path, "Sorcery", "--label", "Weather witch")
	require.NoError(t, err)
	_, err = run(t, "power", path, "Sorcery", "--points", "30")
	require.NoError(t, err)

	in, err := savefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Weather witch", in.Powers[0].Label, "custom labels survive point changes")
	assert.Equal(t, 30, in.Powers[0].Points)

	_, err = run(t, "power", path, "MinorPower", "--points", "9")
	assert.ErrorIs(t, err, character.ErrPowerPoints)

	_, err = run(t, "power", path, "Sorcery", "--remove")
	require.NoError(t, err)
	in, err = savefile.Load(path)
	require.NoError(t, err)
	assert.Empty(t, in.Powers)
}

func TestOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.json")
	_, err := run(t, "new", path)
	require.NoError(t, err)
	_, err = run(t, "skill", path, "SilverTongue", "Great")
	require.NoError(t, err)

	out, err := run(t, "options", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Skill cap 4, maximum 10, used 2")
	assert.Contains(t, out, "ScholarsMind")
	assert.NotContains(t, out, "SilverTongue")

	out, err = run(t, "options", path, "SilverTongue")
	require.NoError(t, err)
	assert.Contains(t, out, "Great (+2) 0 points *")
	assert.Contains(t, out, "Extraordinary (+4) 10 points")

	_, err = run(t, "options", path, "Juggling")
	assert.ErrorIs(t, err, character.ErrUnknownSkill)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	from := filepath.Join(dir, "benedict.json")
	to := filepath.Join(dir, "benedict.yml")

	_, err := run(t, "new", from, "--name", "Benedict")
	require.NoError(t, err)
	_, err = run(t, "skill", from, "WayOfTheWarrior", "Extraordinary")
	require.NoError(t, err)

	_, err = run(t, "convert", from, to)
	require.NoError(t, err)

	a, err := savefile.Load(from)
	require.NoError(t, err)
	b, err := savefile.Load(to)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	_, err := run(t, "new", good)
	require.NoError(t, err)

	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := filepath.Join(dir, "bad.json")
	data := `{"name": "Broken", "aspects": {"Form": 7}, "skills": [{"skillId": "Juggling", "rating": "Good"}]}`
	require.NoError(t, os.WriteFile(bad, []byte(data), 0644))

	out, err = run(t, "validate", bad)
	assert.ErrorContains(t, err, "2 problem(s)")
	assert.Contains(t, out, "not on the rating scale")
	assert.Contains(t, out, "unknown skill")

	_, err = run(t, "show", bad)
	assert.ErrorIs(t, err, character.ErrUnknownSkill)
}

func TestCatalog(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "SilverTongue")
	assert.Contains(t, out, "PatternImprint Pattern Imprint")
	assert.Contains(t, out, "Pattern Initiate 50")
}

func TestRateAndSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.json")
	_, err := run(t, "new", path)
	require.NoError(t, err)

	out, err := run(t, "rate", path, "form", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Form 10 🐉 Supernatural")
	_, err = run(t, "rate", path, "Force", "-10")
	require.NoError(t, err)

	_, err = run(t, "rate", path, "Mind", "7")
	assert.ErrorIs(t, err, character.ErrRatingOffScale)
	_, err = run(t, "rate", path, "Soul", "5")
	assert.ErrorContains(t, err, "not an Aspect or Function")
	_, err = run(t, "rate", path, "Mind", "lots")
	assert.ErrorContains(t, err, "not a number")

	_, err = run(t, "set", path)
	assert.ErrorContains(t, err, "nothing to set")
	_, err = run(t, "set", path, "--limit", "-5")
	assert.ErrorContains(t, err, "negative")

	out, err = run(t, "set", path, "--name", "Random", "--limit", "120", "--icon", "ei_dark")
	require.NoError(t, err)
	assert.Contains(t, out, "120 Stuff")

	in, err := savefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Random", in.Name)
	assert.Equal(t, 120, in.CampaignLimit)
	assert.Equal(t, "ei_dark", in.Icon)
	assert.Equal(t, rules.AspectRatings{Form: 10}, in.Aspects)
	assert.Equal(t, rules.FunctionRatings{Force: -10}, in.Functions)

	_, err = run(t, "set", path, "--icon", "")
	require.NoError(t, err)
	in, err = savefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, character.DefaultIcon, in.Icon)
	assert.Equal(t, "Random", in.Name, "unset flags are left alone")
}

func TestHoldingEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corwin.json")
	_, err := run(t, "new", path, "--name", "Corwin")
	require.NoError(t, err)

	_, err = run(t, "artifact", path)
	assert.ErrorContains(t, err, "needs a name")

	_, err = run(t, "artifact", path, "Jewel of Judgement", "--cost", "3")
	require.NoError(t, err)
	_, err = run(t, "ally", path, "Eric", "--loyalty", "nemesis")
	require.NoError(t, err)
	_, err = run(t, "shadow", path, "Avalon", "--cost", "-5")
	require.NoError(t, err)

	in, err := savefile.Load(path)
	require.NoError(t, err)
	artifactID, allyID, shadowID := in.Artifacts[0].ID, in.Allies[0].ID, in.Shadows[0].ID

	_, err = run(t, "artifact", path, "--id", artifactID, "--quantity", "2")
	require.NoError(t, err)
	_, err = run(t, "artifact", path, "--id", artifactID, "--quantity", "0")
	assert.ErrorIs(t, err, character.ErrArtifactQuantity)
	_, err = run(t, "artifact", path, "--id", "missing", "--cost", "1")
	assert.ErrorContains(t, err, "no artifact")

	_, err = run(t, "ally", path, "--id", allyID, "--loyalty", "devotee")
	require.NoError(t, err)
	_, err = run(t, "shadow", path, "--id", shadowID, "--description", "Where the unicorn walks")
	require.NoError(t, err)

	in, err = savefile.Load(path)
	require.NoError(t, err)
	require.Len(t, in.Artifacts, 1)
	assert.Equal(t, "Jewel of Judgement", in.Artifacts[0].Name)
	assert.Equal(t, 3, in.Artifacts[0].Cost)
	assert.Equal(t, 2, in.Artifacts[0].Quantity)
	require.Len(t, in.Allies, 1)
	assert.Equal(t, "Eric", in.Allies[0].Name)
	assert.Equal(t, character.Devotee, in.Allies[0].Loyalty)
	require.Len(t, in.Shadows, 1)
	assert.Equal(t, -5, in.Shadows[0].Cost)
	assert.Equal(t, "Where the unicorn walks", in.Shadows[0].Description)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cost": 6`)

	_, err = run(t, "artifact", path, "--remove", artifactID)
	require.NoError(t, err)
	_, err = run(t, "ally", path, "--remove", "Eric")
	require.NoError(t, err)
	_, err = run(t, "shadow", path, "--remove", shadowID)
	require.NoError(t, err)
	_, err = run(t, "shadow", path, "--remove", shadowID)
	assert.ErrorContains(t, err, "no shadow")

	in, err = savefile.Load(path)
	require.NoError(t, err)
	assert.Empty(t, in.Artifacts)
	assert.Empty(t, in.Allies)
	assert.Empty(t, in.Shadows)
}

func TestShowJSONUsesCamelCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.json")
	_, err := run(t, "new", path)
	require.NoError(t, err)

	out, err := run(t, "show", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"campaignLimit": 100`)
	assert.Contains(t, out, `"totalSpent": 0`)
	assert.Contains(t, out, `"skillCap": 4`)
	assert.Contains(t, out, `"surge": 28`)
	assert.NotContains(t, out, `"TotalSpent"`)
}
