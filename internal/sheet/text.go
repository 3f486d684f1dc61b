package sheet

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/lawnchairsociety/amberesque/internal/character"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
)

// Options controls terminal rendering.
type Options struct {
	Color bool
}

type textWriter struct {
	w    io.Writer
	opts Options
	err  error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) colorize(text string, attr color.Attribute) string {
	if !t.opts.Color {
		return text
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}

// Text writes a terminal character sheet for snap to w.
func Text(w io.Writer, snap character.Snapshot, cat Catalog, opts Options) error {
	t := &textWriter{w: w, opts: opts}

	t.printf("%s\n", t.colorize(snap.Name, color.Bold))
	stuff := stuffText(snap.Stuff)
	if snap.Overspent() {
		stuff = t.colorize(stuff, color.FgRed)
	} else {
		stuff = t.colorize(stuff, color.FgGreen)
	}
	t.printf("%d point campaign, %d spent, %s, %d Surge\n\n", snap.CampaignLimit, snap.TotalSpent, stuff, snap.Surge)

	t.writeGrid(snap)

	t.printf("\nSkill cap %d, skill maximum %d, modifiers used %d\n", snap.SkillCap, snap.SkillMaximum, snap.SkillModifiers)
	if snap.OverSkillMaximum() {
		t.printf("%s\n", t.colorize("Skill modifiers exceed the maximum", color.FgRed))
	}

	p := snap.Points
	t.printf("\nPoints: aspects %d, functions %d, skills %d, powers %d, artifacts %d, allies %d, shadows %d\n",
		p.Aspects, p.Functions, p.Skills, p.Powers, p.Artifacts, p.Allies, p.Shadows)

	t.writeSections(snap, cat)
	return t.err
}

func (t *textWriter) writeGrid(snap character.Snapshot) {
	if t.err != nil {
		return
	}
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)

	header := []string{""}
	for _, a := range rules.Aspects {
		header = append(header, fmt.Sprintf("%s %d", a.ID, snap.Aspects.Get(a.ID)))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, f := range rules.Functions {
		row := []string{fmt.Sprintf("%s %d", f.ID, snap.Functions.Get(f.ID))}
		for _, a := range rules.Aspects {
			attr := rules.AttributeFor(f.ID, a.ID)
			info, _ := rules.LookupAttribute(attr)
			row = append(row, fmt.Sprintf("%s %s", info.Abbr, snap.Pools[attr].Grouped()))
		}
		row = append(row, fmt.Sprintf("(%d dice)", snap.FunctionDice[f.ID]))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	t.err = tw.Flush()
}

func (t *textWriter) writeSections(snap character.Snapshot, cat Catalog) {
	if len(snap.Powers) > 0 {
		t.printf("\nPowers\n")
		for _, pu := range snap.Powers {
			def, ok := cat.power(pu.PowerID)
			if !ok {
				t.printf("  %s [%d]\n", pu.PowerID, pu.Points)
				continue
			}
			t.printf("  %s [%d] %s (%s)\n", def.Name, pu.Points, pu.DisplayLabel(def), powers.Tier(def, pu.Points))
		}
	}

	if len(snap.Skills) > 0 {
		t.printf("\nSkills\n")
		for _, e := range snap.Skills {
			line := fmt.Sprintf("  %s %s (%s) [%d]", cat.skillName(e.SkillID), e.Rating, signed(e.Modifier()), e.PointCost())
			if e.Specialty != "" {
				line += ": " + e.Specialty
			}
			t.printf("%s\n", line)
		}
	}

	if len(snap.Artifacts) > 0 {
		t.printf("\nArtifacts\n")
		for _, a := range snap.Artifacts {
			t.printf("  %s x%d [%d]\n", a.Name, a.Quantity, a.PointCost())
		}
	}

	if len(snap.Shadows) > 0 {
		t.printf("\nPersonal Shadows\n")
		for _, s := range snap.Shadows {
			t.printf("  %s [%d]\n", s.Name, s.PointCost())
		}
	}

	if len(snap.Allies) > 0 {
		t.printf("\nAllies and Enemies\n")
		for _, a := range snap.Allies {
			name := a.Name
			if a.Loyalty.IsEnemy() {
				name = t.colorize(name, color.FgRed)
			}
			t.printf("  %s, %s [%d]\n", name, a.Loyalty, a.PointCost())
		}
	}
}
