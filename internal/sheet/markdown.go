package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/amberesque/internal/character"
	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/lawnchairsociety/amberesque/internal/stats"
)

var dieIcon = map[int]string{
	4:  ":df_d4_4:",
	6:  ":df_d6_6:",
	8:  ":df_d8_8:",
	10: ":df_d10_10:",
	12: ":df_d12_12:",
}

// DieIcons renders a pool as Homebrewery die icons, one per die.
func DieIcons(p stats.Pool) string {
	var b strings.Builder
	for _, d := range p.Dice {
		if icon, ok := dieIcon[d]; ok {
			b.WriteString(icon)
		} else {
			b.WriteString("d" + strconv.Itoa(d))
		}
	}
	if p.Divisor > 0 {
		b.WriteString("÷" + strconv.Itoa(p.Divisor))
	}
	return b.String()
}

// Markdown renders snap as a Homebrewery monster frame.
func Markdown(snap character.Snapshot, cat Catalog) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	name := snap.Name
	if name == "" {
		name = "Avatar Name"
	}

	add("{{monster,frame")
	add("## :%s: %s", snap.Icon, name)
	add("*%d Points*", snap.CampaignLimit)
	add("___")

	header := "| |"
	for _, a := range rules.Aspects {
		header += fmt.Sprintf("|%s **%s**", a.Emoji, a.ID)
	}
	add("%s|", header)
	add("|:------------------|:------:|:------:|:------:|:------:|:------:|")

	ratings := fmt.Sprintf("| |[%d]", snap.Points.Ratings())
	for _, a := range rules.Aspects {
		ratings += "|" + strconv.Itoa(snap.Aspects.Get(a.ID))
	}
	add("%s|", ratings)

	for _, f := range rules.Functions {
		cells := []string{fmt.Sprintf("%s **%s**", f.Emoji, f.ID), strconv.Itoa(snap.Functions.Get(f.ID))}
		for _, a := range rules.Aspects {
			attr := rules.AttributeFor(f.ID, a.ID)
			info, _ := rules.LookupAttribute(attr)
			cells = append(cells, info.Abbr+"<br>"+DieIcons(snap.Pools[attr]))
		}
		add("|%s|", strings.Join(cells, "|"))
	}

	add("___")
	add("")
	add("***%d Surge Points*** (%s)", snap.Surge, stuffText(snap.Stuff))
	add("___")

	if len(snap.Powers) > 0 {
		add("#### Powers")
		for _, pu := range snap.Powers {
			def, ok := cat.power(pu.PowerID)
			if !ok {
				continue
			}
			label := " ::"
			if l := pu.DisplayLabel(def); l != "" {
				label = " :: " + l
			}
			add("**%s** *[%d Points]*%s", def.Name, pu.Points, label)
		}
	}

	if len(snap.Skills) > 0 {
		add("")
		add("#### Skills [%d Points], Cap:%d, Max:%d", snap.Points.Skills, snap.SkillCap, snap.SkillMaximum)
		for _, e := range snap.Skills {
			line := fmt.Sprintf("**%s**::%s (%s)", cat.skillName(e.SkillID), e.Rating, signed(e.Modifier()))
			if e.Specialty != "" {
				line += " " + e.Specialty
			}
			lines = append(lines, line)
		}
	}

	if len(snap.Artifacts) > 0 {
		add("")
		add("#### Creatures and Artifacts of Power")
		for _, a := range snap.Artifacts {
			qty := ""
			if a.Quantity > 1 {
				qty = fmt.Sprintf(" x%d", a.Quantity)
			}
			add("**%s** *[%d Points]*%s :: %s", a.Name, a.Cost, qty, a.Description)
		}
	}

	if len(snap.Shadows) > 0 {
		add("")
		add("#### Private Shadows")
		for _, s := range snap.Shadows {
			add("**%s** *[%d Points]* :: %s", s.Name, s.Cost, s.Description)
		}
	}

	if len(snap.Allies) > 0 {
		add("")
		add("#### Allies and Enemies")
		for _, a := range snap.Allies {
			desc := a.Description
			if desc == "" {
				desc = a.Loyalty.String()
			}
			add("**%s** *[%d Points]* :: %s", a.Name, a.PointCost(), desc)
		}
	}

	add("}}")
	return strings.Join(lines, "\n")
}
