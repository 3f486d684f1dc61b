package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawnchairsociety/amberesque/internal/character"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/lawnchairsociety/amberesque/internal/savefile"
	"github.com/lawnchairsociety/amberesque/internal/sheet"
	"github.com/lawnchairsociety/amberesque/internal/skills"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "avatar",
		Short:             "Amberesque avatar point-buy calculator",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "data/avatar.yaml", "Path to config YAML file")
	root.PersistentFlags().StringVar(&a.loggingPath, "logging", "data/logging.yaml", "Path to logging config YAML file")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(
		newNewCmd(a),
		newShowCmd(a),
		newExportCmd(a),
		newOptionsCmd(a),
		newConvertCmd(a),
		newValidateCmd(a),
		newCatalogCmd(a),
		newRateCmd(a),
		newSetCmd(a),
		newSkillCmd(a),
		newPowerCmd(a),
		newArtifactCmd(a),
		newAllyCmd(a),
		newShadowCmd(a),
	)
	return root
}

func newNewCmd(a *app) *cobra.Command {
	var name string
	var force bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a blank character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			in := character.NewInput(name)
			in.CampaignLimit = a.cfg.Character.CampaignLimit
			if a.cfg.Character.Icon != "" {
				in.Icon = a.cfg.Character.Icon
			}
			if err := savefile.Save(path, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Character name")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the derived character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.compute(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			return sheet.Text(cmd.OutOrStdout(), snap, a.catalog(), sheet.Options{Color: a.cfg.Output.Color})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the snapshot as JSON")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the character as Homebrewery markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.compute(args[0])
			if err != nil {
				return err
			}
			md := sheet.Markdown(snap, a.catalog()) + "\n"
			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			if err := os.WriteFile(output, []byte(md), 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options <file> [skill]",
		Short: "List skills still available, or the ratings a skill may take",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.compute(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				fmt.Fprintf(out, "Skill cap %d, maximum %d, used %d\n", snap.SkillCap, snap.SkillMaximum, snap.SkillModifiers)
				for _, s := range a.skills.Available(snap.Skills) {
					fmt.Fprintf(out, "%s  %s (%s)\n", s.ID, s.Name, s.Category)
				}
				return nil
			}

			skillID := args[1]
			if !a.skills.HasSkill(skillID) {
				return fmt.Errorf("skill %q: %w", skillID, character.ErrUnknownSkill)
			}
			current, taken := snap.Skill(skillID)
			for _, r := range snap.SkillOptions(skillID) {
				info, _ := rules.LookupSkillRating(r)
				marker := ""
				if taken && r == current.Rating {
					marker = " *"
				}
				fmt.Fprintf(out, "%s (%+d) %d points%s\n", r, info.Modifier, info.Cost, marker)
			}
			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <from> <to>",
		Short: "Rewrite a character file, converting between JSON and YAML by extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := savefile.Save(args[1], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a character file against the rules and catalogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := savefile.Load(args[0])
			if err != nil {
				return err
			}
			in = savefile.Migrate(in, a.powers)

			err = character.Validate(in, a.skills, a.powers)
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
				return nil
			}

			problems := []error{err}
			var joined interface{ Unwrap() []error }
			if errors.As(err, &joined) {
				problems = joined.Unwrap()
			}
			for _, p := range problems {
				fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", p)
			}
			return fmt.Errorf("%s has %d problem(s)", args[0], len(problems))
		},
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the skill and power catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Skills")
			for _, s := range a.skills.All() {
				fmt.Fprintf(out, "  %s %s (%s)\n", s.ID, s.Name, s.Category)
			}
			fmt.Fprintln(out, "Powers")
			for _, p := range a.powers.All() {
				levels := make([]string, 0, len(p.Levels))
				for _, l := range p.Levels {
					levels = append(levels, fmt.Sprintf("%s %d", l.Name, l.Cost))
				}
				fmt.Fprintf(out, "  %s %s (%s) %s\n", p.ID, p.Name, p.Category, strings.Join(levels, ", "))
			}
			return nil
		},
	}
}

func newRateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <file> <Aspect|Function> <value>",
		Short: "Set an Aspect or Function rating",
		Long:  "Set an Aspect or Function rating. Ratings run from -20 to 30 in steps of 5.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("rating %q is not a number", args[2])
			}
			if !rules.IsValidRating(value) {
				return fmt.Errorf("%s %d: %w", args[1], value, character.ErrRatingOffScale)
			}

			in, err := a.load(path)
			if err != nil {
				return err
			}
			var name string
			if aspect, ok := rules.ParseAspect(args[1]); ok {
				in.Aspects.Set(aspect, value)
				name = string(aspect)
			} else if function, ok := rules.ParseFunction(args[1]); ok {
				in.Functions.Set(function, value)
				name = string(function)
			} else {
				return fmt.Errorf("%q is not an Aspect or Function", args[1])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", name, value, rules.RatingLabel(value))
			return a.save(cmd, path, in)
		},
	}
	// Negative ratings must not be read as shorthand flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	var name, icon string
	var limit int

	cmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Change the name, campaign limit or icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("limit") && !flags.Changed("icon") {
				return errors.New("nothing to set (use --name, --limit or --icon)")
			}
			if limit < 0 {
				return fmt.Errorf("campaign limit %d is negative", limit)
			}

			in, err := a.load(path)
			if err != nil {
				return err
			}
			if flags.Changed("name") {
				in.Name = name
			}
			if flags.Changed("limit") {
				in.CampaignLimit = limit
			}
			if flags.Changed("icon") {
				in.Icon = icon
				if in.Icon == "" {
					in.Icon = character.DefaultIcon
				}
			}
			return a.save(cmd, path, in)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Character name")
	cmd.Flags().IntVar(&limit, "limit", 0, "Campaign point limit")
	cmd.Flags().StringVar(&icon, "icon", "", "Avatar icon; empty restores the default")
	return cmd
}

func newSkillCmd(a *app) *cobra.Command {
	var specialty string
	var remove bool

	cmd := &cobra.Command{
		Use:   "skill <file> <skill> [rating]",
		Short: "Take a skill or change its rating",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, skillID := args[0], args[1]
			in, err := a.load(path)
			if err != nil {
				return err
			}
			if !a.skills.HasSkill(skillID) {
				return fmt.Errorf("skill %q: %w", skillID, character.ErrUnknownSkill)
			}

			if remove {
				in.Skills = removeWhere(in.Skills, func(e skills.Entry) bool { return e.SkillID == skillID })
				return a.save(cmd, path, in)
			}

			entry, taken := in.Skill(skillID)
			if !taken {
				entry = skills.NewEntry(skillID)
			}
			if len(args) == 3 {
				rating := rules.SkillRating(args[2])
				if _, ok := rules.LookupSkillRating(rating); !ok {
					return fmt.Errorf("rating %q: %w", args[2], character.ErrUnknownRating)
				}
				snap := character.Compute(in)
				if !snap.CanSelectSkill(skillID, rating) {
					return fmt.Errorf("%s cannot be %s (cap %d, maximum %d, used %d)",
						skillID, rating, snap.SkillCap, snap.SkillMaximum, snap.SkillModifiers)
				}
				entry.Rating = rating
			}
			if cmd.Flags().Changed("specialty") {
				entry.Specialty = specialty
			}

			if taken {
				for i := range in.Skills {
					if in.Skills[i].SkillID == skillID {
						in.Skills[i] = entry
					}
				}
			} else {
				in.Skills = append(in.Skills, entry)
			}
			return a.save(cmd, path, in)
		},
	}
	cmd.Flags().StringVar(&specialty, "specialty", "", "Skill specialty")
	cmd.Flags().BoolVar(&remove, "remove", false, "Drop the skill")
	return cmd
}

func newPowerCmd(a *app) *cobra.Command {
	var points int
	var label, description string
	var remove bool

	cmd := &cobra.Command{
		Use:   "power <file> <power>",
		Short: "Buy a power or change its points, label or description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, powerID := args[0], args[1]
			in, err := a.load(path)
			if err != nil {
				return err
			}
			def, ok := a.powers.GetPower(powerID)
			if !ok {
				return fmt.Errorf("power %q: %w", powerID, character.ErrUnknownPower)
			}

			if remove {
				in.Powers = removeWhere(in.Powers, func(pu powers.Purchase) bool { return pu.PowerID == powerID })
				return a.save(cmd, path, in)
			}

			idx := -1
			for i, pu := range in.Powers {
				if pu.PowerID == powerID {
					idx = i
				}
			}
			purchase := powers.NewPurchase(def)
			if idx >= 0 {
				purchase = in.Powers[idx]
			}

			if cmd.Flags().Changed("points") {
				if !def.ValidPoints(points) {
					return fmt.Errorf("power %q points %d: %w", powerID, points, character.ErrPowerPoints)
				}
				purchase = purchase.WithPoints(def, points)
			}
			if cmd.Flags().Changed("label") {
				purchase = purchase.WithLabel(label)
			}
			if cmd.Flags().Changed("description") {
				purchase = purchase.WithDescription(description)
			}

			if idx >= 0 {
				in.Powers[idx] = purchase
			} else {
				in.Powers = append(in.Powers, purchase)
			}
			return a.save(cmd, path, in)
		},
	}
	cmd.Flags().IntVar(&points, "points", 0, "Points spent on the power")
	cmd.Flags().StringVar(&label, "label", "", "Custom label; empty hands labelling back to the tiers")
	cmd.Flags().StringVar(&description, "description", "", "How the power manifests")
	cmd.Flags().BoolVar(&remove, "remove", false, "Drop the power")
	return cmd
}

func newArtifactCmd(a *app) *cobra.Command {
	var cost, quantity int
	var description, id, remove string

	cmd := &cobra.Command{
		Use:   "artifact <file> [name]",
		Short: "Add, change or drop a creature or artifact of power",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			in, err := a.load(path)
			if err != nil {
				return err
			}

			if remove != "" {
				kept := removeWhere(in.Artifacts, func(x character.Artifact) bool { return x.ID == remove || x.Name == remove })
				if len(kept) == len(in.Artifacts) {
					return fmt.Errorf("no artifact %q in %s", remove, path)
				}
				in.Artifacts = kept
				return a.save(cmd, path, in)
			}

			idx := indexWhere(in.Artifacts, func(x character.Artifact) bool { return x.ID == id })
			artifact := character.NewArtifact()
			switch {
			case id != "" && idx < 0:
				return fmt.Errorf("no artifact %q in %s", id, path)
			case idx >= 0:
				artifact = in.Artifacts[idx]
			case len(args) < 2:
				return errors.New("a new artifact needs a name")
			}

			if len(args) == 2 {
				artifact.Name = args[1]
			}
			if idx < 0 || cmd.Flags().Changed("cost") {
				artifact.Cost = cost
			}
			if idx < 0 || cmd.Flags().Changed("quantity") {
				artifact.Quantity = quantity
			}
			if idx < 0 || cmd.Flags().Changed("description") {
				artifact.Description = description
			}
			if artifact.Quantity < 1 {
				return fmt.Errorf("artifact %q quantity %d: %w", artifact.Name, artifact.Quantity, character.ErrArtifactQuantity)
			}

			if idx >= 0 {
				in.Artifacts[idx] = artifact
			} else {
				in.Artifacts = append(in.Artifacts, artifact)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artifact %s (%s)\n", artifact.Name, artifact.ID)
			return a.save(cmd, path, in)
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 0, "Cost per unit")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Number of units")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&id, "id", "", "Change the artifact with this id")
	cmd.Flags().StringVar(&remove, "remove", "", "Drop the artifact with this id or name")
	return cmd
}

func newAllyCmd(a *app) *cobra.Command {
	var loyalty, description, id, remove string

	cmd := &cobra.Command{
		Use:   "ally <file> [name]",
		Short: "Add, change or drop an ally or enemy",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			in, err := a.load(path)
			if err != nil {
				return err
			}

			if remove != "" {
				kept := removeWhere(in.Allies, func(x character.Ally) bool { return x.ID == remove || x.Name == remove })
				if len(kept) == len(in.Allies) {
					return fmt.Errorf("no ally %q in %s", remove, path)
				}
				in.Allies = kept
				return a.save(cmd, path, in)
			}

			idx := indexWhere(in.Allies, func(x character.Ally) bool { return x.ID == id })
			ally := character.NewAlly()
			switch {
			case id != "" && idx < 0:
				return fmt.Errorf("no ally %q in %s", id, path)
			case idx >= 0:
				ally = in.Allies[idx]
			case len(args) < 2:
				return errors.New("a new ally needs a name")
			}

			if len(args) == 2 {
				ally.Name = args[1]
			}
			if idx < 0 || cmd.Flags().Changed("loyalty") {
				l, err := character.ParseLoyalty(loyalty)
				if err != nil {
					return err
				}
				ally.Loyalty = l
			}
			if idx < 0 || cmd.Flags().Changed("description") {
				ally.Description = description
			}

			if idx >= 0 {
				in.Allies[idx] = ally
			} else {
				in.Allies = append(in.Allies, ally)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", ally.Loyalty, ally.Name, ally.ID)
			return a.save(cmd, path, in)
		},
	}
	cmd.Flags().StringVar(&loyalty, "loyalty", "Contact", "Nemesis, Enemy, Annoyance, Contact, Ally or Devotee")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&id, "id", "", "Change the ally with this id")
	cmd.Flags().StringVar(&remove, "remove", "", "Drop the ally with this id or name")
	return cmd
}

func newShadowCmd(a *app) *cobra.Command {
	var cost int
	var description, id, remove string

	cmd := &cobra.Command{
		Use:   "shadow <file> [name]",
		Short: "Add, change or drop a personal shadow",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			in, err := a.load(path)
			if err != nil {
				return err
			}

			if remove != "" {
				kept := removeWhere(in.Shadows, func(x character.Shadow) bool { return x.ID == remove || x.Name == remove })
				if len(kept) == len(in.Shadows) {
					return fmt.Errorf("no shadow %q in %s", remove, path)
				}
				in.Shadows = kept
				return a.save(cmd, path, in)
			}

			idx := indexWhere(in.Shadows, func(x character.Shadow) bool { return x.ID == id })
			shadow := character.NewShadow()
			switch {
			case id != "" && idx < 0:
				return fmt.Errorf("no shadow %q in %s", id, path)
			case idx >= 0:
				shadow = in.Shadows[idx]
			case len(args) < 2:
				return errors.New("a new shadow needs a name")
			}

			if len(args) == 2 {
				shadow.Name = args[1]
			}
			if idx < 0 || cmd.Flags().Changed("cost") {
				shadow.Cost = cost
			}
			if idx < 0 || cmd.Flags().Changed("description") {
				shadow.Description = description
			}

			if idx >= 0 {
				in.Shadows[idx] = shadow
			} else {
				in.Shadows = append(in.Shadows, shadow)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shadow %s (%s)\n", shadow.Name, shadow.ID)
			return a.save(cmd, path, in)
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 0, "Point cost, usually negative")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&id, "id", "", "Change the shadow with this id")
	cmd.Flags().StringVar(&remove, "remove", "", "Drop the shadow with this id or name")
	return cmd
}

// save writes in back to path and reports the new point balance.
func (a *app) save(cmd *cobra.Command, path string, in character.Input) error {
	if err := savefile.Save(path, in); err != nil {
		return err
	}
	snap := character.Compute(in)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %d spent, %d Stuff, %d Surge\n", path, snap.TotalSpent, snap.Stuff, snap.Surge)
	return nil
}

// indexWhere returns the first index matching, or -1.
func indexWhere[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
