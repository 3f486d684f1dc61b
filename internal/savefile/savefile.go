// Package savefile reads and writes character save files.
//
// Only the raw input is stored. JSON files use the same shape as the original
// web sheet's saves so those load unchanged; YAML files use snake_case keys.
package savefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lawnchairsociety/amberesque/internal/character"
	"github.com/lawnchairsociety/amberesque/internal/logger"
	"github.com/lawnchairsociety/amberesque/internal/pointbuy"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/lawnchairsociety/amberesque/internal/skills"
	"gopkg.in/yaml.v3"
)

// Format is a save file encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions other than .json, .yaml and .yml.
var ErrUnknownFormat = errors.New("unknown save file format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// document is the on-disk shape. Pointer fields tell "absent" from zero.
type document struct {
	Name          string                `json:"name" yaml:"name"`
	Icon          *string               `json:"avatarIcon,omitempty" yaml:"icon,omitempty"`
	CampaignLimit *int                  `json:"campaignLimit,omitempty" yaml:"campaign_limit,omitempty"`
	Aspects       rules.AspectRatings   `json:"aspects" yaml:"aspects"`
	Functions     rules.FunctionRatings `json:"functions" yaml:"functions"`
	Skills        []skills.Entry        `json:"skills" yaml:"skills"`
	Powers        []powers.Purchase     `json:"powers" yaml:"powers"`
	Artifacts     []artifactDoc         `json:"artifacts" yaml:"artifacts"`
	Allies        []character.Ally      `json:"allies" yaml:"allies"`
	Shadows       []character.Shadow    `json:"personalShadows" yaml:"personal_shadows"`
}

// artifactDoc keeps an absent quantity apart from an explicit zero.
type artifactDoc struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
	Quantity    *int   `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

func (a artifactDoc) artifact() character.Artifact {
	out := character.Artifact{ID: a.ID, Name: a.Name, Description: a.Description, Cost: a.Cost, Quantity: 1}
	if a.Quantity != nil {
		out.Quantity = *a.Quantity
	}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	return out
}

func fromInput(in character.Input) document {
	in = in.Clone()
	artifacts := make([]artifactDoc, 0, len(in.Artifacts))
	for _, a := range in.Artifacts {
		quantity := a.Quantity
		artifacts = append(artifacts, artifactDoc{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Cost:        a.Cost,
			Quantity:    &quantity,
		})
	}
	return document{
		Name:          in.Name,
		Icon:          &in.Icon,
		CampaignLimit: &in.CampaignLimit,
		Aspects:       in.Aspects,
		Functions:     in.Functions,
		Skills:        in.Skills,
		Powers:        in.Powers,
		Artifacts:     artifacts,
		Allies:        in.Allies,
		Shadows:       in.Shadows,
	}
}

func (d document) toInput() (character.Input, error) {
	in := character.NewInput(d.Name)
	if d.Icon != nil && *d.Icon != "" {
		in.Icon = *d.Icon
	}
	if d.CampaignLimit != nil {
		in.CampaignLimit = *d.CampaignLimit
	} else {
		in.CampaignLimit = pointbuy.DefaultCampaignLimit
	}
	in.Aspects = d.Aspects
	in.Functions = d.Functions

	var errs []error
	for i, e := range d.Skills {
		if e.SkillID == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: missing skill id", i))
		}
		if e.Rating == "" {
			e.Rating = rules.Average
		}
		in.Skills = append(in.Skills, e)
	}
	for i, pu := range d.Powers {
		if pu.PowerID == "" {
			errs = append(errs, fmt.Errorf("powers[%d]: missing power id", i))
		}
		if pu.ID == "" {
			pu.ID = uuid.NewString()
		}
		in.Powers = append(in.Powers, pu)
	}
	for _, a := range d.Artifacts {
		in.Artifacts = append(in.Artifacts, a.artifact())
	}
	for _, a := range d.Allies {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		in.Allies = append(in.Allies, a)
	}
	for _, s := range d.Shadows {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		in.Shadows = append(in.Shadows, s)
	}

	if err := errors.Join(errs...); err != nil {
		return character.Input{}, err
	}
	return in, nil
}

// Encode writes in to w.
func Encode(w io.Writer, in character.Input, format Format) error {
	doc := fromInput(in)

	var data []byte
	var err error
	switch format {
	case JSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case YAML:
		data, err = yaml.Marshal(&doc)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// Decode reads a character from r. Absent fields take the defaults of a new
// character; entries missing their skill or power id are rejected.
func Decode(r io.Reader, format Format) (character.Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return character.Input{}, fmt.Errorf("failed to read character: %w", err)
	}

	var doc document
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return character.Input{}, fmt.Errorf("failed to parse character JSON: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return character.Input{}, fmt.Errorf("failed to parse character YAML: %w", err)
		}
	default:
		return character.Input{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	in, err := doc.toInput()
	if err != nil {
		return character.Input{}, fmt.Errorf("invalid character: %w", err)
	}
	return in, nil
}

// Save writes in to path in the format named by its extension.
func Save(path string, in character.Input) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, in, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write character file: %w", err)
	}

	logger.Debug("Character saved", "path", path, "format", format)
	return nil
}

// Load reads a character from path in the format named by its extension.
func Load(path string) (character.Input, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return character.Input{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return character.Input{}, fmt.Errorf("failed to open character file: %w", err)
	}
	defer f.Close()

	in, err := Decode(f, format)
	if err != nil {
		return character.Input{}, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("Character loaded", "path", path, "format", format, "name", in.Name)
	return in, nil
}

// Migrate brings purchases from older saves up to date. Powers missing from
// the catalog are left alone for Validate to report.
func Migrate(in character.Input, catalog character.PowerCatalog) character.Input {
	in = in.Clone()
	for i, pu := range in.Powers {
		if def, ok := catalog.GetPower(pu.PowerID); ok {
			in.Powers[i] = pu.Migrate(def)
		}
	}
	return in
}
