// Package bundle loads monster and magic item definitions from YAML files.
//
// A bundle file looks like:
//
//	monsters:
//	  - name: Gnoll
//	    size: medium
//	    armor_class: 15
//	    hit_dice: 5
//	    speed: 30
//	    abilities: {str: 14, dex: 12, con: 11, int: 6, wis: 10, cha: 7}
//	    challenge_rating: "1/2"
//	    tags: [Humanoid]
//	    information:
//	      - header: Actions
//	      - title: Bite
//	        text: "Melee Weapon Attack: +4 to hit."
//	magic_items:
//	  - name: Flame Tongue
//	    rarity: rare
//	    damage: 2d6
//	    damage_type: fire
//
// Records are validated with the dnd5e constructors. Invalid records are
// reported as problems and skipped; a later monster or item with the same
// name replaces an earlier one.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Record kinds reported in problems
const (
	KindMonster   = "monster"
	KindMagicItem = "magic_item"
)

// File is the YAML document layout
type File struct {
	Monsters   []MonsterDoc   `yaml:"monsters"`
	MagicItems []MagicItemDoc `yaml:"magic_items"`
}

// AbilitiesDoc holds the six scores by their sheet labels
type AbilitiesDoc struct {
	Str int `yaml:"str"`
	Dex int `yaml:"dex"`
	Con int `yaml:"con"`
	Int int `yaml:"int"`
	Wis int `yaml:"wis"`
	Cha int `yaml:"cha"`
}

// InformationDoc is one information entry. Separator wins over Header,
// and anything else is a description.
type InformationDoc struct {
	Header    string `yaml:"header,omitempty"`
	Title     string `yaml:"title,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Separator bool   `yaml:"separator,omitempty"`
}

// MonsterDoc is a monster definition
type MonsterDoc struct {
	Name             string           `yaml:"name"`
	Description      string           `yaml:"description,omitempty"`
	Size             string           `yaml:"size"`
	ArmorClass       int              `yaml:"armor_class"`
	HitDice          int              `yaml:"hit_dice"`
	Speed            int              `yaml:"speed"`
	Abilities        AbilitiesDoc     `yaml:"abilities"`
	ChallengeRating  string           `yaml:"challenge_rating"`
	Image            string           `yaml:"image,omitempty"`
	ImageDescription string           `yaml:"image_description,omitempty"`
	Tags             []string         `yaml:"tags,omitempty"`
	Information      []InformationDoc `yaml:"information,omitempty"`
}

// MagicItemDoc is a magic item definition
type MagicItemDoc struct {
	Name        string `yaml:"name"`
	Source      string `yaml:"source,omitempty"`
	Rarity      string `yaml:"rarity,omitempty"`
	Description string `yaml:"description,omitempty"`
	Image       string `yaml:"image,omitempty"`
	Damage      string `yaml:"damage,omitempty"`
	DamageType  string `yaml:"damage_type,omitempty"`
}

// Problem is a record that failed validation
type Problem struct {
	Source string
	Kind   string
	Index  int
	Name   string
	Err    error
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %s #%d (%s): %s", p.Source, p.Kind, p.Index+1, p.Name, errors.GetMessage(p.Err))
}

// Bundle is the validated content of one or more files
type Bundle struct {
	Monsters   *dnd5e.MonsterCollection
	MagicItems []*dnd5e.MagicItem
	Problems   []Problem
	// Replaced lists names defined more than once, in the order seen
	Replaced []string
}

// New creates an empty bundle
func New() *Bundle {
	return &Bundle{Monsters: dnd5e.NewMonsterCollection()}
}

// OK reports whether every record was valid
func (b *Bundle) OK() bool {
	return len(b.Problems) == 0
}

// Parse decodes one YAML document into a new bundle. Only malformed YAML
// is an error; invalid records become problems.
func Parse(source string, data []byte) (*Bundle, error) {
	b := New()
	if err := b.Add(source, data); err != nil {
		return nil, err
	}
	return b, nil
}

// Add decodes one YAML document into b
func (b *Bundle) Add(source string, data []byte) error {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.FormatErrorf("yaml", "parsing %s: %v", source, err)
	}

	for i, doc := range file.Monsters {
		m, err := doc.Monster()
		if err != nil {
			b.Problems = append(b.Problems, Problem{Source: source, Kind: KindMonster, Index: i, Name: doc.Name, Err: err})
			continue
		}
		if b.Monsters.Put(m) {
			b.Replaced = append(b.Replaced, m.Name())
		}
	}

	for i, doc := range file.MagicItems {
		item, err := doc.MagicItem()
		if err != nil {
			b.Problems = append(b.Problems, Problem{Source: source, Kind: KindMagicItem, Index: i, Name: doc.Name, Err: err})
			continue
		}
		idx := slices.IndexFunc(b.MagicItems, func(existing *dnd5e.MagicItem) bool {
			return existing.Name() == item.Name()
		})
		if idx >= 0 {
			b.MagicItems[idx] = item
			b.Replaced = append(b.Replaced, item.Name())
			continue
		}
		b.MagicItems = append(b.MagicItems, item)
	}

	return nil
}

// LoadFile reads and parses a single file
func LoadFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return Parse(path, data)
}

// Load reads every path; directories contribute their .yaml and .yml
// files in lexical order
func Load(paths ...string) (*Bundle, error) {
	b := New()
	for _, path := range paths {
		files, err := expand(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %s", file)
			}
			if err := b.Add(file, data); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", path)
	}
	var files []string
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

// Monster validates the document into a monster record
func (d MonsterDoc) Monster() (*dnd5e.Monster, error) {
	size, err := dnd5e.ParseCreatureSize(d.Size)
	if err != nil {
		return nil, err
	}
	cr, err := dnd5e.ParseChallengeRating(d.ChallengeRating)
	if err != nil {
		return nil, err
	}
	a := d.Abilities
	scores, err := dnd5e.NewAbilityScores(a.Str, a.Dex, a.Con, a.Int, a.Wis, a.Cha)
	if err != nil {
		return nil, err
	}

	information := make([]dnd5e.InformationEntry, 0, len(d.Information))
	for _, entry := range d.Information {
		switch {
		case entry.Separator:
			information = append(information, dnd5e.SeparatorEntry{})
		case entry.Header != "":
			information = append(information, dnd5e.HeaderEntry{Text: entry.Header})
		default:
			information = append(information, dnd5e.DescriptionEntry{Title: entry.Title, Text: entry.Text})
		}
	}

	return dnd5e.NewMonster(dnd5e.MonsterFields{
		Name:             d.Name,
		RawDescription:   d.Description,
		Size:             size,
		ArmorClass:       d.ArmorClass,
		HitDiceCount:     d.HitDice,
		Speed:            d.Speed,
		AbilityScores:    scores,
		ChallengeRating:  cr,
		ImageRef:         d.Image,
		ImageDescription: d.ImageDescription,
		Tags:             d.Tags,
		Information:      information,
	})
}

// MagicItem validates the document into a magic item
func (d MagicItemDoc) MagicItem() (*dnd5e.MagicItem, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, errors.StructuralErrorf("name", "Name must not be blank")
	}
	rarity, err := dnd5e.ParseRarity(d.Rarity)
	if err != nil {
		return nil, err
	}
	damage, err := dnd5e.ParseMagicItemDamage(d.Damage)
	if err != nil {
		return nil, err
	}
	damageType, err := dnd5e.ParseDamageType(d.DamageType)
	if err != nil {
		return nil, err
	}

	return dnd5e.NewMagicItem(dnd5e.MagicItemFields{
		Name:        d.Name,
		SourceBook:  d.Source,
		Rarity:      rarity,
		Description: d.Description,
		ImageRef:    d.Image,
		DamageDice:  damage,
		DamageType:  damageType,
	}), nil
}
