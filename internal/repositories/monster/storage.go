package monster

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

const (
	entryKindHeader      = "header"
	entryKindDescription = "description"
	entryKindSeparator   = "separator"
)

// monsterData is the storage structure for a monster
// This is what gets serialized to Redis
type monsterData struct {
	ID               string            `json:"id"`
	OwnerID          string            `json:"owner_id,omitempty"`
	Name             string            `json:"name"`
	RawDescription   string            `json:"raw_description,omitempty"`
	Size             string            `json:"size"`
	ArmorClass       int               `json:"armor_class"`
	HitDiceCount     int               `json:"hit_dice_count"`
	Speed            int               `json:"speed"`
	Abilities        abilityData       `json:"abilities"`
	ChallengeRating  float64           `json:"challenge_rating"`
	ImageRef         string            `json:"image_ref,omitempty"`
	ImageDescription string            `json:"image_description,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Information      []informationData `json:"information,omitempty"`
}

type abilityData struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

type informationData struct {
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

func toData(m *dnd5e.Monster) (monsterData, error) {
	scores := m.AbilityScores()
	data := monsterData{
		ID:             m.ID(),
		OwnerID:        m.OwnerID(),
		Name:           m.Name(),
		RawDescription: m.RawDescription(),
		Size:           string(m.Size()),
		ArmorClass:     m.ArmorClass(),
		HitDiceCount:   m.HitDiceCount(),
		Speed:          m.Speed(),
		Abilities: abilityData{
			Strength:     scores.Strength(),
			Dexterity:    scores.Dexterity(),
			Constitution: scores.Constitution(),
			Intelligence: scores.Intelligence(),
			Wisdom:       scores.Wisdom(),
			Charisma:     scores.Charisma(),
		},
		ChallengeRating:  float64(m.ChallengeRating()),
		ImageRef:         m.ImageRef(),
		ImageDescription: m.ImageDescription(),
		Tags:             m.Tags(),
	}

	for _, entry := range m.Information().Entries() {
		switch e := entry.(type) {
		case dnd5e.HeaderEntry:
			data.Information = append(data.Information, informationData{Kind: entryKindHeader, Text: e.Text})
		case dnd5e.DescriptionEntry:
			data.Information = append(data.Information, informationData{Kind: entryKindDescription, Title: e.Title, Text: e.Text})
		case dnd5e.SeparatorEntry:
			data.Information = append(data.Information, informationData{Kind: entryKindSeparator})
		default:
			return monsterData{}, errors.Internalf("monster %q has unsupported information entry %T", m.Name(), entry)
		}
	}

	return data, nil
}

func encode(m *dnd5e.Monster) ([]byte, error) {
	data, err := toData(m)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}
	return payload, nil
}

// fromData rebuilds a monster through validated construction
func fromData(data monsterData) (*dnd5e.Monster, error) {
	scores, err := dnd5e.NewAbilityScores(
		data.Abilities.Strength,
		data.Abilities.Dexterity,
		data.Abilities.Constitution,
		data.Abilities.Intelligence,
		data.Abilities.Wisdom,
		data.Abilities.Charisma,
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored monster has invalid ability scores")
	}

	information := make([]dnd5e.InformationEntry, 0, len(data.Information))
	for _, info := range data.Information {
		switch info.Kind {
		case entryKindHeader:
			information = append(information, dnd5e.HeaderEntry{Text: info.Text})
		case entryKindDescription:
			information = append(information, dnd5e.DescriptionEntry{Title: info.Title, Text: info.Text})
		case entryKindSeparator:
			information = append(information, dnd5e.SeparatorEntry{})
		default:
			return nil, errors.Internalf("stored monster %q has unknown information kind %q", data.Name, info.Kind)
		}
	}

	m, err := dnd5e.NewMonster(dnd5e.MonsterFields{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		RawDescription:   data.RawDescription,
		Size:             dnd5e.CreatureSize(data.Size),
		ArmorClass:       data.ArmorClass,
		HitDiceCount:     data.HitDiceCount,
		Speed:            data.Speed,
		AbilityScores:    scores,
		ChallengeRating:  dnd5e.ChallengeRating(data.ChallengeRating),
		ImageRef:         data.ImageRef,
		ImageDescription: data.ImageDescription,
		Tags:             data.Tags,
		Information:      information,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored monster is invalid")
	}
	return m, nil
}
