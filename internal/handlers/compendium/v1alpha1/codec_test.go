package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
)

func TestCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(v1alpha1.CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodecRoundTripsRequests(t *testing.T) {
	codec := v1alpha1.Codec{}

	req := &v1alpha1.UpdateMonsterRequest{
		OriginalName: "Gnoll",
		Monster: &v1alpha1.Monster{
			Name:            "Gnoll Pack Lord",
			Size:            "MEDIUM",
			ArmorClass:      15,
			HitDiceCount:    9,
			Speed:           30,
			ChallengeRating: "2",
			AbilityScores:   v1alpha1.AbilityScores{Strength: 16, Dexterity: 14, Constitution: 13, Intelligence: 8, Wisdom: 11, Charisma: 9},
			Tags:            []string{"Humanoid"},
			Information: []v1alpha1.InformationEntry{
				{Kind: v1alpha1.InformationKindHeader, Text: "Actions"},
				{Kind: v1alpha1.InformationKindSeparator},
			},
		},
	}

	data, err := codec.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"originalName":"Gnoll"`)
	assert.Contains(t, string(data), `"challengeRating":"2"`)

	var got v1alpha1.UpdateMonsterRequest
	require.NoError(t, codec.Unmarshal(data, &got))
	assert.Equal(t, req, &got)
}

func TestCodecEmptyPayload(t *testing.T) {
	var got v1alpha1.ListMonstersRequest
	require.NoError(t, v1alpha1.Codec{}.Unmarshal(nil, &got))
	assert.False(t, got.Mine)
}

func TestCodecRejectsMalformedJSON(t *testing.T) {
	var got v1alpha1.GetMonsterRequest
	err := v1alpha1.Codec{}.Unmarshal([]byte(`{"name":`), &got)
	assert.ErrorContains(t, err, "json codec")
}
