package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariant_UnscoredSentinel(t *testing.T) {
	a := testVariant()
	require.False(t, a.IsUnscored(0))
	require.True(t, a.Allows(0))

	b := Variant{
		Key:           "b",
		DefaultScore:  0,
		UnscoredColor: "#FFFFFF",
		Action:        ActionNotify,
		Options: []ScoreOption{
			{Score: 1, Color: "#22C55E"},
			{Score: 2, Color: "#EAB308"},
			{Score: 3, Color: "#F97316"},
			{Score: 4, Color: "#DC2626"},
		},
	}
	require.NoError(t, b.Validate())
	require.True(t, b.IsUnscored(0))
	require.False(t, b.Allows(0))
	require.Equal(t, []int{1, 2, 3, 4}, b.AllowedScores())
	require.Equal(t, "#FFFFFF", b.ColorFor(0))
	require.Equal(t, "#DC2626", b.ColorFor(4))
}

func TestVariant_Validate(t *testing.T) {
	v := testVariant()
	v.Options = append(v.Options, ScoreOption{Score: 1})
	require.Error(t, v.Validate())

	v = testVariant()
	v.Action = "archive"
	require.Error(t, v.Validate())
}
