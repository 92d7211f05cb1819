package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSetHasOption(t *testing.T) {
	set := AnswerSet{
		1: {Kind: AnswerChoice, Choice: "Yes, I wear glasses"},
		3: {Kind: AnswerSelections, Selections: []string{"Driving", "Reading"}},
	}

	assert.True(t, set.HasOption("Yes, I wear glasses"))
	assert.True(t, set.HasOption("Reading"))
	assert.False(t, set.HasOption("Yes"))
	assert.False(t, set.HasOption("Fashion"))
}

func TestAnswerSetOrdered(t *testing.T) {
	set := AnswerSet{
		9: {Kind: AnswerChoice, Choice: "third"},
		1: {Kind: AnswerChoice, Choice: "first"},
		4: {Kind: AnswerChoice, Choice: "second"},
	}

	ordered := set.Ordered()
	require.Len(t, ordered, 3)
	assert.Equal(t, "first", ordered[0].Choice)
	assert.Equal(t, "second", ordered[1].Choice)
	assert.Equal(t, "third", ordered[2].Choice)
}

func TestAnswerSetRoundTrip(t *testing.T) {
	set := AnswerSet{
		2:  {Kind: AnswerSelections, Selections: []string{"Everyday wear"}},
		16: {Kind: AnswerScale, Scale: 70},
	}

	raw, err := set.Marshal()
	require.NoError(t, err)

	restored, err := UnmarshalAnswerSet(raw)
	require.NoError(t, err)
	assert.Equal(t, set, restored)
}

func TestUnmarshalAnswerSetEmpty(t *testing.T) {
	set, err := UnmarshalAnswerSet(nil)
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Empty(t, set)

	set.Set(5, Answer{Kind: AnswerChoice, Choice: "Yes"})
	got, ok := set.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "Yes", got.Choice)

	_, ok = set.Get(6)
	assert.False(t, ok)
}
