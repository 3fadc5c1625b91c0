package award

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAward_Grant(t *testing.T) {
	t.Parallel()

	a := Award{PlayerName: "Ann"}

	a, err := a.Grant(KindAllStar, "2")
	require.NoError(t, err)
	a, err = a.Grant(KindAllStar, "2")
	require.NoError(t, err)
	a, err = a.Grant(KindAllNpa2, "3")
	require.NoError(t, err)

	assert.Equal(t, 2, a.AllStarSelections)
	assert.Equal(t, "2,2,", a.AllStarSeasons)
	assert.Equal(t, 1, a.AllNpa2Selections)
	assert.Equal(t, "3,", a.AllNpaSeasons)
	assert.Zero(t, a.AllNpa1Selections)
}

func TestAward_GrantRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Award{}.Grant(Kind("mvp"), "1")
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = ParseKind("allNpa4")
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = Award{}.Grant(KindAllStar, " ")
	assert.Error(t, err)
}
