package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	mz := NewGroup(MesentericZone)
	non := NewGroup(NonMesentericZone)
	assert.Equal(t, UnknownFMANumber, mz.FMANumber)
	assert.Equal(t, UnknownLyphID, mz.LyphID)
	assert.Equal(t, 0, mz.Size())

	mz.AddElement(3)
	mz.AddElement(1)
	assert.Equal(t, []int{3, 1}, mz.Elements())
	assert.Equal(t, 2, mz.Size())

	groups := []*Group{mz, non}
	assert.Same(t, non, Find(groups, NonMesentericZone))
	assert.Nil(t, Find(groups, "tenia coli"))
}
