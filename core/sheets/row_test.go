package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_Get(t *testing.T) {
	row := Row{"UPLOADED", " Acme ", ""}

	assert.Equal(t, "UPLOADED", row.Get(0))
	assert.Equal(t, "Acme", row.Get(1))
	assert.Equal(t, "", row.Get(2))

	// Rows shorter than the schema behave as blank trailing cells.
	assert.Equal(t, "", row.Get(7))
	assert.Equal(t, "", row.Get(-1))
	assert.True(t, row.IsBlank(7))
	assert.False(t, row.IsBlank(0))
}

func TestAlias(t *testing.T) {
	t.Run("Joins With Separator", func(t *testing.T) {
		assert.Equal(t, "Acme;Summer Sale", Alias("Acme", "Summer Sale"))
		assert.Equal(t, "Acme;Summer Sale;Shoes", Alias("Acme", "Summer Sale", "Shoes"))
	})

	t.Run("Blank Identity Column Means No Alias", func(t *testing.T) {
		assert.Equal(t, "", Alias("Acme", ""))
		assert.Equal(t, "", Alias("", "Summer Sale"))
		assert.Equal(t, "", Alias("Acme", "  ", "Shoes"))
	})
}
