package repositories

import (
	"testing"

	"productsvc/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCondition_Matches(t *testing.T) {
	p := models.Product{ProductID: "id-1", ProductName: "Desk Lamp", Category: models.CategoryHomeAppliances}

	assert.True(t, All().Matches(p))
	assert.True(t, Condition{}.Matches(p))
	assert.True(t, ByID("id-1").Matches(p))
	assert.False(t, ByID("id-2").Matches(p))
	assert.True(t, NameContains("desk").Matches(p))
	assert.False(t, NameContains("chair").Matches(p))
	assert.True(t, CategoryContains("APPLIANCE").Matches(p))
	assert.False(t, CategoryContains("furn").Matches(p))
}

func TestLikePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%pen%`, likePattern("PEN"))
	assert.Equal(t, `%100\%\_off%`, likePattern("100%_off"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
