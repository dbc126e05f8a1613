package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	statuses := []string{"Applied", "In Review", "Offer"}

	assert.True(t, Contains(statuses, "In Review"))
	assert.False(t, Contains(statuses, "Ghosted"))
	assert.False(t, Contains(nil, "Applied"))
	assert.False(t, Contains(statuses, ""))
}
