package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNatural verifies the natural ordering comparator for ordered types.
func TestNatural(t *testing.T) {
	c := Natural[int]()

	assert.Negative(t, c.Compare(1, 2))
	assert.Positive(t, c.Compare(2, 1))
	assert.Zero(t, c.Compare(3, 3))
}

// TestHelpers verifies Equivalent, Less and LessOrEqual agree with Compare.
func TestHelpers(t *testing.T) {
	c := Natural[string]()

	assert.True(t, Less(c, "a", "b"))
	assert.False(t, Less(c, "b", "a"))
	assert.True(t, LessOrEqual(c, "a", "a"))
	assert.True(t, LessOrEqual(c, "a", "b"))
	assert.True(t, Equivalent(c, "a", "a"))
	assert.False(t, Equivalent(c, "a", "b"))
}

// TestWeakOrdering verifies that a comparator with ties treats tied values
// as equivalent rather than equal.
func TestWeakOrdering(t *testing.T) {
	foldCase := Func[string](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	assert.True(t, Equivalent[string](foldCase, "Point", "point"))
	assert.True(t, Less[string](foldCase, "Apple", "banana"))
	assert.NotEqual(t, "Point", "point")
}
