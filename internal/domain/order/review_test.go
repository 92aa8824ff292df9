package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	r, err := NewReview(1, buyerID, 5, "smooth handoff, item as described")

	require.NoError(t, err)
	assert.Equal(t, uint(1), r.OrderID())
	assert.Equal(t, buyerID, r.ReviewerID())
	assert.Equal(t, 5, r.Rating())
}

func TestNewReview_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		_, err := NewReview(1, buyerID, rating, "")
		assert.ErrorIs(t, err, ErrRatingOutOfRange, "rating %d", rating)
	}

	for rating := RatingMin; rating <= RatingMax; rating++ {
		_, err := NewReview(1, buyerID, rating, "")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestNewReview_CommentTooLong(t *testing.T) {
	_, err := NewReview(1, buyerID, 4, strings.Repeat("a", 2001))
	assert.Error(t, err)

	_, err = NewReview(1, buyerID, 4, strings.Repeat("a", 2000))
	assert.NoError(t, err)
}

func TestNewReview_MissingIDs(t *testing.T) {
	_, err := NewReview(0, buyerID, 4, "")
	assert.Error(t, err)

	_, err = NewReview(1, 0, 4, "")
	assert.Error(t, err)
}
