package columns

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrderIsIndependentCopy(t *testing.T) {
	o := DefaultOrder()
	o[0] = Price
	assert.Equal(t, ProductID, All[0])
	assert.NoError(t, DefaultOrder().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{"default", DefaultOrder(), false},
		{"shuffled", Order{Quality, Name, ImageURL, ProductID, Price, Description}, false},
		{"missing column", Order{ProductID, Name, Price, Quality, Description}, true},
		{"duplicate column", Order{ProductID, Name, Price, Quality, Description, Price}, true},
		{"unknown column", Order{ProductID, Name, Price, Quality, Description, "rating"}, true},
		{"empty", Order{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotPermutation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	o, err := Parse("name, id,price,quality,description,imageUrl")
	require.NoError(t, err)
	assert.Equal(t, Order{Name, ProductID, Price, Quality, Description, ImageURL}, o)

	_, err = Parse("id,name")
	assert.Error(t, err)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		id      ID
		to      int
		want    Order
		changed bool
	}{
		{
			name:    "forward past neighbour",
			id:      Price,
			to:      3,
			want:    Order{ProductID, Name, Quality, Price, Description, ImageURL},
			changed: true,
		},
		{
			name:    "to the end",
			id:      Price,
			to:      5,
			want:    Order{ProductID, Name, Quality, Description, ImageURL, Price},
			changed: true,
		},
		{
			name:    "backward",
			id:      ImageURL,
			to:      2,
			want:    Order{ProductID, Name, ImageURL, Price, Quality, Description},
			changed: true,
		},
		{
			name:    "across the anchor keeps name in place",
			id:      ProductID,
			to:      2,
			want:    Order{Price, Name, ProductID, Quality, Description, ImageURL},
			changed: true,
		},
		{
			name:    "back across the anchor",
			id:      Quality,
			to:      0,
			want:    Order{Quality, Name, ProductID, Price, Description, ImageURL},
			changed: true,
		},
		{"anchor cannot move", Name, 3, DefaultOrder(), false},
		{"anchor slot rejected", Price, 1, DefaultOrder(), false},
		{"unknown id", "rating", 2, DefaultOrder(), false},
		{"negative index", Price, -1, DefaultOrder(), false},
		{"index past end", Price, 6, DefaultOrder(), false},
		{"same position", Price, 2, DefaultOrder(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := DefaultOrder()
			got, changed := start.Move(tt.id, tt.to)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, DefaultOrder(), start, "receiver must not be modified")
		})
	}
}

func TestMoveKeepsPermutationAndAnchor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	o := DefaultOrder()
	anchorAt := o.IndexOf(Name)

	for i := 0; i < 2000; i++ {
		id := All[rng.Intn(len(All))]
		to := rng.Intn(len(All)+2) - 1
		o, _ = o.Move(id, to)

		require.NoError(t, o.Validate(), "step %d", i)
		require.Equal(t, anchorAt, o.IndexOf(Name), "step %d", i)
	}
}
