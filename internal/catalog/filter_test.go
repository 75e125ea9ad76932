package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/catalog"
	"gudang/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Desk Lamp", Category: "Furniture", Price: decimal.NewFromInt(40)},
		{ID: "2", Name: "Keyboard", Category: "Electronics", Price: decimal.NewFromInt(75)},
		{ID: "3", Name: "Standing Desk", Category: "Furniture", Price: decimal.NewFromInt(450)},
		{ID: "lamp-42", Name: "Bulb", Category: "Lighting", Price: decimal.NewFromInt(3)},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	products := sampleProducts()
	masked := map[string]models.MaskedProduct{"1": {ID: "m1", RealProductID: "1"}}

	tests := []struct {
		name     string
		criteria catalog.Criteria
		want     []string
	}{
		{"zero criteria", catalog.Criteria{}, []string{"1", "2", "3", "lamp-42"}},
		{"masked only", catalog.Criteria{Status: catalog.StatusMasked}, []string{"1"}},
		{"unmasked only", catalog.Criteria{Status: catalog.StatusUnmasked}, []string{"2", "3", "lamp-42"}},
		{"search by name ignores case", catalog.Criteria{Search: "LAMP"}, []string{"1", "lamp-42"}},
		{"search by id", catalog.Criteria{Search: "42"}, []string{"lamp-42"}},
		{"category", catalog.Criteria{Categories: []string{"Electronics"}}, []string{"2"}},
		{"several categories", catalog.Criteria{Categories: []string{"Lighting", "Electronics"}}, []string{"2", "lamp-42"}},
		{"category is case sensitive", catalog.Criteria{Categories: []string{"furniture"}}, []string{}},
		{"all predicates combined", catalog.Criteria{Search: "desk", Status: catalog.StatusUnmasked, Categories: []string{"Furniture"}}, []string{"3"}},
		{"no match", catalog.Criteria{Search: "chair"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(products, masked, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_IdentityAndIdempotence(t *testing.T) {
	products := sampleProducts()

	all := catalog.Filter(products, map[string]models.MaskedProduct{}, catalog.Criteria{Status: catalog.StatusAll})
	assert.Equal(t, products, all)

	masked := map[string]models.MaskedProduct{"3": {ID: "m3"}}
	c := catalog.Criteria{Search: "d", Status: catalog.StatusMasked, Categories: []string{"Furniture"}}
	once := catalog.Filter(products, masked, c)
	twice := catalog.Filter(once, masked, c)
	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	before := sampleProducts()

	got := catalog.Filter(products, nil, catalog.Criteria{Search: "desk"})
	require.Len(t, got, 2)
	got[0].Name = "changed"

	assert.Equal(t, before, products)
}

func TestFilter_EmptyAndNilInputs(t *testing.T) {
	assert.Empty(t, catalog.Filter(nil, nil, catalog.Criteria{}))
	assert.Empty(t, catalog.Filter([]models.Product{}, nil, catalog.Criteria{Status: catalog.StatusMasked}))

	// A nil index treats everything as unmasked.
	got := catalog.Filter(sampleProducts(), nil, catalog.Criteria{Status: catalog.StatusUnmasked})
	assert.Len(t, got, 4)
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]catalog.StatusFilter{
		"":          catalog.StatusAll,
		"all":       catalog.StatusAll,
		"Masked":    catalog.StatusMasked,
		" unmasked": catalog.StatusUnmasked,
	} {
		got, err := catalog.ParseStatusFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := catalog.ParseStatusFilter("hidden")
	assert.Error(t, err)
}
