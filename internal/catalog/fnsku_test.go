package catalog_test

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/catalog"
)

// fixedSource always returns the same value.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestGenerator_Generate_Exact(t *testing.T) {
	gen := catalog.NewGenerator(fixedSource(42))

	tests := []struct {
		name     string
		category string
		product  string
		masked   bool
		want     string
	}{
		{"regular", "Electronics", "RGB Keyboard", false, "REG-ELE-RK-0042"},
		{"masked", "Furniture", "Premium Leather Office Chair", true, "MSK-FUR-PLOC-0042"},
		{"short category", "TV", "smart tv", false, "REG-TV-ST-0042"},
		{"lower case words", "books", "the go programming language", true, "MSK-BOO-TGPL-0042"},
		{"repeated spaces", "Toys", "  Lego   Set ", false, "REG-TOY-LS-0042"},
		{"tabs and newlines", "Toys", "Lego\tStar\nWars", false, "REG-TOY-LSW-0042"},
		{"empty category", "", "Desk Lamp", false, "REG--DL-0042"},
		{"empty name", "Electronics", "", true, "MSK-ELE--0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gen.Generate(tt.category, tt.product, tt.masked))
		})
	}
}

func TestGenerator_Generate_SuffixPadding(t *testing.T) {
	assert.Equal(t, "REG-ELE-K-0000", catalog.NewGenerator(fixedSource(0)).Generate("Electronics", "Keyboard", false))
	assert.Equal(t, "REG-ELE-K-0007", catalog.NewGenerator(fixedSource(7)).Generate("Electronics", "Keyboard", false))
	assert.Equal(t, "REG-ELE-K-9999", catalog.NewGenerator(fixedSource(9999)).Generate("Electronics", "Keyboard", false))
}

func TestGenerator_Generate_Properties(t *testing.T) {
	gen := catalog.NewGenerator(rand.New(rand.NewPCG(1, 2)))
	pattern := regexp.MustCompile(`^REG-ELE-RK-\d{4}$`)

	inputs := []struct{ category, name string }{
		{"Electronics", "RGB Keyboard"},
		{"Fu", "Desk Lamp"},
		{"Clothing", "  winter   jacket  "},
		{"", ""},
		{"éclairage", "lampe à poser"},
	}

	for i := 0; i < 200; i++ {
		assert.Regexp(t, pattern, gen.Generate("Electronics", "RGB Keyboard", false))
	}

	for _, in := range inputs {
		reg := gen.Generate(in.category, in.name, false)
		msk := gen.Generate(in.category, in.name, true)
		assert.True(t, strings.HasPrefix(reg, "REG-"), reg)
		assert.True(t, strings.HasPrefix(msk, "MSK-"), msk)

		parts := strings.Split(reg, "-")
		require.Len(t, parts, 4, reg)
		wantCat := min(3, utf8.RuneCountInString(in.category))
		assert.Equal(t, wantCat, utf8.RuneCountInString(parts[1]))
		assert.Equal(t, strings.ToUpper(parts[1]), parts[1])
		assert.Equal(t, len(strings.Fields(in.name)), utf8.RuneCountInString(parts[2]))

		// Two calls may differ only in the trailing number.
		other := strings.Split(gen.Generate(in.category, in.name, false), "-")
		assert.Equal(t, parts[:3], other[:3])
	}
}

func TestGenerator_NilSourceUsesDefault(t *testing.T) {
	gen := catalog.NewGenerator(nil)
	assert.Regexp(t, `^MSK-ELE-WNH-\d{4}$`, gen.Generate("Electronics", "Wireless Noise-Cancelling Headphones", true))
}

func TestGenerator_GeneratePID(t *testing.T) {
	gen := catalog.NewGenerator(fixedSource(35))
	now := time.UnixMilli(1_700_000_000_000)

	pid := gen.GeneratePID(now)

	assert.Equal(t, "PID-LOYW3V28-ZZZ", pid)
	assert.Regexp(t, `^PID-[0-9A-Z]+-[0-9A-Z]{3}$`, catalog.NewGenerator(nil).GeneratePID(time.Now()))
}
