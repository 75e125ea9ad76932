// Package catalog holds the pure product logic: identifier codes, the masked
// listing view and list filtering. Nothing here performs I/O.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Code prefixes.
const (
	PrefixMasked  = "MSK"
	PrefixRegular = "REG"
)

const (
	suffixRange    = 10000
	categoryLength = 3
	pidRandomChars = 3
)

// Source supplies random integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator builds identifier codes. It is safe for concurrent use when its
// Source is.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src, or from the shared
// math/rand/v2 source when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Generate formats a code as PREFIX-CAT-INITIALS-NNNN.
func (g *Generator) Generate(category, name string, masked bool) string {
	prefix := PrefixRegular
	if masked {
		prefix = PrefixMasked
	}
	suffix := g.src.IntN(suffixRange)
	return fmt.Sprintf("%s-%s-%s-%04d", prefix, CategoryCode(category), NameInitials(name), suffix)
}

// GeneratePID returns a product id like PID-LZ3K9Q1A-X7F.
func (g *Generator) GeneratePID(now time.Time) string {
	var b strings.Builder
	b.WriteString("PID-")
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	b.WriteByte('-')
	for range pidRandomChars {
		b.WriteString(strconv.FormatInt(int64(g.src.IntN(36)), 36))
	}
	return strings.ToUpper(b.String())
}

// CategoryCode is the upper-cased first three characters of category.
func CategoryCode(category string) string {
	if utf8.RuneCountInString(category) > categoryLength {
		category = string([]rune(category)[:categoryLength])
	}
	return strings.ToUpper(category)
}

// NameInitials joins the upper-cased first character of every word in name.
func NameInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
