package text

import (
	"bytes"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/f4ze/editor/internal/cache"
)

// runCacheSize bounds the shaped runs a bank keeps. Hit-testing and
// rendering measure the same strings repeatedly.
const runCacheSize = 512

// Family names registered by DefaultBank.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"
)

// face pairs the two parsed forms of one font file. font.Font is read-only
// and safe to share; font.Face and sfnt.Buffer are created per call.
type face struct {
	shape   *font.Font
	outline *sfnt.Font
}

type family [4]*face

// Bank resolves styles to faces. It is safe for concurrent use.
type Bank struct {
	mu       sync.RWMutex
	families map[string]*family
	aliases  map[string]string
	fallback string

	// HarfbuzzShaper keeps internal buffers and must not be shared between
	// goroutines.
	shapers sync.Pool

	runs *cache.Cache[runKey, Run]
}

type runKey struct {
	text  string
	style Style
}

// NewBank returns an empty bank. The first registered family becomes the
// fallback.
func NewBank() *Bank {
	return &Bank{
		families: make(map[string]*family),
		aliases:  make(map[string]string),
		runs:     cache.New[runKey, Run](runCacheSize),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

var defaultBank = sync.OnceValue(func() *Bank {
	b := NewBank()
	sets := []struct {
		family string
		ttf    [4][]byte
	}{
		{FamilyGo, [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}},
		{FamilyGoMono, [4][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF}},
		{FamilyGoSmallcaps, [4][]byte{Regular: gosmallcaps.TTF, Italic: gosmallcapsitalic.TTF}},
	}
	for _, set := range sets {
		for v, data := range set.ttf {
			if data == nil {
				continue
			}
			if err := b.Register(set.family, Variant(v), data); err != nil {
				panic(err) // embedded fonts always parse
			}
		}
	}
	for _, alias := range []string{"monospace", "Courier", "Courier New", "Consolas", "Menlo"} {
		b.Alias(alias, FamilyGoMono)
	}
	return b
})

// DefaultBank returns the shared bank holding the Go font families.
func DefaultBank() *Bank {
	return defaultBank()
}

// Register parses a TrueType/OpenType file and stores it as one variant of
// family.
func (b *Bank) Register(familyName string, v Variant, ttf []byte) error {
	if len(ttf) == 0 {
		return ErrEmptyFontData
	}
	parsed, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return &FontParseError{Family: familyName, Variant: v, Err: err}
	}
	outline, err := opentype.Parse(ttf)
	if err != nil {
		return &FontParseError{Family: familyName, Variant: v, Err: err}
	}

	key := strings.ToLower(familyName)
	b.mu.Lock()
	defer b.mu.Unlock()
	fam := b.families[key]
	if fam == nil {
		fam = new(family)
		b.families[key] = fam
	}
	fam[v] = &face{shape: parsed.Font, outline: outline}
	if b.fallback == "" {
		b.fallback = key
	}
	b.runs.Clear()
	return nil
}

// Alias makes name resolve to an already registered family.
func (b *Bank) Alias(name, familyName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aliases[strings.ToLower(name)] = strings.ToLower(familyName)
	b.runs.Clear()
}

// Families lists the registered family keys.
func (b *Bank) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.families))
	for k := range b.families {
		out = append(out, k)
	}
	return out
}

// resolve picks the face for a style: aliases first, then the fallback
// family, then the regular variant when the requested one is missing.
func (b *Bank) resolve(s Style) (*face, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	key := strings.ToLower(strings.TrimSpace(s.Family))
	if target, ok := b.aliases[key]; ok {
		key = target
	}
	fam := b.families[key]
	if fam == nil {
		fam = b.families[b.fallback]
	}
	if fam == nil {
		return nil, ErrNoFonts
	}
	if f := fam[s.Variant()]; f != nil {
		return f, nil
	}
	if f := fam[Regular]; f != nil {
		return f, nil
	}
	for _, f := range fam {
		if f != nil {
			return f, nil
		}
	}
	return nil, ErrNoFonts
}
