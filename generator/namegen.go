package generator

import (
	"fmt"
	"strings"

	strcase "github.com/stoewer/go-strcase"
)

// base62 is the digit alphabet for monotone identifier minting, mirroring
// the scheme parser/helper.go uses for synthetic expression ids: short,
// unambiguous, and stable across runs of the same input.
const base62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NameGenerator mints fresh, collision-free identifiers for residualized
// `var` declarations. Every identifier carries a per-run
// unique suffix so two independently residualized modules can be
// concatenated without their generated names colliding.
type NameGenerator struct {
	uniqueSuffix string
	forbidden    map[string]bool
	counter      uint64
	used         map[string]bool
}

// NewNameGenerator returns a NameGenerator tagging every minted identifier
// with uniqueSuffix (an explicit CLI or config seed; when none is given,
// cmd/prepack falls back to a random UUID, so the identifiers then differ
// from run to run) and refusing to mint any name in
// forbidden (reserved words, already-declared globals).
func NewNameGenerator(uniqueSuffix string, forbidden []string) *NameGenerator {
	f := make(map[string]bool, len(forbidden))
	for _, name := range forbidden {
		f[name] = true
	}
	return &NameGenerator{uniqueSuffix: uniqueSuffix, forbidden: f, used: map[string]bool{}}
}

func encodeBase62(n uint64) string {
	if n == 0 {
		return "0"
	}
	var b strings.Builder
	for n > 0 {
		b.WriteByte(base62[n%62])
		n /= 62
	}
	s := b.String()
	// reverse
	runes := []byte(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Fresh mints the next identifier in sequence, with no debug hint attached.
func (ng *NameGenerator) Fresh() string {
	return ng.FreshWithHint("")
}

// FreshWithHint mints the next identifier, folding hint (typically a
// variable name or property key taken from the origin program, for
// readability of the residual output) into the name as a sanitized,
// camelCased suffix when non-empty, as a debug suffix carrying provenance.
func (ng *NameGenerator) FreshWithHint(hint string) string {
	for {
		ng.counter++
		name := "_" + encodeBase62(ng.counter)
		if hint != "" {
			sanitized := sanitizeHint(hint)
			if sanitized != "" {
				name = name + "_" + sanitized
			}
		}
		if ng.uniqueSuffix != "" {
			name = name + "_" + ng.uniqueSuffix
		}
		if ng.forbidden[name] || ng.used[name] {
			continue
		}
		ng.used[name] = true
		return name
	}
}

func sanitizeHint(hint string) string {
	var b strings.Builder
	for _, r := range hint {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return ""
	}
	return strcase.LowerCamelCase(cleaned)
}

// Reserve marks name as already taken, e.g. when a prelude reference is
// minted outside the normal Fresh/FreshWithHint path.
func (ng *NameGenerator) Reserve(name string) {
	ng.used[name] = true
}

// DebugID renders a compact human-readable tag for an object/abstract id,
// used only in diagnostics and never in emitted identifiers.
func DebugID(prefix string, id uint64) string {
	return fmt.Sprintf("%s#%s", prefix, encodeBase62(id))
}
