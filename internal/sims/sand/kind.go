package sand

import "strings"

// Kind identifies the particle category and therefore its update rule.
type Kind uint8

const (
	// none marks an empty cell; it is never a valid particle kind.
	none Kind = iota
	Sand
	Water
	Stone
	Fire
	Smoke
)

// kindCount is the number of kind codes including none.
const kindCount = int(Smoke) + 1

var kindNames = [kindCount]string{"empty", "sand", "water", "stone", "fire", "smoke"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k names a real particle kind.
func (k Kind) Valid() bool { return k >= Sand && k <= Smoke }

// Kinds lists every particle kind in code order.
func Kinds() []Kind {
	return []Kind{Sand, Water, Stone, Fire, Smoke}
}

// ParseKind resolves a kind by name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == s {
			return k, true
		}
	}
	return none, false
}
