package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-modal/algorithms/tonal"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown translation policy")

// Policy decides which transform each detected key receives. Keys whose
// profile is not the policy's source mode get Identity.
type Policy struct {
	Name   string
	source *tonal.KeyProfile
	kind   Kind
}

// MajorToMinor sends major keys to harmonic or natural minor.
func MajorToMinor(harmonic bool) Policy {
	if harmonic {
		return Policy{Name: "major_to_minor(harmonic)", source: tonal.Major, kind: KindMajorToHarmonicMinor}
	}
	return Policy{Name: "major_to_minor(natural)", source: tonal.Major, kind: KindMajorToNaturalMinor}
}

// MinorToMajor sends minor keys to major. harmonic selects which minor
// degrees are raised: the third and sixth only, or the seventh too.
func MinorToMajor(harmonic bool) Policy {
	if harmonic {
		return Policy{Name: "minor_to_major(harmonic)", source: tonal.Minor, kind: KindHarmonicMinorToMajor}
	}
	return Policy{Name: "minor_to_major(natural)", source: tonal.Minor, kind: KindNaturalMinorToMajor}
}

// IdentityPolicy leaves every key untouched.
func IdentityPolicy() Policy {
	return Policy{Name: "identity", kind: KindIdentity}
}

// TransformFor picks the transform for one detected key.
func (p Policy) TransformFor(key tonal.Key) Transform {
	if p.kind == KindIdentity || key.IsZero() || key.Profile != p.source {
		return Identity
	}
	return Transform{Kind: p.kind, Tonic: key.Tonic}
}

func (p Policy) String() string {
	return p.Name
}

// ParsePolicy reads a policy name such as "major_to_minor",
// "major_to_minor(natural)", "minor_to_major(harmonic=false)" or "identity".
// The harmonic variant is the default.
func ParsePolicy(s string) (Policy, error) {
	name, arg, err := splitCall(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if err != nil {
		return Policy{}, err
	}

	harmonic := true
	switch arg {
	case "", "harmonic", "harmonic=true", "harmonic=True":
	case "natural", "harmonic=false", "harmonic=False":
		harmonic = false
	default:
		return Policy{}, fmt.Errorf("%w: bad argument %q in %q", ErrUnknownPolicy, arg, s)
	}

	switch name {
	case "major_to_minor":
		return MajorToMinor(harmonic), nil
	case "minor_to_major":
		return MinorToMajor(harmonic), nil
	case "identity", "none":
		if arg != "" {
			return Policy{}, fmt.Errorf("%w: %q takes no argument", ErrUnknownPolicy, name)
		}
		return IdentityPolicy(), nil
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func splitCall(s string) (name, arg string, err error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, "", nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", "", fmt.Errorf("%w: unbalanced parentheses in %q", ErrUnknownPolicy, s)
	}
	return s[:open], s[open+1 : len(s)-1], nil
}
