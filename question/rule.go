package question

import "github.com/ProFrenchToast/Visual-Perspective-taking-clone/errors"

// Rule is the extremal selection applied after filtering. RuleNone keeps
// the full match set.
type Rule int

const (
	RuleNone Rule = iota
	Smallest
	Largest
	Leftmost
	Rightmost
	Topmost
	Bottommost
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case Smallest:
		return "smallest"
	case Largest:
		return "largest"
	case Leftmost:
		return "leftmost"
	case Rightmost:
		return "rightmost"
	case Topmost:
		return "topmost"
	case Bottommost:
		return "bottommost"
	default:
		return "unknown"
	}
}

// Scalar reports whether the rule selects over a scalar property rather
// than a grid axis.
func (r Rule) Scalar() bool {
	return r == Smallest || r == Largest
}

// Directional reports whether the rule selects over a grid axis.
func (r Rule) Directional() bool {
	switch r {
	case Leftmost, Rightmost, Topmost, Bottommost:
		return true
	}
	return false
}

// RuleKind is the constraint category a rule belongs to. Same-perspective
// rules read identically for participant and director; different-perspective
// rules flip left and right between the two.
type RuleKind int

const (
	KindNone RuleKind = iota
	KindSizeRelated
	KindSpatialSame
	KindSpatialDiff
)

func (k RuleKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSizeRelated:
		return "size_related"
	case KindSpatialSame:
		return "spatial_same_perspective"
	case KindSpatialDiff:
		return "spatial_different_perspective"
	default:
		return "unknown"
	}
}

// ParseRuleKind is the inverse of RuleKind.String.
func ParseRuleKind(s string) (RuleKind, error) {
	switch s {
	case "none":
		return KindNone, nil
	case "size_related":
		return KindSizeRelated, nil
	case "spatial_same_perspective":
		return KindSpatialSame, nil
	case "spatial_different_perspective":
		return KindSpatialDiff, nil
	}
	return KindNone, errors.Wrapf(errors.ErrUnknownRule, "rule kind %q", s)
}

// Kinds lists every rule kind, in the order counts are allocated during
// generation.
func Kinds() []RuleKind {
	return []RuleKind{KindSizeRelated, KindSpatialSame, KindSpatialDiff, KindNone}
}

// RulesFor returns the fixed rule set of a kind.
func RulesFor(kind RuleKind) []Rule {
	switch kind {
	case KindSizeRelated:
		return []Rule{Smallest, Largest}
	case KindSpatialSame:
		return []Rule{Topmost, Bottommost}
	case KindSpatialDiff:
		return []Rule{Leftmost, Rightmost}
	default:
		return []Rule{RuleNone}
	}
}

// Relation is the spatial predicate of a relational question. Relations
// hold only within a single row or column, never diagonally.
type Relation int

const (
	RightOf Relation = iota
	LeftOf
	Above
	Below
)

func (r Relation) String() string {
	switch r {
	case RightOf:
		return "right_of"
	case LeftOf:
		return "left_of"
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "unknown"
	}
}

// Phrase returns the natural-language rendering of the relation.
func (r Relation) Phrase() string {
	switch r {
	case RightOf:
		return "to the right of"
	case LeftOf:
		return "to the left of"
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return r.String()
	}
}

// Relations lists every spatial relation.
func Relations() []Relation {
	return []Relation{RightOf, LeftOf, Above, Below}
}

// holds reports whether pos stands in relation r to ref.
func (r Relation) holds(pos, ref Coord) bool {
	switch r {
	case RightOf:
		return pos.Y == ref.Y && pos.X > ref.X
	case LeftOf:
		return pos.Y == ref.Y && pos.X < ref.X
	case Above:
		return pos.X == ref.X && pos.Y < ref.Y
	case Below:
		return pos.X == ref.X && pos.Y > ref.Y
	}
	return false
}
