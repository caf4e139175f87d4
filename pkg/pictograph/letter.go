package pictograph

// Letter is the symbolic identifier of a pictograph. A handful of
// letters carry their own placement overrides; the predicates below
// identify those families.
type Letter string

// Letters with special dash handling.
const (
	LetterLambda     Letter = "Λ"
	LetterLambdaDash Letter = "Λ-"
	LetterPhiDash    Letter = "Φ-"
	LetterPsiDash    Letter = "Ψ-"
)

// type3Letters is the family of hybrid letters pairing one shift
// motion with one dash motion.
var type3Letters = map[Letter]bool{
	"W-": true,
	"X-": true,
	"Y-": true,
	"Z-": true,
	"Σ-": true,
	"Δ-": true,
	"θ-": true,
	"Ω-": true,
}

// IsType3 reports whether the letter belongs to the hybrid family that
// pairs a shift with a dash. Type-3 dashes with zero turns are placed
// relative to the companion shift.
func (l Letter) IsType3() bool { return type3Letters[l] }

// IsDualDash reports whether the letter pairs two dash motions that
// resolve against each other (Φ- and Ψ-).
func (l Letter) IsDualDash() bool {
	return l == LetterPhiDash || l == LetterPsiDash
}

// IsLambdaFamily reports whether the letter resolves zero-turn dashes
// against the paired motion's end location (Λ and Λ-).
func (l Letter) IsLambdaFamily() bool {
	return l == LetterLambda || l == LetterLambdaDash
}

// String implements fmt.Stringer.
func (l Letter) String() string { return string(l) }

// SpecialLetters returns every letter with non-default dash handling,
// in stable order: the Type-3 family, the dual-dash pair, and the
// lambda family.
func SpecialLetters() []Letter {
	return []Letter{
		"W-", "X-", "Y-", "Z-", "Σ-", "Δ-", "θ-", "Ω-",
		LetterPhiDash, LetterPsiDash,
		LetterLambda, LetterLambdaDash,
	}
}
