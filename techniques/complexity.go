package techniques

// Complexity labels used across techniques.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

// ComplexityToFloat maps a complexity label to a score. Unknown labels
// score as moderate.
func ComplexityToFloat(label string) float64 {
	switch label {
	case ComplexitySimple:
		return 0.2
	case ComplexityComplex:
		return 0.8
	default:
		return 0.5
	}
}

// ComplexityFromFloat maps a score in [0,1] to a complexity label.
func ComplexityFromFloat(score float64) string {
	switch {
	case score <= 0.33:
		return ComplexitySimple
	case score <= 0.66:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}

// complexityOf reads ctx["complexity"] as either a label or a score and
// returns both forms. A score is quantised to its label's score, so only
// 0.2, 0.5 and 0.8 ever come back.
func complexityOf(ctx Context, def string) (string, float64) {
	if _, isLabel := ctx["complexity"].(string); !isLabel {
		if f, ok := ctx.Float("complexity"); ok {
			label := ComplexityFromFloat(f)
			return label, ComplexityToFloat(label)
		}
	}
	label := ctx.StringOr("complexity", def)
	return label, ComplexityToFloat(label)
}
