package sentiment

// valences maps lowercase words to signed strengths on a -5..+5 scale,
// AFINN-style, trimmed to vocabulary that shows up in care and service
// reviews.
var valences = map[string]int{
	// strongly positive
	"amazing":     4,
	"awesome":     4,
	"best":        3,
	"brilliant":   4,
	"excellent":   3,
	"exceptional": 3,
	"fantastic":   4,
	"love":        3,
	"loved":       3,
	"outstanding": 5,
	"perfect":     3,
	"superb":      5,
	"wonderful":   4,

	// positive
	"accommodating": 2,
	"attentive":     2,
	"calm":          2,
	"calming":       2,
	"caring":        2,
	"clean":         2,
	"comfortable":   2,
	"compassionate": 3,
	"friendly":      2,
	"gentle":        3,
	"good":          3,
	"great":         3,
	"happy":         3,
	"helpful":       2,
	"impressed":     3,
	"kind":          2,
	"knowledgeable": 2,
	"nice":          3,
	"painless":      2,
	"patient":       2,
	"pleasant":      3,
	"professional":  2,
	"recommend":     2,
	"recommended":   2,
	"relaxed":       2,
	"reassuring":    2,
	"soothing":      2,
	"thank":         2,
	"thanks":        2,
	"thorough":      2,
	"trust":         1,
	"understanding": 2,
	"welcoming":     2,

	// negative
	"anxious":        -2,
	"bad":            -3,
	"cold":           -1,
	"disappointed":   -2,
	"disappointing":  -2,
	"dirty":          -2,
	"dismissive":     -2,
	"expensive":      -1,
	"frightened":     -2,
	"frustrating":    -2,
	"hurt":           -2,
	"impatient":      -2,
	"late":           -1,
	"long":           -1,
	"mediocre":       -2,
	"overwhelmed":    -2,
	"overwhelming":   -2,
	"pain":           -2,
	"painful":        -2,
	"poor":           -2,
	"pushy":          -1,
	"rough":          -2,
	"rude":           -2,
	"scared":         -2,
	"scary":          -2,
	"slow":           -2,
	"stressful":      -2,
	"uncomfortable":  -2,
	"unhelpful":      -2,
	"unprofessional": -2,
	"upset":          -2,
	"waiting":        -1,

	// strongly negative
	"awful":      -3,
	"disaster":   -2,
	"dreadful":   -3,
	"horrible":   -3,
	"horrific":   -3,
	"nightmare":  -3,
	"terrible":   -3,
	"traumatic":  -3,
	"unbearable": -3,
	"worst":      -3,
}
