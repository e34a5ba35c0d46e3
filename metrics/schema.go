package metrics

import (
	"fmt"
	"math"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/parser"
)

// schemaSource constrains every score to the unit interval and closes the
// artifact to exactly four fields.
const schemaSource = `
#Score: number & >=0 & <=1

#ClassificationMetrics: {
	f1_score:        #Score
	precision_score: #Score
	recall_score:    #Score
	accuracy_score:  #Score
}
`

var schemaPath = cue.ParsePath("#ClassificationMetrics")

// schemaFile is parsed once and only read afterwards, so every validation
// can build it into its own context.
var schemaFile = sync.OnceValues(func() (*ast.File, error) {
	return parser.ParseFile("metrics.cue", schemaSource)
})

// validate checks fields against #ClassificationMetrics.
// Missing fields fail as incomplete, unknown fields fail as not allowed.
func validate(fields map[string]float64) error {
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s: %v is not a finite number", ErrInvalidArtifact, name, v)
		}
	}

	file, err := schemaFile()
	if err != nil {
		return fmt.Errorf("parsing artifact schema: %w", err)
	}

	// cue.Context is not safe for concurrent use; each call builds its own.
	ctx := cuecontext.New()
	schema := ctx.BuildFile(file)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling artifact schema: %w", err)
	}

	data := ctx.Encode(fields)
	if err := data.Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArtifact, cueerrors.Details(err, nil))
	}

	unified := schema.LookupPath(schemaPath).Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.All()); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArtifact, cueerrors.Details(err, nil))
	}

	return nil
}
