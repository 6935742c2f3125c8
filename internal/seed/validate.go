package seed

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/skillbridge/internal/catalog"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce sync.Once
	schemaDef  cue.Value
	schemaErr  error
)

// compiledSchema compiles the embedded schema once. The schema ships
// inside the binary, so a compile failure is a build defect and is
// surfaced as a plain error, not a validation error.
func compiledSchema() (cue.Value, error) {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compile seed schema: %w", err)
			return
		}
		schemaDef = v.LookupPath(cue.ParsePath("#Seed"))
		if err := schemaDef.Err(); err != nil {
			schemaErr = fmt.Errorf("lookup #Seed: %w", err)
		}
	})
	return schemaDef, schemaErr
}

// Validate checks the decoded seed file against the embedded CUE schema.
// Structural violations (blank ids, out-of-range ratings, unknown status
// values) come back as validation errors naming the offending path.
func Validate(f *File) error {
	def, err := compiledSchema()
	if err != nil {
		return err
	}

	ctx := def.Context()
	unified := def.Unify(ctx.Encode(f))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return catalog.NewValidation("seed: %s", firstCUEError(err))
	}
	return nil
}

// firstCUEError flattens a CUE error list to its first entry. CUE
// reports every violation; the first one with its path is enough to fix
// a seed file iteratively.
func firstCUEError(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	first := errs[0]
	if path := first.Path(); len(path) > 0 {
		return fmt.Sprintf("%s: %s", strings.Join(path, "."), first.Error())
	}
	return first.Error()
}
