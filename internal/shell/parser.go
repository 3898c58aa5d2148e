package shell

import (
	"strings"

	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Parse splits an input line on whitespace. The first token is the verb,
// taken verbatim; the rest are positional arguments. There is no quoting, so
// a path containing a space cannot be expressed.
func Parse(line string) types.Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return types.Command{}
	}
	return types.Command{Verb: fields[0], Args: fields[1:]}
}
