// Package navigation serves the verbs that move the current directory.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Provider serves up and cd
type Provider struct{}

// NewProvider creates a navigation provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:           "navigation",
		Name:         "Navigation Service",
		Description:  "Move the current directory",
		Category:     types.CategoryNavigation,
		Capabilities: []string{"navigate"},
		Operations: []types.Operation{
			{
				Verb:        "up",
				Name:        "Go Up",
				Description: "Move to the parent directory; does nothing at the root",
			},
			{
				Verb:        "cd",
				Name:        "Change Directory",
				Description: "Move into a directory",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
				},
			},
		},
	}
}

// Execute runs a navigation operation. The dispatcher has already checked
// the argument count.
func (p *Provider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	switch cmd.Verb {
	case "up":
		sess.Ascend()
		return types.Success("")
	case "cd":
		if err := sess.Enter(cmd.Args[0]); err != nil {
			outcome := types.InvalidInput(enterReason(err))
			outcome.Cause = err
			return outcome
		}
		return types.Success("")
	default:
		return types.InvalidInput(fmt.Sprintf("unknown verb: %s", cmd.Verb))
	}
}

// enterReason names why Enter refused a target
func enterReason(err error) string {
	switch {
	case errors.Is(err, session.ErrNotDirectory):
		return "not a directory"
	case errors.Is(err, fs.ErrNotExist):
		return "no such directory"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return "cannot access directory"
	}
}
