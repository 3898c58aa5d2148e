package system

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// ErrUnknownFlag is returned for an os flag that selects no host fact
var ErrUnknownFlag = errors.New("unknown os flag")

// Flags accepted by the os verb
const (
	FlagEOL          = "--EOL"
	FlagCPUs         = "--cpus"
	FlagHomeDir      = "--homedir"
	FlagUsername     = "--username"
	FlagArchitecture = "--architecture"
)

// Provider serves the os verb
type Provider struct {
	host Host
}

// NewProvider creates a system provider. A nil host reads the real machine.
func NewProvider(host Host) *Provider {
	if host == nil {
		host = RuntimeHost{}
	}
	return &Provider{host: host}
}

// Definition returns service metadata
func (s *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Service",
		Description: "Host operating system information",
		Category:    types.CategorySystem,
		Capabilities: []string{
			"info",
		},
		Operations: []types.Operation{
			{
				Verb:        "os",
				Name:        "Host Info",
				Description: "Print one host fact: --EOL, --cpus, --homedir, --username or --architecture",
				Parameters: []types.Parameter{
					{Name: "flag", Type: "string", Description: "Fact selector", Required: true},
				},
			},
		},
	}
}

// Execute runs a system operation
func (s *Provider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome {
	if cmd.Verb != "os" {
		return types.InvalidInput(fmt.Sprintf("unknown verb: %s", cmd.Verb))
	}

	text, err := s.Report(cmd.Arg(0))
	switch {
	case errors.Is(err, ErrUnknownFlag):
		return types.InvalidInput(err.Error())
	case err != nil:
		return types.Failed(err)
	default:
		return types.Success(text)
	}
}

// Report renders the host fact selected by flag
func (s *Provider) Report(flag string) (string, error) {
	switch flag {
	case FlagEOL:
		data, err := sonic.Marshal(s.host.EOL())
		if err != nil {
			return "", fmt.Errorf("failed to encode line ending: %w", err)
		}
		return string(data), nil
	case FlagCPUs:
		cpus, err := s.host.CPUs()
		if err != nil {
			return "", fmt.Errorf("failed to list cpus: %w", err)
		}
		return formatCPUs(cpus), nil
	case FlagHomeDir:
		home, err := s.host.HomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find home directory: %w", err)
		}
		return home, nil
	case FlagUsername:
		name, err := s.host.Username()
		if err != nil {
			return "", fmt.Errorf("failed to find username: %w", err)
		}
		return name, nil
	case FlagArchitecture:
		return s.host.Architecture(), nil
	default:
		return "", fmt.Errorf("%q: %w", flag, ErrUnknownFlag)
	}
}

func formatCPUs(cpus []CPU) string {
	lines := make([]string, 0, len(cpus)+1)
	lines = append(lines, fmt.Sprintf("Total CPUs: %d", len(cpus)))
	for i, cpu := range cpus {
		ghz := strconv.FormatFloat(float64(cpu.MHz)/1000, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("CPU %d: %s, %s GHz", i+1, cpu.Model, ghz))
	}
	return strings.Join(lines, "\n")
}
