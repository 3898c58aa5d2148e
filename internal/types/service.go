package types

// Category represents service categories
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryFilesystem Category = "filesystem"
	CategorySystem     Category = "system"
)

// Service represents a service definition
type Service struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     Category    `json:"category"`
	Capabilities []string    `json:"capabilities"`
	Operations   []Operation `json:"operations"`
}

// Operation describes a single console verb served by a service
type Operation struct {
	Verb        string      `json:"verb"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`

	// Streaming operations complete asynchronously after dispatch returns
	Streaming bool `json:"streaming"`
}

// Parameter represents an operation argument
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// RequiredArgs returns the minimum number of positional arguments
func (o Operation) RequiredArgs() int {
	n := 0
	for _, p := range o.Parameters {
		if p.Required {
			n++
		}
	}
	return n
}

// Command is one parsed input line
type Command struct {
	Verb string
	Args []string
}

// Arg returns the i-th argument or an empty string
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
