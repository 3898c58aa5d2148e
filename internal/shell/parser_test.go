package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GriffinCanCode/filemanager/internal/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Command
	}{
		{"empty", "", types.Command{}},
		{"blank", "   \t ", types.Command{}},
		{"verb only", "ls", types.Command{Verb: "ls", Args: []string{}}},
		{"args", "cp a.txt b.txt", types.Command{Verb: "cp", Args: []string{"a.txt", "b.txt"}}},
		{"extra whitespace", "  rn   old.txt\tnew.txt  ", types.Command{Verb: "rn", Args: []string{"old.txt", "new.txt"}}},
		{"case preserved", "LS Foo", types.Command{Verb: "LS", Args: []string{"Foo"}}},
		{"no quoting", `add "my file.txt"`, types.Command{Verb: "add", Args: []string{`"my`, `file.txt"`}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}
