package monitoring

import (
	"fmt"
	"strings"
)

// Summary renders the running totals as a single log-friendly line
func (m *Metrics) Summary() string {
	s := m.GetSnapshot()

	var sb strings.Builder
	fmt.Fprintf(&sb, "commands=%d", s.Commands)
	fmt.Fprintf(&sb, " invalid=%d", s.InvalidInputs)
	fmt.Fprintf(&sb, " failed=%d", s.Failures)
	fmt.Fprintf(&sb, " tasks=%d", s.TasksStarted)
	fmt.Fprintf(&sb, " tasks_failed=%d", s.TasksFailed)

	return sb.String()
}
