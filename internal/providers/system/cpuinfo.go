package system

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// parseCPUInfo reads /proc/cpuinfo blocks, one per logical processor
func parseCPUInfo(r io.Reader) ([]CPU, error) {
	var cpus []CPU
	var current *CPU

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			cpus = append(cpus, CPU{})
			current = &cpus[len(cpus)-1]
		case "model name", "Model":
			if current != nil {
				current.Model = value
			}
		case "cpu MHz":
			if current != nil {
				if mhz, err := strconv.ParseFloat(value, 64); err == nil {
					current.MHz = int(mhz)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cpus, nil
}
