package amc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// commentMarker prefixes skippable lines in a channel-key file.
const commentMarker = "#"

// ReadChannelKey parses a joint-definition key file into the ordered list
// of fully-qualified channel names ("<joint>.<measurement>"). Line order
// and within-line measurement order are preserved, and so are duplicates.
func ReadChannelKey(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open channel key: %w", err)
	}
	defer file.Close()

	var channels []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		fields := strings.Fields(line)
		for _, measurement := range fields[1:] {
			channels = append(channels, fmt.Sprintf("%s.%s", fields[0], measurement))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read channel key: %w", err)
	}
	return channels, nil
}
