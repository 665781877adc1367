package protocol

import (
	"bufio"
	"fmt"
	"io"
)

const maxLineSize = 64 * 1024 * 1024

// readLines buffers the whole input, without line terminators
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %s", err)
	}
	return lines, nil
}
