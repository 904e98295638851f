package cli

import (
	"errors"
	"io"
	"os"
	"strings"
)

var errStdinUnavailable = errors.New("stdin unavailable")

// readPasswordNoEcho reads one line with terminal echo switched off. Input
// that is not a terminal, such as a pipe, is read as is.
func readPasswordNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errStdinUnavailable
	}

	restore, err := disableEcho(stdin)
	if err != nil {
		return nil, err
	}
	defer restore()

	line, err := readLine(stdin)
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// readLine reads byte by byte so that consecutive prompts on the same pipe
// do not lose buffered input.
func readLine(reader io.Reader) (string, error) {
	var builder strings.Builder
	buffer := make([]byte, 1)
	for {
		n, err := reader.Read(buffer)
		if n == 1 {
			if buffer[0] == '\n' {
				break
			}
			builder.WriteByte(buffer[0])
		}
		if errors.Is(err, io.EOF) {
			if builder.Len() == 0 {
				return "", io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(builder.String(), "\r"), nil
}
