package dotazure

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// storedConfig is the subset of .azure/config.json this package reads.
type storedConfig struct {
	DefaultEnvironment *string `json:"defaultEnvironment,omitempty"`
}

// readDefaultEnvironment returns the defaultEnvironment recorded in the
// config file at path.
func readDefaultEnvironment(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", ioError(err, fmt.Sprintf("failed to open %s", path))
	}
	defer f.Close()

	var cfg storedConfig
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&cfg); err != nil {
		if isDecodeError(err) {
			return "", wrapError(KindInvalidData, err, fmt.Sprintf("failed to decode %s", path))
		}
		return "", ioError(err, fmt.Sprintf("failed to read %s", path))
	}

	if cfg.DefaultEnvironment == nil || *cfg.DefaultEnvironment == "" {
		return "", newError(KindInvalidData, fmt.Sprintf("'%s' does not define `defaultEnvironment`", path))
	}
	return *cfg.DefaultEnvironment, nil
}

// isDecodeError reports whether err came from the JSON content rather than
// from reading the file.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
