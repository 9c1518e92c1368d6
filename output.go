package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// writeOutput encodes the parsed results in the requested format
func writeOutput(w io.Writer, format string, value interface{}) error {
	var formatted []byte
	var err error

	switch format {
	case "json":
		formatted, err = json.MarshalIndent(value, "", "  ")
		formatted = append(formatted, '\n')
	case "yaml":
		formatted, err = yaml.Marshal(value)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(formatted)
	return err
}
