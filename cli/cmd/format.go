package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Output formats understood by commands with an --output flag.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// defaultIndent is the indent width of structured output.
const defaultIndent = 2

// writeJSON writes v to w as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// writeYAML writes v to w as a YAML document. A zero indent selects flow
// style.
func writeYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// write renders v to w in the given structured format.
func write(ctx context.Context, w io.Writer, format string, v any) error {
	switch format {
	case OutputYAML:
		return writeYAML(ctx, w, v, defaultIndent)
	default:
		return writeJSON(w, v, defaultIndent)
	}
}
