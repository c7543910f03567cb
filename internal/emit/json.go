package emit

import (
	"encoding/json"
	"io"
	"strings"
)

// WriteJSON writes v as a single JSON document, indented when indent > 0.
func WriteJSON(w io.Writer, v any, indent int) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", indent))
	}
	return encoder.Encode(v)
}

// WriteNDJSON writes one compact JSON document per record, newline
// delimited.
func WriteNDJSON[T any](w io.Writer, records []T) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
