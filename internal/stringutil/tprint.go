package stringutil

import (
	"bytes"
	"text/template"
)

// Tprintf renders the given template with the given fields. A template that fails to parse is a programming error
// and panics; a failed execution renders as the empty string.
func Tprintf(tmpl string, data map[string]interface{}) string {
	t := template.Must(template.New("").Option("missingkey=error").Parse(tmpl))
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		return ""
	}
	return buf.String()
}
