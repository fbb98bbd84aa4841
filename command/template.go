package command

import "text/template"

// usageData feeds the usage template. Option and command rows arrive
// pre-padded so the template only handles layout.
type usageData struct {
	Synopsis    string
	Description string
	Options     []string
	Commands    []string
}

const usageTemplate = `usage: {{.Synopsis}}
{{- if .Description}}

{{.Description}}
{{- end}}
{{- if .Options}}

options:
{{- range .Options}}
  {{.}}
{{- end}}
{{- end}}
{{- if .Commands}}

commands:
{{- range .Commands}}
  {{.}}
{{- end}}
{{- end}}
`

var usageTmpl = template.Must(template.New("usage").Parse(usageTemplate))
