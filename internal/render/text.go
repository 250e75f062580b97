package render

import (
	"bytes"
	"text/template"

	"github.com/and161185/abook/internal/model"
)

type textRenderer struct{}

var textTemplate = template.Must(template.New("preview").Parse(`Address Book - Print Preview
{{ range . }}----------------------------------------
Name: {{ .Name }}
Phone: {{ .Phone }}
Email: {{ .Email }}
Address: {{ .Address }}
City: {{ .City }}
State: {{ .State }}
Pincode: {{ .Pincode }}
Country: {{ .Country }}
Type: {{ .Type }}
{{ end }}`))

func (r *textRenderer) Render(entries []model.Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
