package render

import (
	"bytes"
	"html/template"

	"github.com/and161185/abook/internal/model"
)

type htmlRenderer struct{}

// Self-printing preview document: one bordered block per entry, a print()
// call on load. Field values are escaped by html/template.
var htmlTemplate = template.Must(template.New("preview").Parse(`<html><body><h2>Address Book - Print Preview</h2>
{{ range . }}<div style="border:1px solid #ccc; margin:10px; padding:10px;">
<b>Name:</b> {{ .Name }}<br>
<b>Phone:</b> {{ .Phone }}<br>
<b>Email:</b> {{ .Email }}<br>
<b>Address:</b> {{ .Address }}<br>
<b>City:</b> {{ .City }}<br>
<b>State:</b> {{ .State }}<br>
<b>Pincode:</b> {{ .Pincode }}<br>
<b>Country:</b> {{ .Country }}<br>
<b>Type:</b> {{ .Type }}<br>
</div>
{{ end }}<script>window.print();</script></body></html>
`))

func (r *htmlRenderer) Render(entries []model.Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
