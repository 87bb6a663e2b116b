package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Form renders the calculator page.
var Form = template.Must(template.ParseFS(files, "form.html"))

// FormValues holds the raw field values echoed back into the form.
type FormValues struct {
	BatterySize     string
	StartPercentage string
	EndPercentage   string
	UnitPrice       string
	Voltage         string
}

// FormPage is the data passed to Form.
type FormPage struct {
	Values FormValues
	Error  string
	Result interface{}
}
