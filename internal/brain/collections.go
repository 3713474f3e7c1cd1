package brain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/cosmic-brain/models"
)

// CustomTemplate is the field template used for unknown template names.
const CustomTemplate = "custom"

var fieldTemplates = map[string][]models.CollectionField{
	"crystal": {
		{Name: "name", Type: models.FieldText, Required: true},
		{Name: "color", Type: models.FieldText},
		{Name: "properties", Type: models.FieldTextarea},
		{Name: "uses", Type: models.FieldTextarea},
		{Name: "chakra", Type: models.FieldSelect, Options: []string{"Root", "Sacral", "Solar Plexus", "Heart", "Throat", "Third Eye", "Crown"}},
		{Name: "moon_phase", Type: models.FieldText},
		{Name: "rituals", Type: models.FieldTextarea},
	},
	"herb": {
		{Name: "name", Type: models.FieldText, Required: true},
		{Name: "scientific_name", Type: models.FieldText},
		{Name: "medicinal_uses", Type: models.FieldTextarea},
		{Name: "recipes", Type: models.FieldTextarea},
		{Name: "harvest_time", Type: models.FieldText},
		{Name: "growing_notes", Type: models.FieldTextarea},
	},
	"goals": {
		{Name: "title", Type: models.FieldText, Required: true},
		{Name: "description", Type: models.FieldTextarea},
		{Name: "target_date", Type: models.FieldDate},
		{Name: "status", Type: models.FieldSelect, Options: []string{"Planning", "In Progress", "Completed", "On Hold"}},
		{Name: "next_actions", Type: models.FieldTextarea},
	},
	CustomTemplate: {
		{Name: "title", Type: models.FieldText, Required: true},
		{Name: "description", Type: models.FieldTextarea},
		{Name: "tags", Type: models.FieldText},
	},
}

// CollectionDisplayName upper-cases the first letter of name and lower-cases
// the rest ("CRYSTAL" becomes "Crystal").
func CollectionDisplayName(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// CollectionType is the fully lower-cased collection name.
func CollectionType(name string) string {
	return strings.ToLower(name)
}

// CollectionFieldsFor returns a copy of the default fields of template,
// falling back to the custom template for unknown names.
func CollectionFieldsFor(template string) []models.CollectionField {
	fields, ok := fieldTemplates[strings.ToLower(strings.TrimSpace(template))]
	if !ok {
		fields = fieldTemplates[CustomTemplate]
	}

	out := make([]models.CollectionField, len(fields))
	for i, f := range fields {
		out[i] = f
		if f.Options != nil {
			out[i].Options = append([]string(nil), f.Options...)
		}
	}
	return out
}
