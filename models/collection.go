package models

import "time"

// FieldType is the input kind of a collection field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
)

// CollectionField describes one column of a user collection.
type CollectionField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// Collection is an entry of the named collection ("database") registry.
//
// Type is the lower-cased name. Entries are never merged by name, so two
// collections may share Name and Type while having different IDs.
type Collection struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	ItemCount int               `json:"itemCount"`
	Fields    []CollectionField `json:"fields,omitempty"`
	Created   time.Time         `json:"created"`
}

// CollectionCreateRequest is the body of POST /api/databases.
//
// Template selects the default field set (crystal, herb, goals, custom);
// Fields are appended after the template fields.
type CollectionCreateRequest struct {
	Name     string            `json:"name"`
	Template string            `json:"type,omitempty"`
	Fields   []CollectionField `json:"fields,omitempty"`
}

// CollectionCreateResponse is returned by POST /api/databases.
type CollectionCreateResponse struct {
	Success  bool       `json:"success"`
	Database Collection `json:"database"`
	Message  string     `json:"message"`
}

// CollectionsResponse is returned by GET /api/databases.
type CollectionsResponse struct {
	Databases []Collection `json:"databases"`
}
