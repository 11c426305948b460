package contact

import (
	"strings"
	"time"
)

// Field identifies one control of the contact form.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// AllFields lists the form controls in tab order.
var AllFields = []Field{FieldName, FieldEmail, FieldMessage}

// Label returns the control label shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

// Fields is the content of the contact form. Every field is required but
// no format validation is applied.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Get returns the value of a single field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// With returns a copy of f with one field replaced.
func (f Fields) With(field Field, value string) Fields {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// Missing returns the required fields that are blank. It is used by the
// presentation layer to mark controls; the flow itself never rejects a
// submission.
func (f Fields) Missing() []Field {
	var missing []Field
	for _, field := range AllFields {
		if strings.TrimSpace(f.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Receipt is attached to a successful submission and rendered in the
// confirmation message.
type Receipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Fields      Fields    `json:"fields"`
}
