// Package forms carries per-field validation errors for the auth and
// CRUD form payloads. Fields are a closed enumeration; each field maps
// to an ordered list of human-readable messages.
package forms

// Field names the form inputs that can carry validation errors.
type Field string

const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldEmail     Field = "email"
	FieldPassword  Field = "password"
	FieldName      Field = "name"
	FieldColor     Field = "color"
	FieldText      Field = "text"
)

// Errors maps a field to its validation messages.
type Errors map[Field][]string

// Add appends a message to the field's list.
func (e Errors) Add(field Field, message string) {
	e[field] = append(e[field], message)
}

// HasErrors reports whether any field carries a message.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}
