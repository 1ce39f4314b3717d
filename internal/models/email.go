package models

// Field identifies one of the three fields of a ticket record
type Field int

const (
	FieldNone Field = iota
	FieldSender
	FieldSubject
	FieldBody
)

// String returns the field name as used in log output
func (f Field) String() string {
	switch f {
	case FieldSender:
		return "sender"
	case FieldSubject:
		return "subject"
	case FieldBody:
		return "body"
	default:
		return "none"
	}
}

// EmailRecord represents one parsed support email. A field counts as present
// once it has been set, even to an empty string.
type EmailRecord struct {
	Sender  string
	Subject string
	Body    string

	present map[Field]bool
}

// Set stores value in field f and marks it present
func (r *EmailRecord) Set(f Field, value string) {
	p := r.slot(f)
	if p == nil {
		return
	}
	*p = value
	if r.present == nil {
		r.present = make(map[Field]bool, 3)
	}
	r.present[f] = true
}

// Append adds a continuation chunk to field f, separated by a single space.
// Nothing happens if f has not been set yet.
func (r *EmailRecord) Append(f Field, text string) {
	if !r.Has(f) {
		return
	}
	p := r.slot(f)
	*p += " " + text
}

// Has reports whether field f has been set
func (r *EmailRecord) Has(f Field) bool {
	return r.present[f]
}

// IsEmpty reports whether no field has been set
func (r *EmailRecord) IsEmpty() bool {
	return len(r.present) == 0
}

// Complete reports whether sender, subject and body are all present
func (r *EmailRecord) Complete() bool {
	return r.Has(FieldSender) && r.Has(FieldSubject) && r.Has(FieldBody)
}

// Missing returns the fields that have not been set, in canonical order
func (r *EmailRecord) Missing() []Field {
	var missing []Field
	for _, f := range []Field{FieldSender, FieldSubject, FieldBody} {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (r *EmailRecord) slot(f Field) *string {
	switch f {
	case FieldSender:
		return &r.Sender
	case FieldSubject:
		return &r.Subject
	case FieldBody:
		return &r.Body
	}
	return nil
}
