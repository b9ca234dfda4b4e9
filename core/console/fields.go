package console

import "slices"

// inputSuffix is appended by the form renderer to the ids of input elements.
const inputSuffix = "_input_"

// FieldError is a validation message attached to a form element.
type FieldError struct {
	ClientID string `json:"client_id"`
	Detail   string `json:"detail"`
}

// FieldErrors is the ordered list of field errors of the current page.
type FieldErrors []FieldError

// Add records detail for clientID. An entry for clientID or its input element
// is updated in place. Empty ids are ignored.
func (f *FieldErrors) Add(clientID, detail string) {
	if clientID == "" {
		return
	}
	input := clientID + inputSuffix
	for i, e := range *f {
		if e.ClientID == clientID || e.ClientID == input {
			(*f)[i].Detail = detail
			return
		}
	}
	*f = append(*f, FieldError{ClientID: clientID, Detail: detail})
}

// Lookup returns the detail recorded for an element id.
func (f FieldErrors) Lookup(elementID string) (string, bool) {
	for _, e := range f {
		if e.ClientID == elementID {
			return e.Detail, true
		}
	}
	return "", false
}

// Resolve replaces a possibly incomplete client id by the full element id
// found when rendering. It reports false if clientID is unknown.
func (f FieldErrors) Resolve(clientID, elementID string) bool {
	i := slices.IndexFunc(f, func(e FieldError) bool { return e.ClientID == clientID })
	if i < 0 {
		return false
	}
	f[i].ClientID = elementID
	return true
}

// All returns a copy of the recorded errors.
func (f FieldErrors) All() []FieldError {
	out := make([]FieldError, len(f))
	copy(out, f)
	return out
}

// Clear drops every error.
func (f *FieldErrors) Clear() {
	*f = nil
}
