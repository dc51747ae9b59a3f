package phone

import "strings"

// Intent tells the engine whether the host edit removed characters.
type Intent uint8

const (
	Insertion Intent = iota
	Deletion
)

func (i Intent) String() string {
	switch i {
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// IntentFromInputType maps a DOM-style inputType ("insertText",
// "deleteContentBackward", ...) to an Intent. Anything mentioning "delete"
// is a deletion.
func IntentFromInputType(inputType string) Intent {
	if strings.Contains(strings.ToLower(inputType), "delete") {
		return Deletion
	}
	return Insertion
}

// Edit is one host edit event: the full new text of the field and the
// intent behind it.
type Edit struct {
	Text   string `json:"text"`
	Intent Intent `json:"intent"`
}
