package geo

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vortex-fintech/go-phone/foundation/errx"
)

// tableDocument is the on-disk shape:
//
//	countries:
//	  - iso2: us
//	    name: United States
//	    dial_code: "1"
//	    format: "(...) ...-...."
type tableDocument struct {
	Countries []Country `yaml:"countries"`
}

// LoadYAML decodes and validates a country table. Unknown keys are
// rejected so typos surface at startup.
func LoadYAML(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc tableDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errx.Config("countries", "empty document")
		}
		return nil, errx.Configf(err, "decode country table: %v", err)
	}
	return NewTable(doc.Countries)
}

// LoadFile is LoadYAML over a file path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errx.Configf(err, "open country table %s", path)
	}
	defer f.Close()

	return LoadYAML(f)
}
