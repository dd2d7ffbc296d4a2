package croissant

import (
	"fmt"
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

var dataTypes = []string{
	DataTypeBoolean, DataTypeDate, DataTypeFloat, DataTypeInteger, DataTypeText, DataTypeURL,
}

// Validate checks the constraints that Croissant consumers reject documents
// for: required properties, known data types, resolvable and unique ids.
func Validate(m *Metadata) error {
	violations := []string{}
	fail := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(m.Name) == "" {
		fail("dataset has no name")
	}

	if m.ConformsTo != ConformsTo {
		fail("unexpected conformsTo %q", m.ConformsTo)
	}

	if len(m.Distribution) == 0 {
		fail("dataset has no distribution")
	}

	ids := map[string]bool{}
	unique := func(id, kind string) {
		if id == "" {
			fail("%s without @id", kind)
			return
		}
		if ids[id] {
			fail("%s @id %q is not unique", kind, id)
		}
		ids[id] = true
	}

	files := []string{}
	for _, d := range m.Distribution {
		unique(d.ID, "file object")
		if d.ContentURL == "" {
			fail("file object %s has no contentUrl", d.ID)
		}
		files = append(files, d.ID)
	}

	fields := []string{}
	for _, rs := range m.RecordSet {
		unique(rs.ID, "record set")
		for _, f := range rs.Fields {
			unique(f.ID, "field")
			fields = append(fields, f.ID)
		}
	}

	for _, rs := range m.RecordSet {
		for _, f := range rs.Fields {
			if !slices.Contains(dataTypes, f.DataType) {
				fail("field %s has unknown dataType %q", f.ID, f.DataType)
			}
			if f.Source != nil && !slices.Contains(files, f.Source.FileObject.ID) {
				fail("field %s has a source in unknown file object %q", f.ID, f.Source.FileObject.ID)
			}
			if f.References != nil && !slices.Contains(fields, f.References.Field.ID) {
				fail("field %s references unknown field %q", f.ID, f.References.Field.ID)
			}
		}
	}

	if len(violations) > 0 {
		return &domain.SchemaComplianceError{Document: "croissant metadata", Violations: violations}
	}

	return nil
}
