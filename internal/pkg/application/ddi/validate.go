package ddi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

var ncName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

var (
	sumStatTypes   = []string{"mean", "medn", "mode", "vald", "invd", "min", "max", "stdev", "other"}
	varFormatTypes = []string{"character", "numeric"}
)

// Validate checks the structural rules of the codebook schema that a
// generated document can break.
func Validate(cb *CodeBook) error {
	violations := []string{}
	fail := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	if !ncName.MatchString(cb.ID) {
		fail("codeBook ID %q is not a valid NCName", cb.ID)
	}

	if !strings.HasPrefix(cb.Xmlns, "ddi:codebook:") {
		fail("unexpected namespace %q", cb.Xmlns)
	}

	if strings.TrimSpace(cb.DocDscr.Citation.TitlStmt.Titl) == "" {
		fail("docDscr has no titl")
	}

	if strings.TrimSpace(cb.StdyDscr.Citation.TitlStmt.Titl) == "" {
		fail("stdyDscr has no titl")
	}

	fileIDs := []string{}
	for _, f := range cb.FileDscr {
		if !ncName.MatchString(f.ID) {
			fail("fileDscr ID %q is not a valid NCName", f.ID)
		}
		fileIDs = append(fileIDs, f.ID)
	}

	ids := map[string]bool{}
	names := map[string]bool{}

	for _, v := range cb.DataDscr.Vars {
		if !ncName.MatchString(v.ID) {
			fail("var ID %q is not a valid NCName", v.ID)
		}
		if ids[v.ID] {
			fail("var ID %q is not unique", v.ID)
		}
		ids[v.ID] = true

		if v.Name == "" {
			fail("var %s has no name", v.ID)
		} else if names[v.Name] {
			fail("var name %q is not unique", v.Name)
		}
		names[v.Name] = true

		if v.Files != "" && !slices.Contains(fileIDs, v.Files) {
			fail("var %s references unknown file %q", v.ID, v.Files)
		}

		for _, s := range v.SumStats {
			if !slices.Contains(sumStatTypes, s.Type) {
				fail("var %s has sumStat of unknown type %q", v.ID, s.Type)
			}
			if s.Type == "other" && s.OtherType == "" {
				fail("var %s has sumStat of type other without otherType", v.ID)
			}
		}

		for _, c := range v.Catgries {
			if c.CatStat.Type != "freq" {
				fail("var %s has catStat of unexpected type %q", v.ID, c.CatStat.Type)
			}
		}

		if !slices.Contains(varFormatTypes, v.VarFormat.Type) {
			fail("var %s has varFormat of unknown type %q", v.ID, v.VarFormat.Type)
		}
	}

	if len(violations) > 0 {
		return &domain.SchemaComplianceError{Document: "ddi codebook", Violations: violations}
	}

	return nil
}
