// Package ddi renders dataset records as DDI-Codebook documents.
package ddi

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
)

const (
	DefaultCategoryThreshold int    = 500
	DefaultVersion           string = "2.5"

	agency   string = "socrata.com"
	fileID   string = "F1"
	fileType string = "socrata"

	variablesNote string = "Be wary that Socrata does not provide category labels and by default only lists information on the top/most used codes. The DDI var/catgry sets may therefore be incomplete."
)

type Options struct {
	// CategoryThreshold is the highest cardinality for which the top values
	// of a column are listed as categories.
	CategoryThreshold int
	Version           string
	SoftwareVersion   string
	Now               func() time.Time
}

func (o Options) withDefaults() Options {
	if o.CategoryThreshold <= 0 {
		o.CategoryThreshold = DefaultCategoryThreshold
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.SoftwareVersion == "" {
		o.SoftwareVersion = "develop"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func Generate(server domain.Server, record *domain.DatasetRecord, opts Options) (*CodeBook, error) {
	if err := mapping.RequireID(record); err != nil {
		return nil, err
	}

	host, err := mapping.NormalizeHost(server.Host)
	if err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	id := record.ID()

	title := id
	if record.Name != nil && strings.TrimSpace(*record.Name) != "" {
		title = *record.Name
	}

	titlStmt := TitlStmt{
		Titl: title,
		IDNo: IDNo{Agency: agency, Value: host + "-" + id},
	}

	prodDate := opts.Now().Format(mapping.DateTimeLayout)

	cb := &CodeBook{
		Xmlns:   "ddi:codebook:" + strings.ReplaceAll(opts.Version, ".", "_"),
		ID:      fmt.Sprintf("socrata_%s_%s", host, id),
		URN:     fmt.Sprintf("urn:socrata:%s:%s", host, id),
		Version: opts.Version,
		DocDscr: DocDscr{
			Citation: Citation{
				TitlStmt: titlStmt,
				ProdStmt: &ProdStmt{
					ProdDate: &ProdDate{Date: prodDate, Value: prodDate},
					Software: Software{Version: opts.SoftwareVersion, Value: "opendata-crosswalk"},
				},
			},
		},
		StdyDscr: StdyDscr{
			Citation: Citation{
				TitlStmt: titlStmt,
				ProdStmt: &ProdStmt{Software: Software{Value: "Socrata"}},
			},
		},
		FileDscr: []FileDscr{{
			ID: fileID,
			FileTxt: FileTxt{
				FileName: title,
				Dimensns: Dimensns{
					CaseQnty: record.RecordCount(),
					VarQnty:  record.VariableCount(),
				},
				FileType: fileType,
			},
		}},
		DataDscr: DataDscr{
			Notes: []Notes{{Type: "crosswalk", Subject: "variables", Value: variablesNote}},
		},
	}

	if record.Description != nil && strings.TrimSpace(*record.Description) != "" {
		cb.StdyDscr.StdyInfo = &StdyInfo{Abstract: Abstract{Value: *record.Description}}
	}

	for _, c := range record.VisibleColumns() {
		cb.DataDscr.Vars = append(cb.DataDscr.Vars, newVar(c, opts.CategoryThreshold))
	}

	return cb, nil
}

func newVar(c domain.Column, threshold int) Var {
	v := Var{
		ID:    "V" + strconv.Itoa(c.ID),
		Name:  c.FieldName,
		Files: fileID,
		Labl:  c.Label,
		VarFormat: VarFormat{
			Type:       formatType(c.DataTypeName),
			Schema:     "other",
			FormatName: "socrata",
			Value:      c.DataTypeName,
		},
	}

	cc := c.CachedContents
	if cc == nil {
		return v
	}

	addInt := func(typ, other string, value *int) {
		if value != nil {
			v.SumStats = append(v.SumStats, SumStat{Type: typ, OtherType: other, Value: strconv.Itoa(*value)})
		}
	}

	addInt("other", "count", cc.Count)
	if cc.Smallest != nil {
		v.SumStats = append(v.SumStats, SumStat{Type: "min", Value: *cc.Smallest})
	}
	if cc.Largest != nil {
		v.SumStats = append(v.SumStats, SumStat{Type: "max", Value: *cc.Largest})
	}
	addInt("other", "cardinality", cc.Cardinality)
	addInt("vald", "", cc.NonNull)
	addInt("invd", "", cc.Null)

	if len(cc.Top) > 0 && cc.Cardinality != nil && *cc.Cardinality <= threshold {
		for _, top := range cc.Top {
			// category labels are not published, the code doubles as label
			v.Catgries = append(v.Catgries, Catgry{
				CatValu: top.Item,
				Labl:    top.Item,
				CatStat: CatStat{Type: "freq", Value: top.Count},
			})
		}
	}

	return v
}

func formatType(socrataType string) string {
	if socrataType == "number" {
		return "numeric"
	}
	return "character"
}

func Marshal(cb *CodeBook) ([]byte, error) {
	body, err := xml.MarshalIndent(cb, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal codebook: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
