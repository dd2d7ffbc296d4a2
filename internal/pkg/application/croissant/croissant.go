// Package croissant describes dataset records as MLCommons Croissant
// documents.
package croissant

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/opendata-crosswalk/internal/pkg/application/mapping"
	"github.com/diwise/opendata-crosswalk/internal/pkg/application/markdown"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
)

const (
	DefaultMaxCodes int = 100

	dataRecordSet string = "data"
)

type Options struct {
	IncludeComputed bool
	ExcludeCodes    bool
	MaxCodes        int
}

func Generate(server domain.Server, record *domain.DatasetRecord, opts Options) (*Metadata, error) {
	if err := mapping.RequireID(record); err != nil {
		return nil, err
	}

	host, err := mapping.NormalizeHost(server.Host)
	if err != nil {
		return nil, err
	}

	if opts.MaxCodes <= 0 {
		opts.MaxCodes = DefaultMaxCodes
	}

	id := record.ID()
	landingPage := mapping.Expand(host, mapping.LandingPage, id)

	name := id
	if record.Name != nil {
		name = *record.Name
	}

	serverName := server.Name
	if serverName == "" {
		serverName = host
	}

	m := &Metadata{
		Context:       Context,
		Type:          TypeDataset,
		ID:            id,
		Name:          name,
		ConformsTo:    ConformsTo,
		CiteAs:        fmt.Sprintf("%s, %s, %s", name, serverName, landingPage),
		License:       licenses(record),
		IsLiveDataset: true,
		URL:           landingPage,
		Keywords:      record.Tags,
	}

	if record.Description != nil {
		m.Description = markdown.FromHTML(*record.Description)
	}

	if record.RowsUpdatedAt != nil {
		m.DateModified = record.RowsUpdatedAt.UTC().Format(mapping.DateTimeLayout)
		m.Version = strconv.FormatInt(record.RowsUpdatedAt.Unix(), 10)
	}

	if record.PublicationDate != nil {
		m.DatePublished = record.PublicationDate.UTC().Format(mapping.DateTimeLayout)
	}

	for _, p := range server.Publisher {
		m.Publisher = append(m.Publisher, Organization{Type: TypeOrganization, Name: p, URL: "https://" + host})
	}

	columns := selectColumns(record, opts.IncludeComputed)

	contentURL := mapping.Expand(host, mapping.CSVDownload, id)
	if !opts.IncludeComputed {
		names := make([]string, 0, len(columns))
		for _, c := range columns {
			names = append(names, c.FieldName)
		}
		contentURL += "?$select=" + strings.Join(names, ",")
	}

	csv := FileObject{
		Type:           TypeFileObject,
		ID:             id + ".csv",
		Name:           name + ".csv",
		ContentURL:     contentURL,
		EncodingFormat: "text/csv",
	}
	m.Distribution = []FileObject{csv}

	data := RecordSet{
		Type:   TypeRecordSet,
		ID:     dataRecordSet,
		Name:   dataRecordSet,
		Fields: []Field{},
	}
	codes := []RecordSet{}

	for _, c := range columns {
		f := Field{
			Type:        TypeField,
			ID:          dataRecordSet + "/" + c.FieldName,
			Name:        c.FieldName,
			Description: c.Label,
			DataType:    DataType(c.DataTypeName),
			Source: &Source{
				FileObject: Ref{ID: csv.ID},
				Extract:    Extract{Column: c.FieldName},
			},
		}

		if !opts.ExcludeCodes {
			if rs, ok := codeRecordSet(c, opts.MaxCodes); ok {
				f.References = &Reference{Field: Ref{ID: rs.Fields[0].ID}}
				codes = append(codes, rs)
			}
		}

		data.Fields = append(data.Fields, f)
	}

	m.RecordSet = append([]RecordSet{data}, codes...)

	return m, nil
}

// codeRecordSet lists the most frequent values of a column. The list is
// complete only when the column cardinality fits within maxCodes.
func codeRecordSet(c domain.Column, maxCodes int) (RecordSet, bool) {
	if c.CachedContents == nil || len(c.CachedContents.Top) == 0 {
		return RecordSet{}, false
	}

	id := c.FieldName + "_codes"
	valueID, freqID := id+"/value", id+"/freq"

	top := c.CachedContents.Top
	top = top[:min(len(top), maxCodes)]

	records := make([]map[string]any, 0, len(top))
	for _, t := range top {
		records = append(records, map[string]any{valueID: t.Item, freqID: t.Count})
	}

	rs := RecordSet{
		Type: TypeRecordSet,
		ID:   id,
		Name: id,
		Fields: []Field{
			{Type: TypeField, ID: valueID, Name: "value", Description: "Code value", DataType: DataTypeText},
			{Type: TypeField, ID: freqID, Name: "freq", Description: "Code frequency", DataType: DataTypeInteger},
		},
	}

	cardinality := c.CachedContents.Cardinality
	switch {
	case cardinality != nil && *cardinality <= maxCodes:
		rs.Description = fmt.Sprintf("Top %d values and frequencies for %s.", len(top), c.FieldName)
		rs.Data = records
	case cardinality != nil:
		rs.Description = fmt.Sprintf("This is a partial list. The full list has %d codes.", *cardinality)
		rs.Examples = records
	default:
		rs.Description = "This may be a partial list. The variable cardinality is unknown."
		rs.Examples = records
	}

	return rs, true
}

func selectColumns(record *domain.DatasetRecord, includeComputed bool) []domain.Column {
	selected := []domain.Column{}
	for _, c := range record.Columns {
		if c.IsDeleted() || (c.IsComputed() && !includeComputed) {
			continue
		}
		selected = append(selected, c)
	}
	return selected
}

// licenses lists every license form the record carries, or Unknown.
func licenses(record *domain.DatasetRecord) []string {
	result := []string{}

	if l := record.License; l != nil && l.Name != nil {
		result = append(result, *l.Name)
	}
	if record.LicenseID != nil {
		result = append(result, *record.LicenseID)
	}
	if l := record.License; l != nil && l.TermsLink != nil {
		result = append(result, *l.TermsLink)
	}

	if len(result) == 0 {
		return []string{"Unknown"}
	}

	return result
}

// DataType maps a Socrata column type onto a Croissant data type.
func DataType(socrataType string) string {
	switch socrataType {
	case "number":
		return DataTypeFloat
	case "calendar_date", "date":
		return DataTypeDate
	case "url":
		return DataTypeURL
	case "checkbox":
		return DataTypeBoolean
	default:
		return DataTypeText
	}
}

func Marshal(m *Metadata) ([]byte, error) {
	body, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal croissant metadata: %w", err)
	}
	return body, nil
}
