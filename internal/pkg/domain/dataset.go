package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	AssetTypeDataset string = "dataset"

	computedFieldPrefix string = ":@computed"
	deletedLabelPrefix  string = "DELETE -"
)

// DatasetRecord is the metadata of a single dataset as exposed by a Socrata
// host on /api/views/{id}.json. Everything except the identifier is optional.
type DatasetRecord struct {
	id string

	Name        *string
	Description *string
	AssetType   *string
	Category    *string
	Tags        []string

	License   *License
	LicenseID *string

	Owner           *Owner
	Attribution     *string
	AttributionLink *string

	CreatedAt        *time.Time
	PublicationDate  *time.Time
	RowsUpdatedAt    *time.Time
	ViewLastModified *time.Time

	Columns []Column
}

func NewDatasetRecord(id string) *DatasetRecord {
	return &DatasetRecord{id: strings.TrimSpace(id)}
}

func (r *DatasetRecord) ID() string {
	return r.id
}

type License struct {
	Name      *string `json:"name,omitempty"`
	TermsLink *string `json:"termsLink,omitempty"`
}

type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type Column struct {
	ID             int
	Label          string
	FieldName      string
	Position       int
	DataTypeName   string
	RenderTypeName string
	Description    *string
	CachedContents *CachedContents
}

// IsComputed reports columns that Socrata derives for internal use, e.g. region codes.
func (c Column) IsComputed() bool {
	return strings.HasPrefix(c.FieldName, computedFieldPrefix)
}

// IsDeleted reports columns that are marked for deletion but still listed.
func (c Column) IsDeleted() bool {
	return strings.HasPrefix(c.Label, deletedLabelPrefix)
}

func (c Column) IsHidden() bool {
	return c.IsComputed() || c.IsDeleted()
}

func (c Column) IsVisible() bool {
	return !c.IsHidden()
}

type CachedContents struct {
	Count       *int
	Cardinality *int
	NonNull     *int
	Null        *int
	Smallest    *string
	Largest     *string
	Top         []TopValue
}

type TopValue struct {
	Item  string
	Count int
}

func (r *DatasetRecord) VisibleColumns() []Column {
	visible := make([]Column, 0, len(r.Columns))
	for _, c := range r.Columns {
		if c.IsVisible() {
			visible = append(visible, c)
		}
	}
	return visible
}

func (r *DatasetRecord) VariableCount() int {
	return len(r.VisibleColumns())
}

// RecordCount returns the row count Socrata caches on the first column, if any.
func (r *DatasetRecord) RecordCount() *int {
	if len(r.Columns) == 0 || r.Columns[0].CachedContents == nil {
		return nil
	}
	return r.Columns[0].CachedContents.Count
}

type datasetDTO struct {
	ID               string      `json:"id"`
	Name             *string     `json:"name"`
	Description      *string     `json:"description"`
	AssetType        *string     `json:"assetType"`
	Category         *string     `json:"category"`
	Tags             []string    `json:"tags"`
	License          *License    `json:"license"`
	LicenseID        *string     `json:"licenseId"`
	Owner            *Owner      `json:"owner"`
	Attribution      *string     `json:"attribution"`
	AttributionLink  *string     `json:"attributionLink"`
	CreatedAt        *epochTime  `json:"createdAt"`
	PublicationDate  *epochTime  `json:"publicationDate"`
	RowsUpdatedAt    *epochTime  `json:"rowsUpdatedAt"`
	ViewLastModified *epochTime  `json:"viewLastModified"`
	Columns          []columnDTO `json:"columns"`
}

type columnDTO struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	FieldName      string             `json:"fieldName"`
	Position       int                `json:"position"`
	DataTypeName   string             `json:"dataTypeName"`
	RenderTypeName string             `json:"renderTypeName"`
	Description    *string            `json:"description"`
	CachedContents *cachedContentsDTO `json:"cachedContents"`
}

type cachedContentsDTO struct {
	Count       *flexInt        `json:"count"`
	Cardinality *flexInt        `json:"cardinality"`
	NonNull     *flexInt        `json:"non_null"`
	Null        *flexInt        `json:"null"`
	Smallest    json.RawMessage `json:"smallest"`
	Largest     json.RawMessage `json:"largest"`
	Top         []struct {
		Item  json.RawMessage `json:"item"`
		Count flexInt         `json:"count"`
	} `json:"top"`
}

func (r *DatasetRecord) UnmarshalJSON(data []byte) error {
	dto := datasetDTO{}
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	*r = DatasetRecord{
		id:               strings.TrimSpace(dto.ID),
		Name:             emptyAsNil(dto.Name),
		Description:      emptyAsNil(dto.Description),
		AssetType:        dto.AssetType,
		Category:         emptyAsNil(dto.Category),
		Tags:             dto.Tags,
		License:          dto.License,
		LicenseID:        emptyAsNil(dto.LicenseID),
		Owner:            dto.Owner,
		Attribution:      emptyAsNil(dto.Attribution),
		AttributionLink:  emptyAsNil(dto.AttributionLink),
		CreatedAt:        dto.CreatedAt.timeOrNil(),
		PublicationDate:  dto.PublicationDate.timeOrNil(),
		RowsUpdatedAt:    dto.RowsUpdatedAt.timeOrNil(),
		ViewLastModified: dto.ViewLastModified.timeOrNil(),
	}

	if r.License != nil {
		r.License.Name = emptyAsNil(r.License.Name)
		r.License.TermsLink = emptyAsNil(r.License.TermsLink)
		if r.License.Name == nil && r.License.TermsLink == nil {
			r.License = nil
		}
	}

	for _, c := range dto.Columns {
		col := Column{
			ID:             c.ID,
			Label:          c.Name,
			FieldName:      c.FieldName,
			Position:       c.Position,
			DataTypeName:   c.DataTypeName,
			RenderTypeName: c.RenderTypeName,
			Description:    emptyAsNil(c.Description),
		}

		if cc := c.CachedContents; cc != nil {
			col.CachedContents = &CachedContents{
				Count:       cc.Count.intOrNil(),
				Cardinality: cc.Cardinality.intOrNil(),
				NonNull:     cc.NonNull.intOrNil(),
				Null:        cc.Null.intOrNil(),
				Smallest:    scalarText(cc.Smallest),
				Largest:     scalarText(cc.Largest),
			}

			for _, t := range cc.Top {
				item := scalarText(t.Item)
				if item == nil {
					continue
				}
				col.CachedContents.Top = append(col.CachedContents.Top, TopValue{Item: *item, Count: int(t.Count)})
			}
		}

		r.Columns = append(r.Columns, col)
	}

	return nil
}

// epochTime decodes the unix timestamps (seconds) used throughout the views API.
type epochTime time.Time

func (e *epochTime) UnmarshalJSON(data []byte) error {
	var seconds flexInt
	if err := json.Unmarshal(data, &seconds); err != nil {
		return fmt.Errorf("malformed epoch timestamp %s: %w", string(data), err)
	}
	*e = epochTime(time.Unix(int64(seconds), 0).UTC())
	return nil
}

func (e *epochTime) timeOrNil() *time.Time {
	if e == nil {
		return nil
	}
	t := time.Time(*e)
	return &t
}

// flexInt accepts both JSON numbers and numeric strings, as cachedContents mixes them.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}

	*f = flexInt(n)
	return nil
}

func (f *flexInt) intOrNil() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func scalarText(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	s = string(raw)
	return &s
}

func emptyAsNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
