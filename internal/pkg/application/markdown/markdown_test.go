package markdown

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestGenerate(t *testing.T) {
	is := is.New(t)

	record := &domain.DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(viewJSON), record))

	doc := Generate(record)

	is.True(strings.HasPrefix(doc, "# 311 Cases\n\nSF311 cases created since **2008**\n\n"))
	is.True(strings.Contains(doc, "| Name | Label | Type | Info |\n|---|---|---|---|\n"))
	is.True(strings.Contains(doc, "| service_request_id | CaseID | number | Cardinality: 7,654,321<br/>Examples: 322566 |\n"))
	is.True(strings.Contains(doc, "| requested_datetime | Opened | calendar_date | - |\n"))
	is.True(strings.Contains(doc, "| status_description | Status | text | Cardinality: 2<br/>Examples: Closed, Open, Pending |\n"))
	is.True(!strings.Contains(doc, "old_category"))
}

func TestThatSectionsCanBeLeftOut(t *testing.T) {
	is := is.New(t)

	record := &domain.DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(viewJSON), record))

	doc := Generate(record, "summary")
	is.True(!strings.Contains(doc, "## Variables"))
}

func TestThatAMinimalRecordUsesItsIdentifierAsTitle(t *testing.T) {
	is := is.New(t)

	doc := Generate(domain.NewDatasetRecord("abcd-1234"))
	is.True(strings.HasPrefix(doc, "# abcd-1234\n\n\n## Variables"))
}

func TestThatPipesAreEscapedInCells(t *testing.T) {
	is := is.New(t)

	record := domain.NewDatasetRecord("abcd-1234")
	record.Columns = []domain.Column{{FieldName: "a_or_b", Label: "A | B", DataTypeName: "text"}}

	doc := Generate(record)
	is.True(strings.Contains(doc, `| a_or_b | A \| B | text | - |`))
}

const viewJSON string = `{
	"id": "vw6y-z8j6",
	"name": "311 Cases",
	"description": "<p>SF311 cases created since <b>2008</b></p>",
	"columns": [
		{
			"id": 438231, "name": "CaseID", "fieldName": "service_request_id", "position": 1,
			"dataTypeName": "number", "renderTypeName": "number",
			"cachedContents": {"count": "7654321", "cardinality": "7654321", "top": [{"item": "322566", "count": "1"}]}
		},
		{
			"id": 438232, "name": "Opened", "fieldName": "requested_datetime", "position": 2,
			"dataTypeName": "calendar_date", "renderTypeName": "calendar_date"
		},
		{
			"id": 438233, "name": "Status", "fieldName": "status_description", "position": 3,
			"dataTypeName": "text", "renderTypeName": "text",
			"cachedContents": {
				"count": 7654321, "cardinality": 2,
				"top": [
					{"item": "Closed", "count": 7600000},
					{"item": "Open", "count": 54000},
					{"item": "Pending", "count": 300},
					{"item": "Unknown", "count": 21}
				]
			}
		},
		{
			"id": 438234, "name": "DELETE - Old Category", "fieldName": "old_category", "position": 4,
			"dataTypeName": "text", "renderTypeName": "text"
		}
	]
}`
