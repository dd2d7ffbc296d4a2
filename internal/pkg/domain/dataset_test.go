package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestThatViewMetadataCanBeUnmarshalled(t *testing.T) {
	is := is.New(t)

	record := &DatasetRecord{}
	err := json.Unmarshal([]byte(viewJSON), record)
	is.NoErr(err)

	is.Equal(record.ID(), "vw6y-z8j6")
	is.Equal(*record.Name, "311 Cases")
	is.Equal(record.Tags, []string{"311", "sf311", "service requests"})
	is.Equal(*record.License.Name, "Open Data Commons Public Domain Dedication and License")
	is.Equal(*record.LicenseID, "PDDL")
	is.Equal(record.RowsUpdatedAt.Format(time.RFC3339), "2026-02-06T04:06:12Z")
	is.Equal(record.ViewLastModified.Format(time.RFC3339), "2025-01-01T00:00:00Z")
	is.Equal(len(record.Columns), 5)
}

func TestThatCachedContentsAcceptsNumbersAndStrings(t *testing.T) {
	is := is.New(t)

	record := &DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(viewJSON), record))

	caseID := record.Columns[0].CachedContents
	is.Equal(*caseID.Count, 7654321)
	is.Equal(*caseID.Smallest, "322566")

	status := record.Columns[2].CachedContents
	is.Equal(*status.Cardinality, 2)
	is.Equal(status.Top[0], TopValue{Item: "Closed", Count: 7600000})
	is.Equal(*record.RecordCount(), 7654321)
}

func TestHiddenColumnsAreExcludedFromVariableCount(t *testing.T) {
	is := is.New(t)

	record := &DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(viewJSON), record))

	is.True(record.Columns[3].IsDeleted())
	is.True(record.Columns[4].IsComputed())
	is.Equal(record.VariableCount(), 3)
}

func TestThatMissingOptionalFieldsStayAbsent(t *testing.T) {
	is := is.New(t)

	record := &DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(`{"id":"abcd-1234","license":{"name":""},"description":"  "}`), record))

	is.Equal(record.ID(), "abcd-1234")
	is.True(record.License == nil)
	is.True(record.Description == nil)
	is.True(record.RowsUpdatedAt == nil)
	is.True(record.RecordCount() == nil)
}

func TestThatIdentifiersAreTrimmed(t *testing.T) {
	is := is.New(t)

	record := &DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(`{"id": " vw6y-z8j6 "}`), record))
	is.Equal(record.ID(), "vw6y-z8j6")

	is.Equal(NewDatasetRecord("\tvw6y-z8j6\n").ID(), "vw6y-z8j6")
}

func TestThatRecordRefsAreNotFetched(t *testing.T) {
	is := is.New(t)

	ref := ByRecord(NewDatasetRecord("abcd-1234"))
	r, err := ref.Resolve(context.Background(), func(ctx context.Context, id string) (*DatasetRecord, error) {
		t.Fatal("fetch should not be called")
		return nil, nil
	})

	is.NoErr(err)
	is.Equal(r.ID(), "abcd-1234")
}

func TestThatEmptyIDRefsFailValidation(t *testing.T) {
	is := is.New(t)

	_, err := ByID(" ").Resolve(context.Background(), func(ctx context.Context, id string) (*DatasetRecord, error) {
		return NewDatasetRecord(id), nil
	})

	var verr *ValidationError
	is.True(errors.As(err, &verr))
}

const viewJSON string = `{
	"id": "vw6y-z8j6",
	"name": "311 Cases",
	"assetType": "dataset",
	"category": "City Infrastructure",
	"description": "<p>SF311 cases created since 7/1/2008 with location information</p>",
	"licenseId": "PDDL",
	"license": {
		"name": "Open Data Commons Public Domain Dedication and License",
		"termsLink": "http://opendatacommons.org/licenses/pddl/1.0/"
	},
	"createdAt": 1446146447,
	"publicationDate": 1446146447,
	"rowsUpdatedAt": 1770350772,
	"viewLastModified": 1735689600,
	"tags": ["311", "sf311", "service requests"],
	"owner": {"id": "abcd-1234", "displayName": "DataSF"},
	"columns": [
		{
			"id": 438231, "name": "CaseID", "fieldName": "service_request_id", "position": 1,
			"dataTypeName": "number", "renderTypeName": "number",
			"cachedContents": {
				"non_null": "7654321", "null": "0", "count": "7654321", "cardinality": "7654321",
				"largest": "19283746", "smallest": "322566",
				"top": [{"item": "322566", "count": "1"}]
			}
		},
		{
			"id": 438232, "name": "Opened", "fieldName": "requested_datetime", "position": 2,
			"dataTypeName": "calendar_date", "renderTypeName": "calendar_date"
		},
		{
			"id": 438233, "name": "Status", "fieldName": "status_description", "position": 3,
			"dataTypeName": "text", "renderTypeName": "text",
			"cachedContents": {
				"non_null": 7654321, "null": 0, "count": 7654321, "cardinality": 2,
				"top": [{"item": "Closed", "count": 7600000}, {"item": "Open", "count": 54321}]
			}
		},
		{
			"id": 438234, "name": "DELETE - Old Category", "fieldName": "old_category", "position": 4,
			"dataTypeName": "text", "renderTypeName": "text"
		},
		{
			"id": 438235, "name": "Neighborhoods", "fieldName": ":@computed_region_ajp5_b2md", "position": 5,
			"dataTypeName": "number", "renderTypeName": "number"
		}
	]
}`
