package croissant

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestGenerateCroissant(t *testing.T) {
	is, record := testSetup(t)

	m, err := Generate(sfgov, record, Options{})
	is.NoErr(err)

	is.Equal(m.Name, "311 Cases")
	is.Equal(m.Description, "SF311 cases")
	is.Equal(m.CiteAs, "311 Cases, San Francisco Open Data Portal, https://data.sfgov.org/d/vw6y-z8j6")
	is.Equal(m.DateModified, "2026-02-06T04:06:12")
	is.Equal(m.Version, "1770350772")
	is.Equal(m.License, []string{"Open Data Commons PDDL", "PDDL"})
	is.Equal(m.Publisher[0].Name, "City of San Francisco")
	is.True(m.IsLiveDataset)

	is.NoErr(Validate(m))
}

func TestThatComputedColumnsAreDroppedFromTheDistribution(t *testing.T) {
	is, record := testSetup(t)

	m, err := Generate(sfgov, record, Options{})
	is.NoErr(err)

	is.Equal(m.Distribution[0].ContentURL, "https://data.sfgov.org/resource/vw6y-z8j6.csv?$select=service_request_id,requested_datetime,status_description")
	is.Equal(len(m.RecordSet[0].Fields), 3)

	m, err = Generate(sfgov, record, Options{IncludeComputed: true})
	is.NoErr(err)

	is.Equal(m.Distribution[0].ContentURL, "https://data.sfgov.org/resource/vw6y-z8j6.csv")
	is.Equal(len(m.RecordSet[0].Fields), 4)
}

func TestCodeRecordSets(t *testing.T) {
	is, record := testSetup(t)

	m, err := Generate(sfgov, record, Options{})
	is.NoErr(err)

	is.Equal(len(m.RecordSet), 3)

	caseIDCodes := m.RecordSet[1]
	is.Equal(caseIDCodes.ID, "service_request_id_codes")
	is.Equal(len(caseIDCodes.Data), 0)
	is.Equal(len(caseIDCodes.Examples), 1)
	is.Equal(caseIDCodes.Description, "This is a partial list. The full list has 7654321 codes.")

	statusCodes := m.RecordSet[2]
	is.Equal(statusCodes.ID, "status_description_codes")
	is.Equal(len(statusCodes.Data), 2)
	is.Equal(statusCodes.Data[0]["status_description_codes/value"], "Closed")
	is.Equal(statusCodes.Data[0]["status_description_codes/freq"], 7600000)

	status := m.RecordSet[0].Fields[2]
	is.Equal(status.References.Field.ID, "status_description_codes/value")
	is.Equal(status.DataType, DataTypeText)

	m, err = Generate(sfgov, record, Options{MaxCodes: 1})
	is.NoErr(err)
	is.Equal(len(m.RecordSet[2].Examples), 1)

	m, err = Generate(sfgov, record, Options{ExcludeCodes: true})
	is.NoErr(err)
	is.Equal(len(m.RecordSet), 1)
	is.True(m.RecordSet[0].Fields[2].References == nil)
}

func TestMarshalCroissant(t *testing.T) {
	is, record := testSetup(t)

	m, err := Generate(sfgov, record, Options{})
	is.NoErr(err)

	body, err := Marshal(m)
	is.NoErr(err)

	doc := map[string]any{}
	is.NoErr(json.Unmarshal(body, &doc))

	is.Equal(doc["@type"], "sc:Dataset")
	is.Equal(doc["conformsTo"], "http://mlcommons.org/croissant/1.0")
	is.Equal(doc["@context"].(map[string]any)["cr"], "http://mlcommons.org/croissant/")
}

func TestThatAMinimalRecordProducesValidMetadata(t *testing.T) {
	is := is.New(t)

	m, err := Generate(sfgov, domain.NewDatasetRecord("abcd-1234"), Options{})
	is.NoErr(err)

	is.Equal(m.Name, "abcd-1234")
	is.Equal(m.License, []string{"Unknown"})
	is.Equal(m.Version, "")
	is.NoErr(Validate(m))
}

func TestThatValidateReportsViolations(t *testing.T) {
	is, record := testSetup(t)

	m, err := Generate(sfgov, record, Options{})
	is.NoErr(err)

	m.RecordSet[0].Fields[0].DataType = "sc:Number"
	m.RecordSet[0].Fields[1].ID = m.RecordSet[0].Fields[0].ID

	var sce *domain.SchemaComplianceError
	is.True(errors.As(Validate(m), &sce))
	is.Equal(len(sce.Violations), 2)
}

func TestDataType(t *testing.T) {
	is := is.New(t)

	is.Equal(DataType("number"), DataTypeFloat)
	is.Equal(DataType("calendar_date"), DataTypeDate)
	is.Equal(DataType("url"), DataTypeURL)
	is.Equal(DataType("point"), DataTypeText)
}

var sfgov = domain.Server{
	Host:      "data.sfgov.org",
	Name:      "San Francisco Open Data Portal",
	Publisher: []string{"City of San Francisco"},
}

func testSetup(t *testing.T) (*is.I, *domain.DatasetRecord) {
	is := is.New(t)

	record := &domain.DatasetRecord{}
	is.NoErr(json.Unmarshal([]byte(viewJSON), record))

	return is, record
}

const viewJSON string = `{
	"id": "vw6y-z8j6",
	"name": "311 Cases",
	"description": "<p>SF311 cases</p>",
	"licenseId": "PDDL",
	"license": {"name": "Open Data Commons PDDL"},
	"rowsUpdatedAt": 1770350772,
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
