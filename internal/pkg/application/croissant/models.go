package croissant

const (
	ConformsTo string = "http://mlcommons.org/croissant/1.0"

	TypeDataset      string = "sc:Dataset"
	TypeOrganization string = "sc:Organization"
	TypeFileObject   string = "cr:FileObject"
	TypeRecordSet    string = "cr:RecordSet"
	TypeField        string = "cr:Field"

	DataTypeBoolean string = "sc:Boolean"
	DataTypeDate    string = "sc:Date"
	DataTypeFloat   string = "sc:Float"
	DataTypeInteger string = "sc:Integer"
	DataTypeText    string = "sc:Text"
	DataTypeURL     string = "sc:URL"
)

// Context is the JSON-LD context of Croissant 1.0 documents.
var Context = map[string]any{
	"@language":      "en",
	"@vocab":         "https://schema.org/",
	"citeAs":         "cr:citeAs",
	"column":         "cr:column",
	"conformsTo":     "dct:conformsTo",
	"cr":             "http://mlcommons.org/croissant/",
	"rai":            "http://mlcommons.org/croissant/RAI/",
	"data":           map[string]string{"@id": "cr:data", "@type": "@json"},
	"dataType":       map[string]string{"@id": "cr:dataType", "@type": "@vocab"},
	"dct":            "http://purl.org/dc/terms/",
	"examples":       map[string]string{"@id": "cr:examples", "@type": "@json"},
	"extract":        "cr:extract",
	"field":          "cr:field",
	"fileProperty":   "cr:fileProperty",
	"fileObject":     "cr:fileObject",
	"fileSet":        "cr:fileSet",
	"format":         "cr:format",
	"includes":       "cr:includes",
	"isLiveDataset":  "cr:isLiveDataset",
	"jsonPath":       "cr:jsonPath",
	"key":            "cr:key",
	"md5":            "cr:md5",
	"parentField":    "cr:parentField",
	"path":           "cr:path",
	"recordSet":      "cr:recordSet",
	"references":     "cr:references",
	"regex":          "cr:regex",
	"repeated":       "cr:repeated",
	"replace":        "cr:replace",
	"sc":             "https://schema.org/",
	"separator":      "cr:separator",
	"source":         "cr:source",
	"subField":       "cr:subField",
	"transform":      "cr:transform",
}

type Metadata struct {
	Context       map[string]any `json:"@context"`
	Type          string         `json:"@type"`
	ID            string         `json:"@id,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	ConformsTo    string         `json:"conformsTo"`
	CiteAs        string         `json:"citeAs,omitempty"`
	DateModified  string         `json:"dateModified,omitempty"`
	DatePublished string         `json:"datePublished,omitempty"`
	License       []string       `json:"license,omitempty"`
	Publisher     []Organization `json:"publisher,omitempty"`
	Version       string         `json:"version,omitempty"`
	IsLiveDataset bool           `json:"isLiveDataset"`
	URL           string         `json:"url,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
	Distribution  []FileObject   `json:"distribution"`
	RecordSet     []RecordSet    `json:"recordSet"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type FileObject struct {
	Type           string `json:"@type"`
	ID             string `json:"@id"`
	Name           string `json:"name"`
	ContentURL     string `json:"contentUrl"`
	EncodingFormat string `json:"encodingFormat"`
}

type RecordSet struct {
	Type        string           `json:"@type"`
	ID          string           `json:"@id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Fields      []Field          `json:"field"`
	Data        []map[string]any `json:"data,omitempty"`
	Examples    []map[string]any `json:"examples,omitempty"`
}

type Field struct {
	Type        string     `json:"@type"`
	ID          string     `json:"@id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	DataType    string     `json:"dataType"`
	Source      *Source    `json:"source,omitempty"`
	References  *Reference `json:"references,omitempty"`
}

type Source struct {
	FileObject Ref     `json:"fileObject"`
	Extract    Extract `json:"extract"`
}

type Ref struct {
	ID string `json:"@id"`
}

type Extract struct {
	Column string `json:"column"`
}

type Reference struct {
	Field Ref `json:"field"`
}
