package ddi

import "encoding/xml"

type CodeBook struct {
	XMLName  xml.Name   `xml:"codeBook"`
	Xmlns    string     `xml:"xmlns,attr"`
	ID       string     `xml:"ID,attr"`
	URN      string     `xml:"ddiCodebookUrn,attr"`
	Version  string     `xml:"version,attr"`
	DocDscr  DocDscr    `xml:"docDscr"`
	StdyDscr StdyDscr   `xml:"stdyDscr"`
	FileDscr []FileDscr `xml:"fileDscr"`
	DataDscr DataDscr   `xml:"dataDscr"`
}

type DocDscr struct {
	Citation Citation `xml:"citation"`
}

type Citation struct {
	TitlStmt TitlStmt  `xml:"titlStmt"`
	ProdStmt *ProdStmt `xml:"prodStmt,omitempty"`
}

type TitlStmt struct {
	Titl string `xml:"titl"`
	IDNo IDNo   `xml:"IDNo"`
}

type IDNo struct {
	Agency string `xml:"agency,attr"`
	Value  string `xml:",chardata"`
}

type ProdStmt struct {
	ProdDate *ProdDate `xml:"prodDate,omitempty"`
	Software Software  `xml:"software"`
}

type ProdDate struct {
	Date  string `xml:"date,attr"`
	Value string `xml:",chardata"`
}

type Software struct {
	Version string `xml:"version,attr,omitempty"`
	Value   string `xml:",chardata"`
}

type StdyDscr struct {
	Citation Citation  `xml:"citation"`
	StdyInfo *StdyInfo `xml:"stdyInfo,omitempty"`
}

type StdyInfo struct {
	Abstract Abstract `xml:"abstract"`
}

type Abstract struct {
	Value string `xml:",cdata"`
}

type FileDscr struct {
	ID      string  `xml:"ID,attr"`
	FileTxt FileTxt `xml:"fileTxt"`
}

type FileTxt struct {
	FileName string   `xml:"fileName,omitempty"`
	Dimensns Dimensns `xml:"dimensns"`
	FileType string   `xml:"fileType"`
}

type Dimensns struct {
	CaseQnty *int `xml:"caseQnty,omitempty"`
	VarQnty  int  `xml:"varQnty"`
}

type DataDscr struct {
	Vars  []Var   `xml:"var"`
	Notes []Notes `xml:"notes"`
}

type Var struct {
	ID        string    `xml:"ID,attr"`
	Name      string    `xml:"name,attr"`
	Files     string    `xml:"files,attr"`
	Labl      string    `xml:"labl,omitempty"`
	SumStats  []SumStat `xml:"sumStat"`
	Catgries  []Catgry  `xml:"catgry"`
	VarFormat VarFormat `xml:"varFormat"`
}

type SumStat struct {
	Type      string `xml:"type,attr"`
	OtherType string `xml:"otherType,attr,omitempty"`
	Value     string `xml:",chardata"`
}

type Catgry struct {
	CatValu string  `xml:"catValu"`
	Labl    string  `xml:"labl"`
	CatStat CatStat `xml:"catStat"`
}

type CatStat struct {
	Type  string `xml:"type,attr"`
	Value int    `xml:",chardata"`
}

type VarFormat struct {
	Type       string `xml:"type,attr"`
	Schema     string `xml:"schema,attr"`
	FormatName string `xml:"formatname,attr"`
	Value      string `xml:",chardata"`
}

type Notes struct {
	Type    string `xml:"type,attr"`
	Subject string `xml:"subject,attr"`
	Value   string `xml:",chardata"`
}
