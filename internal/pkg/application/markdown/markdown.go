// Package markdown renders human readable summaries of dataset records.
package markdown

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/diwise/opendata-crosswalk/internal/pkg/domain"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	SectionVariables string = "variables"

	maxExamples int = 3
)

var converter = newConverter()

func newConverter() *md.Converter {
	c := md.NewConverter("", true, nil)
	c.Use(plugin.GitHubFlavored())
	return c
}

// FromHTML converts the rich text used in dataset descriptions to Markdown.
// Input that can not be converted is returned unchanged.
func FromHTML(html string) string {
	text, err := converter.ConvertString(html)
	if err != nil {
		return html
	}
	return strings.TrimSpace(text)
}

// Generate renders the record. With no sections given every section is
// included.
func Generate(record *domain.DatasetRecord, sections ...string) string {
	var sb strings.Builder

	title := record.ID()
	if record.Name != nil {
		title = FromHTML(*record.Name)
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	if record.Description != nil {
		sb.WriteString(FromHTML(*record.Description))
		sb.WriteString("\n\n")
	}

	if len(sections) == 0 || slices.Contains(sections, SectionVariables) {
		writeVariables(&sb, record)
	}

	return sb.String()
}

func writeVariables(sb *strings.Builder, record *domain.DatasetRecord) {
	p := message.NewPrinter(language.English)

	sb.WriteString("\n## Variables\n\n")
	sb.WriteString("| Name | Label | Type | Info |\n")
	sb.WriteString("|---|---|---|---|\n")

	for _, c := range record.VisibleColumns() {
		info := []string{}

		if cc := c.CachedContents; cc != nil {
			if cc.Cardinality != nil && *cc.Cardinality > 0 {
				info = append(info, p.Sprintf("Cardinality: %d", *cc.Cardinality))
			}

			if len(cc.Top) > 0 {
				examples := []string{}
				for _, top := range cc.Top[:min(len(cc.Top), maxExamples)] {
					examples = append(examples, top.Item)
				}
				info = append(info, "Examples: "+strings.Join(examples, ", "))
			}
		}

		if len(info) == 0 {
			info = append(info, "-")
		}

		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			cell(c.FieldName), cell(c.Label), cell(c.DataTypeName), cell(strings.Join(info, "<br/>")),
		))
	}
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
