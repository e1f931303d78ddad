package summarizer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

const reportFont = "Times New Roman"

// runStyle is the formatting of one text run in the report
type runStyle struct {
	size  uint64
	bold  bool
	color string
}

var (
	titleStyle   = runStyle{size: 16, bold: true, color: "000000"}
	productStyle = runStyle{size: 14, bold: true, color: "000000"}
	bodyStyle    = runStyle{size: 13, color: "000000"}
	sourceStyle  = runStyle{size: 11, color: "808080"}
)

var reEmphasis = regexp.MustCompile(`\*\*(.+?)\*\*`)

// span is a piece of summary text and whether the model marked it **bold**
type span struct {
	text string
	bold bool
}

// WriteReport writes a docx digest: the title, then for each summary a numbered
// bold heading, the summary text and a grey source line.
func WriteReport(title string, summaries []models.Summary, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	writeRun(doc.AddParagraph(""), title, titleStyle)

	for i, s := range summaries {
		doc.AddParagraph("")
		writeRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, s.Name), productStyle)

		body := doc.AddParagraph("")
		for _, sp := range summarySpans(s.Summary) {
			style := bodyStyle
			style.bold = sp.bold
			writeRun(body, sp.text, style)
		}

		writeRun(doc.AddParagraph(""), "Source: "+string(s.Source), sourceStyle)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func writeRun(p *docx.Paragraph, text string, style runStyle) {
	run := p.AddText(text).Font(reportFont).Size(style.size).Color(style.color)
	if style.bold {
		run.Bold(true)
	}
}

// summarySpans splits model output on **bold** markers. Unpaired markers are dropped.
func summarySpans(text string) []span {
	text = strings.TrimSpace(text)

	var spans []span
	add := func(s string, bold bool) {
		s = strings.ReplaceAll(s, "**", "")
		if s != "" {
			spans = append(spans, span{text: s, bold: bold})
		}
	}

	last := 0
	for _, m := range reEmphasis.FindAllStringSubmatchIndex(text, -1) {
		add(text[last:m[0]], false)
		add(text[m[2]:m[3]], true)
		last = m[1]
	}
	add(text[last:], false)

	return spans
}
