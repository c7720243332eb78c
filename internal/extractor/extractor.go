// Package extractor turns the table rows of a saved results page into
// text rows for the training dataset.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"KonkurRankPredictor/internal/models"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var tracer = otel.Tracer("konkur-rank/internal/extractor")

// ExtractFile reads a UTF-8 HTML document from disk. A leading BOM is skipped.
func ExtractFile(ctx context.Context, path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ExtractRows(ctx, transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("ExtractFile(): failed to parse %s: %w", path, err)
	}
	return rows, nil
}

// ExtractRows returns one row per <tr> in document order holding the text of
// each <td>/<th> under it. Rows without cells are dropped, row lengths are
// left as they are.
func ExtractRows(ctx context.Context, r io.Reader) ([]models.Row, error) {
	_, span := tracer.Start(ctx, "ExtractRows")
	defer span.End()

	doc, err := parseDocument(r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	rows := []models.Row{}
	skipped := 0
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
			a := s.Nodes[0].DataAtom
			return a == atom.Td || a == atom.Th
		})
		if cells.Length() == 0 {
			skipped++
			return
		}
		row := make(models.Row, 0, cells.Length())
		for _, n := range cells.Nodes {
			row = append(row, CellText(n))
		}
		rows = append(rows, row)
	})

	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("skipped", skipped),
	)
	return rows, nil
}

// parseDocument parses r as a full HTML document. A document without any
// <table> is parsed again as the body of a <tbody>, otherwise the HTML5
// tree builder would drop rows and cells that are not inside a table.
func parseDocument(r io.Reader) (*goquery.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocumentFromNode(root)
	if doc.Find("table").Length() > 0 {
		return doc, nil
	}

	tbody := &html.Node{Type: html.ElementNode, Data: "tbody", DataAtom: atom.Tbody}
	nodes, err := html.ParseFragment(bytes.NewReader(src), tbody)
	if err != nil {
		return nil, err
	}
	fragment := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		fragment.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(fragment), nil
}

// CellText joins every text fragment under n, each stripped of surrounding
// whitespace, with empty fragments dropped. Script and style bodies are ignored.
func CellText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(strings.TrimSpace(n.Data))
		return
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}
