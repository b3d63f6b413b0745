package render

import (
	"html"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Region names an output area of the host page. The value is the element id.
type Region string

const (
	RegionCurrent  Region = "current"
	RegionForecast Region = "forecast"
)

// Document holds the markup of the page regions. Every write replaces the
// region content entirely. A Document belongs to one page load and is not
// safe for concurrent use.
type Document struct {
	regions map[Region]string
	order   []Region
}

func NewDocument() *Document {
	return &Document{regions: make(map[Region]string, 2)}
}

// SetHTML replaces the region content with trusted markup.
func (d *Document) SetHTML(region Region, markup template.HTML) {
	if _, ok := d.regions[region]; !ok {
		d.order = append(d.order, region)
	}
	d.regions[region] = string(markup)
}

// SetText replaces the region content with plain text.
func (d *Document) SetText(region Region, text string) {
	d.SetHTML(region, template.HTML(html.EscapeString(text)))
}

// HTML returns the region markup, empty if it was never written.
func (d *Document) HTML(region Region) string {
	return d.regions[region]
}

// Written reports whether the region has been written.
func (d *Document) Written(region Region) bool {
	_, ok := d.regions[region]
	return ok
}

// Regions returns the written regions in first-write order.
func (d *Document) Regions() []Region {
	out := make([]Region, len(d.order))
	copy(out, d.order)
	return out
}

// Text returns the text content of the region.
func (d *Document) Text(region Region) string {
	markup, ok := d.regions[region]
	if !ok {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return html.UnescapeString(markup)
	}
	return doc.Text()
}

// Selection parses the region markup for querying.
func (d *Document) Selection(region Region) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(d.regions[region]))
	if err != nil {
		return nil, err
	}
	return doc.Selection, nil
}
