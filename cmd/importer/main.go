// Command importer converts the supplier's Excel price list into the
// data/products.json catalog consumed by the service.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
)

const (
	colName        = "Полное наименование"
	colCategory    = "Тип"
	colSubcategory = "Ось"
	colBrand       = "Бренд"
	colModel       = "Модель"
	colWidth       = "Ширина профиля"
	colHeight      = "Высота профиля"
	colDiameter    = "Диаметр"
	colLoadIndex   = "Индекс нагрузки / скорости"
	colPrice       = "Цена"
	colDescription = "Описание"
	colSEO         = "SEO"
	colImages      = "Изображения"
)

var (
	imgSrcRe    = regexp.MustCompile(`<img[^>]*src="([^"]*)"[^>]*>`)
	slugStripRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugDashRe  = regexp.MustCompile(`[-\s]+`)
	parenMMRe   = regexp.MustCompile(`\((\d+)\)`)
)

type importedSpecs struct {
	Width     interface{} `json:"width"`
	Height    interface{} `json:"height"`
	Diameter  interface{} `json:"diameter"`
	LoadIndex interface{} `json:"load_index"`
	Type      interface{} `json:"type"`
	Axis      interface{} `json:"axis"`
}

type importedProduct struct {
	ID          int           `json:"id"`
	Name        interface{}   `json:"name"`
	Slug        string        `json:"slug"`
	Category    interface{}   `json:"category"`
	Subcategory interface{}   `json:"subcategory"`
	Brand       interface{}   `json:"brand"`
	Model       interface{}   `json:"model"`
	Width       interface{}   `json:"width"`
	Height      interface{}   `json:"height"`
	Diameter    interface{}   `json:"diameter"`
	LoadIndex   interface{}   `json:"load_index"`
	Price       interface{}   `json:"price"`
	Description interface{}   `json:"description"`
	SEOKeywords interface{}   `json:"seoKeywords"`
	Images      []string      `json:"images"`
	Specs       importedSpecs `json:"specs"`
}

// extractImageURLs pulls every src attribute out of the HTML the supplier
// stores in the images column.
func extractImageURLs(html string) []string {
	urls := []string{}
	for _, m := range imgSrcRe.FindAllStringSubmatch(html, -1) {
		urls = append(urls, m[1])
	}
	return urls
}

func generateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugDashRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// normalizeWidth reduces values like "15 (385)" to the parenthesized mm
// number; plain numbers pass through, anything else stays a string.
func normalizeWidth(value string) interface{} {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if strings.Contains(value, "(") && strings.Contains(value, ")") {
		if m := parenMMRe.FindStringSubmatch(value); m != nil {
			mm, _ := strconv.Atoi(m[1])
			return mm
		}
	}

	return parseScalar(value)
}

// parseScalar keeps the cell's natural type: int, float or string;
// empty cells become null.
func parseScalar(value string) interface{} {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func parsePrice(value string) interface{} {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(math.Round(f))
	}
	return nil
}

func cellText(row *xlsx.Row, idx int) string {
	if idx < 0 || idx >= len(row.Cells) {
		return ""
	}
	return strings.TrimSpace(row.Cells[idx].String())
}

func textOrNil(row *xlsx.Row, idx int) interface{} {
	if v := cellText(row, idx); v != "" {
		return v
	}
	return nil
}

func convert(sheet *xlsx.Sheet) ([]importedProduct, error) {
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet.Name)
	}

	columns := map[string]int{}
	for i, cell := range sheet.Rows[0].Cells {
		columns[strings.TrimSpace(cell.String())] = i
	}

	col := func(header string) int {
		if idx, ok := columns[header]; ok {
			return idx
		}
		return -1
	}

	products := []importedProduct{}
	for _, row := range sheet.Rows[1:] {
		name := cellText(row, col(colName))
		if name == "" {
			continue
		}

		width := normalizeWidth(cellText(row, col(colWidth)))
		height := parseScalar(cellText(row, col(colHeight)))
		diameter := parseScalar(cellText(row, col(colDiameter)))
		loadIndex := textOrNil(row, col(colLoadIndex))
		category := textOrNil(row, col(colCategory))
		axis := textOrNil(row, col(colSubcategory))

		products = append(products, importedProduct{
			ID:          len(products) + 1,
			Name:        name,
			Slug:        generateSlug(name),
			Category:    category,
			Subcategory: axis,
			Brand:       textOrNil(row, col(colBrand)),
			Model:       textOrNil(row, col(colModel)),
			Width:       width,
			Height:      height,
			Diameter:    diameter,
			LoadIndex:   loadIndex,
			Price:       parsePrice(cellText(row, col(colPrice))),
			Description: textOrNil(row, col(colDescription)),
			SEOKeywords: textOrNil(row, col(colSEO)),
			Images:      extractImageURLs(cellText(row, col(colImages))),
			Specs: importedSpecs{
				Width:     width,
				Height:    height,
				Diameter:  diameter,
				LoadIndex: loadIndex,
				Type:      category,
				Axis:      axis,
			},
		})
	}

	return products, nil
}

func main() {
	in := flag.String("in", "products.xlsx", "path to the supplier Excel file")
	out := flag.String("out", "data/products.json", "path to the catalog JSON output")
	sheetName := flag.String("sheet", "Для сайта", "worksheet to read")
	flag.Parse()

	file, err := xlsx.OpenFile(*in)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *in, err)
	}

	sheet, ok := file.Sheet[*sheetName]
	if !ok {
		log.Fatalf("Sheet %q not found in %s", *sheetName, *in)
	}

	products, err := convert(sheet)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	encoded, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if err := os.WriteFile(*out, append(encoded, '\n'), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Converted %d products to %s", len(products), *out)
}
