package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FlexValue holds a display-only spec field that the catalog file stores
// either as a number or as a string (e.g. width "385" vs "15 (385)").
type FlexValue string

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FlexValue(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if n == math.Trunc(n) {
		*v = FlexValue(strconv.FormatInt(int64(n), 10))
	} else {
		*v = FlexValue(strconv.FormatFloat(n, 'f', -1, 64))
	}
	return nil
}

func (v FlexValue) String() string {
	return string(v)
}

// Price tolerates the converter occasionally emitting floats or nulls.
type Price int

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Price(math.Round(n))
	return nil
}

func (p Price) Int() int {
	return int(p)
}

type Specs struct {
	Width     FlexValue `json:"width"`
	Height    FlexValue `json:"height"`
	Diameter  FlexValue `json:"diameter"`
	LoadIndex FlexValue `json:"load_index"`
	Type      string    `json:"type,omitempty"`
	Axis      string    `json:"axis,omitempty"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug,omitempty"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Width       FlexValue `json:"width"`
	Height      FlexValue `json:"height"`
	Diameter    FlexValue `json:"diameter"`
	LoadIndex   FlexValue `json:"load_index"`
	Price       Price     `json:"price"`
	Description string    `json:"description,omitempty"`
	SEOKeywords string    `json:"seoKeywords,omitempty"`
	Images      []string  `json:"images"`
	Specs       *Specs    `json:"specs,omitempty"`
}

// FirstImage returns the primary display image, or "" when the product
// has no images at all.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Size renders the tire size string, e.g. "385/65R22.5".
func (p *Product) Size() string {
	return fmt.Sprintf("%s/%sR%s", p.Width, p.Height, p.Diameter)
}
