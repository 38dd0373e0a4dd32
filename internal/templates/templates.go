// Package templates holds the starter category templates offered when
// building a new packing list, plus the size heuristic used when an item
// arrives without an explicit size.
package templates

import (
	"strings"

	"github.com/dormpack/dormpack-backend/pkg/enums"
)

// TemplateItem is one prefilled entry inside a category template.
type TemplateItem struct {
	Name string         `json:"name"`
	Size enums.ItemSize `json:"size"`
}

// CategoryTemplate bundles a category name with its starter items.
type CategoryTemplate struct {
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}

var categoryTemplates = []CategoryTemplate{
	{
		Name: "Bathroom",
		Items: []TemplateItem{
			{Name: "Toothbrush", Size: enums.ItemSizeSmall},
			{Name: "Toothpaste", Size: enums.ItemSizeSmall},
			{Name: "Soap", Size: enums.ItemSizeSmall},
			{Name: "Shampoo", Size: enums.ItemSizeMedium},
			{Name: "Conditioner", Size: enums.ItemSizeMedium},
			{Name: "Towels", Size: enums.ItemSizeLarge},
			{Name: "Shower Caddy", Size: enums.ItemSizeMedium},
			{Name: "Bathrobe", Size: enums.ItemSizeLarge},
		},
	},
	{
		Name: "Desk",
		Items: []TemplateItem{
			{Name: "Laptop Stand", Size: enums.ItemSizeMedium},
			{Name: "Pens", Size: enums.ItemSizeSmall},
			{Name: "Notebook", Size: enums.ItemSizeSmall},
			{Name: "Desk Lamp", Size: enums.ItemSizeMedium},
			{Name: "Stapler", Size: enums.ItemSizeSmall},
			{Name: "Sticky Notes", Size: enums.ItemSizeSmall},
			{Name: "Desk Organizer", Size: enums.ItemSizeMedium},
		},
	},
	{
		Name: "Bedding",
		Items: []TemplateItem{
			{Name: "Mattress Topper", Size: enums.ItemSizeXL},
			{Name: "Sheets", Size: enums.ItemSizeLarge},
			{Name: "Pillow", Size: enums.ItemSizeLarge},
			{Name: "Comforter", Size: enums.ItemSizeXL},
			{Name: "Blanket", Size: enums.ItemSizeLarge},
			{Name: "Pillowcase", Size: enums.ItemSizeMedium},
		},
	},
	{
		Name: "Electronics",
		Items: []TemplateItem{
			{Name: "Laptop", Size: enums.ItemSizeMedium},
			{Name: "Laptop Charger", Size: enums.ItemSizeSmall},
			{Name: "Phone Charger", Size: enums.ItemSizeSmall},
			{Name: "Power Strip", Size: enums.ItemSizeSmall},
			{Name: "Headphones", Size: enums.ItemSizeSmall},
			{Name: "HDMI Cable", Size: enums.ItemSizeSmall},
		},
	},
	{
		Name: "Clothing",
		Items: []TemplateItem{
			{Name: "T-Shirts", Size: enums.ItemSizeMedium},
			{Name: "Jeans", Size: enums.ItemSizeMedium},
			{Name: "Socks", Size: enums.ItemSizeSmall},
			{Name: "Underwear", Size: enums.ItemSizeSmall},
			{Name: "Jacket", Size: enums.ItemSizeLarge},
			{Name: "Shoes", Size: enums.ItemSizeMedium},
		},
	},
	{
		Name: "Kitchen",
		Items: []TemplateItem{
			{Name: "Water Bottle", Size: enums.ItemSizeSmall},
			{Name: "Coffee Mug", Size: enums.ItemSizeSmall},
			{Name: "Snacks", Size: enums.ItemSizeMedium},
			{Name: "Mini Fridge", Size: enums.ItemSizeXL},
			{Name: "Microwave", Size: enums.ItemSizeXL},
		},
	},
}

// All returns every starter template in display order.
func All() []CategoryTemplate {
	out := make([]CategoryTemplate, len(categoryTemplates))
	copy(out, categoryTemplates)
	return out
}

// Find returns the template matching the given category name exactly.
func Find(name string) (CategoryTemplate, bool) {
	for _, tpl := range categoryTemplates {
		if tpl.Name == name {
			return tpl, true
		}
	}
	return CategoryTemplate{}, false
}

var (
	xlKeywords    = []string{"comforter", "mattress", "fridge", "refrigerator", "microwave", "tv", "television", "futon"}
	largeKeywords = []string{"pillow", "blanket", "towel", "jacket", "coat", "backpack", "laundry", "sheets", "lamp"}
	smallKeywords = []string{"pen", "pencil", "toothbrush", "toothpaste", "soap", "charger", "cable", "sticky", "stapler", "eraser", "highlighter", "scissors", "tape", "socks", "underwear"}
)

// InferItemSize guesses a size from the item name. Keyword order matters:
// XL wins over Large, Large over Small, and anything unmatched is Medium.
func InferItemSize(itemName string) enums.ItemSize {
	name := strings.ToLower(itemName)

	for _, keyword := range xlKeywords {
		if strings.Contains(name, keyword) {
			return enums.ItemSizeXL
		}
	}
	for _, keyword := range largeKeywords {
		if strings.Contains(name, keyword) {
			return enums.ItemSizeLarge
		}
	}
	for _, keyword := range smallKeywords {
		if strings.Contains(name, keyword) {
			return enums.ItemSizeSmall
		}
	}
	return enums.ItemSizeMedium
}
