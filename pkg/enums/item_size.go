package enums

import "fmt"

// ItemSize maps to the item_size enum in Postgres.
type ItemSize string

const (
	ItemSizeSmall  ItemSize = "Small"
	ItemSizeMedium ItemSize = "Medium"
	ItemSizeLarge  ItemSize = "Large"
	ItemSizeXL     ItemSize = "XL"
)

var validItemSizes = []ItemSize{
	ItemSizeSmall,
	ItemSizeMedium,
	ItemSizeLarge,
	ItemSizeXL,
}

// IsValid checks whether the given size matches the canonical enum.
func (s ItemSize) IsValid() bool {
	for _, candidate := range validItemSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseItemSize converts raw strings into ItemSize.
func ParseItemSize(value string) (ItemSize, error) {
	for _, candidate := range validItemSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item size %q", value)
}
