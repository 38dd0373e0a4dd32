package templates

import (
	"testing"

	"github.com/dormpack/dormpack-backend/pkg/enums"
)

func TestAllTemplatesHaveItemsWithValidSizes(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected starter templates")
	}
	for _, tpl := range all {
		if tpl.Name == "" {
			t.Fatal("template with empty name")
		}
		if len(tpl.Items) == 0 {
			t.Fatalf("template %q has no items", tpl.Name)
		}
		for _, item := range tpl.Items {
			if !item.Size.IsValid() {
				t.Fatalf("template %q item %q has invalid size %q", tpl.Name, item.Name, item.Size)
			}
		}
	}
}

func TestFindIsExactMatch(t *testing.T) {
	if _, ok := Find("Bedding"); !ok {
		t.Fatal("expected Bedding template")
	}
	if _, ok := Find("bedding"); ok {
		t.Fatal("lookup should be case sensitive")
	}
	if _, ok := Find("Garage"); ok {
		t.Fatal("unexpected template match")
	}
}

func TestInferItemSize(t *testing.T) {
	cases := []struct {
		name string
		want enums.ItemSize
	}{
		{"Mini Fridge", enums.ItemSizeXL},
		{"55 inch TV", enums.ItemSizeXL},
		{"Mattress Topper", enums.ItemSizeXL},
		{"Throw Pillow", enums.ItemSizeLarge},
		{"Beach Towel", enums.ItemSizeLarge},
		{"Desk Lamp", enums.ItemSizeLarge},
		{"Phone Charger", enums.ItemSizeSmall},
		{"Wool Socks", enums.ItemSizeSmall},
		{"Mystery Box", enums.ItemSizeMedium},
	}
	for _, tc := range cases {
		if got := InferItemSize(tc.name); got != tc.want {
			t.Errorf("InferItemSize(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInferItemSizeXLBeatsLarge(t *testing.T) {
	// "mattress" (XL) and "pillow" (Large) both match; XL keywords win.
	if got := InferItemSize("Pillow-top Mattress"); got != enums.ItemSizeXL {
		t.Fatalf("expected XL, got %q", got)
	}
}
