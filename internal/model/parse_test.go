package model

import "testing"

func TestDeriveID(t *testing.T) {
	tests := []struct {
		title, location, size string
		want                  string
	}{
		{"Radia Office Strata", "Shah Alam, Selangor", "1,755 sq.ft", "radia_office_strata_shah_alam_selangor_1755_sqft"},
		{"Menara UP Office Unit", "Kuala Lumpur", "1,323 sq.ft", "menara_up_office_unit_kuala_lumpur_1323_sqft"},
	}
	for _, tt := range tests {
		got := DeriveID(tt.title, tt.location, tt.size)
		if got != tt.want {
			t.Errorf("DeriveID(%q, %q, %q) = %q, want %q", tt.title, tt.location, tt.size, got, tt.want)
		}
	}
}

func TestDeriveIDStable(t *testing.T) {
	a := DeriveID("Emporis Shop Lot", "Kota Damansara, Selangor", "1,679 sq.ft")
	b := DeriveID("Emporis Shop Lot", "Kota Damansara, Selangor", "1,679 sq.ft")
	if a != b {
		t.Errorf("identical inputs produced different ids: %q vs %q", a, b)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"RM351,000", 351000, false},
		{"RM204,000", 204000, false},
		{"rm 735,900", 735900, false},
		{"850k", 850000, false},
		{"RM1.2m", 1200000, false},
		{"", 0, true},
		{"POA", 0, true},
		{"RM0", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePrice(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%q) expected error, got %v", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"1,755 sq.ft", 1755, false},
		{"1323 sqft", 1323, false},
		{"2,500 sq ft", 2500, false},
		{"N/A", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSize(%q) expected error, got %v", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSize(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		raw  string
		want PropertyType
	}{
		{"Office", TypeOffice},
		{"shop lot", TypeShop},
		{"Retail Space", TypeRetail},
		{"FACTORY", TypeFactory},
		{"Warehouse Unit", TypeWarehouse},
		{"Bungalow", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, tt := range tests {
		if got := ParsePropertyType(tt.raw); got != tt.want {
			t.Errorf("ParsePropertyType(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestPropertyTypeIsValid(t *testing.T) {
	for _, v := range TrackedTypes {
		if !v.IsValid() {
			t.Errorf("%v should be valid", v)
		}
	}
	if TypeUnknown.IsValid() {
		t.Error("TypeUnknown should not be valid")
	}
}
