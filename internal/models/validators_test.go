package models

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "plain word", value: "salt"},
		{name: "two words", value: "brown sugar"},
		{name: "cyrillic", value: "мука пшеничная"},
		{name: "quotes and parens", value: `syrup "golden" (dark)`},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
		{name: "forbidden symbol", value: "salt!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTagColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{name: "white", color: "#ffffff"},
		{name: "green", color: "#009900"},
		{name: "uppercase palette color", color: "#FF0000"},
		{name: "missing hash", color: "ffffff", wantErr: true},
		{name: "outside the palette", color: "#123456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTagColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTagColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}
