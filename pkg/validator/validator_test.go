package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Espresso & Drip", "espresso-drip"},
		{"Iced Latte", "iced-latte"},
		{"  Cold Brew  ", "cold-brew"},
		{"!!!", ""},
		{"Matcha 2.0", "matcha-2-0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+18313351234", FormatPhone("+1 (831) 335-1234"))
	assert.Equal(t, "88005553535", FormatPhone("8 800 555-35-35"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+1 (831) 335-1234"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("not a phone"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Jane script", SanitizeString("Jane <script>"))
	assert.Equal(t, "ordinary text", SanitizeString("ordinary text"))
}
