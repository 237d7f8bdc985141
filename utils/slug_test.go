package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation stripped", "Spicy Chicken Wrap!!", "spicy-chicken-wrap"},
		{"lowercases", "PIZZA", "pizza"},
		{"collapses runs", "a  --  b", "a-b"},
		{"trims edges", "  burgers & fries  ", "burgers-fries"},
		{"digits kept", "Combo No 5", "combo-no-5"},
		{"empty input", "", ""},
		{"only symbols", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}
