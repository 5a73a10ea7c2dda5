package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"$5 Hawker Voucher", "5-hawker-voucher"},
		{"Beach Clean-Up", "beach-clean-up"},
		{"Community  Garden   Day", "community-garden-day"},
		{" Trailing & Leading! ", "trailing-leading"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.input), tc.input)
	}
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("3f2504e0-4f89-41d3-9a0c-0305e82c3301"))
	assert.False(t, IsUUID("beach-clean-up"))
}
