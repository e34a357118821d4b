package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Advanced Go Programming", "advanced-go-programming"},
		{"  Hello,   World!  ", "hello-world"},
		{"C++ & Rust: a comparison", "c-rust-a-comparison"},
		{"UPPERCASE", "uppercase"},
		{"already-slugged", "already-slugged"},
		{"100 Days of Code", "100-days-of-code"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title: %q", tc.title)
	}
}

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateReferralCode()
		assert.NoError(t, err)
		assert.Len(t, code, ReferralCodeLength)
		for _, r := range code {
			assert.Contains(t, referralAlphabet, string(r))
		}
		seen[code] = true
	}
	// 50 个样本碰撞概率可以忽略
	assert.Len(t, seen, 50)
}
