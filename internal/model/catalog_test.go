package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramShortDescription(t *testing.T) {
	short := Program{Description: "brief"}
	assert.Equal(t, "brief", short.ShortDescription())

	long := Program{Description: strings.Repeat("x", 600)}
	got := long.ShortDescription()
	assert.Len(t, got, 500)
	assert.False(t, strings.HasSuffix(got, "..."))
}

func TestCourseShortDescription(t *testing.T) {
	// 省略号总是追加，即使描述未被截断
	short := Course{Description: "brief"}
	assert.Equal(t, "brief...", short.ShortDescription())

	long := Course{Description: strings.Repeat("y", 300)}
	got := long.ShortDescription()
	assert.Len(t, got, 203)
	assert.True(t, strings.HasSuffix(got, "..."))
}
