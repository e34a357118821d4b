package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectFillEndDate(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	p := Project{StartDate: start, Duration: 4}
	p.FillEndDate()
	assert.NotNil(t, p.EndDate)
	assert.Equal(t, start.AddDate(0, 0, 28), *p.EndDate)

	// 已设置的结束日期不会被重算
	explicit := start.AddDate(0, 0, 10)
	p2 := Project{StartDate: start, Duration: 4, EndDate: &explicit}
	p2.FillEndDate()
	assert.Equal(t, explicit, *p2.EndDate)

	// 再次调用也不改动
	p.Duration = 52
	firstComputed := *p.EndDate
	p.FillEndDate()
	assert.Equal(t, firstComputed, *p.EndDate)
}

func TestProjectValidate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	p := Project{StartDate: start, EndDate: &end}
	assert.ErrorIs(t, p.Validate(), ErrStartAfterEnd)

	ok := start.AddDate(0, 0, 7)
	p.EndDate = &ok
	assert.NoError(t, p.Validate())

	// 没有结束日期时不报错
	p.EndDate = nil
	assert.NoError(t, p.Validate())
}
