package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(v int) string { return strings.Repeat("x", v) })
	require.Equal(t, []string{"x", "xx", "xxx"}, got)
}

func TestTimer_AccumulatesAcrossSpans(t *testing.T) {
	tm := NewTimer()
	tm.Start()
	time.Sleep(time.Millisecond)
	tm.Stop()
	first := tm.Elapsed()
	require.Greater(t, first, time.Duration(0))

	tm.Start()
	time.Sleep(time.Millisecond)
	tm.Stop()
	require.Greater(t, tm.Elapsed(), first)
}

func TestTimer_Reset(t *testing.T) {
	tm := NewTimer()
	tm.Start()
	time.Sleep(time.Millisecond)
	tm.Stop()
	require.Greater(t, tm.Elapsed(), time.Duration(0))

	tm.Reset()
	require.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestTimer_StopWithoutStartIsNoop(t *testing.T) {
	tm := NewTimer()
	tm.Stop()
	require.Equal(t, time.Duration(0), tm.Elapsed())
}

func TestMemReport_String(t *testing.T) {
	r := MemReport{
		Name:       "root",
		TotalBytes: 300,
		Children: []MemReport{
			{Name: "child", TotalBytes: 300},
		},
	}
	s := r.String()
	require.Contains(t, s, "root")
	require.Contains(t, s, "child")
	require.Contains(t, s, "300 bytes")
}

func TestMemReport_JSON(t *testing.T) {
	r := MemReport{Name: "root", TotalBytes: 10}
	j := r.JSON()
	require.Contains(t, j, `"name":"root"`)
	require.Contains(t, j, `"total_bytes":10`)
}
