// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/seqbench/cacheplot/report"
	"github.com/seqbench/cacheplot/series"
)

func testGroups(t *testing.T) []*series.Group {
	t.Helper()
	bs := []report.Benchmark{
		{Name: "BM_insert<8, std::vector, Reserver>/1024/iterations:1", FamilyIndex: 0, ItemsPerSecond: 1000},
		{Name: "BM_insert<8, std::vector, Reserver>/2048/iterations:1", FamilyIndex: 0, ItemsPerSecond: 500},
		{Name: "BM_insert<8, NullContainer, NullIniter>/1024/iterations:1", FamilyIndex: 1, ItemsPerSecond: 1e9},
		{Name: "BM_insert<64, std::list, NullIniter>/64/iterations:1", FamilyIndex: 2, ItemsPerSecond: 4},
	}
	recs, err := series.FromReport(bs, nil)
	require.NoError(t, err)
	return series.Build(recs, nil)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testGroups(t)))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, Header, recs[0])
	assert.Equal(t, []string{"8", "0", "std::vector", "Reserver", "true", "1024", "128", "1000", "0.001", "7.8125e-06", "1"}, recs[1])
	assert.Equal(t, []string{"8", "0", "std::vector", "Reserver", "true", "2048", "256", "500", "0.002", "7.8125e-06", "1"}, recs[2])
	assert.Equal(t, []string{"64", "2", "std::list", "NullIniter", "false", "64", "1", "4", "0.25", "0.25", "1"}, recs[3])
}

func TestWriteBenchfmt(t *testing.T) {
	ctx := &report.Context{
		Date:     "2026-10-01T10:00:00+00:00",
		HostName: "bench01",
		NumCPUs:  8,
		Caches:   []report.Cache{{Level: 1, Type: "Data", Size: 32768}, {Level: 2, Size: 262144}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteBenchfmt(&buf, ctx, testGroups(t)))

	want := `date: 2026-10-01T10:00:00+00:00
host: bench01
cpus: 8
cache-l1-data: 32768
cache-l2: 262144

BenchmarkInsert/elem=8B/container=std::vector/init=Reserver/bytes=1024 1 1000000 ns/item 1000 items/s
BenchmarkInsert/elem=8B/container=std::vector/init=Reserver/bytes=2048 1 2000000 ns/item 500 items/s
BenchmarkInsert/elem=64B/container=std::list/init=NullIniter/bytes=64 1 250000000 ns/item 4 items/s
`
	assert.Equal(t, want, buf.String())
}

func TestBenchmarkName(t *testing.T) {
	for _, test := range []struct {
		prefix, container, init, want string
	}{
		{"BM_sort_container", "MSVector", "", "BenchmarkSort_container/elem=4B/container=MSVector"},
		{"", "a/b c", "x", "BenchmarkInsert/elem=4B/container=a_b_c/init=x"},
		{"BMFoo", "std::list", "", "BenchmarkFoo/elem=4B/container=std::list"},
	} {
		s := &series.Series{Prefix: test.prefix, ElementSize: 4, Container: test.container, Initializer: test.init}
		assert.Equal(t, test.want, benchmarkName(s))
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insert.xlsx")
	require.NoError(t, WriteXLSX(path, testGroups(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"8B", "64B"}, f.GetSheetList())

	rows, err := f.GetRows("8B")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "std::vector", rows[1][2])
	assert.Equal(t, "1024", rows[1][5])
	assert.Equal(t, "2048", rows[2][5])

	rows, err = f.GetRows("64B")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[1][2], "std::list"))
}
