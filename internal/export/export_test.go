package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"image/gif"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/sortlab/internal/compare"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
)

func rankedResults() []compare.Result {
	results := []compare.Result{
		{Algorithm: sorting.Bubble, Name: "Bubble Sort", Time: 10 * time.Millisecond, Counts: sorting.Counts{Comparisons: 6, Swaps: 4}},
		{Algorithm: sorting.Quick, Name: "Quick Sort", Time: 5 * time.Millisecond, Counts: sorting.Counts{Comparisons: 5, Swaps: 2}},
		{Algorithm: sorting.Merge, Name: "Merge Sort", Time: 20 * time.Millisecond, Counts: sorting.Counts{Comparisons: 5, Swaps: 8}},
	}
	return compare.DefaultScoring().Rank(results)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rankedResults()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if strings.Join(records[0], ",") != "rank,algorithm,time_ms,comparisons,swaps,efficiency,badge" {
		t.Errorf("header = %v", records[0])
	}

	want := [][]string{
		{"1", "Quick Sort", "5.000000", "5", "2", "1695", "Excellent"},
		{"2", "Bubble Sort", "10.000000", "6", "4", "877", "Good"},
		{"3", "Merge Sort", "20.000000", "5", "8", "452", "Poor"},
	}
	for i, row := range want {
		if strings.Join(records[i+1], ",") != strings.Join(row, ",") {
			t.Errorf("row %d = %v, want %v", i+1, records[i+1], row)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rankedResults()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var rows []struct {
		Algorithm  string  `json:"algorithm"`
		TimeMS     float64 `json:"time_ms"`
		Efficiency int     `json:"efficiency"`
		Badge      string  `json:"badge"`
		Rank       int     `json:"rank"`
		Counts     struct {
			Comparisons int `json:"comparisons"`
			Swaps       int `json:"swaps"`
		} `json:"counts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Algorithm != "Quick Sort" || rows[0].Badge != "Excellent" || rows[0].TimeMS != 5 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[2].Counts.Swaps != 8 || rows[2].Rank != 3 {
		t.Errorf("last row = %+v", rows[2])
	}

	buf.Reset()
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty results = %q", buf.String())
	}
}

func TestChartSVG(t *testing.T) {
	svg := ChartSVG(rankedResults(), 600, 200)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %.60q", svg)
	}
	for _, want := range []string{"1. Quick Sort", "3. Merge Sort", "20.000ms", badgeFill[compare.Excellent], badgeFill[compare.Poor]} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	// background plus one bar per result
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}

	if ChartSVG(nil, 600, 200) != "" {
		t.Error("empty results should render nothing")
	}
}

func TestCountsSVG(t *testing.T) {
	steps := []sorting.Step{
		{Seq: 1, Kind: sorting.StepCompare, Counts: sorting.Counts{Comparisons: 1}},
		{Seq: 2, Kind: sorting.StepSwap, Counts: sorting.Counts{Comparisons: 1, Swaps: 1}},
		{Seq: 3, Kind: sorting.StepDone, Counts: sorting.Counts{Comparisons: 1, Swaps: 1}},
	}
	svg := CountsSVG(steps, 300, 100)
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("path count = %d, want 2", got)
	}
	if !strings.Contains(svg, "M100.0,0.0") {
		t.Errorf("comparison curve should start at the top: %s", svg)
	}
	if CountsSVG(steps[:1], 300, 100) != "" {
		t.Error("single step should render nothing")
	}
}

func TestWriteGIF(t *testing.T) {
	initial := sorting.NewArray([]int{309, 10})
	sorted := sorting.NewArray([]int{10, 309})
	sorted.MarkAll(sorting.Sorted)

	var buf bytes.Buffer
	if err := WriteGIF(&buf, []sorting.Array{initial, sorted}, viz.ThemeClassic); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Fatalf("frames = %d", len(anim.Image))
	}
	if anim.Delay[0] != frameDelay || anim.Delay[1] != lastDelay {
		t.Errorf("delays = %v", anim.Delay)
	}

	first := anim.Image[0]
	if b := first.Bounds(); b.Dx() != FrameWidth || b.Dy() != FrameHeight {
		t.Errorf("bounds = %v", b)
	}
	// tall normal bar on the left, background above the short bar on the right
	if got := first.ColorIndexAt(10, FrameHeight/2); got != 1+uint8(sorting.Normal) {
		t.Errorf("left bar index = %d", got)
	}
	if got := first.ColorIndexAt(FrameWidth-10, FrameHeight/2); got != 0 {
		t.Errorf("right background index = %d", got)
	}
	if got := anim.Image[1].ColorIndexAt(FrameWidth-10, FrameHeight-1); got != 1+uint8(sorting.Sorted) {
		t.Errorf("sorted bar index = %d", got)
	}
}

func TestWriteGIFNoFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGIF(&buf, nil, viz.ThemeClassic); !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}

func TestStepFrames(t *testing.T) {
	initial := sorting.NewArray([]int{2, 1})
	steps := []sorting.Step{
		{Seq: 1, Elements: sorting.NewArray([]int{1, 2})},
		{Seq: 2, Elements: sorting.NewArray([]int{1, 2})},
	}
	frames := StepFrames(initial, steps)
	if len(frames) != 3 {
		t.Fatalf("frames = %d", len(frames))
	}
	initial[0].Value = 99
	if frames[0][0].Value != 2 {
		t.Error("initial frame aliases the caller's array")
	}
}
