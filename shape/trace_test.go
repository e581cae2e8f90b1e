package shape

import (
	"errors"
	"testing"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/errs"
	"github.com/terraincore/heightline/geom"
)

func edgesOf(cell cellmap.Key, x0, y0, x1, y1 float64) []taggedEdge {
	poly := geom.NewPolygon([]geom.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	})
	var out []taggedEdge
	for _, e := range poly.Edges() {
		out = append(out, taggedEdge{Seg: e, Cell: cell})
	}
	return out
}

func TestCancelEdgesRemovesSharedEdgeAndRecordsAdjacency(t *testing.T) {
	a := cellmap.Key{Row: 0, Col: 0}
	b := cellmap.Key{Row: 0, Col: 1}
	var edges []taggedEdge
	edges = append(edges, edgesOf(a, 0, 0, 10, 10)...)
	edges = append(edges, edgesOf(b, 10, 0, 20, 10)...)

	boundary, adjacency := cancelEdges(edges)
	if len(boundary) != 6 {
		t.Errorf("cancelEdges() boundary has %d edge(s), want 6 (8 - 2 cancelled)", len(boundary))
	}
	if !adjacency[a][b] || !adjacency[b][a] {
		t.Errorf("cancelEdges() did not record bidirectional adjacency between %v and %v", a, b)
	}
}

func TestCancelEdgesIsolatedCellHasNoAdjacency(t *testing.T) {
	a := cellmap.Key{Row: 0, Col: 0}
	boundary, adjacency := cancelEdges(edgesOf(a, 0, 0, 10, 10))
	if len(boundary) != 4 {
		t.Errorf("cancelEdges() boundary has %d edge(s), want 4 for an isolated cell", len(boundary))
	}
	if len(adjacency) != 0 {
		t.Errorf("cancelEdges() adjacency = %v, want empty for an isolated cell", adjacency)
	}
}

func TestTraceLoopsClosesASingleSquare(t *testing.T) {
	a := cellmap.Key{Row: 0, Col: 0}
	boundary, _ := cancelEdges(edgesOf(a, 0, 0, 10, 10))
	loops, err := traceLoops(boundary)
	if err != nil {
		t.Fatalf("traceLoops() error = %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("traceLoops() = %d loop(s), want 1", len(loops))
	}
	if len(loops[0].Edges) != 4 {
		t.Errorf("traced loop has %d edge(s), want 4", len(loops[0].Edges))
	}
	if !loops[0].Polygon().Clockwise() {
		t.Errorf("traced loop is not clockwise")
	}
}

func TestTraceLoopsReportsMissingEdgeOnBrokenChain(t *testing.T) {
	a := cellmap.Key{Row: 0, Col: 0}
	full := edgesOf(a, 0, 0, 10, 10)
	broken := full[:3] // drop the closing edge so the chain can never reach loopStart
	_, err := traceLoops(broken)
	if !errors.Is(err, errs.ErrMissingEdge) {
		t.Errorf("traceLoops() error = %v, want errs.ErrMissingEdge", err)
	}
}

func TestExpandViaAdjacencyReachesTransitiveNeighbors(t *testing.T) {
	a := cellmap.Key{Row: 0, Col: 0}
	b := cellmap.Key{Row: 0, Col: 1}
	c := cellmap.Key{Row: 0, Col: 2}
	adjacency := map[cellmap.Key]map[cellmap.Key]bool{
		a: {b: true},
		b: {a: true, c: true},
		c: {b: true},
	}
	seed := map[cellmap.Key]bool{a: true}
	got := expandViaAdjacency(seed, adjacency)
	if len(got) != 3 {
		t.Fatalf("expandViaAdjacency() reached %d cell(s), want 3", len(got))
	}
	for _, k := range []cellmap.Key{a, b, c} {
		if _, ok := got[k]; !ok {
			t.Errorf("expandViaAdjacency() missing cell %v", k)
		}
	}
}
