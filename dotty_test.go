package darray

import (
	"strings"
	"testing"
)

func TestDarray2Dot(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	d := Of(1, 2, 3)
	var sb strings.Builder
	Darray2Dot(d, &sb)
	dot := sb.String()
	t.Logf("dot = %s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("missing digraph preamble")
	}
	for _, frag := range []string{"shape=record", "\"n1\"", "\"n3\"", "style=dashed"} {
		if !strings.Contains(dot, frag) {
			t.Errorf("expected DOT output to contain %q", frag)
		}
	}
}

func TestDarray2DotNil(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	var sb strings.Builder
	Darray2Dot[int](nil, &sb)
	if !strings.Contains(sb.String(), "}") {
		t.Errorf("nil container should still produce a closed digraph")
	}
}
