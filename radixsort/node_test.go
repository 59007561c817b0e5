package radixsort

import "testing"

func buildList(values ...string) *Node {
	var rear *Node
	for _, v := range values {
		rear = appendRear(rear, &Node{Data: v})
	}
	return rear
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAppendRearKeepsOrder(t *testing.T) {
	rear := buildList("a", "b", "c")

	if rear.Data != "c" {
		t.Fatalf("Expected rear c, got %s", rear.Data)
	}
	if rear.Next().Data != "a" {
		t.Fatalf("Expected front a, got %s", rear.Next().Data)
	}
	if got := Values(rear); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected [a b c], got %v", got)
	}
}

func TestAppendRearSingleIsCircular(t *testing.T) {
	rear := buildList("x")
	if rear.Next() != rear {
		t.Error("Single node list should point to itself")
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"both empty", nil, nil, nil},
		{"left empty", nil, []string{"1", "2"}, []string{"1", "2"}},
		{"right empty", []string{"1"}, nil, []string{"1"}},
		{"both", []string{"1", "2"}, []string{"3", "4", "5"}, []string{"1", "2", "3", "4", "5"}},
		{"singletons", []string{"1"}, []string{"2"}, []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rear := concat(buildList(tt.a...), buildList(tt.b...))
			if got := Values(rear); !equalStrings(got, tt.want) {
				t.Errorf("concat() = %v, want %v", got, tt.want)
			}
			if n := Len(rear); n != len(tt.want) {
				t.Errorf("Len() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestWalkStopsEarly(t *testing.T) {
	rear := buildList("1", "2", "3", "4")

	var seen []string
	Walk(rear, func(n *Node) bool {
		seen = append(seen, n.Data)
		return n.Data != "2"
	})
	if !equalStrings(seen, []string{"1", "2"}) {
		t.Errorf("Expected walk to stop after 2, saw %v", seen)
	}
}

func TestEmptyList(t *testing.T) {
	if Len(nil) != 0 {
		t.Error("Expected empty list length 0")
	}
	if Values(nil) != nil {
		t.Error("Expected no values for empty list")
	}
}
