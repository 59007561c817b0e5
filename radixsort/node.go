package radixsort

// Node is a single item of a circular linked list. The value is kept in its
// textual form even though it represents a number.
type Node struct {
	Data string
	next *Node
}

// Next returns the node that follows n in its circular list.
func (n *Node) Next() *Node {
	return n.next
}

// appendRear links n after rear and returns n as the new rear.
// A nil rear means the list was empty; n then points to itself.
func appendRear(rear *Node, n *Node) *Node {
	if rear == nil {
		n.next = n
		return n
	}
	n.next = rear.next
	rear.next = n
	return n
}

// concat splices list b after list a and returns the rear of the result.
// Both arguments are rear references; either may be nil.
func concat(a *Node, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	front := a.next
	a.next = b.next
	b.next = front
	return b
}

// Walk calls fn on every node from the front to the rear of the list
// referenced by rear. Walking stops early if fn returns false.
func Walk(rear *Node, fn func(*Node) bool) {
	if rear == nil {
		return
	}
	ptr := rear.next
	for {
		// rear.next may be relinked by fn, so capture the successor first
		next := ptr.next
		if !fn(ptr) || ptr == rear {
			return
		}
		ptr = next
	}
}

// Len counts the nodes in the list referenced by rear.
func Len(rear *Node) int {
	n := 0
	Walk(rear, func(*Node) bool {
		n++
		return true
	})
	return n
}

// Values returns the list contents front to rear.
func Values(rear *Node) []string {
	var values []string
	Walk(rear, func(n *Node) bool {
		values = append(values, n.Data)
		return true
	})
	return values
}
