// Package list implements an intrusive doubly-linked list keyed by
// stable node handles rather than raw pointers, so a client can hold
// its own node handles and remove itself in O(1) without a scan.
package list

// Node is one element of a List. The zero Node is not valid; Nodes are
// only produced by List.Append. A Node's identity is stable for as
// long as it remains in its list.
type Node struct {
	Value      any
	list       *List
	prev, next *Node
}

// payload returns the value stored at node creation time.
func (n *Node) payload() any { return n.Value }

// List is a doubly-linked list of Nodes. The zero value is an empty
// list ready to use. Lists are not safe for concurrent use; all
// mutation in this repository happens on the single event-loop
// goroutine per the cooperative scheduling model.
type List struct {
	head, tail *Node
	len        int
}

// Len returns the number of nodes currently in the list.
func (l *List) Len() int { return l.len }

// Head returns the first node, or nil if the list is empty.
func (l *List) Head() *Node { return l.head }

// Tail returns the last node, or nil if the list is empty.
func (l *List) Tail() *Node { return l.tail }

// Append adds value to the end of the list and returns the new node
// handle, which the caller is expected to stash for later O(1)
// removal or move-to-head.
func (l *List) Append(value any) *Node {
	n := &Node{Value: value, list: l}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
	return n
}

// Remove detaches node from the list it belongs to. Remove is a no-op
// if node is nil or already detached. It is O(1): no scan is needed
// because the node carries its own prev/next links.
func (l *List) Remove(n *Node) {
	if n == nil || n.list != l {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next, n.list = nil, nil, nil
	l.len--
}

// MoveToHead moves an already-linked node to the front of the list
// without allocating a new node, preserving the relative order of
// everything else.
func (l *List) MoveToHead(n *Node) {
	if n == nil || n.list != l || l.head == n {
		return
	}
	l.Remove(n)
	n.list = l
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// Next returns the node following n in its list, or nil at the tail.
func (n *Node) Next() *Node { return n.next }

// Prev returns the node preceding n in its list, or nil at the head.
func (n *Node) Prev() *Node { return n.prev }

// Each calls fn for every node in the list, head to tail. fn must not
// mutate the list it is iterating.
func (l *List) Each(fn func(*Node)) {
	for n := l.head; n != nil; n = n.next {
		fn(n)
	}
}

// Find returns the first node whose Value satisfies pred, or nil.
func (l *List) Find(pred func(any) bool) *Node {
	for n := l.head; n != nil; n = n.next {
		if pred(n.Value) {
			return n
		}
	}
	return nil
}
