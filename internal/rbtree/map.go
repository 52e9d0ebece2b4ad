package rbtree

import "cmp"

type color int8

const (
	red color = iota
	black
)

// Map is an immutable ordered map.
// Set never modifies the receiver. It returns a new Map which shares unchanged nodes with the old one,
// so keeping an old Map around is a snapshot and going back to it is a rollback.
// This implementation is based on red-black tree from Purely Functional Data Structures by Okasaki.
// The zero value is an empty map.
type Map[K cmp.Ordered, V any] struct {
	root *node[K, V]
	len  int
}

type node[K cmp.Ordered, V any] struct {
	color       color
	left, right *node[K, V]
	key         K
	value       V
}

// Len returns the number of keys.
func (t Map[K, V]) Len() int {
	return t.len
}

// Get returns the associated value for a key.
func (t Map[K, V]) Get(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Set returns a new Map with a pair of key and value.
func (t Map[K, V]) Set(key K, value V) Map[K, V] {
	root, added := insert(t.root, key, value)
	if root.color == red {
		root = &node[K, V]{color: black, left: root.left, key: root.key, value: root.value, right: root.right}
	}
	ret := Map[K, V]{root: root, len: t.len}
	if added {
		ret.len++
	}
	return ret
}

// Each calls f for every pair in ascending order of keys until f returns false.
func (t Map[K, V]) Each(f func(K, V) bool) {
	each(t.root, f)
}

func each[K cmp.Ordered, V any](n *node[K, V], f func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return each(n.left, f) && f(n.key, n.value) && each(n.right, f)
}

func insert[K cmp.Ordered, V any](n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{color: red, key: key, value: value}, true
	}
	switch {
	case key < n.key:
		l, added := insert(n.left, key, value)
		return balance(n.color, l, n.key, n.value, n.right), added
	case key > n.key:
		r, added := insert(n.right, key, value)
		return balance(n.color, n.left, n.key, n.value, r), added
	default:
		return &node[K, V]{color: n.color, left: n.left, key: key, value: value, right: n.right}, false
	}
}

func isRed[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

func balance[K cmp.Ordered, V any](c color, l *node[K, V], key K, value V, r *node[K, V]) *node[K, V] {
	if c == black {
		switch {
		case isRed(l) && isRed(l.left):
			return rotate(l.left.left, l.left, l.left.right, l, l.right, &node[K, V]{key: key, value: value}, r)
		case isRed(l) && isRed(l.right):
			return rotate(l.left, l, l.right.left, l.right, l.right.right, &node[K, V]{key: key, value: value}, r)
		case isRed(r) && isRed(r.left):
			return rotate(l, &node[K, V]{key: key, value: value}, r.left.left, r.left, r.left.right, r, r.right)
		case isRed(r) && isRed(r.right):
			return rotate(l, &node[K, V]{key: key, value: value}, r.left, r, r.right.left, r.right, r.right.right)
		}
	}
	return &node[K, V]{color: c, left: l, key: key, value: value, right: r}
}

// rotate builds red y with black children x and z: a x b y c z d.
// Only keys and values of x, y, and z are read.
func rotate[K cmp.Ordered, V any](a, x, b, y, c, z, d *node[K, V]) *node[K, V] {
	return &node[K, V]{
		color: red,
		left:  &node[K, V]{color: black, left: a, key: x.key, value: x.value, right: b},
		key:   y.key,
		value: y.value,
		right: &node[K, V]{color: black, left: c, key: z.key, value: z.value, right: d},
	}
}
