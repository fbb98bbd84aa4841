// Package orderedmap provides a generic map that remembers insertion order.
// Lookups go through a plain map while order is kept in a doubly linked
// list, so Set, Get and Delete all stay O(1).
package orderedmap

import (
	"container/list"
)

// Pair is a key-value entry positioned somewhere in insertion order.
// Walk the map from either end with Next and Prev.
type Pair[K comparable, V any] struct {
	key     K
	value   V
	element *list.Element
}

// OrderedMap stores key-value pairs in insertion order. Setting an
// existing key updates its value but keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*Pair[K, V]
	order *list.List
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*Pair[K, V]{},
		order: list.New(),
	}
}

// Set stores a key-value pair, overwriting the value of an existing key.
func (o *OrderedMap[K, V]) Set(key K, value V) {
	if pair, exists := o.store[key]; exists {
		pair.value = value
		return
	}

	pair := &Pair[K, V]{key: key, value: value}
	pair.element = o.order.PushBack(pair)
	o.store[key] = pair
}

// Get returns the value associated with key. The second return value is
// false when the key is absent.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	pair, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return pair.value, true
}

// Has reports whether key is present.
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (o *OrderedMap[K, V]) Delete(key K) {
	pair, exists := o.store[key]
	if !exists {
		return
	}

	o.order.Remove(pair.element)
	delete(o.store, key)
}

// Count returns the number of stored pairs.
func (o *OrderedMap[K, V]) Count() int {
	return o.order.Len()
}

// Front returns the oldest (inserted-first) pair, or nil when empty.
func (o *OrderedMap[K, V]) Front() *Pair[K, V] {
	return pairOf[K, V](o.order.Front())
}

// Back returns the newest (inserted-last) pair, or nil when empty.
func (o *OrderedMap[K, V]) Back() *Pair[K, V] {
	return pairOf[K, V](o.order.Back())
}

// Keys returns all keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.order.Len())
	for pair := o.Front(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.key)
	}

	return keys
}

// Key returns the pair's key.
func (p *Pair[K, V]) Key() K {
	return p.key
}

// Value returns the pair's value.
func (p *Pair[K, V]) Value() V {
	return p.value
}

// Next returns the pair inserted after p, or nil at the end.
func (p *Pair[K, V]) Next() *Pair[K, V] {
	return pairOf[K, V](p.element.Next())
}

// Prev returns the pair inserted before p, or nil at the start.
func (p *Pair[K, V]) Prev() *Pair[K, V] {
	return pairOf[K, V](p.element.Prev())
}

func pairOf[K comparable, V any](element *list.Element) *Pair[K, V] {
	if element == nil {
		return nil
	}

	return element.Value.(*Pair[K, V])
}
