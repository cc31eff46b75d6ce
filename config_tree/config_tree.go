/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package configtree defines the dynamically-typed configuration tree used to
// describe flot series and plot options before they are serialized into a
// page's script block.
//
// A tree is made of *Node values, each of which is an object, an array, a
// string, a number, a boolean, or null.  Object keys are unique and keep their
// insertion order, so serializing the same tree twice yields the same bytes.
//
// Trees are mutated by explicit Path:
//
//	opts := configtree.Object()
//	opts.Set(configtree.Keys("grid", "color"), configtree.String("red"))
//	opts.Set(configtree.Keys("yaxes").Index(1).Key("min"), configtree.Number(0))
//
// Writing through a missing intermediate creates it: objects for Key steps,
// arrays for Index steps, with any missing array slots before the addressed
// one set to null.  Reading a missing path is never an error; Get returns a
// nil *Node, which reports IsNull.
//
// Updates may also be expressed as functions, and applied together:
//
//	opts.With(
//	  configtree.Property(configtree.Keys("legend", "position"), configtree.String("nw")),
//	  configtree.If(stacked, configtree.Property(configtree.Keys("series", "stack"), configtree.Bool(true))),
//	)
package configtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ilhamster/flotviz/errors"
)

type nodeType int

// Enumerated node types.
const (
	NullType nodeType = iota
	ObjectType
	ArrayType
	StringType
	NumberType
	BoolType
)

func (t nodeType) String() string {
	switch t {
	case NullType:
		return "null"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	case StringType:
		return "string"
	case NumberType:
		return "number"
	case BoolType:
		return "bool"
	}
	return "unknown"
}

// Node is a single value in a configuration tree.  The nil *Node is a valid,
// read-only null.
type Node struct {
	T nodeType

	str   string
	num   float64
	b     bool
	keys  []string
	props map[string]*Node
	elems []*Node
}

// Null returns a new null node.
func Null() *Node {
	return &Node{T: NullType}
}

// Object returns a new, empty object node.
func Object() *Node {
	return &Node{
		T:     ObjectType,
		props: map[string]*Node{},
	}
}

// Array returns a new array node holding copies of the provided elements.
func Array(elems ...*Node) *Node {
	ret := &Node{
		T:     ArrayType,
		elems: make([]*Node, 0, len(elems)),
	}
	for _, elem := range elems {
		ret.elems = append(ret.elems, orNull(elem.Clone()))
	}
	return ret
}

// String returns a new string node.
func String(s string) *Node {
	return &Node{T: StringType, str: s}
}

// Strings returns a new array node of strings.
func Strings(strs ...string) *Node {
	ret := Array()
	for _, s := range strs {
		ret.elems = append(ret.elems, String(s))
	}
	return ret
}

// Number returns a new number node.
func Number(f float64) *Node {
	return &Node{T: NumberType, num: f}
}

// Int returns a new number node holding the provided integer.
func Int(i int) *Node {
	return Number(float64(i))
}

// Numbers returns a new array node of numbers.
func Numbers(fs ...float64) *Node {
	ret := Array()
	for _, f := range fs {
		ret.elems = append(ret.elems, Number(f))
	}
	return ret
}

// Bool returns a new boolean node.
func Bool(b bool) *Node {
	return &Node{T: BoolType, b: b}
}

func orNull(n *Node) *Node {
	if n == nil {
		return Null()
	}
	return n
}

// IsNull returns true if the receiver is nil or a null node.
func (n *Node) IsNull() bool {
	return n == nil || n.T == NullType
}

// Type returns the receiver's type; nil nodes are NullType.
func (n *Node) Type() nodeType {
	if n == nil {
		return NullType
	}
	return n.T
}

// Len returns the number of elements of an array or keys of an object, and 0
// for anything else.
func (n *Node) Len() int {
	switch n.Type() {
	case ArrayType:
		return len(n.elems)
	case ObjectType:
		return len(n.keys)
	}
	return 0
}

// Keys returns the receiver's object keys in insertion order.
func (n *Node) Keys() []string {
	if n.Type() != ObjectType {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Prop returns the value of the specified object key, or nil.
func (n *Node) Prop(key string) *Node {
	if n.Type() != ObjectType {
		return nil
	}
	return n.props[key]
}

// Elem returns the specified array element, or nil.
func (n *Node) Elem(idx int) *Node {
	if n.Type() != ArrayType || idx < 0 || idx >= len(n.elems) {
		return nil
	}
	return n.elems[idx]
}

// put sets key in an object node, preserving the key's position if it is
// already present.
func (n *Node) put(key string, v *Node) {
	if _, ok := n.props[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.props[key] = orNull(v)
}

// padTo grows an array node so that idx is addressable, filling new slots
// with fill().
func (n *Node) padTo(idx int, fill func() *Node) {
	for len(n.elems) <= idx {
		n.elems = append(n.elems, fill())
	}
}

// child returns the receiver's child at step s, creating it as a container
// suitable for the following step if it is missing or null.
func (n *Node) child(s Step, next Step) (*Node, error) {
	var existing *Node
	switch {
	case s.isIndex && n.T == ArrayType:
		if s.index < 0 {
			return nil, errors.New(errors.ErrCodePathConflict, "negative index %d", s.index)
		}
		n.padTo(s.index, Null)
		existing = n.elems[s.index]
	case !s.isIndex && n.T == ObjectType:
		existing = n.props[s.key]
	default:
		return nil, errors.New(errors.ErrCodePathConflict, "cannot address %s within a %s", s, n.T)
	}
	if !existing.IsNull() {
		return existing, nil
	}
	created := Object()
	if next.isIndex {
		created = Array()
	}
	if s.isIndex {
		n.elems[s.index] = created
	} else {
		n.put(s.key, created)
	}
	return created, nil
}

// parentOf returns the node holding the last step of path, creating missing
// intermediates.
func (n *Node) parentOf(path Path) (*Node, error) {
	if n == nil {
		return nil, errors.New(errors.ErrCodePathConflict, "cannot write into a nil node")
	}
	cur := n
	for idx := 0; idx < len(path)-1; idx++ {
		child, err := cur.child(path[idx], path[idx+1])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodePathConflict, err, "at %s", path[:idx+1])
		}
		cur = child
	}
	return cur, nil
}

// Get returns the node at the specified path, or nil if there is none.
func (n *Node) Get(path Path) *Node {
	cur := n
	for _, s := range path {
		if s.isIndex {
			cur = cur.Elem(s.index)
		} else {
			cur = cur.Prop(s.key)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Set sets a copy of v at the specified path, creating any missing
// intermediate objects or arrays.  The path must not be empty.
func (n *Node) Set(path Path, v *Node) error {
	if len(path) == 0 {
		return errors.New(errors.ErrCodePathConflict, "cannot set an empty path")
	}
	v = orNull(v.Clone())
	parent, err := n.parentOf(path)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	switch {
	case last.isIndex && parent.T == ArrayType:
		if last.index < 0 {
			return errors.New(errors.ErrCodePathConflict, "negative index %d at %s", last.index, path)
		}
		parent.padTo(last.index, Null)
		parent.elems[last.index] = v
	case !last.isIndex && parent.T == ObjectType:
		parent.put(last.key, v)
	default:
		return errors.New(errors.ErrCodePathConflict, "cannot set %s within a %s", path, parent.T)
	}
	return nil
}

// Delete removes the object key addressed by path, if present.  Deleting
// array elements is not supported.
func (n *Node) Delete(path Path) {
	if len(path) == 0 {
		return
	}
	parent := n.Get(path[:len(path)-1])
	last := path[len(path)-1]
	if last.isIndex || parent.Type() != ObjectType {
		return
	}
	if _, ok := parent.props[last.key]; !ok {
		return
	}
	delete(parent.props, last.key)
	for idx, k := range parent.keys {
		if k == last.key {
			parent.keys = append(parent.keys[:idx], parent.keys[idx+1:]...)
			break
		}
	}
}

// Append appends a copy of v to the array at path, creating the array if
// needed.
func (n *Node) Append(path Path, v *Node) error {
	v = orNull(v.Clone())
	arr, err := n.array(path)
	if err != nil {
		return err
	}
	arr.elems = append(arr.elems, v)
	return nil
}

// Grow ensures the array at path has at least size elements, filling new
// slots, and null existing slots, with empty objects.
func (n *Node) Grow(path Path, size int) error {
	arr, err := n.array(path)
	if err != nil {
		return err
	}
	arr.padTo(size-1, Object)
	for idx, elem := range arr.elems {
		if elem.IsNull() {
			arr.elems[idx] = Object()
		}
	}
	return nil
}

// Last returns the last element of the array at path.  It returns an
// ErrCodeNoElement error if there is no such array or if it is empty.
func (n *Node) Last(path Path) (*Node, error) {
	arr := n.Get(path)
	if arr.Type() != ArrayType || len(arr.elems) == 0 {
		return nil, errors.New(errors.ErrCodeNoElement, "no elements at %s", path)
	}
	return arr.elems[len(arr.elems)-1], nil
}

// array returns the array at path, creating it if it is missing or null.
func (n *Node) array(path Path) (*Node, error) {
	if len(path) == 0 {
		if n.Type() != ArrayType {
			return nil, errors.New(errors.ErrCodePathConflict, "expected an array, got %s", n.Type())
		}
		return n, nil
	}
	arr := n.Get(path)
	if arr.IsNull() {
		arr = Array()
		if err := n.Set(path, arr); err != nil {
			return nil, err
		}
	}
	if arr.T != ArrayType {
		return nil, errors.New(errors.ErrCodePathConflict, "expected an array at %s, got %s", path, arr.T)
	}
	return arr, nil
}

// Clone returns a deep copy of the receiver.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	ret := &Node{
		T:   n.T,
		str: n.str,
		num: n.num,
		b:   n.b,
	}
	switch n.T {
	case ObjectType:
		ret.props = make(map[string]*Node, len(n.props))
		ret.keys = append([]string(nil), n.keys...)
		for k, v := range n.props {
			ret.props[k] = v.Clone()
		}
	case ArrayType:
		ret.elems = make([]*Node, len(n.elems))
		for idx, elem := range n.elems {
			ret.elems[idx] = elem.Clone()
		}
	}
	return ret
}

// MarshalJSON encodes the receiver as JSON, emitting object keys in
// insertion order.  Non-finite numbers are rejected with an
// ErrCodeInvalidValue error.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Type() {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(n.b))
	case NumberType:
		b, err := json.Marshal(n.num)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidValue, err, "cannot encode number")
		}
		buf.Write(b)
	case StringType:
		b, err := json.Marshal(n.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case ArrayType:
		buf.WriteByte('[')
		for idx, elem := range n.elems {
			if idx > 0 {
				buf.WriteByte(',')
			}
			if err := elem.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for idx, k := range n.keys {
			if idx > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(b)
			buf.WriteByte(':')
			if err := n.props[k].encode(buf); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidValue, err, "at key %q", k)
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// PrettyPrint returns the receiver as indented JSON.  Only for use in tests
// and diagnostics; encoding failures are returned as "error: ..." text.
func (n *Node) PrettyPrint() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return "error: " + err.Error()
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return "error: " + err.Error()
	}
	return out.String()
}

// String returns the receiver's compact JSON encoding.
func (n *Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return "error: " + err.Error()
	}
	return string(b)
}

// Step is a single step along a Path: either an object key or an array index.
type Step struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a Step addressing an object key.
func Key(k string) Step {
	return Step{key: k}
}

// Index returns a Step addressing an array index.
func Index(i int) Step {
	return Step{index: i, isIndex: true}
}

func (s Step) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// Path addresses a node within a tree.
type Path []Step

// Keys returns a Path made only of object keys.
func Keys(ks ...string) Path {
	ret := make(Path, len(ks))
	for idx, k := range ks {
		ret[idx] = Key(k)
	}
	return ret
}

// Key returns a copy of the receiver extended by an object key.
func (p Path) Key(k string) Path {
	return append(append(Path(nil), p...), Key(k))
}

// Index returns a copy of the receiver extended by an array index.
func (p Path) Index(i int) Path {
	return append(append(Path(nil), p...), Index(i))
}

// String renders the receiver in JS accessor syntax, e.g. `yaxes[1].min`.
func (p Path) String() string {
	var sb strings.Builder
	for idx, s := range p {
		if !s.isIndex && idx > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Update is a function that updates a provided Node.  A nil Update does
// nothing.
type Update func(n *Node) error

// EmptyUpdate is an Update that does nothing.
var EmptyUpdate Update = nil

// With applies the provided Updates to the receiver in order, stopping at the
// first error.
func (n *Node) With(updates ...Update) error {
	for _, update := range updates {
		if update == nil {
			continue
		}
		if err := update(n); err != nil {
			return err
		}
	}
	return nil
}

// Property returns an Update setting the value at path.
func Property(path Path, v *Node) Update {
	return func(n *Node) error {
		return n.Set(path, v)
	}
}

// Appended returns an Update appending v to the array at path.
func Appended(path Path, v *Node) Update {
	return func(n *Node) error {
		return n.Append(path, v)
	}
}

// Chain applies the provided Updates in order.
func Chain(updates ...Update) Update {
	return func(n *Node) error {
		return n.With(updates...)
	}
}

// If applies the provided Update if the provided predicate is true.
func If(predicate bool, u Update) Update {
	if predicate {
		return u
	}
	return EmptyUpdate
}

// IfElse applies Update t if the provided predicate is true, and f
// otherwise.
func IfElse(predicate bool, t, f Update) Update {
	if predicate {
		return t
	}
	return f
}

// ExpectString expects the provided node to be a string, returning it or an
// error if it isn't.
func ExpectString(n *Node) (string, error) {
	if n.Type() != StringType {
		return "", expectErr(StringType, n)
	}
	return n.str, nil
}

// ExpectNumber expects the provided node to be a number, returning it or an
// error if it isn't.
func ExpectNumber(n *Node) (float64, error) {
	if n.Type() != NumberType {
		return 0, expectErr(NumberType, n)
	}
	return n.num, nil
}

// ExpectBool expects the provided node to be a boolean, returning it or an
// error if it isn't.
func ExpectBool(n *Node) (bool, error) {
	if n.Type() != BoolType {
		return false, expectErr(BoolType, n)
	}
	return n.b, nil
}

// ExpectArray expects the provided node to be an array, returning its
// elements or an error if it isn't.
func ExpectArray(n *Node) ([]*Node, error) {
	if n.Type() != ArrayType {
		return nil, expectErr(ArrayType, n)
	}
	return append([]*Node(nil), n.elems...), nil
}

func expectErr(want nodeType, got *Node) error {
	return errors.New(errors.ErrCodeInvalidValue, "expected value type '%s', got '%s'", want, got.Type())
}

// Parse decodes a JSON document into a new tree, preserving object key
// order.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	ret, err := decode(dec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot parse configuration")
	}
	if dec.More() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "trailing data after configuration")
	}
	return ret, nil
}

func decode(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case json.Delim:
		switch v {
		case '{':
			ret := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decode(dec)
				if err != nil {
					return nil, err
				}
				ret.put(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ret, nil
		case '[':
			ret := Array()
			for dec.More() {
				val, err := decode(dec)
				if err != nil {
					return nil, err
				}
				ret.elems = append(ret.elems, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return ret, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
