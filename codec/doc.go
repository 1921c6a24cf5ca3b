// Package codec serializes avl trees to JSON or YAML and back.
//
// A tree travels as an Envelope:
//
//	version: 1
//	layout: inorder
//	imbalance_factor: 0
//	elements: [1, 4, 5, 7, 8, 9]
//
// The ordering is code, not data: Decode takes the *order.Ordering to rebuild
// under, and the elements must already be sorted by it.
//
// Layouts:
//
//   - InOrder (default): ascending key order, as produced by Tree.Export.
//     Decoding bulk-builds a minimum-height tree in O(n).
//   - PreOrder: root first, as produced by Tree.PreOrder. Decoding restores the
//     exact shape, so Print shows the same drawing on both sides.
//
// Elements are encoded with encoding/json or gopkg.in/yaml.v3 and follow their
// struct tag rules (json:"..." and yaml:"...").
package codec
