// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_level_order.go - LevelOrder(slots) constructor.
//
// Contract:
//   - slots describe the tree level by level, left to right; Nil marks an
//     absent child. Only present nodes own child slots, so absent subtrees
//     take no room further down.
//   - An empty slice, or a leading Nil, yields an empty tree.
//   - Trailing Nil slots are tolerated; a present value with no parent slot
//     left returns ErrTrailingSlots.
//   - Node values come from the slots; cfg.valueFn is not consulted.
//
// Complexity:
//   - Time: O(len(slots)), Space: O(width).

package builder

import "github.com/katalvlaran/bintree/core"

const methodLevelOrder = "LevelOrder"

// Slot is one entry of a level-order description: a value or Nil.
type Slot struct {
	value   int
	present bool
}

// Nil is the absent-child slot.
var Nil = Slot{}

// V returns a present slot holding v.
func V(v int) Slot {
	return Slot{value: v, present: true}
}

// Values converts plain values into present slots.
func Values(vs ...int) []Slot {
	out := make([]Slot, len(vs))
	for i, v := range vs {
		out[i] = V(v)
	}

	return out
}

// LevelOrder returns a Constructor that builds the tree described by slots.
func LevelOrder(slots []Slot) Constructor {
	return func(builderConfig) (*core.Node, error) {
		if len(slots) == 0 || !slots[0].present {
			for i := 1; i < len(slots); i++ {
				if slots[i].present {
					return nil, builderErrorf(methodLevelOrder, ErrTrailingSlots, "value at slot %d under an absent root", i)
				}
			}
			return nil, nil
		}

		root := &core.Node{Value: slots[0].value}
		queue := []*core.Node{root}
		var (
			parent *core.Node
			child  *core.Node
			i      = 1
		)
		for i < len(slots) {
			if len(queue) == 0 {
				for ; i < len(slots); i++ {
					if slots[i].present {
						return nil, builderErrorf(methodLevelOrder, ErrTrailingSlots, "value at slot %d has no parent", i)
					}
				}
				break
			}
			parent = queue[0]
			queue = queue[1:]
			for _, link := range [2]**core.Node{&parent.Left, &parent.Right} {
				if i >= len(slots) {
					break
				}
				if slots[i].present {
					child = &core.Node{Value: slots[i].value}
					*link = child
					queue = append(queue, child)
				}
				i++
			}
		}

		return root, nil
	}
}
