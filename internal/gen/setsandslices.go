//    FeedTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"golang.org/x/exp/maps"
	"slices"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

func SetSubtraction[T comparable](aa []T, bb []T) []T {
	// 	aa := []string{"a", "b", "c", "d", "g", "h"}
	//	bb := []string{"a", "b", "e", "f", "g"}
	//	dd := SetSubtraction(aa, bb)
	//  [c d h]

	drop := ToSet(bb)
	aa = slices.Clone(aa)
	aa = slices.DeleteFunc(aa, func(c T) bool {
		_, ok := drop[c]
		return ok
	})

	return aa
}

// SortedKeys - the keys of a map[string]T in lexical order
func SortedKeys[T any](mp map[string]T) []string {
	kk := maps.Keys(mp)
	slices.Sort(kk)
	return kk
}
