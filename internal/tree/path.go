package tree

import (
	"strconv"
)

// GetPath walks root along path and returns the value found there.
// Objects are traversed by key and arrays by decimal index.
func GetPath(root any, path []string) (any, bool) {
	cur := root

	for _, seg := range path {
		switch c := cur.(type) {
		case *Object:
			next, ok := c.Get(seg)
			if !ok {
				return nil, false
			}

			cur = next
		case []any:
			idx, ok := arrayIndex(seg, len(c)-1)
			if !ok {
				return nil, false
			}

			cur = c[idx]
		default:
			return nil, false
		}
	}

	return cur, true
}

// SetPath stores v at path inside root, creating intermediate objects.
// An intermediate that cannot hold the next segment is replaced by a fresh
// object. An array intermediate is descended into when the segment is an index
// no greater than its length; an index equal to the length appends.
// An empty path leaves root untouched.
func SetPath(root *Object, path []string, v any) {
	if len(path) == 0 {
		return
	}

	assign(root, path, v)
}

func assign(node any, path []string, v any) any {
	if len(path) == 0 {
		return v
	}

	head, rest := path[0], path[1:]

	if arr, ok := node.([]any); ok {
		if idx, ok := arrayIndex(head, len(arr)); ok {
			if idx == len(arr) {
				arr = append(arr, nil)
			}

			arr[idx] = assign(arr[idx], rest, v)

			return arr
		}
	}

	obj, ok := node.(*Object)
	if !ok {
		obj = New()
	}

	cur, _ := obj.Get(head)
	obj.Set(head, assign(cur, rest, v))

	return obj
}

// arrayIndex parses seg as a canonical decimal index in [0, max].
func arrayIndex(seg string, max int) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}

	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(seg)
	if err != nil || n < 0 || n > max {
		return 0, false
	}

	return n, true
}
