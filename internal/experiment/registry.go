package experiment

import (
	"fmt"

	"github.com/san-kum/algodyssey/internal/trace"
)

// Tracer runs one algorithm over data and records its trace. target is only
// meaningful for searches.
type Tracer func(data trace.Sequence, target int) (trace.Trace, trace.Result, error)

// Card describes one algorithm as the UI presents it.
type Card struct {
	Key         string
	Name        string
	Description string
	Complexity  string
	Pseudocode  string
	Data        trace.Sequence
	Target      int
	Searches    bool
}

// HoverHighlight is what the card lights up while focused and idle.
func (c Card) HoverHighlight() []int {
	switch c.Key {
	case "binarysearch":
		for i, v := range c.Data {
			if v == c.Target {
				return []int{i}
			}
		}
		return nil
	case "kadane":
		_, res, err := trace.Kadane(c.Data)
		if err != nil {
			return nil
		}
		out := make([]int, 0, res.End-res.Start+1)
		for i := res.Start; i <= res.End; i++ {
			out = append(out, i)
		}
		return out
	default:
		if len(c.Data) < 2 {
			return nil
		}
		return []int{0, 1}
	}
}

type Registry struct {
	cards   map[string]Card
	tracers map[string]Tracer
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{
		cards:   make(map[string]Card),
		tracers: make(map[string]Tracer),
	}

	r.register(Card{
		Key:         "mergesort",
		Name:        "Merge Sort",
		Description: "A divide-and-conquer algorithm that recursively splits an array into halves, sorts them, and merges them back together.",
		Complexity:  "O(n log n)",
		Pseudocode: `mergeSort(arr):
  if arr.length <= 1:
    return arr
  mid = arr.length / 2
  left = mergeSort(arr[0:mid])
  right = mergeSort(arr[mid:])
  return merge(left, right)`,
		Data: trace.Sequence{64, 34, 25, 12, 22, 11, 90},
	}, func(data trace.Sequence, _ int) (trace.Trace, trace.Result, error) {
		tr, res := trace.MergeSort(data)
		return tr, res, nil
	})

	r.register(Card{
		Key:         "kadane",
		Name:        "Kadane's Algorithm",
		Description: "Finds the maximum sum subarray by tracking the maximum sum ending at each position, ideal for handling negative numbers.",
		Complexity:  "O(n)",
		Pseudocode: `kadane(arr):
  maxSoFar = arr[0]
  maxEndingHere = arr[0]
  for i from 1 to arr.length-1:
    maxEndingHere = max(arr[i],
      maxEndingHere + arr[i])
    maxSoFar = max(maxSoFar,
      maxEndingHere)
  return maxSoFar`,
		Data: trace.Sequence{-2, 1, -3, 4, -1, 2, 1, -5, 4},
	}, func(data trace.Sequence, _ int) (trace.Trace, trace.Result, error) {
		return trace.Kadane(data)
	})

	r.register(Card{
		Key:         "binarysearch",
		Name:        "Binary Search",
		Description: "Efficiently locates a target in a sorted array by halving the search space with each step.",
		Complexity:  "O(log n)",
		Pseudocode: `binarySearch(arr, target):
  left = 0
  right = arr.length - 1
  while left <= right:
    mid = (left + right) / 2
    if arr[mid] == target:
      return mid
    else if arr[mid] < target:
      left = mid + 1
    else:
      right = mid - 1
  return -1`,
		Data:     trace.Sequence{2, 3, 4, 10, 40, 50, 60, 70},
		Target:   10,
		Searches: true,
	}, func(data trace.Sequence, target int) (trace.Trace, trace.Result, error) {
		tr, res := trace.BinarySearch(data, target)
		return tr, res, nil
	})

	return r
}

func (r *Registry) register(c Card, t Tracer) {
	r.cards[c.Key] = c
	r.tracers[c.Key] = t
	r.order = append(r.order, c.Key)
}

// GetCard returns a copy of the card registered under key.
func (r *Registry) GetCard(key string) (Card, error) {
	c, ok := r.cards[key]
	if !ok {
		return Card{}, fmt.Errorf("unknown algorithm: %s", key)
	}
	c.Data = c.Data.Clone()
	return c, nil
}

func (r *Registry) GetTracer(key string) (Tracer, error) {
	t, ok := r.tracers[key]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", key)
	}
	return t, nil
}

// Cards returns every card in display order.
func (r *Registry) Cards() []Card {
	out := make([]Card, 0, len(r.order))
	for _, key := range r.order {
		c, _ := r.GetCard(key)
		out = append(out, c)
	}
	return out
}

func (r *Registry) ListAlgorithms() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
