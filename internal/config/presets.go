package config

import "sort"

// Preset is a named dataset for one algorithm card.
type Preset struct {
	Data   []int
	Target int
}

var Presets = map[string]map[string]*Preset{
	"mergesort": {
		"classic":  {Data: []int{64, 34, 25, 12, 22, 11, 90}},
		"reversed": {Data: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		"sorted":   {Data: []int{1, 2, 3, 4, 5, 6, 7}},
		"ties":     {Data: []int{5, 1, 5, 1, 3, 3}},
	},
	"kadane": {
		"classic":  {Data: []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}},
		"negative": {Data: []int{-8, -3, -6, -2, -5, -4}},
		"positive": {Data: []int{2, 3, 1, 4}},
	},
	"binarysearch": {
		"classic": {Data: []int{2, 3, 4, 10, 40, 50, 60, 70}, Target: 10},
		"deep":    {Data: []int{2, 3, 4, 10, 40, 50, 60, 70}, Target: 50},
		"missing": {Data: []int{2, 3, 4, 10, 40, 50, 60, 70}, Target: 11},
		"edge":    {Data: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, Target: 19},
	},
}

func GetPreset(algo, name string) *Preset {
	algoPresets, ok := Presets[algo]
	if !ok {
		return nil
	}
	p, ok := algoPresets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(algo string) []string {
	algoPresets, ok := Presets[algo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
