package stats

import (
	"sort"
	"strconv"
	"strings"
)

// Attribute values outside this range resolve as the nearest bound.
const (
	MinPoolCost = -40
	MaxPoolCost = 60
)

// Pool describes the dice an attribute rolls. It is never rolled here.
type Pool struct {
	Dice     []int  `json:"dice"`
	Notation string `json:"notation"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Divisor  int    `json:"divisor,omitempty"` // only the halved d4
}

// PoolEntry is one row of the cost table.
type PoolEntry struct {
	Cost int
	Pool Pool
	Rank string
}

// PoolTable maps attribute cost to dice pool. Sorted by cost, multiples of 5.
var PoolTable = []PoolEntry{
	{-40, Pool{Dice: []int{4}, Notation: "d4÷2", Min: 1, Max: 2, Divisor: 2}, "Human"},
	{-35, Pool{Dice: []int{4}, Notation: "d4", Min: 1, Max: 4}, "Human"},
	{-30, Pool{Dice: []int{6}, Notation: "d6", Min: 1, Max: 6}, "Human"},
	{-25, Pool{Dice: []int{8}, Notation: "d8", Min: 1, Max: 8}, "Human"},
	{-20, Pool{Dice: []int{10}, Notation: "d10", Min: 1, Max: 10}, "Human"},
	{-15, Pool{Dice: []int{12}, Notation: "d12", Min: 1, Max: 12}, "Human"},
	{-10, Pool{Dice: []int{12, 4}, Notation: "d12 + d4", Min: 2, Max: 16}, "Chaos"},
	{-5, Pool{Dice: []int{12, 6}, Notation: "d12 + d6", Min: 2, Max: 18}, "Chaos"},
	{0, Pool{Dice: []int{12, 8}, Notation: "d12 + d8", Min: 2, Max: 20}, "Amber"},
	{5, Pool{Dice: []int{12, 10}, Notation: "d12 + d10", Min: 2, Max: 22}, "Amber+"},
	{10, Pool{Dice: []int{12, 12}, Notation: "2d12", Min: 2, Max: 24}, "Amber++"},
	{15, Pool{Dice: []int{12, 12, 4}, Notation: "2d12 + d4", Min: 3, Max: 28}, "Amber+++"},
	{20, Pool{Dice: []int{12, 12, 6}, Notation: "2d12 + d6", Min: 3, Max: 30}, "Ranked"},
	{25, Pool{Dice: []int{12, 12, 8}, Notation: "2d12 + d8", Min: 3, Max: 32}, "Ranked+"},
	{30, Pool{Dice: []int{12, 12, 10}, Notation: "2d12 + d10", Min: 3, Max: 34}, "Ranked++"},
	{35, Pool{Dice: []int{12, 12, 12}, Notation: "3d12", Min: 3, Max: 36}, "Ranked+++"},
	{40, Pool{Dice: []int{12, 12, 12, 4}, Notation: "3d12 + d4", Min: 4, Max: 40}, "Elder"},
	{45, Pool{Dice: []int{12, 12, 12, 6}, Notation: "3d12 + d6", Min: 4, Max: 42}, "Elder+"},
	{50, Pool{Dice: []int{12, 12, 12, 8}, Notation: "3d12 + d8", Min: 4, Max: 44}, "Elder++"},
	{55, Pool{Dice: []int{12, 12, 12, 10}, Notation: "3d12 + d10", Min: 4, Max: 46}, "Elder+++"},
	{60, Pool{Dice: []int{12, 12, 12, 12}, Notation: "4d12", Min: 4, Max: 48}, "Lord"},
}

// Resolve returns the dice pool for an attribute value.
// Values are clamped to [MinPoolCost, MaxPoolCost]; values between table
// entries round down to the weaker pool.
func Resolve(value int) Pool {
	return lookup(value).Pool.clone()
}

// Rank returns the Amber ranking name for an attribute value.
func Rank(value int) string {
	return lookup(value).Rank
}

func lookup(value int) PoolEntry {
	v := clamp(value, MinPoolCost, MaxPoolCost)

	for _, e := range PoolTable {
		if e.Cost == v {
			return e
		}
	}

	for i := 0; i < len(PoolTable)-1; i++ {
		if PoolTable[i].Cost <= v && PoolTable[i+1].Cost > v {
			return PoolTable[i]
		}
	}

	return PoolTable[len(PoolTable)-1]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Strength returns the sum of the pool's die sizes.
func (p Pool) Strength() int {
	total := 0
	for _, d := range p.Dice {
		total += d
	}
	return total
}

// Count returns the number of dice in the pool.
func (p Pool) Count() int {
	return len(p.Dice)
}

// Grouped returns the pool with like dice grouped, largest first, e.g. "2d12 + d6".
func (p Pool) Grouped() string {
	if p.Divisor > 0 {
		return p.Notation
	}

	counts := make(map[int]int)
	for _, d := range p.Dice {
		counts[d]++
	}
	sizes := make([]int, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		part := "d" + strconv.Itoa(size)
		if counts[size] > 1 {
			part = strconv.Itoa(counts[size]) + part
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " + ")
}

func (p Pool) clone() Pool {
	c := p
	c.Dice = append([]int(nil), p.Dice...)
	return c
}
