package tokenizer

import (
	"bufio"
	"io"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pkg/errors"
)

// Count is one entry of a frequency table.
type Count struct {
	Symbol string
	Freq   int
}

// Counter accumulates symbol frequencies, remembering the order in which
// symbols were first seen.
type Counter struct {
	counts *linkedhashmap.Map
	total  int
}

func NewCounter() *Counter {
	return &Counter{counts: linkedhashmap.New()}
}

func (c *Counter) Add(symbols ...string) {
	for _, sym := range symbols {
		c.total++
		if v, ok := c.counts.Get(sym); ok {
			c.counts.Put(sym, v.(int)+1)
			continue
		}
		c.counts.Put(sym, 1)
	}
}

// Len is the number of distinct symbols.
func (c *Counter) Len() int {
	return c.counts.Size()
}

// Total is the number of symbols added.
func (c *Counter) Total() int {
	return c.total
}

func (c *Counter) Freq(sym string) int {
	if v, ok := c.counts.Get(sym); ok {
		return v.(int)
	}
	return 0
}

// MostCommon returns up to n entries by descending frequency, equal
// frequencies keep first-seen order. n <= 0 returns every entry.
func (c *Counter) MostCommon(n int) []Count {
	ret := make([]Count, 0, c.counts.Size())
	it := c.counts.Iterator()
	for it.Next() {
		ret = append(ret, Count{Symbol: it.Key().(string), Freq: it.Value().(int)})
	}
	sortCounts(ret)
	if n > 0 && n < len(ret) {
		ret = ret[:n]
	}
	return ret
}

// readLines calls fn for every line of r, newline included. Stops at the
// first error returned by fn.
func readLines(r io.Reader, fn func(n int, line string) error) error {
	rd := bufio.NewReader(r)
	var n int
	for {
		str, err := rd.ReadString('\n')
		if len(str) > 0 {
			if err := fn(n, str); err != nil {
				return err
			}
			n++
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "read line %d", n)
		}
	}
}
