// Package summary holds the pure reducers that turn raw money collections
// into the summaries the dashboard displays. Nothing here performs I/O or
// reads the wall clock; "now" is always an argument.
package summary

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// Option tunes Summarize.
type Option func(*options)

type options struct {
	baseline *float64
	capacity *float64
	label    func(key string) string
}

// WithBaseline attaches a comparison against the previous-period total.
func WithBaseline(previous float64) Option {
	return func(o *options) { o.baseline = &previous }
}

// WithCapacity attaches a utilization of the total against capacity.
func WithCapacity(capacity float64) Option {
	return func(o *options) { o.capacity = &capacity }
}

// WithLabels sets the display label of each breakdown key.
func WithLabels(fn func(key string) string) Option {
	return func(o *options) { o.label = fn }
}

type bucket struct {
	total decimal.Decimal
	count int
}

// Summarize is the contract every domain reducer builds on: an exact total,
// a count, an optional categorical breakdown and optional comparison and
// utilization. A nil key func yields no breakdown.
func Summarize[T any](records []T, amount func(T) float64, key func(T) string, opts ...Option) domain.Summary {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	total := decimal.Zero
	var groups map[string]*bucket
	if key != nil {
		groups = make(map[string]*bucket)
	}

	for _, r := range records {
		a := dec(amount(r))
		total = total.Add(a)
		if key == nil {
			continue
		}
		k := key(r)
		b, ok := groups[k]
		if !ok {
			b = &bucket{total: decimal.Zero}
			groups[k] = b
		}
		b.total = b.total.Add(a)
		b.count++
	}

	s := domain.Summary{
		Total: total.InexactFloat64(),
		Count: len(records),
	}
	if key != nil {
		s.ByCategory = breakdown(groups, total, o.label)
	}
	if o.baseline != nil {
		c := CompareToBaseline(s.Total, *o.baseline)
		s.Comparison = &c
	}
	if o.capacity != nil {
		u := NewUtilization(s.Total, *o.capacity)
		s.Utilization = &u
	}
	return s
}

// Sum adds amounts exactly.
func Sum[T any](records []T, amount func(T) float64) float64 {
	return sumDec(records, amount).InexactFloat64()
}

func sumDec[T any](records []T, amount func(T) float64) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(dec(amount(r)))
	}
	return total
}

func breakdown(groups map[string]*bucket, total decimal.Decimal, label func(string) string) domain.Breakdown {
	out := make(domain.Breakdown, 0, len(groups))
	for k, b := range groups {
		sh := domain.Share{
			Key:        k,
			Total:      b.total.InexactFloat64(),
			Count:      b.count,
			Percentage: percentOf(b.total, total),
		}
		if label != nil {
			sh.Label = label(k)
		}
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// dec converts a float amount. Non-finite values count as zero.
func dec(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// percentOf returns part/whole×100, or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// optionalPercent is percentOf with nil for an undefined ratio.
func optionalPercent(part, whole decimal.Decimal) *float64 {
	if whole.IsZero() {
		return nil
	}
	p := part.Div(whole).Mul(hundred).InexactFloat64()
	return &p
}

var hundred = decimal.NewFromInt(100)

// orDefault maps an empty key to a fallback bucket.
func orDefault(key, fallback string) string {
	if key == "" {
		return fallback
	}
	return key
}

// Uncategorized is the breakdown key of records without a category.
const Uncategorized = "Outros"
