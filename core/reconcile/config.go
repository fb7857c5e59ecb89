package reconcile

import (
	"fmt"
	"strings"

	"shop-audit/core/amount"
)

// LookupMode decides what happens when an item matches no stock record.
type LookupMode string

const (
	// LookupTolerant substitutes NOT_AVAILABLE and zero amounts and keeps going.
	LookupTolerant LookupMode = "tolerant"
	// LookupStrict aborts the run with a LookupError.
	LookupStrict LookupMode = "strict"
)

// OrderGrouping decides how order lines are folded into orders.
type OrderGrouping string

const (
	// GroupAll folds every line sharing an order number, wherever it appears.
	GroupAll OrderGrouping = "group_all"
	// GroupAdjacent folds only consecutive lines sharing an order number.
	// Interleaved orders produce one row per run of lines.
	GroupAdjacent OrderGrouping = "adjacent"
)

// MergeKey decides how register and e-commerce sales are matched in the ledger.
type MergeKey string

const (
	// MergeByName matches on the trimmed item name only.
	MergeByName MergeKey = "name"
	// MergeComposite matches on SKU when one is known, else on the trimmed name.
	// Register sales learn their SKU from the stock catalog by name.
	MergeComposite MergeKey = "composite"
)

// Config holds the engine settings as loaded from the environment.
type Config struct {
	// ToleranceMode is "absolute" or "relative".
	ToleranceMode string `mapstructure:"tolerance_mode" default:"absolute"`
	// AbsoluteTolerance is the maximum absolute difference treated as equal.
	AbsoluteTolerance string `mapstructure:"absolute_tolerance" default:"0.001"`
	// RelativeTolerance is the maximum relative difference treated as equal.
	RelativeTolerance string `mapstructure:"relative_tolerance" default:"0.001"`
	// LookupMode is "tolerant" or "strict".
	LookupMode string `mapstructure:"lookup_mode" default:"tolerant"`
	// OrderGrouping is "group_all" or "adjacent".
	OrderGrouping string `mapstructure:"order_grouping" default:"group_all"`
	// IncludeShipping adds the shipping fee to the expected order total.
	IncludeShipping bool `mapstructure:"include_shipping" default:"true"`
	// MergeKey is "name" or "composite".
	MergeKey string `mapstructure:"merge_key" default:"name"`
}

// Options is the validated form of Config consumed by the Engine.
type Options struct {
	Tolerance       amount.Tolerance
	LookupMode      LookupMode
	OrderGrouping   OrderGrouping
	IncludeShipping bool
	MergeKey        MergeKey
}

// DefaultOptions returns the settings matching the legacy reports,
// except that orders are grouped by number regardless of line order.
func DefaultOptions() Options {
	return Options{
		Tolerance:       amount.DefaultTolerance(),
		LookupMode:      LookupTolerant,
		OrderGrouping:   GroupAll,
		IncludeShipping: true,
		MergeKey:        MergeByName,
	}
}

// Options validates the configuration and converts it to engine options.
func (c Config) Options() (Options, error) {
	opts := DefaultOptions()
	opts.IncludeShipping = c.IncludeShipping

	mode, err := amount.ParseMode(c.ToleranceMode)
	if err != nil {
		return Options{}, err
	}
	opts.Tolerance.Mode = mode

	if strings.TrimSpace(c.AbsoluteTolerance) != "" {
		abs, err := amount.Parse(c.AbsoluteTolerance)
		if err != nil {
			return Options{}, fmt.Errorf("absolute_tolerance: %w", err)
		}
		opts.Tolerance.Absolute = abs
	}
	if strings.TrimSpace(c.RelativeTolerance) != "" {
		rel, err := amount.Parse(c.RelativeTolerance)
		if err != nil {
			return Options{}, fmt.Errorf("relative_tolerance: %w", err)
		}
		opts.Tolerance.Relative = rel
	}
	if opts.Tolerance.Absolute.IsNegative() || opts.Tolerance.Relative.IsNegative() {
		return Options{}, fmt.Errorf("tolerances must not be negative")
	}

	switch LookupMode(strings.ToLower(c.LookupMode)) {
	case LookupTolerant, "":
		opts.LookupMode = LookupTolerant
	case LookupStrict:
		opts.LookupMode = LookupStrict
	default:
		return Options{}, fmt.Errorf("unknown lookup mode %q", c.LookupMode)
	}

	switch OrderGrouping(strings.ToLower(c.OrderGrouping)) {
	case GroupAll, "":
		opts.OrderGrouping = GroupAll
	case GroupAdjacent:
		opts.OrderGrouping = GroupAdjacent
	default:
		return Options{}, fmt.Errorf("unknown order grouping %q", c.OrderGrouping)
	}

	switch MergeKey(strings.ToLower(c.MergeKey)) {
	case MergeByName, "":
		opts.MergeKey = MergeByName
	case MergeComposite:
		opts.MergeKey = MergeComposite
	default:
		return Options{}, fmt.Errorf("unknown merge key %q", c.MergeKey)
	}

	return opts, nil
}
