package router

// Router classifies a raw query into an intent and its parameter.
type Router interface {
	Classify(query string) Classification
}

// RuleRouter evaluates an ordered rule table; the first matching rule wins.
type RuleRouter struct {
	rules []Rule
}

var _ Router = (*RuleRouter)(nil)

// New creates a RuleRouter over the default rule table.
func New() *RuleRouter {
	return &RuleRouter{rules: Rules()}
}

// Rules returns the rule table in priority order.
func Rules() []Rule {
	return []Rule{
		{Trigger: TriggerProductsByBrand, Intent: IntentProductsByBrand, SplitToken: SplitBrand},
		{Trigger: TriggerSuppliersProvide, Intent: IntentSuppliersProvide, SplitToken: SplitProvide},
		{Trigger: TriggerProductDetails, Intent: IntentProductDetails, SplitToken: SplitProduct},
	}
}
