package classify

import (
	"strings"

	"github.com/Goutham-1610/finance-advisor/internal/model"
)

// RuleConfidence is the fixed confidence assigned to rule-table matches.
const RuleConfidence = 0.95

// MerchantRule maps a merchant substring to a fixed category. Rules take
// priority over both merchant history and keyword scoring.
type MerchantRule struct {
	Keyword  string
	Category model.Category
}

// DefaultRules is the built-in merchant rule table.
var DefaultRules = []MerchantRule{
	{Keyword: "starbucks", Category: model.CategoryDining},
	{Keyword: "uber", Category: model.CategoryTransport},
	{Keyword: "ola", Category: model.CategoryTransport},
	{Keyword: "zomato", Category: model.CategoryDining},
	{Keyword: "swiggy", Category: model.CategoryDining},
	{Keyword: "amazon", Category: model.CategoryShopping},
	{Keyword: "flipkart", Category: model.CategoryShopping},
	{Keyword: "netflix", Category: model.CategoryEntertainment},
	{Keyword: "rent", Category: model.CategoryRent},
	{Keyword: "salary", Category: model.CategorySalary},
	{Keyword: "bonus", Category: model.CategorySalary},
}

// RuleTable evaluates merchant rules in order.
type RuleTable struct {
	rules []MerchantRule
}

// NewRuleTable creates a rule table. Passing nil uses DefaultRules.
func NewRuleTable(rules []MerchantRule) *RuleTable {
	if rules == nil {
		rules = DefaultRules
	}
	return &RuleTable{rules: rules}
}

// Match returns the category of the first rule whose keyword occurs in the
// lower-cased merchant name, or false when no rule matches.
func (rt *RuleTable) Match(merchant string) (model.Category, bool) {
	lowered := strings.ToLower(merchant)
	for _, rule := range rt.rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Category, true
		}
	}
	return "", false
}
