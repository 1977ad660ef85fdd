package classify

import "github.com/Goutham-1610/finance-advisor/internal/model"

// categoryKeywords maps each category to merchant substrings that suggest it.
// Matching is case-insensitive substring containment on the merchant name.
var categoryKeywords = map[model.Category][]string{
	model.CategoryGroceries: {
		"grocery", "supermarket", "walmart", "target", "whole foods",
		"trader joe", "safeway", "kroger", "albertsons", "market",
	},
	model.CategoryDining: {
		"restaurant", "cafe", "coffee", "starbucks", "mcdonald",
		"chipotle", "pizza", "subway", "taco bell", "burger",
		"kitchen", "grill", "diner", "bistro",
	},
	model.CategoryTransport: {
		"uber", "lyft", "gas", "fuel", "parking", "transit",
		"metro", "taxi", "shell", "chevron", "exxon", "bp",
	},
	model.CategoryUtilities: {
		"electric", "water", "internet", "phone", "gas bill",
		"utility", "comcast", "verizon", "att", "sprint",
	},
	model.CategoryRent: {
		"rent", "mortgage", "lease", "property", "landlord",
	},
	model.CategoryEntertainment: {
		"netflix", "spotify", "movie", "theater", "concert",
		"game", "steam", "xbox", "playstation", "hulu",
		"disney", "amazon prime", "apple music",
	},
	model.CategoryShopping: {
		"amazon", "ebay", "mall", "store", "shop", "clothing",
		"fashion", "retail", "bestbuy", "macy",
	},
	model.CategoryHealthcare: {
		"pharmacy", "doctor", "hospital", "medical", "cvs",
		"walgreens", "health", "clinic", "dental",
	},
	model.CategoryEducation: {
		"school", "university", "college", "tuition", "course",
		"textbook", "udemy", "coursera",
	},
	model.CategoryInsurance: {
		"insurance", "policy", "premium", "geico", "state farm",
	},
	model.CategorySalary: {
		"salary", "payroll", "paycheck", "wages", "income",
		"direct deposit",
	},
	model.CategoryFreelance: {
		"freelance", "contract", "consulting", "commission",
		"upwork", "fiverr",
	},
}

// keywordCategories lists the categories with keywords in enumeration order.
// Keyword-score ties resolve to the earliest category in this list.
var keywordCategories = []model.Category{
	model.CategoryGroceries,
	model.CategoryDining,
	model.CategoryTransport,
	model.CategoryUtilities,
	model.CategoryRent,
	model.CategoryEntertainment,
	model.CategoryShopping,
	model.CategoryHealthcare,
	model.CategoryEducation,
	model.CategoryInsurance,
	model.CategorySalary,
	model.CategoryFreelance,
}
