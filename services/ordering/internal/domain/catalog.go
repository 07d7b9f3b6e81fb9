package domain

// catalog — фиксированный словарь товаров по отделам.
// Позиции вне словаря отклоняются валидацией, а не игнорируются
var catalog = map[Category]map[string]bool{
	CategoryBread: {
		"white_bread": true,
		"wheat_bread": true,
		"bagels":      true,
		"waffles":     true,
		"croissants":  true,
		"baguette":    true,
	},
	CategoryDairy: {
		"milk":   true,
		"cheese": true,
		"yogurt": true,
		"butter": true,
		"cream":  true,
		"eggs":   true,
	},
	CategoryMeat: {
		"chicken": true,
		"beef":    true,
		"pork":    true,
		"turkey":  true,
		"fish":    true,
		"lamb":    true,
	},
	CategoryProduce: {
		"tomatoes": true,
		"onions":   true,
		"apples":   true,
		"oranges":  true,
		"bananas":  true,
		"lettuce":  true,
		"carrots":  true,
		"potatoes": true,
	},
	CategoryParty: {
		"soda":         true,
		"paper_plates": true,
		"napkins":      true,
		"cups":         true,
		"balloons":     true,
		"streamers":    true,
	},
}

// KnownCategory сообщает, является ли ключ одним из пяти отделов
func KnownCategory(name string) bool {
	_, ok := catalog[Category(name)]
	return ok
}

// KnownItem сообщает, входит ли товар в словарь своего отдела
func KnownItem(category Category, name string) bool {
	return catalog[category][name]
}
