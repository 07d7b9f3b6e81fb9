package service

// prices — фиксированный прайс-лист магазина, цена за единицу товара
var prices = map[string]float64{
	// bread
	"white_bread": 3.99,
	"wheat_bread": 5.99,
	"bagels":      4.99,
	"waffles":     4.99,
	"croissants":  3.00,
	"baguette":    3.00,
	// dairy
	"milk":   3.00,
	"cheese": 4.99,
	"yogurt": 3.99,
	"butter": 2.00,
	"cream":  2.99,
	"eggs":   3.99,
	// meat
	"chicken": 10.00,
	"beef":    11.99,
	"pork":    6.99,
	"turkey":  8.00,
	"fish":    10.99,
	"lamb":    11.99,
	// produce
	"tomatoes": 2.99,
	"onions":   1.49,
	"apples":   1.99,
	"oranges":  2.49,
	"bananas":  0.99,
	"lettuce":  1.99,
	"carrots":  1.49,
	"potatoes": 2.99,
	// party
	"soda":         1.99,
	"paper_plates": 3.99,
	"napkins":      2.49,
	"cups":         2.99,
	"balloons":     4.99,
	"streamers":    3.49,
}
