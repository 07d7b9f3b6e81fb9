package service

// aisleItems — ассортимент каждого отдела.
// Те же словари использует валидатор в ordering; отдел держит свою копию,
// чтобы заполнить полки на старте без обращений к другим сервисам
var aisleItems = map[string][]string{
	"bread":   {"white_bread", "wheat_bread", "bagels", "waffles", "croissants", "baguette"},
	"dairy":   {"milk", "cheese", "yogurt", "butter", "cream", "eggs"},
	"meat":    {"chicken", "beef", "pork", "turkey", "fish", "lamb"},
	"produce": {"tomatoes", "onions", "apples", "oranges", "bananas", "lettuce", "carrots", "potatoes"},
	"party":   {"soda", "paper_plates", "napkins", "cups", "balloons", "streamers"},
}

// AisleItems возвращает ассортимент отдела aisle.
// Для неизвестного отдела возвращает nil - конфигурация проверяет имя раньше
func AisleItems(aisle string) []string {
	return aisleItems[aisle]
}
