package repository

import "context"

// StockRepository определяет интерфейс склада одного отдела
type StockRepository interface {
	// Take снимает с полки до quantity единиц товара.
	// Возвращает фактически снятое количество (может быть меньше запрошенного)
	Take(ctx context.Context, name string, quantity int32) (int32, error)
	// Add кладёт на полку quantity единиц товара, возвращает новый остаток
	Add(ctx context.Context, name string, quantity int32) (int32, error)
	// Level возвращает текущий остаток товара
	Level(ctx context.Context, name string) (int32, error)
}
