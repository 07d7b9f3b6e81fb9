package memory

import (
	"context"
	"sync"
)

// Repository реализует StockRepository в памяти.
// Полки заполняются при создании: каждый товар из ассортимента отдела
// получает стартовый запас. Товар вне ассортимента на полке отсутствует,
// его сборка даёт ноль. Остатки не переживают рестарт - долговременное
// хранение склада сознательно не поддерживается
type Repository struct {
	mu    sync.Mutex
	stock map[string]int32
}

// NewRepository создаёт склад со стартовым запасом каждого товара из names
func NewRepository(initialStock int32, names []string) *Repository {
	stock := make(map[string]int32, len(names))
	for _, name := range names {
		stock[name] = initialStock
	}
	return &Repository{
		stock: stock,
	}
}

// Take снимает с полки до quantity единиц товара.
// Неизвестный товар - пустая полка, снимается ноль
func (r *Repository) Take(ctx context.Context, name string, quantity int32) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	available := r.stock[name]
	taken := quantity
	if taken > available {
		taken = available
	}
	r.stock[name] = available - taken
	return taken, nil
}

// Add кладёт на полку quantity единиц товара
func (r *Repository) Add(ctx context.Context, name string, quantity int32) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newLevel := r.stock[name] + quantity
	r.stock[name] = newLevel
	return newLevel, nil
}

// Level возвращает текущий остаток товара
func (r *Repository) Level(ctx context.Context, name string) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stock[name], nil
}
