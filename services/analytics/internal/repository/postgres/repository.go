package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shestoi/GoGrocery/services/analytics/internal/repository"
)

// Repository реализует EventRepository используя PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Save сохраняет событие заказа
// ON CONFLICT DO NOTHING делает запись идемпотентной по event_id
func (r *Repository) Save(ctx context.Context, event repository.OrderEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO order_events (event_id, order_id, order_type, status, items_total, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (event_id) DO NOTHING`,
		event.EventID, event.OrderID, event.OrderType, event.Status, event.ItemsTotal, event.OccurredAt)
	return err
}

// Summary возвращает агрегированную статистику одним запросом
func (r *Repository) Summary(ctx context.Context) (repository.Summary, error) {
	var s repository.Summary
	err := r.pool.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE order_type = 'GROCERY_ORDER'),
			COUNT(*) FILTER (WHERE order_type = 'RESTOCK_ORDER'),
			COUNT(*) FILTER (WHERE status = 'OK'),
			COUNT(*) FILTER (WHERE status = 'PARTIAL'),
			COUNT(*) FILTER (WHERE status = 'SERVICE_UNAVAILABLE'),
			COALESCE(SUM(items_total), 0)
		 FROM order_events`).Scan(
		&s.TotalOrders,
		&s.GroceryOrders,
		&s.RestockOrders,
		&s.OKOrders,
		&s.PartialOrders,
		&s.UnavailableOrders,
		&s.ItemsFulfilledTotal)
	if err != nil {
		return repository.Summary{}, err
	}
	return s, nil
}
