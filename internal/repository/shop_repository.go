package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/marketplace-service/internal/domain"
)

// ShopRepository defines persistence access for shops and their
// embedded product catalogs.
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	List(ctx context.Context) ([]domain.Shop, error)
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	AddProduct(ctx context.Context, shopID string, product *domain.Product) error
	RemoveProduct(ctx context.Context, shopID, productID string) error
	ListProducts(ctx context.Context, shopID string) ([]domain.Product, error)
}

type shopRepository struct {
	pool *pgxpool.Pool
}

// NewShopRepository returns a Postgres-backed implementation.
func NewShopRepository(pool *pgxpool.Pool) ShopRepository {
	return &shopRepository{pool: pool}
}

func (r *shopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	if shop.ID == "" {
		shop.ID = NewShopID()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const shopQuery = `
        INSERT INTO shops (id, name, phone, image_path)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`
	if err := tx.QueryRow(ctx, shopQuery,
		shop.ID,
		shop.Name,
		shop.Phone,
		shop.ImagePath,
	).Scan(&shop.CreatedAt, &shop.UpdatedAt); err != nil {
		return err
	}

	const productQuery = `
        INSERT INTO products (id, shop_id, name, price, image_path, quantity)
        VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range shop.Products {
		product := &shop.Products[i]
		if product.ID == "" {
			product.ID = NewProductID()
		}
		if _, err := tx.Exec(ctx, productQuery,
			product.ID,
			shop.ID,
			product.Name,
			product.Price,
			product.ImagePath,
			product.Quantity,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *shopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	const query = `
        SELECT id, name, phone, image_path, created_at, updated_at
        FROM shops ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := []domain.Shop{}
	index := map[string]int{}
	for rows.Next() {
		var shop domain.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Phone, &shop.ImagePath, &shop.CreatedAt, &shop.UpdatedAt); err != nil {
			return nil, err
		}
		shop.Products = []domain.Product{}
		index[shop.ID] = len(shops)
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const productQuery = `
        SELECT id, shop_id, name, price, image_path, quantity
        FROM products ORDER BY shop_id`
	productRows, err := r.pool.Query(ctx, productQuery)
	if err != nil {
		return nil, err
	}
	defer productRows.Close()

	for productRows.Next() {
		var product domain.Product
		var shopID string
		if err := productRows.Scan(&product.ID, &shopID, &product.Name, &product.Price, &product.ImagePath, &product.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[shopID]; ok {
			shops[i].Products = append(shops[i].Products, product)
		}
	}
	return shops, productRows.Err()
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	const query = `
        SELECT id, name, phone, image_path, created_at, updated_at
        FROM shops WHERE id=$1`

	var shop domain.Shop
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shop.ID,
		&shop.Name,
		&shop.Phone,
		&shop.ImagePath,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	); err != nil {
		return nil, err
	}

	products, err := r.ListProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	shop.Products = products
	return &shop, nil
}

func (r *shopRepository) AddProduct(ctx context.Context, shopID string, product *domain.Product) error {
	if product.ID == "" {
		product.ID = NewProductID()
	}

	const query = `
        INSERT INTO products (id, shop_id, name, price, image_path, quantity)
        VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		shopID,
		product.Name,
		product.Price,
		product.ImagePath,
		product.Quantity,
	)
	return err
}

func (r *shopRepository) RemoveProduct(ctx context.Context, shopID, productID string) error {
	const query = `DELETE FROM products WHERE shop_id=$1 AND id=$2`
	cmd, err := r.pool.Exec(ctx, query, shopID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shopRepository) ListProducts(ctx context.Context, shopID string) ([]domain.Product, error) {
	const query = `
        SELECT id, name, price, image_path, quantity
        FROM products WHERE shop_id=$1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.ImagePath, &product.Quantity); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
