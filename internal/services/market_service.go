package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agamariel/gomarket/internal/models"
	"github.com/agamariel/gomarket/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidPrice  = errors.New("price must not be negative")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrNotBuyer      = errors.New("only buyers can make purchases")
	ErrNotSeller     = errors.New("product owner must be a seller")
)

// PurchaseReceipt содержит итог успешной покупки: новые балансы сторон.
type PurchaseReceipt struct {
	Product       *models.Product
	BuyerBalance  decimal.Decimal
	SellerBalance decimal.Decimal
}

// MarketService определяет операции маркетплейса: каталог и движение средств.
type MarketService interface {
	AddProduct(ctx context.Context, seller *models.User, name string, price decimal.Decimal, description string) (*models.Product, error)
	Products(ctx context.Context) []*models.Product
	SellersWithProducts(ctx context.Context) []*models.User
	Purchase(ctx context.Context, buyer *models.User, product *models.Product) (*PurchaseReceipt, error)
	TopUp(ctx context.Context, buyer *models.User, amount decimal.Decimal) error
	Withdraw(ctx context.Context, seller *models.User, amount decimal.Decimal) error
}

// MarketServiceImpl реализует MarketService.
type MarketServiceImpl struct {
	userStorage    UserStorage
	productStorage ProductStorage
	logger         *zap.Logger
}

// NewMarketService создаёт новый экземпляр MarketService.
func NewMarketService(userStorage UserStorage, productStorage ProductStorage, logger *zap.Logger) *MarketServiceImpl {
	return &MarketServiceImpl{
		userStorage:    userStorage,
		productStorage: productStorage,
		logger:         logger,
	}
}

// AddProduct добавляет товар продавца в каталог и сохраняет snapshot каталога.
func (s *MarketServiceImpl) AddProduct(ctx context.Context, seller *models.User, name string, price decimal.Decimal, description string) (*models.Product, error) {
	if !seller.IsSeller() {
		return nil, ErrNotSeller
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	product := &models.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Seller:      seller,
	}

	if err := s.productStorage.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info("product added",
		zap.String("name", name),
		zap.String("price", price.String()),
		zap.String("seller", seller.Login))

	return product, nil
}

// Products возвращает каталог в порядке добавления.
func (s *MarketServiceImpl) Products(ctx context.Context) []*models.Product {
	return s.productStorage.List()
}

// SellersWithProducts возвращает продавцов, представленных в каталоге,
// без повторов и в порядке появления товаров.
func (s *MarketServiceImpl) SellersWithProducts(ctx context.Context) []*models.User {
	seen := make(map[string]bool)
	var sellers []*models.User
	for _, product := range s.productStorage.List() {
		if seen[product.Seller.Login] {
			continue
		}
		seen[product.Seller.Login] = true
		sellers = append(sellers, product.Seller)
	}
	return sellers
}

// Purchase выполняет покупку товара: проверяет достаточность средств и
// переводит точную цену с баланса покупателя на баланс продавца.
// Сумма средств двух счетов при этом не меняется. При нехватке средств
// возвращается ErrInsufficientBalance и балансы остаются нетронутыми.
func (s *MarketServiceImpl) Purchase(ctx context.Context, buyer *models.User, product *models.Product) (*PurchaseReceipt, error) {
	if !buyer.IsBuyer() {
		return nil, ErrNotBuyer
	}

	if buyer.Balance.LessThan(product.Price) {
		return nil, storage.ErrInsufficientBalance
	}

	buyer.Balance = buyer.Balance.Sub(product.Price)
	product.Seller.Balance = product.Seller.Balance.Add(product.Price)

	if err := s.userStorage.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist balances: %w", err)
	}

	s.logger.Info("purchase completed",
		zap.String("product", product.Name),
		zap.String("price", product.Price.String()),
		zap.String("buyer", buyer.Login),
		zap.String("seller", product.Seller.Login))

	return &PurchaseReceipt{
		Product:       product,
		BuyerBalance:  buyer.Balance,
		SellerBalance: product.Seller.Balance,
	}, nil
}

// TopUp пополняет баланс покупателя. Сумма должна быть положительной.
func (s *MarketServiceImpl) TopUp(ctx context.Context, buyer *models.User, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	buyer.Balance = buyer.Balance.Add(amount)

	if err := s.userStorage.Save(ctx); err != nil {
		return fmt.Errorf("failed to persist balances: %w", err)
	}

	s.logger.Info("balance topped up",
		zap.String("login", buyer.Login),
		zap.String("amount", amount.String()))

	return nil
}

// Withdraw списывает средства с баланса продавца. Единственная проверка —
// сумма не превышает текущий баланс.
func (s *MarketServiceImpl) Withdraw(ctx context.Context, seller *models.User, amount decimal.Decimal) error {
	if amount.GreaterThan(seller.Balance) {
		return storage.ErrInsufficientBalance
	}

	seller.Balance = seller.Balance.Sub(amount)

	if err := s.userStorage.Save(ctx); err != nil {
		return fmt.Errorf("failed to persist balances: %w", err)
	}

	s.logger.Info("funds withdrawn",
		zap.String("login", seller.Login),
		zap.String("amount", amount.String()))

	return nil
}
