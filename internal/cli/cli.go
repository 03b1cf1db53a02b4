package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agamariel/gomarket/internal/models"
	"github.com/agamariel/gomarket/internal/services"
	"github.com/agamariel/gomarket/internal/storage"
	"github.com/shopspring/decimal"
)

// CLI реализует интерактивное меню маркетплейса поверх сервисного слоя.
// Вся логика живёт в сервисах; здесь только ввод-вывод и проверка формата.
type CLI struct {
	users      services.UserService
	market     services.MarketService
	sellerCode string
	in         *bufio.Scanner
	out        io.Writer
	now        func() string
}

// New создаёт CLI. sellerCode — код авторизации для регистрации продавца.
func New(users services.UserService, market services.MarketService, sellerCode string, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		users:      users,
		market:     market,
		sellerCode: sellerCode,
		in:         bufio.NewScanner(in),
		out:        out,
		now: func() string {
			return time.Now().Format("2006-01-02")
		},
	}
}

// Run запускает главное меню и работает до выхода пользователя,
// исчерпания ввода или отмены контекста.
func (c *CLI) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintln(c.out, "\n==== MENU ====")
		fmt.Fprintln(c.out, "1. Register")
		fmt.Fprintln(c.out, "2. Login")
		fmt.Fprintln(c.out, "0. Exit")
		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.register(ctx)
		case "2":
			c.login(ctx)
		case "0":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

// prompt печатает приглашение и читает одну строку ввода.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *CLI) register(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Registration ---")
	login, ok := c.prompt("Login: ")
	if !ok {
		return
	}
	email, ok := c.prompt("Email: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Password: ")
	if !ok {
		return
	}

	fmt.Fprintln(c.out, "User type:")
	fmt.Fprintln(c.out, "1. Buyer")
	fmt.Fprintln(c.out, "2. Seller")
	typeOption, ok := c.prompt("Choose 1 or 2: ")
	if !ok {
		return
	}

	var kind models.UserKind
	switch typeOption {
	case "1":
		kind = models.KindBuyer
	case "2":
		code, ok := c.prompt("Seller authorization code: ")
		if !ok {
			return
		}
		if code != c.sellerCode {
			fmt.Fprintln(c.out, "Invalid code. Seller registration aborted.")
			return
		}
		kind = models.KindSeller
	default:
		fmt.Fprintln(c.out, "Unknown option.")
		return
	}

	user, err := c.users.Register(ctx, services.RegisterDraft{
		Kind:         kind,
		Login:        login,
		Email:        email,
		Password:     password,
		RegisterDate: c.now(),
	})
	if err != nil {
		fmt.Fprintf(c.out, "Registration failed: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "%s %s has been registered!\n", user.Kind, user.Login)
}

func (c *CLI) login(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Login ---")
	login, ok := c.prompt("Login: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Password: ")
	if !ok {
		return
	}

	user, err := c.users.Authenticate(ctx, login, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrEmptyCredentials) {
			fmt.Fprintln(c.out, "Login failed - wrong login or password.")
		} else {
			fmt.Fprintf(c.out, "Login failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(c.out, "%s %s logged in!\n", user.Kind, user.Login)
	fmt.Fprintf(c.out, "Info: %s\n", user.Info())

	switch user.Kind {
	case models.KindSeller:
		c.sellerMenu(ctx, user)
	case models.KindBuyer:
		c.buyerMenu(ctx, user)
	}
}

func (c *CLI) sellerMenu(ctx context.Context, seller *models.User) {
	for {
		fmt.Fprintln(c.out, "\n--- SELLER MENU ---")
		fmt.Fprintln(c.out, "1. Add product")
		fmt.Fprintln(c.out, "2. Show products")
		fmt.Fprintln(c.out, "3. Withdraw funds")
		fmt.Fprintln(c.out, "0. Logout")
		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.addProduct(ctx, seller)
		case "2":
			c.showProducts(ctx)
		case "3":
			c.withdraw(ctx, seller)
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

func (c *CLI) addProduct(ctx context.Context, seller *models.User) {
	name, ok := c.prompt("Product name: ")
	if !ok {
		return
	}
	description, ok := c.prompt("Description: ")
	if !ok {
		return
	}
	priceInput, ok := c.prompt("Price: ")
	if !ok {
		return
	}

	price, err := decimal.NewFromString(priceInput)
	if err != nil || price.IsNegative() {
		fmt.Fprintln(c.out, "Invalid price!")
		return
	}

	if _, err := c.market.AddProduct(ctx, seller, name, price, description); err != nil {
		fmt.Fprintf(c.out, "Failed to add product: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Product added!")
}

func (c *CLI) withdraw(ctx context.Context, seller *models.User) {
	input, ok := c.prompt("Amount to withdraw: ")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(input)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid amount or insufficient funds.")
		return
	}

	if err := c.market.Withdraw(ctx, seller, amount); err != nil {
		fmt.Fprintln(c.out, "Invalid amount or insufficient funds.")
		return
	}
	fmt.Fprintf(c.out, "Withdrew %s. Remaining balance: %s\n", amount.String(), seller.Balance.String())
}

func (c *CLI) buyerMenu(ctx context.Context, buyer *models.User) {
	for {
		fmt.Fprintln(c.out, "\n--- BUYER MENU ---")
		fmt.Fprintln(c.out, "1. Show products")
		fmt.Fprintln(c.out, "2. Buy product")
		fmt.Fprintln(c.out, "3. Show balance")
		fmt.Fprintln(c.out, "4. Top up balance")
		fmt.Fprintln(c.out, "5. Add review")
		fmt.Fprintln(c.out, "6. Show reviews")
		fmt.Fprintln(c.out, "0. Logout")
		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.showProducts(ctx)
		case "2":
			c.buyProduct(ctx, buyer)
		case "3":
			fmt.Fprintf(c.out, "Balance: %s\n", buyer.Balance.String())
		case "4":
			c.topUp(ctx, buyer)
		case "5":
			c.addReview(ctx, buyer)
		case "6":
			c.showReviews(ctx, buyer)
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

func (c *CLI) showProducts(ctx context.Context) {
	fmt.Fprintln(c.out, "Available products:")
	for _, product := range c.market.Products(ctx) {
		fmt.Fprintln(c.out, product)
	}
}

func (c *CLI) buyProduct(ctx context.Context, buyer *models.User) {
	products := c.market.Products(ctx)
	if len(products) == 0 {
		fmt.Fprintln(c.out, "No products available.")
		return
	}

	for i, p := range products {
		fmt.Fprintf(c.out, "%d. %s - %s (%s) - %s\n", i+1, p.Name, p.Description, p.Price.String(), p.Seller.Login)
	}
	input, ok := c.prompt("Choose product number: ")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(products) {
		fmt.Fprintln(c.out, "Invalid choice.")
		return
	}

	receipt, err := c.market.Purchase(ctx, buyer, products[idx-1])
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientBalance) {
			fmt.Fprintln(c.out, "Insufficient funds.")
		} else {
			fmt.Fprintf(c.out, "Purchase failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(c.out, "Bought '%s' for %s.\n", receipt.Product.Name, receipt.Product.Price.String())
	fmt.Fprintf(c.out, "New buyer balance: %s\n", receipt.BuyerBalance.String())
}

func (c *CLI) topUp(ctx context.Context, buyer *models.User) {
	input, ok := c.prompt("Amount to top up: ")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(input)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid amount.")
		return
	}

	if err := c.market.TopUp(ctx, buyer, amount); err != nil {
		fmt.Fprintln(c.out, "Invalid amount.")
		return
	}
	fmt.Fprintf(c.out, "Topped up %s. New balance: %s\n", amount.String(), buyer.Balance.String())
}

// chooseSeller показывает продавцов из каталога и возвращает выбранного.
func (c *CLI) chooseSeller(ctx context.Context, label string) (*models.User, bool) {
	sellers := c.market.SellersWithProducts(ctx)
	if len(sellers) == 0 {
		fmt.Fprintln(c.out, "No sellers to show.")
		return nil, false
	}

	fmt.Fprintln(c.out, "Sellers with listed products:")
	for i, s := range sellers {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, s.Login)
	}
	input, ok := c.prompt(label)
	if !ok {
		return nil, false
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(sellers) {
		fmt.Fprintln(c.out, "Invalid seller choice.")
		return nil, false
	}
	return sellers[idx-1], true
}

func (c *CLI) addReview(ctx context.Context, buyer *models.User) {
	if len(c.market.Products(ctx)) == 0 {
		fmt.Fprintln(c.out, "No products to review.")
		return
	}

	seller, ok := c.chooseSeller(ctx, "Choose seller number to review: ")
	if !ok {
		return
	}

	text, ok := c.prompt("Review: ")
	if !ok {
		return
	}
	ratingInput, ok := c.prompt("Rating (1-5): ")
	if !ok {
		return
	}
	rating, err := strconv.Atoi(ratingInput)
	if err != nil || rating < 1 || rating > 5 {
		fmt.Fprintln(c.out, "Invalid rating.")
		return
	}

	rendered, err := buyer.Reviews.AddReview(seller.Login, text, rating)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid rating.")
		return
	}
	fmt.Fprintf(c.out, "Added review for seller '%s': %s\n", seller.Login, rendered)
}

func (c *CLI) showReviews(ctx context.Context, buyer *models.User) {
	seller, ok := c.chooseSeller(ctx, "Choose seller number to see reviews: ")
	if !ok {
		return
	}

	reviews := buyer.Reviews.ReviewsFor(seller.Login)
	fmt.Fprintf(c.out, "Reviews for seller '%s':\n", seller.Login)
	if len(reviews) == 0 {
		fmt.Fprintln(c.out, "No reviews for this seller.")
		return
	}
	for _, review := range reviews {
		fmt.Fprintln(c.out, review)
	}
}
