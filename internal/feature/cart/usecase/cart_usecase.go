// Package usecase implements cart writes and cart reconciliation against the
// live catalog.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/domain/entity"
	catalog "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/domain/entity"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/media"
)

const (
	// imageFormat is the rendition shown next to cart lines.
	imageFormat = "thumbnail"
)

// CartRepository persists carts and their lines.
// Following Go convention: the interface is defined here, by its consumer.
type CartRepository interface {
	// AddLine creates the user's cart if needed and adds line to it, summing
	// quantities when the product is already in the cart. It runs atomically.
	AddLine(ctx context.Context, userID uint, line entity.CartLine) (cartID uint, err error)
	// FindByUserID returns the cart with its lines in insertion order, or ErrCartNotFound.
	FindByUserID(ctx context.Context, userID uint) (*entity.Cart, error)
	UpdateLineQuantity(ctx context.Context, userID, cartID, lineID uint, quantity int) error
	// RemoveLine deletes the line and, when it was the last one, the cart.
	RemoveLine(ctx context.Context, userID, cartID, lineID uint) (cartDeleted bool, err error)
}

// ProductResolver resolves a product code to the live product.
type ProductResolver interface {
	EnsureAndGetByCode(ctx context.Context, code string) (*catalog.Product, error)
}

// AddItemInput is the body of an add-to-cart request.
type AddItemInput struct {
	Code     string
	Quantity float64
}

type cartUsecase struct {
	carts     CartRepository
	products  ProductResolver
	mediaBase string
}

// NewCartUsecase creates a cart usecase. mediaBase absolutizes image URLs.
func NewCartUsecase(carts CartRepository, products ProductResolver, mediaBase string) *cartUsecase {
	return &cartUsecase{carts: carts, products: products, mediaBase: mediaBase}
}

// AddItem adds in.Quantity units of in.Code to the user's cart and returns the
// cart id. Input problems are validation errors; every later failure is
// logged and masked.
func (u *cartUsecase) AddItem(ctx context.Context, userID uint, in AddItemInput) (uint, error) {
	code := strings.TrimSpace(in.Code)
	qty, ok := toQuantity(in.Quantity)
	if userID == 0 || code == "" || !ok {
		return 0, apperror.Validation(msgInvalidFields)
	}

	p, err := u.products.EnsureAndGetByCode(ctx, code)
	if err != nil {
		slog.Error("add to cart: product resolution failed", "user_id", userID, "code", code, "error", err)
		return 0, apperror.Mask(err)
	}
	if !p.Sellable() {
		slog.Error("add to cart: product is missing code, name or price", "user_id", userID, "code", code)
		return 0, apperror.Mask(errors.New("incomplete product " + code))
	}

	cartID, err := u.carts.AddLine(ctx, userID, entity.CartLine{
		ProductCode: p.Code,
		Quantity:    qty,
		ProductName: p.Name,
		UnitPrice:   p.Price.Decimal,
	})
	if err != nil {
		slog.Error("add to cart: persist failed", "user_id", userID, "code", code, "error", err)
		return 0, apperror.Mask(err)
	}
	return cartID, nil
}

// GetCart returns the user's cart with every line reconciled against the live
// catalog. Lines whose product cannot be resolved fall back to their snapshot.
func (u *cartUsecase) GetCart(ctx context.Context, userID uint) (*entity.CartView, error) {
	if userID == 0 {
		return nil, apperror.Validation(msgInvalidFields)
	}

	cart, err := u.carts.FindByUserID(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		return &entity.CartView{UserID: userID, Lines: []entity.LineView{}}, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	lines := make([]entity.LineView, len(cart.Lines))
	var g errgroup.Group
	for i, l := range cart.Lines {
		g.Go(func() error {
			lines[i] = u.enrich(ctx, l)
			return nil
		})
	}
	_ = g.Wait()

	view := &entity.CartView{CartID: cart.ID, UserID: userID, Lines: lines, Total: decimal.Zero}
	for _, l := range lines {
		view.Total = view.Total.Add(l.Subtotal)
		view.TotalQuantity += l.Quantity
	}
	return view, nil
}

// UpdateLineQuantity sets the quantity of one line in the user's cart.
func (u *cartUsecase) UpdateLineQuantity(ctx context.Context, userID, cartID, lineID uint, quantity float64) error {
	qty, ok := toQuantity(quantity)
	if userID == 0 || cartID == 0 || lineID == 0 || !ok {
		return apperror.Validation(msgInvalidFields)
	}
	if err := u.carts.UpdateLineQuantity(ctx, userID, cartID, lineID, qty); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

// RemoveLine removes one line from the user's cart. It reports whether the
// cart was deleted because it became empty.
func (u *cartUsecase) RemoveLine(ctx context.Context, userID, cartID, lineID uint) (bool, error) {
	if userID == 0 || cartID == 0 || lineID == 0 {
		return false, apperror.Validation(msgInvalidFields)
	}
	deleted, err := u.carts.RemoveLine(ctx, userID, cartID, lineID)
	if err != nil {
		return false, notFoundOrInternal(err)
	}
	return deleted, nil
}

func (u *cartUsecase) enrich(ctx context.Context, l entity.CartLine) entity.LineView {
	view := entity.LineView{
		LineID:    l.ID,
		Code:      l.ProductCode,
		Quantity:  l.Quantity,
		Name:      l.ProductName,
		UnitPrice: l.UnitPrice,
	}

	p, err := u.products.EnsureAndGetByCode(ctx, l.ProductCode)
	switch {
	case err != nil:
		slog.Warn("cart line shown from snapshot", "line_id", l.ID, "code", l.ProductCode, "error", err)
	case !p.Sellable():
		slog.Warn("cart line shown from snapshot: incomplete product", "line_id", l.ID, "code", l.ProductCode)
	default:
		view.Name = p.Name
		view.UnitPrice = p.Price.Decimal
		view.ImageURL = media.FirstImageURL(p.Images, imageFormat, u.mediaBase)
		view.Product = p
	}

	view.Subtotal = view.UnitPrice.Mul(decimal.NewFromInt(int64(view.Quantity)))
	return view
}

func notFoundOrInternal(err error) error {
	switch {
	case errors.Is(err, ErrCartNotFound):
		return apperror.NotFound("cart not found")
	case errors.Is(err, ErrLineNotFound):
		return apperror.NotFound("cart line not found")
	default:
		return apperror.Internal(err)
	}
}

// toQuantity accepts finite, positive, integral numbers.
func toQuantity(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
