package usecase

import "context"

type CatalogUC interface {
	Categories(ctx context.Context) []string
	Browse(ctx context.Context, req *BrowseReq) *BrowseRes
	ResolveDetails(ctx context.Context, req *ProductDetailsReq) (*ProductDetailsRes, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartRes, error)
	AddToCart(ctx context.Context, req *AddToCartReq) (*CartRes, error)
}

type CheckoutUC interface {
	Summary(ctx context.Context, sessionID string) (*CheckoutSummaryRes, error)
	SaveContact(ctx context.Context, req *SaveContactReq) error
	PlaceOrder(ctx context.Context, sessionID string) (*PlaceOrderRes, error)
}
