package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	buyerapp "github.com/muhammadheryan/marketplace/application/buyer"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	sellerapp "github.com/muhammadheryan/marketplace/application/seller"
	transactionapp "github.com/muhammadheryan/marketplace/application/transaction"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp     productapp.ProductApp
	SellerApp      sellerapp.SellerApp
	BuyerApp       buyerapp.BuyerApp
	TransactionApp transactionapp.TransactionApp
}

func NewTransport(ProductApp productapp.ProductApp, SellerApp sellerapp.SellerApp, BuyerApp buyerapp.BuyerApp, TransactionApp transactionapp.TransactionApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp:     ProductApp,
		SellerApp:      SellerApp,
		BuyerApp:       BuyerApp,
		TransactionApp: TransactionApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Auth
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	// Product. The by-seller route must precede the {id} route.
	mux.HandleFunc("/product", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/product", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/product/by-seller/{seller_id}", rh.ListProductsBySeller).Methods(http.MethodGet)
	mux.HandleFunc("/product/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/product/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	mux.HandleFunc("/product/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// Seller
	mux.HandleFunc("/seller", rh.CreateSeller).Methods(http.MethodPost)
	mux.HandleFunc("/seller", rh.ListSellers).Methods(http.MethodGet)
	mux.HandleFunc("/seller/me", rh.GetSellerProfile).Methods(http.MethodGet)
	mux.HandleFunc("/seller/{id}", rh.GetSeller).Methods(http.MethodGet)
	mux.HandleFunc("/seller/{id}", rh.UpdateSeller).Methods(http.MethodPut)
	mux.HandleFunc("/seller/{id}", rh.DeleteSeller).Methods(http.MethodDelete)

	// Buyer
	mux.HandleFunc("/buyer", rh.CreateBuyer).Methods(http.MethodPost)
	mux.HandleFunc("/buyer", rh.ListBuyers).Methods(http.MethodGet)
	mux.HandleFunc("/buyer/{id}", rh.GetBuyer).Methods(http.MethodGet)
	mux.HandleFunc("/buyer/{id}", rh.UpdateBuyer).Methods(http.MethodPut)
	mux.HandleFunc("/buyer/{id}", rh.DeleteBuyer).Methods(http.MethodDelete)

	// Transaction
	mux.HandleFunc("/transaction", rh.CreateTransaction).Methods(http.MethodPost)
	mux.HandleFunc("/transaction", rh.ListTransactions).Methods(http.MethodGet)
	mux.HandleFunc("/transaction/{id}", rh.GetTransaction).Methods(http.MethodGet)
	mux.HandleFunc("/transaction/{id}", rh.DeleteTransaction).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(SellerApp))

	return mux
}

// pathID extracts a numeric path variable.
func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}
