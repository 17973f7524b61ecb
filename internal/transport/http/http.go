package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/dulceria/order-svc/internal/service/models/catalogitem"
	"github.com/dulceria/order-svc/internal/service/models/order"
	"github.com/dulceria/order-svc/internal/service/services/ordersvc"
	cataloghandler "github.com/dulceria/order-svc/internal/transport/http/catalog"
	createorder "github.com/dulceria/order-svc/internal/transport/http/create_order"
	deleteorder "github.com/dulceria/order-svc/internal/transport/http/delete_order"
	getorder "github.com/dulceria/order-svc/internal/transport/http/get_order"
	listorders "github.com/dulceria/order-svc/internal/transport/http/list_orders"
	setstatus "github.com/dulceria/order-svc/internal/transport/http/set_status"
	"github.com/dulceria/order-svc/pkg/http/middleware/trace"
	"github.com/dulceria/order-svc/pkg/logger"
)

type orderService interface {
	Create(ctx context.Context, customerID int64, lines []ordersvc.LineRequest) (*order.Order, error)
	SetStatus(ctx context.Context, orderID int64, rawStatus string) (string, error)
	List(ctx context.Context, limit, offset int) ([]order.Order, error)
	ListForCustomer(ctx context.Context, customerID int64, limit, offset int) ([]order.Order, error)
	GetWithItems(ctx context.Context, orderID int64) (*order.Order, error)
	Delete(ctx context.Context, orderID int64) error
}

type catalogService interface {
	List(ctx context.Context) ([]catalogitem.CatalogItem, error)
	Get(ctx context.Context, id int64) (*catalogitem.CatalogItem, error)
	Create(ctx context.Context, item catalogitem.CatalogItem) (*catalogitem.CatalogItem, error)
	Update(ctx context.Context, item catalogitem.CatalogItem) error
	Delete(ctx context.Context, id int64) error
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	orderSvc   orderService
	catalogSvc catalogService
}

func NewHTTPTransport(orderSvc orderService, catalogSvc catalogService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		orderSvc:   orderSvc,
		catalogSvc: catalogSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.createOrder)
			r.Get("/", h.listOrders)
			r.Get("/user/{userID}", h.listOrdersForUser)
			r.Get("/{orderID}", h.getOrder)
			r.Patch("/{orderID}/status", h.setOrderStatus)
			r.Delete("/{orderID}", h.deleteOrder)
		})
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.listCatalog)
			r.Post("/", h.createCatalogItem)
			r.Get("/{itemID}", h.getCatalogItem)
			r.Put("/{itemID}", h.updateCatalogItem)
			r.Delete("/{itemID}", h.deleteCatalogItem)
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrdersForUser(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrdersForUser(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	setstatus.SetStatus(w, r, h.orderSvc)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	deleteorder.DeleteOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listCatalog(w http.ResponseWriter, r *http.Request) {
	cataloghandler.List(w, r, h.catalogSvc)
}

func (h *HTTPTransport) getCatalogItem(w http.ResponseWriter, r *http.Request) {
	cataloghandler.Get(w, r, h.catalogSvc)
}

func (h *HTTPTransport) createCatalogItem(w http.ResponseWriter, r *http.Request) {
	cataloghandler.Create(w, r, h.catalogSvc)
}

func (h *HTTPTransport) updateCatalogItem(w http.ResponseWriter, r *http.Request) {
	cataloghandler.Update(w, r, h.catalogSvc)
}

func (h *HTTPTransport) deleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	cataloghandler.Delete(w, r, h.catalogSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
