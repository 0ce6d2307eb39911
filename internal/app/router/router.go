// Package router assembles the gin engine and its routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/api"
	addresshandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/address/transport/handler"
	authhandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/auth/transport/handler"
	carthandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/cart/transport/handler"
	cataloghandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/catalog/transport/handler"
	contenthandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/feature/content/transport/handler"
	platformhandler "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/http/handler"
	jwtmw "github.com/goslynn/pasteleria-mil-sabores-sub000/internal/platform/jwt"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Cart    *carthandler.CartHandler
	Catalog *cataloghandler.CatalogHandler
	Address *addresshandler.AddressHandler
	Content *contenthandler.ContentHandler
}

// Options configures the middleware shared by every route.
type Options struct {
	CORSOrigins []string
	CookieName  string
	Sessions    jwtmw.SessionResolver
	DB          platformhandler.Pinger
}

// NewRouter builds the engine. Every route sees the session user when the
// cookie verifies; routes under the auth group require one.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	api.RegisterValidators()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/readyz", platformhandler.Ready(opts.DB))

	r.Use(jwtmw.Session(opts.CookieName, opts.Sessions))

	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)

	pub := r.Group("/api")
	{
		pub.GET("/session", h.Auth.GetSession)
		pub.DELETE("/session", h.Auth.DeleteSession)

		pub.GET("/productos", h.Catalog.ListProducts)
		pub.GET("/productos/:code", h.Catalog.GetProduct)
		pub.GET("/categorias", h.Catalog.ListCategories)
		pub.GET("/categorias/:slug/productos", h.Catalog.ProductsByCategory)

		pub.GET("/articulos", h.Content.ListArticles)
		pub.GET("/articulos/:slug", h.Content.GetArticle)
		pub.GET("/marca", h.Content.GetBrand)

		pub.GET("/regiones", h.Address.ListRegions)

		// Guests share the guest cart.
		pub.GET("/carrito", h.Cart.GetCart)
		pub.POST("/carrito", h.Cart.AddItem)
		pub.PUT("/carrito/:id/detalle/:idDetalle", h.Cart.UpdateLine)
		pub.DELETE("/carrito/:id/detalle/:idDetalle", h.Cart.RemoveLine)
	}

	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/user/:id", h.Auth.GetUser)

		auth.GET("/direcciones", h.Address.List)
		auth.POST("/direcciones", h.Address.Create)
		auth.PUT("/direcciones/:id", h.Address.Update)
		auth.DELETE("/direcciones/:id", h.Address.Delete)
	}

	return r
}
