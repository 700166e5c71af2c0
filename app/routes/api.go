// Package routes owns the HTTP surface: middleware order, the route
// table, and which routes sit behind the admin session gate.
//
// Gating policy: catalogue and settings reads are public (the storefront
// renders from them); every mutation requires the session flag.
package routes

import (
	"time"

	"github.com/turboost/store/app/controllers"
	"github.com/turboost/store/config"
	"github.com/turboost/store/pkg/metrics"
	"github.com/turboost/store/pkg/middleware"
	"github.com/turboost/store/pkg/reqid"
	"github.com/turboost/store/pkg/router"
	"github.com/turboost/store/pkg/session"
)

// Controllers bundles the handler sets the route table mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Settings *controllers.SettingsController
	Checkout *controllers.CheckoutController
}

// Register wires middleware and routes onto r.
func Register(r *router.Router, c Controllers) {
	r.Use(
		reqid.Middleware(),
		metrics.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		session.Middleware(session.DefaultOptions()),
	)

	r.Get("/metrics", "metrics", metrics.Handler())

	// Session endpoints live at the root, matching the storefront pages.
	loginLimit := middleware.RateLimit(10, time.Minute)
	r.Post("/login", "auth.login", c.Auth.Login, loginLimit)
	r.Post("/logout", "auth.logout", c.Auth.Logout)

	api := r.Group("/api")
	api.Get("/check-admin", "auth.check", c.Auth.CheckAdmin)
	api.Post("/register", "auth.register", c.Auth.Register)
	api.Get("/firebase-config", "client.config", c.Settings.ClientConfig)

	api.Get("/products", "products.index", c.Products.Index)
	api.Get("/settings", "settings.show", c.Settings.Show)

	api.Post("/shipping", "checkout.shipping", c.Checkout.Shipping)
	api.Post("/create-payment", "checkout.payment", c.Checkout.CreatePayment)

	admin := api.Group("", middleware.RequireAdmin)
	admin.Post("/products", "products.store", c.Products.Store)
	admin.Put("/products/{id}", "products.update", c.Products.Update)
	admin.Delete("/products/{id}", "products.destroy", c.Products.Destroy)
	admin.Post("/settings", "settings.save", c.Settings.Save)

	// Media written by the local storage disk; S3 serves its own URLs.
	r.Static("/storage", config.StorageLocalRoot())

	// Storefront pages, JS, CSS, favicon.
	r.Static("/", config.PublicDir())
}
