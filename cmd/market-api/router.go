package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/ordenes-ofertas/docs"
	"github.com/MikeMC777/ordenes-ofertas/internal/httpx"
	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
	"github.com/MikeMC777/ordenes-ofertas/internal/order"
	"github.com/MikeMC777/ordenes-ofertas/internal/user"
)

type repos struct {
	users  user.Repository
	orders order.Repository
	offers offer.Repository
}

func newRouter(rp repos) *gin.Engine {
	httpx.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/users", listUsersHandler(rp.users))
	r.POST("/users", createUserHandler(rp.users))
	r.GET("/users/:id", getUserHandler(rp.users))
	r.PUT("/users/:id", replaceUserHandler(rp.users))
	r.DELETE("/users/:id", deleteUserHandler(rp.users))
	r.GET("/users/:id/orders", listUserOrdersHandler(rp.orders))
	r.GET("/users/:id/offers", listUserOffersHandler(rp.offers))

	r.GET("/orders", listOrdersHandler(rp.orders))
	r.POST("/orders", createOrderHandler(rp.orders))
	r.GET("/orders/:id", getOrderHandler(rp.orders))
	r.PUT("/orders/:id", replaceOrderHandler(rp.orders))
	r.DELETE("/orders/:id", deleteOrderHandler(rp.orders))
	r.GET("/orders/:id/offers", listOrderOffersHandler(rp.offers))

	r.GET("/offers", listOffersHandler(rp.offers))
	r.POST("/offers", createOfferHandler(rp.offers))
	r.GET("/offers/:id", getOfferHandler(rp.offers))
	r.PUT("/offers/:id", replaceOfferHandler(rp.offers))
	r.DELETE("/offers/:id", deleteOfferHandler(rp.offers))

	return r
}

// pathID parses :id, aborting with 400 when it is not an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.Abort(c, httpx.Invalid("id must be an integer"))
		return 0, false
	}
	return id, true
}

// notFoundText keeps the legacy get-by-id contract: 200 with a plain-text body.
func notFoundText(c *gin.Context, kind string) {
	c.String(http.StatusOK, kind+" is not found")
}
