package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-ofertas/internal/httpx"
	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
	"github.com/MikeMC777/ordenes-ofertas/internal/order"
)

// listOrdersHandler godoc
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Success  200 {array} order.Order
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// getOrderHandler godoc
// @Summary  Get an order
// @Description Answers 200 with the plain text "order is not found" when the id does not exist.
// @Tags     orders
// @Produce  json,plain
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Router   /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, order.ErrNotFound) {
			notFoundText(c, "order")
			return
		}
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createOrderHandler godoc
// @Summary  Create an order
// @Tags     orders
// @Accept   json
// @Param    body body order.CreateOrderRequest true "order"
// @Success  201
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /orders [post]
func createOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, httpx.Malformed(err))
			return
		}
		o := req.Order()
		if err := repo.Create(c.Request.Context(), &o); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

// replaceOrderHandler godoc
// @Summary  Replace every field of an order
// @Tags     orders
// @Accept   json
// @Param    id   path int               true "order id"
// @Param    body body order.Fields      true "order"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [put]
func replaceOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req order.Fields
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, httpx.Malformed(err))
			return
		}
		o := req.Apply(id)
		if err := repo.Update(c.Request.Context(), &o); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// deleteOrderHandler godoc
// @Summary  Delete an order
// @Tags     orders
// @Param    id path int true "order id"
// @Success  204
// @Router   /orders/{id} [delete]
func deleteOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if _, err := repo.Delete(c.Request.Context(), id); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// listOrderOffersHandler godoc
// @Summary  Offers made on an order
// @Tags     orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {array} offer.Offer
// @Router   /orders/{id}/offers [get]
func listOrderOffersHandler(repo offer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		items, err := repo.ListByOrder(c.Request.Context(), id)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
