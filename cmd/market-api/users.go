package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-ofertas/internal/httpx"
	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
	"github.com/MikeMC777/ordenes-ofertas/internal/order"
	"github.com/MikeMC777/ordenes-ofertas/internal/user"
)

// listUsersHandler godoc
// @Summary  List users
// @Tags     users
// @Produce  json
// @Success  200 {array}  user.User
// @Failure  500 {object} httpx.HTTPError
// @Router   /users [get]
func listUsersHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// getUserHandler godoc
// @Summary  Get a user
// @Description Answers 200 with the plain text "user is not found" when the id does not exist.
// @Tags     users
// @Produce  json,plain
// @Param    id  path int true "user id"
// @Success  200 {object} user.User
// @Failure  400 {object} httpx.HTTPError
// @Router   /users/{id} [get]
func getUserHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		u, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, user.ErrNotFound) {
			notFoundText(c, "user")
			return
		}
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// createUserHandler godoc
// @Summary  Create a user
// @Tags     users
// @Accept   json
// @Param    body body user.CreateUserRequest true "user"
// @Success  201
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /users [post]
func createUserHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, httpx.Malformed(err))
			return
		}
		u := req.User()
		if err := repo.Create(c.Request.Context(), &u); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

// replaceUserHandler godoc
// @Summary  Replace every field of a user
// @Tags     users
// @Accept   json
// @Param    id   path int             true "user id"
// @Param    body body user.Fields      true "user"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /users/{id} [put]
func replaceUserHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req user.Fields
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, httpx.Malformed(err))
			return
		}
		u := req.Apply(id)
		if err := repo.Update(c.Request.Context(), &u); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// deleteUserHandler godoc
// @Summary  Delete a user
// @Description Orders and offers that reference the user are left untouched.
// @Tags     users
// @Param    id path int true "user id"
// @Success  204
// @Router   /users/{id} [delete]
func deleteUserHandler(repo user.Repository) gin.HandlerFunc {
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

// listUserOrdersHandler godoc
// @Summary  Orders placed by a user as customer
// @Tags     users
// @Produce  json
// @Param    id path int true "user id"
// @Success  200 {array} order.Order
// @Router   /users/{id}/orders [get]
func listUserOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		items, err := repo.ListByCustomer(c.Request.Context(), id)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// listUserOffersHandler godoc
// @Summary  Offers made by a user as executor
// @Tags     users
// @Produce  json
// @Param    id path int true "user id"
// @Success  200 {array} offer.Offer
// @Router   /users/{id}/offers [get]
func listUserOffersHandler(repo offer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		items, err := repo.ListByExecutor(c.Request.Context(), id)
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
