package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-ofertas/internal/httpx"
	"github.com/MikeMC777/ordenes-ofertas/internal/offer"
)

// listOffersHandler godoc
// @Summary  List offers
// @Tags     offers
// @Produce  json
// @Success  200 {array} offer.Offer
// @Router   /offers [get]
func listOffersHandler(repo offer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// getOfferHandler godoc
// @Summary  Get an offer
// @Description Answers 200 with the plain text "offer is not found" when the id does not exist.
// @Tags     offers
// @Produce  json,plain
// @Param    id path int true "offer id"
// @Success  200 {object} offer.Offer
// @Router   /offers/{id} [get]
func getOfferHandler(repo offer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		o, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, offer.ErrNotFound) {
			notFoundText(c, "offer")
			return
		}
		if err != nil {
			httpx.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createOfferHandler godoc
// @Summary  Create an offer
// @Tags     offers
// @Accept   json
// @Param    body body offer.CreateOfferRequest true "offer"
// @Success  201
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /offers [post]
func createOfferHandler(repo offer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req offer.CreateOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, httpx.Malformed(err))
			return
		}
		o := req.Offer()
		if err := repo.Create(c.Request.Context(), &o); err != nil {
			httpx.Abort(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

// replaceOfferHandler godoc
// @Summary  Replace every field of an offer
// @Tags     offers
// @Accept   json
// @Param    id   path int               true "offer id"
// @Param    body body offer.Fields      true "offer"
// @Success  204
// @Failure  400 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /offers/{id} [put]
func replaceOfferHandler(repo offer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req offer.Fields
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

// deleteOfferHandler godoc
// @Summary  Delete an offer
// @Tags     offers
// @Param    id path int true "offer id"
// @Success  204
// @Router   /offers/{id} [delete]
func deleteOfferHandler(repo offer.Repository) gin.HandlerFunc {
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
