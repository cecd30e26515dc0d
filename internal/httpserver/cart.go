package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"panelstore/internal/catalog"
	"panelstore/internal/domain"
)

type cartView struct {
	Items []domain.CartLine `json:"items"`
	Count int               `json:"count"`
	Total int64             `json:"total"`
}

func toCartView(lines []domain.CartLine) cartView {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return cartView{Items: lines, Count: count, Total: domain.CartTotal(lines)}
}

func getCart(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartView(carts.Get(c.Request.Context(), sessionID(c))))
	}
}

type addItemRequest struct {
	OfferingID int `json:"offeringId" binding:"required"`
}

func addCartItem(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offeringId required"})
			return
		}
		offering, ok := catalog.ByID(req.OfferingID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
			return
		}
		lines := carts.AddOffering(c.Request.Context(), sessionID(c), offering)
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

type changeItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func changeCartItem(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offering id"})
			return
		}
		var req changeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delta required"})
			return
		}
		lines := carts.ChangeQuantity(c.Request.Context(), sessionID(c), id, req.Delta)
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func removeCartItem(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offering id"})
			return
		}
		lines := carts.RemoveOffering(c.Request.Context(), sessionID(c), id)
		c.JSON(http.StatusOK, toCartView(lines))
	}
}

func clearCart(carts CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartView(nil))
	}
}
