package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"panelstore/internal/catalog"
)

func listOfferings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offerings": catalog.All()})
}
