package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"panelstore/internal/domain"
	"panelstore/internal/service/confirmation"
)

// orderView is the order as shown to the buyer. The proof image stays in the
// persisted record only.
type orderView struct {
	OrderID  string    `json:"orderId"`
	Name     string    `json:"name"`
	WhatsApp string    `json:"whatsapp"`
	Email    string    `json:"email"`
	Notes    string    `json:"notes,omitempty"`
	Total    int64     `json:"total"`
	Date     time.Time `json:"date"`
	Method   string    `json:"method"`
	Status   string    `json:"status"`
}

func toOrderView(rec *domain.OrderRecord) orderView {
	return orderView{
		OrderID:  rec.OrderID,
		Name:     rec.Name,
		WhatsApp: rec.WhatsApp,
		Email:    rec.Email,
		Notes:    rec.Notes,
		Total:    rec.Total,
		Date:     rec.Date,
		Method:   "QRIS Manual",
		Status:   "Menunggu Konfirmasi Admin",
	}
}

// showConfirmation resolves the order for the confirmation view. When
// nothing can be recovered it renders the terminal not-found state with
// recovery links, never an error page.
func showConfirmation(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, items, err := deps.Resolver.Resolve(c.Request.Context(), sessionID(c), c.Query("order_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":      "order not found",
				"homePath":   "/",
				"contactUrl": "https://wa.me/" + deps.AdminWhatsApp,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":       toOrderView(rec),
			"items":       items,
			"total":       domain.CartTotal(items),
			"whatsappUrl": confirmation.Link(deps.AdminWhatsApp, rec, items),
		})
	}
}
