package httpserver

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"panelstore/internal/service/checkout"
	"panelstore/internal/service/confirmation"
)

// submitCheckout accepts the checkout form as multipart: the buyer fields
// plus the payment-proof image. The image is carried into the order record
// as a data URL, matching how it is later shown back to the admin.
func submitCheckout(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := checkout.Input{
			Name:     c.PostForm("name"),
			WhatsApp: c.PostForm("whatsapp"),
			Email:    c.PostForm("email"),
			Notes:    c.PostForm("notes"),
		}

		proof, err := readPaymentProof(c, deps.MaxProofBytes)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in.PaymentProof = proof

		rec, err := deps.CheckoutSvc.Submit(c.Request.Context(), sessionID(c), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		deps.Resolver.Remember(rec)

		c.JSON(http.StatusCreated, gin.H{
			"order":            toOrderView(rec),
			"items":            rec.Items,
			"whatsappUrl":      confirmation.Link(deps.AdminWhatsApp, rec, rec.Items),
			"confirmationPath": "/berhasil?order_id=" + rec.OrderID,
		})
	}
}

// readPaymentProof pulls the uploaded image out of the form. A missing file
// is not an error here; the checkout service owns the "proof required"
// validation so no partial order is ever created.
func readPaymentProof(c *gin.Context, maxBytes int64) (string, error) {
	header, err := c.FormFile("payment_proof")
	if err != nil {
		return "", nil
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return "", fmt.Errorf("payment proof exceeds %d bytes", maxBytes)
	}

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open payment proof: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read payment proof: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("payment proof must be an image")
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
