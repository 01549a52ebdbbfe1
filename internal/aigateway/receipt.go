package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dukerupert/tradeline/internal/telemetry"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

type ReceiptRequest struct {
	Image    string `json:"image" validate:"required,max=7864320"`
	MIMEType string `json:"mimeType" validate:"required,oneof=image/jpeg image/png image/webp image/heic"`
}

type ReceiptItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Receipt struct {
	Merchant   string        `json:"merchant"`
	Date       string        `json:"date"`
	Total      float64       `json:"total"`
	VATAmount  float64       `json:"vatAmount"`
	Category   string        `json:"category"`
	Items      []ReceiptItem `json:"items"`
	ArchiveURL string        `json:"archiveUrl,omitempty"`
}

var expenseCategories = []string{
	"materials", "tools", "fuel", "vehicle", "subsistence", "office", "other",
}

var receiptSchema = object(map[string]*genai.Schema{
	"merchant":  stringField("Shop or supplier name"),
	"date":      stringField("Purchase date as YYYY-MM-DD"),
	"total":     numberField("Total paid including VAT, GBP"),
	"vatAmount": numberField("VAT included in the total, GBP; 0 if none shown"),
	"category":  enumField("Expense category", expenseCategories...),
	"items": arrayOf(object(map[string]*genai.Schema{
		"description": stringField("Item"),
		"amount":      numberField("Line amount, GBP"),
	}, "description", "amount")),
}, "merchant", "total", "vatAmount", "category")

var receiptExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
}

func receiptPrompt(req *ReceiptRequest) (Prompt, error) {
	media, err := decodeMedia("aigateway.parseReceipt", "image", req.Image, req.MIMEType)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{
		System: systemPrompt,
		Text:   "Read this receipt and extract the purchase for the expenses ledger.",
		Media:  []Media{media},
		Schema: receiptSchema,
	}, nil
}

func sanitizeReceipt(r *Receipt) {
	r.Merchant = clean(r.Merchant)
	r.Total = RoundMoney(r.Total)
	r.VATAmount = capAt(RoundMoney(r.VATAmount), r.Total)
	for i := range r.Items {
		r.Items[i].Description = clean(r.Items[i].Description)
		r.Items[i].Amount = RoundMoney(r.Items[i].Amount)
	}

	known := false
	for _, c := range expenseCategories {
		if r.Category == c {
			known = true
			break
		}
	}
	if !known {
		r.Category = "other"
	}
}

// parseReceipt extracts the receipt and, when storage is configured, keeps
// a copy of the image. Archiving failures do not fail the request.
func (g *Gateway) parseReceipt(ctx context.Context, userID uuid.UUID, data json.RawMessage) (*Receipt, error) {
	var image Media
	receipt, err := run(ctx, g, ActionParseReceipt, data, func(req *ReceiptRequest) (Prompt, error) {
		p, err := receiptPrompt(req)
		if err == nil {
			image = p.Media[0]
		}
		return p, err
	}, sanitizeReceipt)
	if err != nil {
		return nil, err
	}

	if g.storage == nil {
		return receipt, nil
	}

	url, err := g.archiveReceipt(ctx, userID, image)
	if err != nil {
		g.logger.Warn("failed to archive receipt", "user_id", userID, "error", err)
		telemetry.CaptureErrorWithUser(err, userID.String(), map[string]interface{}{"action": ActionParseReceipt.String()})
		return receipt, nil
	}
	receipt.ArchiveURL = url
	return receipt, nil
}

func (g *Gateway) archiveReceipt(ctx context.Context, userID uuid.UUID, image Media) (string, error) {
	ext, ok := receiptExtensions[image.MIMEType]
	if !ok {
		ext = "bin"
	}
	key := fmt.Sprintf("receipts/%s/%s.%s", userID, g.newID(), ext)
	return g.storage.Put(ctx, key, bytes.NewReader(image.Data), image.MIMEType)
}
