package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipt-api/internal/application/service"
	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalog struct{}

func (catalog) GetByID(_ context.Context, id entity.Ref) (*entity.Customer, error) {
	if id == "C1" {
		return &entity.Customer{ID: "C1", Name: "Jane Doe"}, nil
	}
	return nil, nil
}

func (catalog) GetByIDs(_ context.Context, ids []entity.Ref) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if id == "P1" {
			out = append(out, entity.Product{ID: "P1", Name: "Widget", SellingPrice: 2500})
		}
	}
	return out, nil
}

type generatorFunc func(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error)

func (f generatorFunc) Generate(ctx context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	return f(ctx, req)
}

func okGenerator(_ context.Context, req *entity.DocumentRequest) (*entity.Document, error) {
	return &entity.Document{FileName: "receipt.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")}, nil
}

func newTestRouter(gen generatorFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewReceiptService(
		service.NewReferenceResolver(catalog{}, catalog{}, nil),
		gen,
		nil,
		service.ReceiptServiceConfig{Header: entity.ReceiptHeader{StoreName: "Tiendas SAC"}},
		nil,
	)
	h := NewReceiptHandler(svc, nil)

	r := gin.New()
	r.POST("/summary", h.Summary)
	r.POST("/preview", h.Preview)
	r.POST("/export", h.Export)
	return r
}

func post(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

const salePayload = `{"total": 100, "discount": "10", "customer_ref": "C1", "items": [{"product_ref": "P1", "quantity": 2}]}`

func TestReceiptHandler_Summary(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/summary", salePayload)

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Sale summary built", env.Message)

	var summary entity.SaleSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "Jane Doe", summary.CustomerName)
	assert.Equal(t, 110.0, summary.Subtotal)
	assert.Equal(t, []entity.LineItem{{Quantity: 2, Description: "Widget", UnitPrice: 25}}, summary.LineItems)
}

func TestReceiptHandler_Summary_NumericRefs(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/summary", `{"total": 5, "customer_ref": 404, "items": [{"product_ref": 7, "quantity": 1}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var summary entity.SaleSummary
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &summary))
	assert.Equal(t, entity.DefaultCustomerLabel, summary.CustomerName)
	assert.Equal(t, entity.UnnamedProduct, summary.LineItems[0].Description)
}

func TestReceiptHandler_Summary_BadJSON(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/summary", `{"total": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestReceiptHandler_Preview(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/preview", salePayload)

	require.Equal(t, http.StatusOK, w.Code)
	var receipt entity.Receipt
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &receipt))
	assert.Equal(t, "Tiendas SAC", receipt.Header.StoreName)
	assert.Regexp(t, `^R-[0-9A-F]{8}$`, receipt.Number)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 50.0, receipt.Items[0].Total)
}

func TestReceiptHandler_ExportDocument(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/export", `{"action": "document", "sale": `+salePayload+`}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="receipt.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "completed", w.Header().Get("X-Export-State"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestReceiptHandler_ExportNotImplemented(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/export", `{"action": "email", "sale": `+salePayload+`}`)

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, `Export action "email" is not available yet`, env.Message)
	assert.JSONEq(t, `{"action": "email", "state": "completed", "result": "not_implemented"}`, string(env.Data))
}

func TestReceiptHandler_ExportFailure(t *testing.T) {
	failing := func(context.Context, *entity.DocumentRequest) (*entity.Document, error) {
		return nil, errors.New("renderer crashed")
	}
	w := post(t, newTestRouter(failing), "/export", `{"action": "document", "sale": `+salePayload+`}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "The receipt could not be generated. Please try again.", env.Message)

	var outcome map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	assert.Equal(t, "failed", outcome["state"])
}

func TestReceiptHandler_ExportValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing sale", `{"action": "document"}`, "sale"},
		{"missing action", `{"sale": ` + salePayload + `}`, "action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, newTestRouter(okGenerator), "/export", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var body struct {
				Message string `json:"message"`
				Errors  []struct {
					Field   string `json:"field"`
					Message string `json:"message"`
				} `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Validation failed", body.Message)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.field, body.Errors[0].Field)
			assert.Equal(t, "is required", body.Errors[0].Message)
		})
	}
}

func TestReceiptHandler_ExportUnknownAction(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/export", `{"action": "fax", "sale": `+salePayload+`}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, `Unsupported export action "fax"`)
}

func TestReceiptHandler_ExportMalformedJSON(t *testing.T) {
	w := post(t, newTestRouter(okGenerator), "/export", `{"action": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "Invalid request")
}
