package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/sangkips/receipt-api/internal/domain/enum"
	"github.com/sangkips/receipt-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReceiptService(store *memoryStore, gen DocumentGenerator, notifier Notifier) *ReceiptService {
	return NewReceiptService(store.resolver(), gen, notifier, ReceiptServiceConfig{
		Header: entity.ReceiptHeader{StoreName: "Shop", Address: "Main St 1"},
	}, nil)
}

func widgetStore() *memoryStore {
	return newMemoryStore().addCustomer("C1", "Jane Doe").addProduct("P1", "Widget", 25)
}

func TestSummarize_ResolvesCustomerAndItems(t *testing.T) {
	svc := newTestReceiptService(widgetStore(), okGenerator(), nil)

	summary, err := svc.Summarize(context.Background(), &entity.SalePayload{
		Total:       100,
		Discount:    10,
		Items:       []entity.SaleItem{{ProductRef: "P1", Quantity: 2}},
		CustomerRef: "C1",
	})

	require.NoError(t, err)
	assert.Equal(t, &entity.SaleSummary{
		CustomerName: "Jane Doe",
		CustomerRef:  "C1",
		Subtotal:     110,
		Discount:     10,
		Total:        100,
		LineItems:    []entity.LineItem{{Quantity: 2, Description: "Widget", UnitPrice: 25}},
	}, summary)
}

func TestSummarize_WholeFloatRefsMatchIntegerIDs(t *testing.T) {
	store := newMemoryStore().addCustomer("7", "Jane Doe").addProduct("1", "Widget", 25)
	svc := newTestReceiptService(store, okGenerator(), nil)

	var payload entity.SalePayload
	require.NoError(t, json.Unmarshal([]byte(`{"total": 25, "customer_ref": 7.0, "items": [{"product_ref": 1.0, "quantity": 1}]}`), &payload))

	summary, err := svc.Summarize(context.Background(), &payload)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", summary.CustomerName)
	assert.Equal(t, []entity.LineItem{{Quantity: 1, Description: "Widget", UnitPrice: 25}}, summary.LineItems)
}

func TestSummarize_EmptyItemsIssuesNoProductQuery(t *testing.T) {
	store := widgetStore()
	svc := newTestReceiptService(store, okGenerator(), nil)

	summary, err := svc.Summarize(context.Background(), &entity.SalePayload{Total: 5, Items: []entity.SaleItem{}})

	require.NoError(t, err)
	assert.Equal(t, []entity.LineItem{}, summary.LineItems)
	assert.Empty(t, store.productCalls)
}

func TestSummarize_UnknownCustomerUsesFallback(t *testing.T) {
	svc := newTestReceiptService(widgetStore(), okGenerator(), nil)

	summary, err := svc.Summarize(context.Background(), &entity.SalePayload{Total: 5, CustomerRef: "C999"})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCustomerLabel, summary.CustomerName)
}

func TestSummarize_ConfiguredFallback(t *testing.T) {
	svc := NewReceiptService(widgetStore().resolver(), okGenerator(), nil,
		ReceiptServiceConfig{FallbackCustomer: "Walk-in"}, nil)

	summary, err := svc.Summarize(context.Background(), &entity.SalePayload{Total: 5})

	require.NoError(t, err)
	assert.Equal(t, "Walk-in", summary.CustomerName)
}

func TestSummarize_StorageDownStillRenders(t *testing.T) {
	store := widgetStore()
	store.customerErr = errStoreDown
	store.productErr = errStoreDown
	svc := newTestReceiptService(store, okGenerator(), nil)

	summary, err := svc.Summarize(context.Background(), &entity.SalePayload{
		Total:       100,
		Items:       []entity.SaleItem{{ProductRef: "P1", Quantity: 2}},
		CustomerRef: "C1",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCustomerLabel, summary.CustomerName)
	assert.Equal(t, []entity.LineItem{{Quantity: 2, Description: entity.UnnamedProduct}}, summary.LineItems)
}

func TestSummarize_NilPayload(t *testing.T) {
	svc := newTestReceiptService(widgetStore(), okGenerator(), nil)

	_, err := svc.Summarize(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestPreview(t *testing.T) {
	svc := newTestReceiptService(widgetStore(), okGenerator(), nil)

	receipt, err := svc.Preview(context.Background(), &entity.SalePayload{
		Total:       100,
		Discount:    10,
		Items:       []entity.SaleItem{{ProductRef: "P1", Quantity: 2}},
		CustomerRef: "C1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Shop", receipt.Header.StoreName)
	assert.Regexp(t, `^R-[0-9A-F]{8}$`, receipt.Number)
	assert.False(t, receipt.IssuedAt.IsZero())
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 50.0, receipt.Items[0].Total)
	assert.Equal(t, 110.0, receipt.SubTotal)
}

func TestExport_Document(t *testing.T) {
	svc := newTestReceiptService(widgetStore(), okGenerator(), nil)

	outcome, err := svc.Export(context.Background(), &entity.SalePayload{Total: 100}, "pdf")

	require.NoError(t, err)
	assert.Equal(t, enum.ExportDocument, outcome.Action)
	assert.Equal(t, enum.ExportResultGenerated, outcome.Result)
	require.NotNil(t, outcome.Document)
}

func TestExport_FailureNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestReceiptService(widgetStore(), failingGenerator(errors.New("boom")), notifier)

	outcome, err := svc.Export(context.Background(), &entity.SalePayload{Total: 100}, "document")

	require.NoError(t, err)
	assert.Equal(t, enum.ExportStateFailed, outcome.State)
	assert.Len(t, notifier.received(), 1)
}

func TestExport_UnknownActionSkipsResolution(t *testing.T) {
	store := widgetStore()
	svc := newTestReceiptService(store, okGenerator(), nil)

	_, err := svc.Export(context.Background(), &entity.SalePayload{Total: 1, CustomerRef: "C1"}, "fax")

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, store.customerCalls)
}

func TestExport_EachCallIsIndependent(t *testing.T) {
	svc := newTestReceiptService(widgetStore(), okGenerator(), nil)
	payload := &entity.SalePayload{Total: 100}

	first, err := svc.Export(context.Background(), payload, "share")
	require.NoError(t, err)
	second, err := svc.Export(context.Background(), payload, "share")
	require.NoError(t, err)

	assert.Equal(t, enum.ExportResultNotImplemented, first.Result)
	assert.Equal(t, enum.ExportResultNotImplemented, second.Result)
}
