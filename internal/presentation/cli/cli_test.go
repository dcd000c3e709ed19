package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sangkips/receipt-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlPayload = `
total: 5.25
discount: "0.5"
customer_ref: c-1
items:
  - product_ref: p-1
    quantity: 1
  - product_ref: p-2
    quantity: 2
  - product_ref: p-404
    quantity: 1
`

func TestDecodePayload_YAML(t *testing.T) {
	payload, err := decodePayload([]byte(yamlPayload))
	require.NoError(t, err)

	assert.Equal(t, 5.25, entity.Amount(payload.Total))
	assert.Equal(t, 0.5, entity.Amount(payload.Discount))
	assert.Equal(t, entity.Ref("c-1"), payload.CustomerRef)
	assert.Equal(t, []entity.Ref{"p-1", "p-2", "p-404"}, payload.ProductRefs())
}

func TestDecodePayload_JSON(t *testing.T) {
	payload, err := decodePayload([]byte(`{"total": 10, "customer_ref": 42, "items": [{"product_ref": 7, "quantity": "3"}]}`))
	require.NoError(t, err)

	assert.Equal(t, entity.Ref("42"), payload.CustomerRef)
	assert.Equal(t, 3, entity.Quantity(payload.Items[0].Quantity))
}

func TestDecodePayload_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":    "",
		"sequence": "- 1\n- 2\n",
		"scalar":   "42",
		"broken":   "total: [1,",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodePayload([]byte(input))
			assert.ErrorContains(t, err, "parse payload")
		})
	}
}

func TestReadPayload_Stdin(t *testing.T) {
	payload, err := readPayload("-", strings.NewReader(`{"total": 3}`))
	require.NoError(t, err)
	assert.Equal(t, 3.0, entity.Amount(payload.Total))

	_, err = readPayload(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "read payload")
}

// setupWorkspace writes a sqlite backed env file and a sale payload
func setupWorkspace(t *testing.T, format string) (envFile, payloadFile string) {
	t.Helper()
	dir := t.TempDir()

	envFile = filepath.Join(dir, "test.env")
	env := "DB_DRIVER=sqlite\n" +
		"SQLITE_PATH=" + filepath.Join(dir, "receipts.db") + "\n" +
		"DB_SEED=true\n" +
		"RECEIPT_STORE_NAME=Tiendas SAC\n" +
		"RECEIPT_DOCUMENT_FORMAT=" + format + "\n"
	require.NoError(t, os.WriteFile(envFile, []byte(env), 0o600))

	payloadFile = filepath.Join(dir, "sale.yaml")
	require.NoError(t, os.WriteFile(payloadFile, []byte(yamlPayload), 0o600))
	return envFile, payloadFile
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummaryCommand(t *testing.T) {
	envFile, payloadFile := setupWorkspace(t, "text")

	out, err := run(t, "summary", "--env-file", envFile, "--payload", payloadFile)
	require.NoError(t, err)

	assert.Contains(t, out, `"customer_name": "Ana Torres"`)
	assert.Contains(t, out, `"subtotal": 5.75`)
	assert.Contains(t, out, `"description": "Croissant"`)
	assert.Contains(t, out, `"description": "unnamed product"`)
}

func TestRenderCommand_Stdout(t *testing.T) {
	envFile, payloadFile := setupWorkspace(t, "text")

	out, err := run(t, "render", "--env-file", envFile, "-p", payloadFile, "--out", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "Tiendas SAC")
	assert.Contains(t, out, "Customer:")
	assert.Contains(t, out, "Ana Torres")
	assert.Contains(t, out, "2x Croissant")
	assert.Contains(t, out, "TOTAL:")
}

func TestRenderCommand_File(t *testing.T) {
	envFile, payloadFile := setupWorkspace(t, "pdf")
	target := filepath.Join(t.TempDir(), "receipt.xlsx")

	out, err := run(t, "render", "--env-file", envFile, "-p", payloadFile, "--format", "xlsx", "--out", target)
	require.NoError(t, err)

	assert.Contains(t, out, "Wrote "+target)
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderCommand_NotImplemented(t *testing.T) {
	envFile, payloadFile := setupWorkspace(t, "text")

	out, err := run(t, "render", "--env-file", envFile, "-p", payloadFile, "--action", "share")
	require.NoError(t, err)
	assert.Contains(t, out, `Export action "share" is not available yet`)
}

func TestRenderCommand_Errors(t *testing.T) {
	envFile, payloadFile := setupWorkspace(t, "text")

	_, err := run(t, "render", "--env-file", envFile, "-p", payloadFile, "--action", "fax")
	assert.ErrorContains(t, err, "Unsupported export action")

	_, err = run(t, "render", "--env-file", envFile, "-p", payloadFile, "--format", "docx")
	assert.ErrorContains(t, err, `unknown format "docx"`)

	_, err = run(t, "render", "--env-file", envFile)
	assert.ErrorContains(t, err, "payload")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "receiptctl")
	assert.Contains(t, out, "Version:    dev")
	assert.Contains(t, out, runtime.Version())
}
