// internal/backend/products.go
package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
)

// ListProductos fetches the product catalog
func (c *Client) ListProductos(ctx context.Context, token string) ([]Producto, error) {
	var out []Producto
	if err := c.doJSON(ctx, http.MethodGet, "/productos", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AlertasStock fetches the low-stock alerts
func (c *Client) AlertasStock(ctx context.Context, token string) ([]AlertaStock, error) {
	var out []AlertaStock
	if err := c.doJSON(ctx, http.MethodGet, "/productos/alertas-stock", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProducto creates a product via the API's multipart form endpoint
func (c *Client) CreateProducto(ctx context.Context, token string, form ProductoForm) (*Producto, error) {
	return c.sendProductoForm(ctx, http.MethodPost, "/productos", token, form)
}

// UpdateProducto updates a product via the API's multipart form endpoint
func (c *Client) UpdateProducto(ctx context.Context, token string, id int64, form ProductoForm) (*Producto, error) {
	return c.sendProductoForm(ctx, http.MethodPatch, fmt.Sprintf("/productos/%d", id), token, form)
}

// DeleteProducto deletes a product
func (c *Client) DeleteProducto(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d", id), token, nil, nil)
}

func (c *Client) sendProductoForm(ctx context.Context, method, path, token string, form ProductoForm) (*Producto, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"nombre":      form.Nombre,
		"descripcion": form.Descripcion,
		"precio_base": strconv.FormatInt(form.PrecioBase, 10),
		"iva":         strconv.FormatFloat(form.IVA, 'f', -1, 64),
		"stock_actual": strconv.Itoa(form.StockActual),
		"categoriaId": strconv.FormatInt(form.CategoriaID, 10),
		"ruta_imagen": form.RutaImagen,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if form.Imagen != nil {
		part, err := writer.CreateFormFile("imagen", form.ImagenNombre)
		if err != nil {
			return nil, fmt.Errorf("failed to attach image: %w", err)
		}
		if _, err := part.Write(form.Imagen); err != nil {
			return nil, fmt.Errorf("failed to write image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out Producto
	if err := c.send(req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
