// internal/interfaces/http/handlers/products.go
package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
)

// ProductosHandler exposes the catalog and the admin product forms,
// both thin passthroughs over the POS API.
type ProductosHandler struct {
	backend *backend.Client
}

// NewProductosHandler creates a new product handler
func NewProductosHandler(client *backend.Client) *ProductosHandler {
	return &ProductosHandler{backend: client}
}

// catalogItem is a product plus its addable state for the catalog screen
type catalogItem struct {
	backend.Producto
	Agotado bool `json:"agotado"`
}

// List handles GET /productos
func (h *ProductosHandler) List(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	productos, err := h.backend.ListProductos(c.Request.Context(), s.Token)
	if err != nil {
		apiFail(c, err)
		return
	}

	items := make([]catalogItem, len(productos))
	for i, p := range productos {
		items[i] = catalogItem{Producto: p, Agotado: p.StockActual < 1}
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// AlertasStock handles GET /productos/alertas-stock
func (h *ProductosHandler) AlertasStock(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	alertas, err := h.backend.AlertasStock(c.Request.Context(), s.Token)
	if err != nil {
		apiFail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": alertas})
}

// Create handles POST /productos (admin)
func (h *ProductosHandler) Create(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	producto, err := h.backend.CreateProducto(c.Request.Context(), s.Token, form)
	if err != nil {
		apiFail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Producto creado",
		"data":    producto,
	})
}

// Update handles PATCH /productos/:id (admin)
func (h *ProductosHandler) Update(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido"})
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	producto, err := h.backend.UpdateProducto(c.Request.Context(), s.Token, id, form)
	if err != nil {
		apiFail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Producto actualizado",
		"data":    producto,
	})
}

// Delete handles DELETE /productos/:id (admin)
func (h *ProductosHandler) Delete(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido"})
		return
	}

	if err := h.backend.DeleteProducto(c.Request.Context(), s.Token, id); err != nil {
		apiFail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
}

// bindForm reads the admin product form, including the optional image
func (h *ProductosHandler) bindForm(c *gin.Context) (backend.ProductoForm, bool) {
	precioBase, err := strconv.ParseInt(c.PostForm("precio_base"), 10, 64)
	if err != nil || precioBase < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "precio_base inválido"})
		return backend.ProductoForm{}, false
	}
	iva, err := strconv.ParseFloat(c.PostForm("iva"), 64)
	if err != nil || iva < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "iva inválido"})
		return backend.ProductoForm{}, false
	}
	stock, err := strconv.Atoi(c.PostForm("stock_actual"))
	if err != nil || stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock_actual inválido"})
		return backend.ProductoForm{}, false
	}
	categoriaID, err := strconv.ParseInt(c.PostForm("categoriaId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoriaId inválido"})
		return backend.ProductoForm{}, false
	}

	form := backend.ProductoForm{
		Nombre:      c.PostForm("nombre"),
		Descripcion: c.PostForm("descripcion"),
		PrecioBase:  precioBase,
		IVA:         iva,
		StockActual: stock,
		CategoriaID: categoriaID,
		RutaImagen:  c.PostForm("ruta_imagen"),
	}
	if form.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nombre es requerido"})
		return backend.ProductoForm{}, false
	}

	if file, err := c.FormFile("imagen"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imagen inválida"})
			return backend.ProductoForm{}, false
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imagen inválida"})
			return backend.ProductoForm{}, false
		}
		form.Imagen = data
		form.ImagenNombre = file.Filename
	}

	return form, true
}
