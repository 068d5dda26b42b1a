// internal/backend/types.go
package backend

// Wire types for the remote POS API. Field names match what the API
// actually emits; none of the naming drift in older clients
// (cantidadVentas vs cantidad_ventas) is allowed past this package.

// Categoria is a product category
type Categoria struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}

// Producto is a catalog product. Monetary fields are whole Chilean
// pesos; precio_con_iva is server-derived and used for display only,
// cart arithmetic always starts from precio_base + iva.
type Producto struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Descripcion  string    `json:"descripcion,omitempty"`
	PrecioBase   int64     `json:"precio_base"`
	IVA          float64   `json:"iva"`
	PrecioConIVA int64     `json:"precio_con_iva"`
	StockActual  int       `json:"stock_actual"`
	RutaImagen   string    `json:"ruta_imagen,omitempty"`
	Categoria    Categoria `json:"categoria"`
}

// ProductoForm carries the multipart fields for product create/update
type ProductoForm struct {
	Nombre      string
	Descripcion string
	PrecioBase  int64
	IVA         float64
	StockActual int
	CategoriaID int64
	RutaImagen  string
	// Imagen, when non-nil, is attached as the "imagen" file part
	Imagen       []byte
	ImagenNombre string
}

// AlertaStock is a low-stock alert row
type AlertaStock struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	StockActual int    `json:"stock_actual"`
	StockMinimo int    `json:"stock_minimo"`
}

// VentaDraft is the exact payload POST /ventas expects
type VentaDraft struct {
	MetodoPago string            `json:"metodo_pago"`
	Productos  []VentaDraftLinea `json:"productos"`
}

// VentaDraftLinea is one sale line in a draft
type VentaDraftLinea struct {
	ProductoID int64 `json:"productoId"`
	Cantidad   int   `json:"cantidad"`
}

// VentaUsuario is the seller reference nested in a sale
type VentaUsuario struct {
	Nombre string `json:"nombre"`
}

// DetalleVenta is one line of a recorded sale
type DetalleVenta struct {
	ID                   int64        `json:"id"`
	Producto             VentaUsuario `json:"producto"`
	Cantidad             int          `json:"cantidad"`
	PrecioUnitarioBase   int64        `json:"precio_unitario_base"`
	IVA                  float64      `json:"iva"`
	PrecioUnitarioConIVA int64        `json:"precio_unitario_con_iva"`
	SubtotalConIVA       int64        `json:"subtotal_con_iva"`
}

// Venta is a recorded sale (boleta)
type Venta struct {
	ID          int64          `json:"id"`
	FechaHora   string         `json:"fecha_hora"`
	Usuario     VentaUsuario   `json:"usuario"`
	Subtotal    int64          `json:"subtotal"`
	TotalIVA    int64          `json:"total_iva"`
	Total       int64          `json:"total"`
	MetodoPago  string         `json:"metodo_pago"`
	Detalles    []DetalleVenta `json:"detalles"`
	MontoPagado int64          `json:"montoPagado,omitempty"`
	Vuelto      int64          `json:"vuelto,omitempty"`
}

// ConsolidadoDia is the aggregated register state of the open day
type ConsolidadoDia struct {
	TotalEfectivo       int64 `json:"totalEfectivo"`
	TotalTarjeta        int64 `json:"totalTarjeta"`
	TotalTransferencia  int64 `json:"totalTransferencia"`
	TotalCaja           int64 `json:"totalCaja"`
	CantidadVentas      int   `json:"cantidadVentas"`
	TotalVendido        int64 `json:"totalVendido"`
	ProductosVendidos   int   `json:"productosVendidos"`
	TicketPromedio      int64 `json:"ticketPromedio"`
	VentasEfectivo      int   `json:"ventasEfectivo,omitempty"`
	VentasTarjeta       int   `json:"ventasTarjeta,omitempty"`
	VentasTransferencia int   `json:"ventasTransferencia,omitempty"`
}

// Dia is one closed business day in the history list
type Dia struct {
	ID                     int64  `json:"id"`
	Fecha                  string `json:"fecha"`
	CantidadVentas         int    `json:"cantidadVentas"`
	TotalVendido           int64  `json:"totalVendido"`
	TotalProductosVendidos int    `json:"totalProductosVendidos"`
}

// DetalleDia is the full record of one closed day
type DetalleDia struct {
	Dia
	TotalEfectivo      int64  `json:"totalEfectivo"`
	TotalTarjeta       int64  `json:"totalTarjeta"`
	TotalTransferencia int64  `json:"totalTransferencia"`
	Observaciones      string `json:"observaciones"`
}

// LoginRequest is the POST /auth/login payload
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse is the POST /auth/login success shape
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Nombre      string `json:"nombre"`
	Correo      string `json:"correo"`
	Rol         string `json:"rol"`
}
