// internal/pkg/receipt/template.go
package receipt

const boletaTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
    body { font-family: monospace; font-size: 12px; width: 280px; margin: 0 auto; }
    h1 { font-size: 14px; text-align: center; margin-bottom: 2px; }
    .header, .footer { text-align: center; margin-bottom: 8px; }
    table { width: 100%; border-collapse: collapse; }
    th, td { text-align: left; padding: 2px 0; }
    td.amount, th.amount { text-align: right; }
    .totals td { border-top: 1px dashed #000; padding-top: 4px; }
    .grand { font-weight: bold; }
</style>
</head>
<body>
    <div class="header">
        <h1>{{.Company.Name}}</h1>
        {{if .Company.Address}}<div>{{.Company.Address}}</div>{{end}}
        {{if .Company.Phone}}<div>{{.Company.Phone}}</div>{{end}}
        <div>Boleta N° {{.Venta.ID}}</div>
        <div>{{.Venta.FechaHora}}</div>
        <div>Vendedor: {{.Venta.Usuario.Nombre}}</div>
    </div>

    <table>
        <thead>
            <tr>
                <th>Producto</th>
                <th class="amount">Cant.</th>
                <th class="amount">Subtotal</th>
            </tr>
        </thead>
        <tbody>
            {{range .Venta.Detalles}}
            <tr>
                <td>{{.Producto.Nombre}}</td>
                <td class="amount">{{.Cantidad}}</td>
                <td class="amount">{{pesos .SubtotalConIVA}}</td>
            </tr>
            {{end}}
        </tbody>
        <tbody class="totals">
            <tr><td>Subtotal</td><td></td><td class="amount">{{pesos .Venta.Subtotal}}</td></tr>
            <tr><td>IVA</td><td></td><td class="amount">{{pesos .Venta.TotalIVA}}</td></tr>
            <tr class="grand"><td>Total</td><td></td><td class="amount">{{pesos .Venta.Total}}</td></tr>
            {{if eq .Venta.MetodoPago "efectivo"}}
            <tr><td>Pagado</td><td></td><td class="amount">{{pesos .Venta.MontoPagado}}</td></tr>
            <tr><td>Vuelto</td><td></td><td class="amount">{{pesos .Venta.Vuelto}}</td></tr>
            {{end}}
        </tbody>
    </table>

    <div class="footer">
        <div>Pago: {{.Venta.MetodoPago}}</div>
        <div>¡Gracias por su compra!</div>
    </div>
</body>
</html>`
