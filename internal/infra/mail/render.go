package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Payment method captions shown in order emails, keyed by the enumerated
// payment methods. The storefront audience is Hebrew-speaking, so the
// transactional copy is RTL Hebrew.
var paymentMethodCaptions = map[entity.PaymentMethod]string{
	entity.PaymentMethodCash:         "תשלום במזומן",
	entity.PaymentMethodBankTransfer: "העברה בנקאית - בנק הפועלים (12), סניף 665, חשבון 224471",
	entity.PaymentMethodBit:          "העברת Bit",
	entity.PaymentMethodCreditCard:   "כרטיס אשראי",
}

var orderTemplate = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="he">
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
		.content { background: white; padding: 30px; border: 1px solid #ddd; }
		.order-details { background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0; }
		.footer { background: #f8f9fa; padding: 20px; text-align: center; border-radius: 0 0 10px 10px; }
		table { width: 100%; border-collapse: collapse; margin: 20px 0; }
		th { background: #667eea; color: white; padding: 12px; text-align: right; }
		.total-row { font-weight: bold; font-size: 18px; background: #f0f0f0; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>🛡️ חזון מערכות אבטחה</h1>
			<h2>{{.Headline}}</h2>
		</div>

		<div class="content">
			<p style="font-size: 18px;">{{.Greeting}}</p>
			<p>{{.Intro}}</p>

			<div class="order-details">
				<h3>פרטי ההזמנה</h3>
				<p><strong>מספר הזמנה:</strong> #{{.OrderRef}}</p>
				<p><strong>שם לקוח:</strong> {{.Order.CustomerName}}</p>
				<p><strong>טלפון:</strong> {{.Order.CustomerPhone}}</p>
				<p><strong>אימייל:</strong> {{.Order.CustomerEmail}}</p>
				<p><strong>כתובת משלוח:</strong> {{.Order.ShippingAddress}}, {{.Order.City}}</p>
				<p><strong>אמצעי תשלום:</strong> {{.PaymentCaption}}</p>
				{{if .Order.Notes}}<p><strong>הערות:</strong> {{.Order.Notes}}</p>{{end}}
			</div>

			<h3>פירוט מוצרים</h3>
			<table>
				<thead>
					<tr>
						<th>מוצר</th>
						<th style="text-align: center;">כמות</th>
						<th style="text-align: right;">מחיר יחידה</th>
						<th style="text-align: right;">סה"כ</th>
					</tr>
				</thead>
				<tbody>
					{{range .Items}}
					<tr>
						<td style="padding: 10px; border-bottom: 1px solid #eee;">{{.Name}}</td>
						<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
						<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">{{.UnitPrice}}</td>
						<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">{{.LineTotal}}</td>
					</tr>
					{{end}}
					<tr>
						<td colspan="3" style="padding: 10px; text-align: left;"><strong>סכום ביניים:</strong></td>
						<td style="padding: 10px; text-align: right;"><strong>{{.Subtotal}}</strong></td>
					</tr>
					<tr>
						<td colspan="3" style="padding: 10px; text-align: left;"><strong>משלוח:</strong></td>
						<td style="padding: 10px; text-align: right;"><strong>{{.Shipping}}</strong></td>
					</tr>
					<tr class="total-row">
						<td colspan="3" style="padding: 15px; text-align: left;">סה"כ לתשלום:</td>
						<td style="padding: 15px; text-align: right; font-size: 20px; color: #667eea;">{{.Total}}</td>
					</tr>
				</tbody>
			</table>

			<p style="color: #666; font-size: 14px;">{{.Outro}}</p>
		</div>

		<div class="footer">
			<p><strong>חזון מערכות אבטחה</strong></p>
			<p>📧 hazon.pro@gmail.com | 🌐 hazonpro.com</p>
			<p style="font-size: 12px; color: #666;">פתרונות תקשורת ואבטחה מתקדמים</p>
		</div>
	</div>
</body>
</html>
`))

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html dir="rtl" lang="he">
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; background: white; }
		.header { background: #667eea; color: white; padding: 20px; text-align: center; }
		.content { padding: 20px; border: 1px solid #ddd; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h2>📧 הודעה חדשה מטופס צור קשר</h2>
		</div>
		<div class="content">
			<p><strong>שם:</strong> {{.Name}}</p>
			<p><strong>אימייל:</strong> {{.Email}}</p>
			<p><strong>טלפון:</strong> {{.Phone}}</p>
			<p><strong>נושא:</strong> {{.Subject}}</p>
			<hr>
			<p><strong>הודעה:</strong></p>
			<p>{{.Message}}</p>
		</div>
	</div>
</body>
</html>
`))

type orderEmailItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type orderEmailData struct {
	Order          *entity.Order
	OrderRef       string
	Headline       string
	Greeting       string
	Intro          string
	Outro          string
	PaymentCaption string
	Items          []orderEmailItem
	Subtotal       string
	Shipping       string
	Total          string
}

// RenderOrderEmail produces the audience-specific HTML document for an
// order: same line items and totals, different greeting and framing.
func RenderOrderEmail(order *entity.Order, audience service.Audience) (string, error) {
	data := &orderEmailData{
		Order:          order,
		OrderRef:       orderRef(order),
		PaymentCaption: paymentCaption(order.PaymentMethod),
		Subtotal:       shekels(order.Subtotal),
		Total:          shekels(order.Total),
	}

	if order.ShippingCost == 0 {
		data.Shipping = "חינם 🎉"
	} else {
		data.Shipping = shekels(order.ShippingCost)
	}

	for _, item := range order.Items {
		data.Items = append(data.Items, orderEmailItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: shekels(item.Price),
			LineTotal: shekels(item.Price * float64(item.Quantity)),
		})
	}

	if audience == service.AudienceAdmin {
		data.Headline = "הזמנה חדשה התקבלה!"
		data.Greeting = "הזמנה חדשה מ-" + order.CustomerName
		data.Intro = "הזמנה חדשה התקבלה במערכת!"
		data.Outro = "יש ליצור קשר עם הלקוח לאישור ההזמנה."
	} else {
		data.Headline = "אישור הזמנה"
		data.Greeting = "שלום " + order.CustomerName + ","
		data.Intro = "תודה שבחרת בחזון מערכות אבטחה. הזמנתך התקבלה בהצלחה!"
		data.Outro = "נציג יצור איתך קשר בהקדם לאישור ההזמנה."
	}

	var sb strings.Builder
	if err := orderTemplate.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "failed to render order email")
	}

	return sb.String(), nil
}

// RenderContactEmail produces the admin-facing HTML document for a contact
// form submission.
func RenderContactEmail(message *entity.ContactMessage) (string, error) {
	subject := message.Subject
	if subject == "" {
		subject = "לא צוין"
	}

	var sb strings.Builder
	err := contactTemplate.Execute(&sb, map[string]string{
		"Name":    message.Name,
		"Email":   message.Email,
		"Phone":   message.Phone,
		"Subject": subject,
		"Message": message.Message,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to render contact email")
	}

	return sb.String(), nil
}

// orderRef is the short order reference shown to humans: the first eight
// characters of the order id.
func orderRef(order *entity.Order) string {
	id := order.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}

	return id
}

func paymentCaption(method entity.PaymentMethod) string {
	if caption, ok := paymentMethodCaptions[method]; ok {
		return caption
	}

	return "לא צוין"
}

func shekels(amount float64) string {
	return fmt.Sprintf("₪%.2f", amount)
}
