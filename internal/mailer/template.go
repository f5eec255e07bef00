package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
)

// ConfirmSubject is the subject line of the order confirmation email
const ConfirmSubject = "Confirm order"

var confirmTemplate = template.Must(template.New("order_confirm").Parse(`<html>
<body>
<p>Hi{{if .Name}} {{.Name}}{{end}},</p>
<p>Your pizza order comes to <b>{{printf "%.2f" .Price}}</b>.</p>
<p>Please confirm it by visiting the link below:</p>
<p><a href="{{.ConfirmURL}}">{{.ConfirmURL}}</a></p>
</body>
</html>
`))

// RenderConfirmBody renders the confirmation email for an order. The
// embedded link has the shape {baseURL}/order/{id}/confirm/{code}.
func RenderConfirmBody(baseURL string, order *models.Order, code string) (string, error) {
	data := struct {
		Name       string
		Price      float64
		ConfirmURL string
	}{
		Price:      order.Price(),
		ConfirmURL: fmt.Sprintf("%s/order/%s/confirm/%s", baseURL, order.ID, code),
	}
	if order.Name != nil {
		data.Name = *order.Name
	}

	var buf bytes.Buffer
	if err := confirmTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
