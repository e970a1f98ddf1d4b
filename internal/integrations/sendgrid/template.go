package sendgrid

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

const subjectFormat = "Your booking request for %s at %s"

var htmlTemplate = template.Must(template.New("booking").Parse(`<p>Hi {{.Form.FirstName}},</p>
<p>We received your booking request. Our booking manager will contact you shortly with confirmation details.</p>
<ul>
  <li>Date: {{.DisplayDate}}</li>
  <li>Time: {{.Form.Time}}</li>
  <li>Guests: {{.Form.GuestCount}}</li>
  <li>Address: {{.Form.Address}}</li>
  {{if .Form.FoodAllergies}}<li>Food allergies: {{.Form.FoodAllergies}}</li>{{end}}
</ul>`))

type emailData struct {
	Form        domain.BookingFormData
	DisplayDate string
}

// displayDate форматирует дату как "Tuesday, June 10, 2025"; некорректная дата возвращается как есть
func displayDate(iso string) string {
	d, err := time.Parse(domain.DateFormat, iso)
	if err != nil {
		return iso
	}
	return d.Format("Monday, January 2, 2006")
}

func render(record domain.BookingRecord) (subject, plain, html string, err error) {
	data := emailData{Form: record.Form, DisplayDate: displayDate(record.Form.Date)}

	subject = fmt.Sprintf(subjectFormat, data.DisplayDate, record.Form.Time)
	plain = fmt.Sprintf(
		"Hi %s,\n\nWe received your booking request.\n\nDate: %s\nTime: %s\nGuests: %d\nAddress: %s\n",
		record.Form.FirstName, data.DisplayDate, record.Form.Time, record.Form.GuestCount, record.Form.Address,
	)

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return subject, plain, buf.String(), nil
}
