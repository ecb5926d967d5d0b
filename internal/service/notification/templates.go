package notification

import "html/template"

var ownerTemplate = template.Must(template.New("owner").Parse(`
<h1>New Booking Request</h1>
<p><strong>Guest:</strong> {{.GuestName}}</p>
<p><strong>Email:</strong> {{.GuestEmail}}</p>
<p><strong>Phone:</strong> {{.GuestPhone}}</p>
<p><strong>Suite:</strong> {{.SuiteID}}</p>
<p><strong>Dates:</strong> {{.From}} - {{.To}}</p>
<p><strong>ID Verified:</strong> {{.Verified}}</p>
<p><strong>Booking ID:</strong> {{.BookingID}}</p>
`))

var guestTemplate = template.Must(template.New("guest").Parse(`
<h1>Request Received</h1>
<p>Hi {{.GuestName}},</p>
<p>We've received your booking request for the <strong>{{.SuiteID}}</strong>.</p>
<p>We are reviewing your details and will verify your identity shortly.</p>
<br/>
<p>Stay tuned,</p>
<p>{{.AppName}} Team</p>
`))
