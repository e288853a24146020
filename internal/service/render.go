package service

import (
	"bytes"
	"fmt"
	"html/template"
)

// Document is a fully rendered notification, ready for the transport.
type Document struct {
	Subject string
	HTML    string
	Text    string
}

// renderOptions carries the run-independent content knobs. Bulk switches
// between the batch salutation and the single-recipient one.
type renderOptions struct {
	SemesterLabel string
	ContactEmail  string
	Bulk          bool
}

// The operational instructions are fixed content: identical for every
// recipient and every run.
var instructions = []string{
	"1. All invigilators are expected to report to the allotted exam room at least 20 minutes before start of the exam for smooth operation of the QP collection/distribution.",
	"2. Request all faculty/Non-faculty colleagues to please observe the “NO CELL PHONE/LAPTOP” usage during the duty period.",
	"3. The question papers will be distributed exactly at 10:00 AM. Please ensure that all students are expected to be seated in their designated places by 9:50 AM – however, we estimate that few students will enter post this time – and hence NO students will be allowed to enter the exam room after 10:00 AM under any circumstances.",
	"4. The students are required to report to the examination centers at Mahindra University with their MU identity card (ID) at 9.30 AM onward. In the event of a lost ID card or if a student is not carrying their ID card, they will be liable for a penalty of Rs. 5000/-, which can only be paid through the QR code (using PhonePe, G Pay, Paytm, etc.) available at the check-in desk for obtaining a new or temporary ID card.",
	"5. Cell phones, smartwatches, notes, papers, and bags are strictly prohibited in the examination hall. Students need to bring their own pens, pencils, scientific (non-programmable) calculator, ruler, and erasers; borrowing from other students will not be allowed. If any student is found carrying any banned item during the examination, their exam paper will be immediately confiscated and awarded ‘ZERO MARK’. There will be random physical frisking in each exam room.",
	"6. Students will be permitted to leave the exam room only after completing the first one hour.",
	"7. No wash room break for Minors and supplementary exams!",
}

var documentTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <p>Dear <strong>{{.Name}}</strong> ({{.IDLabel}}: {{.IDValue}}),</p>
  {{- if .Bulk}}
  <p>You are assigned the following invigilation duties for <strong>{{.SemesterLabel}}</strong>:</p>
  {{- else}}
  <p>Your invigilation duties for <strong>{{.SemesterLabel}}</strong> are as follows:</p>
  {{- end}}

  <table border="1" cellpadding="8" cellspacing="0" style="border-collapse:collapse;width:100%; margin: 20px 0;">
    <thead style="background:#4CAF50; color: white;">
      <tr>
        <th>Date</th>
        <th>Time</th>
        <th>Venue</th>
        <th>Hall</th>
        <th>Floor</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Duties}}
      <tr>
        <td>{{.Date}}</td>
        <td>{{.TimeRange}}</td>
        <td>{{.Venue}}</td>
        <td>{{.Hall}}</td>
        <td>{{.Floor}}</td>
      </tr>
      {{- end}}
    </tbody>
  </table>
  <p><strong>Instructions:</strong></p>
  {{- range .Instructions}}
  <p><strong>{{.}}</strong></p>
  {{- end}}

  <p><em>This is a noreply email. For any queries please contact: <a href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a></em></p>
  <p>Thank you for your cooperation.</p>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
    <p><strong>Warm Regards,</strong></p>
    <p><strong>Prof. Murtaza Bohra</strong><br>
    Controller of Examinations<br>
    <strong>Mahindra University, Hyderabad</strong></p>
  </div>
</div>
`))

type documentData struct {
	Name          string
	IDLabel       string
	IDValue       string
	SemesterLabel string
	ContactEmail  string
	Bulk          bool
	Duties        []dutyRecord
	Instructions  []string
}

// renderDocument turns a person and an ordered duty list into a complete
// notification document. It is pure: no I/O, no clock, same inputs same
// output.
func renderDocument(person *resolvedPerson, duties []dutyRecord, opts renderOptions) (*Document, error) {
	data := documentData{
		Name:          person.Name,
		IDLabel:       person.IDLabel,
		IDValue:       person.IDValue,
		SemesterLabel: opts.SemesterLabel,
		ContactEmail:  opts.ContactEmail,
		Bulk:          opts.Bulk,
		Duties:        duties,
		Instructions:  instructions,
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render notification: %w", err)
	}

	return &Document{
		Subject: "Invigilation Duties - " + opts.SemesterLabel,
		HTML:    buf.String(),
		Text:    "Please view this email in HTML format.",
	}, nil
}
