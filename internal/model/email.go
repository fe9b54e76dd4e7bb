package model

// Sender identifies who sent an email.
type Sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmailRecord is the raw input of one analysis request. Subject and body are
// plain text (HTML is stripped upstream by the mail source). The record is
// read-only once constructed.
type EmailRecord struct {
	Subject     string   `json:"subject"`
	Sender      Sender   `json:"sender"`
	Recipient   string   `json:"recipient,omitempty"`
	Date        string   `json:"date"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments"`
	Platform    string   `json:"platform"`
	SourceURL   string   `json:"source_url,omitempty"`
}

// EmailMeta is the metadata subset carried on graphs and result records.
type EmailMeta struct {
	Subject  string `json:"subject"`
	Sender   Sender `json:"sender"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
}

// Meta returns the metadata subset of the record.
func (e *EmailRecord) Meta() EmailMeta {
	return EmailMeta{
		Subject:  e.Subject,
		Sender:   e.Sender,
		Date:     e.Date,
		Platform: e.Platform,
	}
}
