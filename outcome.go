package fullsend

// SendOutcome is the decoded Messages resource Twilio returns for an
// accepted message. Sid identifies the message; Status is its delivery
// status at creation time, typically "queued" or "accepted".
//
// Price and PriceUnit are pointers because Twilio reports them as null until
// the message has been priced. ErrorCode and ErrorMessage stay nil unless
// delivery later failed; on the synchronous create response they are
// normally null.
type SendOutcome struct {
	Sid          string  `json:"sid"`
	AccountSid   string  `json:"account_sid"`
	To           string  `json:"to"`
	From         string  `json:"from"`
	Body         string  `json:"body"`
	Status       string  `json:"status"`
	NumSegments  string  `json:"num_segments"`
	Direction    string  `json:"direction"`
	Price        *string `json:"price"`
	PriceUnit    *string `json:"price_unit"`
	ErrorCode    *int    `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
	DateCreated  string  `json:"date_created"`
	DateUpdated  string  `json:"date_updated"`
	DateSent     *string `json:"date_sent"`
	URI          string  `json:"uri"`
}
