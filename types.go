package client

import (
	"encoding/base64"
	"time"
)

// EmailOptions is the message accepted by [Client.SendEmail]. Field names
// follow Nodemailer's message configuration, which the API mirrors.
type EmailOptions struct {
	From           string            `json:"from"`
	To             []string          `json:"to"`
	Cc             []string          `json:"cc,omitempty"`
	Bcc            []string          `json:"bcc,omitempty"`
	Subject        string            `json:"subject"`
	Text           string            `json:"text,omitempty"`
	HTML           string            `json:"html,omitempty"`
	Attachments    []Attachment      `json:"attachments,omitempty"`
	Sender         string            `json:"sender,omitempty"`
	ReplyTo        string            `json:"replyTo,omitempty"`
	InReplyTo      string            `json:"inReplyTo,omitempty"`
	References     []string          `json:"references,omitempty"`
	AttachDataURLs bool              `json:"attachDataUrls,omitempty"`
	WatchHTML      string            `json:"watchHtml,omitempty"`
	AMP            string            `json:"amp,omitempty"`
	Encoding       string            `json:"encoding,omitempty"`
	Raw            string            `json:"raw,omitempty"`
	TextEncoding   string            `json:"textEncoding,omitempty"`
	Priority       Priority          `json:"priority,omitempty"`
	Headers        map[string]string `json:"headers,omitempty"`
	MessageID      string            `json:"messageId,omitempty"`
	Date           *time.Time        `json:"date,omitempty"`
	List           map[string]any    `json:"list,omitempty"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Attachment is a file attached to an outbound email. Content is sent as-is;
// use [NewAttachment] for binary data.
type Attachment struct {
	Filename           string            `json:"filename,omitempty"`
	Content            string            `json:"content,omitempty"`
	Path               string            `json:"path,omitempty"`
	Href               string            `json:"href,omitempty"`
	ContentType        string            `json:"contentType,omitempty"`
	ContentDisposition string            `json:"contentDisposition,omitempty"`
	CID                string            `json:"cid,omitempty"`
	Encoding           string            `json:"encoding,omitempty"`
	Headers            map[string]string `json:"headers,omitempty"`
}

// NewAttachment returns an attachment carrying data base64-encoded.
func NewAttachment(filename string, data []byte) Attachment {
	return Attachment{
		Filename: filename,
		Content:  base64.StdEncoding.EncodeToString(data),
		Encoding: "base64",
	}
}

// Envelope is the resolved SMTP envelope of a sent email.
type Envelope struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

// Email is an email record as returned by the API.
type Email struct {
	ID          string    `json:"id"`
	Object      string    `json:"object"`
	Status      string    `json:"status"`
	Alias       string    `json:"alias"`
	Domain      string    `json:"domain"`
	User        string    `json:"user"`
	IsLocked    bool      `json:"is_locked"`
	Envelope    Envelope  `json:"envelope"`
	MessageID   string    `json:"messageId"`
	Date        time.Time `json:"date"`
	Subject     string    `json:"subject"`
	Accepted    []string  `json:"accepted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Link        string    `json:"link"`
	IsRedacted  bool      `json:"is_redacted,omitempty"`
	HardBounces []string  `json:"hard_bounces,omitempty"`
	SoftBounces []string  `json:"soft_bounces,omitempty"`
	IsBounce    bool      `json:"is_bounce,omitempty"`
}

// ListEmailsOptions filters [Client.ListEmails]. Unset fields are not sent.
type ListEmailsOptions struct {
	Page       *int
	Limit      *int
	Pagination *bool
	Query      string
	Domain     string
	Sort       string
}

func (o *ListEmailsOptions) queryParams() queryParams {
	if o == nil {
		return nil
	}
	var q queryParams
	q = q.addInt("page", o.Page)
	q = q.addInt("limit", o.Limit)
	q = q.addBool("pagination", o.Pagination)
	q = q.addString("q", o.Query)
	q = q.addString("domain", o.Domain)
	q = q.addString("sort", o.Sort)
	return q
}

// EmailLimit reports outbound usage against the account's sending limit.
type EmailLimit struct {
	Count int `json:"count"`
	Limit int `json:"limit"`
}

// Remaining returns the number of emails that can still be sent, never
// negative.
func (l *EmailLimit) Remaining() int {
	if l.Count >= l.Limit {
		return 0
	}
	return l.Limit - l.Count
}

// DeleteResult is returned by delete operations. The API may reply with an
// empty body, in which case Message is empty.
type DeleteResult struct {
	Message string `json:"message"`
}

type Account struct {
	ID               string    `json:"id"`
	Object           string    `json:"object"`
	Email            string    `json:"email"`
	Plan             string    `json:"plan"`
	Sessions         []string  `json:"sessions,omitempty"`
	HasNewsletter    bool      `json:"has_newsletter,omitempty"`
	MaxQuotaPerAlias int64     `json:"max_quota_per_alias,omitempty"`
	FullEmail        string    `json:"full_email,omitempty"`
	DisplayName      string    `json:"display_name,omitempty"`
	OTPEnabled       bool      `json:"otp_enabled,omitempty"`
	LastLocale       string    `json:"last_locale,omitempty"`
	AddressCountry   *string   `json:"address_country,omitempty"`
	Locale           string    `json:"locale,omitempty"`
	AddressHTML      string    `json:"address_html,omitempty"`
	APIToken         string    `json:"api_token,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AccountUpdate holds the account fields that can be changed. Empty fields
// are left untouched.
type AccountUpdate struct {
	DisplayName string `json:"display_name,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

type Domain struct {
	ID                   string    `json:"id"`
	Object               string    `json:"object"`
	Name                 string    `json:"name"`
	Plan                 string    `json:"plan"`
	HasMXRecord          bool      `json:"has_mx_record"`
	HasTXTRecord         bool      `json:"has_txt_record"`
	HasDKIMRecord        bool      `json:"has_dkim_record,omitempty"`
	HasReturnPathRecord  bool      `json:"has_return_path_record,omitempty"`
	HasDMARCRecord       bool      `json:"has_dmarc_record,omitempty"`
	HasSMTP              bool      `json:"has_smtp,omitempty"`
	IsSMTPSuspended      bool      `json:"is_smtp_suspended,omitempty"`
	VerificationRecord   string    `json:"verification_record,omitempty"`
	StorageUsed          int64     `json:"storage_used,omitempty"`
	StorageUsedByAliases int64     `json:"storage_used_by_aliases,omitempty"`
	StorageQuota         int64     `json:"storage_quota,omitempty"`
	Link                 string    `json:"link,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type AliasUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type AliasDomain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Alias struct {
	ID                       string      `json:"id"`
	Object                   string      `json:"object"`
	Name                     string      `json:"name"`
	User                     AliasUser   `json:"user"`
	Domain                   AliasDomain `json:"domain"`
	Labels                   []string    `json:"labels"`
	IsEnabled                bool        `json:"is_enabled"`
	HasRecipientVerification bool        `json:"has_recipient_verification"`
	VerifiedRecipients       []string    `json:"verified_recipients"`
	PendingRecipients        []string    `json:"pending_recipients"`
	Recipients               []string    `json:"recipients"`
	StorageLocation          string      `json:"storage_location,omitempty"`
	HasIMAP                  bool        `json:"has_imap,omitempty"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

// Address returns the alias as name@domain.
func (a *Alias) Address() string {
	return a.Name + "@" + a.Domain.Name
}

// AliasParams is the request body for [Client.CreateAlias] and
// [Client.UpdateAlias]. Unset fields are not sent.
type AliasParams struct {
	Name        string   `json:"name,omitempty"`
	Recipients  []string `json:"recipients,omitempty"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	IsEnabled   *bool    `json:"is_enabled,omitempty"`
}
