package content

import "time"

// Collection names are the persisted store contract and keep their original
// casing; renaming them would orphan every existing document.
const (
	AboutCollection    = "aboutUs"
	ContactCollection  = "Headquarter"
	EventsCollection   = "events"
	NewsCollection     = "news"
	MessagesCollection = "Message"
)

// LocalizedText carries the English and Arabic variants of one piece of copy.
// Both fields are always present; empty strings are allowed.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Section is a titled bilingual content block on the about page.
type Section struct {
	Title   LocalizedText `json:"title"`
	Content LocalizedText `json:"content"`
}

// AboutUs is the singleton document behind the About Union page. It is
// pre-seeded and only ever mutated by whole-document overwrite.
type AboutUs struct {
	Title    LocalizedText `json:"title"`
	Subtitle LocalizedText `json:"subtitle"`
	Message  Section       `json:"message"`
	Goals    Section       `json:"goals"`
	Values   Section       `json:"values"`
	Vision   Section       `json:"vision"`
	Img      string        `json:"img"`
	Pdf      string        `json:"pdf"`
}

type WorkingTimes struct {
	Days LocalizedText `json:"days"`
	Time LocalizedText `json:"time"`
}

// ContactInfo is the singleton Headquarter document.
type ContactInfo struct {
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	LocationLink  string        `json:"locationLink"`
	EmbedLocation string        `json:"embedLocation"`
	LocationText  LocalizedText `json:"locationText"`
	WorkingTimes  WorkingTimes  `json:"workingTimes"`
}

type Event struct {
	Title        LocalizedText `json:"title"`
	Description  LocalizedText `json:"description"`
	EventTime    time.Time     `json:"eventTime"`
	LocationLink string        `json:"locationLink"`
	LocationText LocalizedText `json:"locationText"`
	Img          string        `json:"img"`
}

// News keeps CreatedAt separate from Date: Date is the editorial date shown
// on cards, CreatedAt feeds the per-month dashboard chart and survives edits.
type News struct {
	Title     LocalizedText `json:"title"`
	Content   LocalizedText `json:"content"`
	Category  LocalizedText `json:"category"`
	Date      time.Time     `json:"date"`
	CreatedAt time.Time     `json:"createdAt"`
	Img       string        `json:"img"`
}

const (
	MessageStatusNew       = "new"
	MessageStatusRead      = "read"
	MessageStatusResponded = "responded"
)

// Message is an inbound contact-form submission. The dashboard only moves its
// status forward or deletes it; creation happens on the public endpoint.
type Message struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// ValidMessageStatus reports whether s is one of the three known states.
func ValidMessageStatus(s string) bool {
	return s == MessageStatusNew || s == MessageStatusRead || s == MessageStatusResponded
}
