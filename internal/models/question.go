package models

// Question is a single multiple-choice question as served to clients.
// Options keep their authored order; Answer is the full option text and
// is matched case-sensitively at scoring time.
type Question struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Answer   string   `bson:"answer" json:"answer"`
}
