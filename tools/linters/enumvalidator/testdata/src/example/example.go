package example

type ConversationStatus string

const (
	ConversationStatusWaiting ConversationStatus = "waiting"
	ConversationStatusActive  ConversationStatus = "active"
)

type SenderRole string

const (
	SenderRoleInitiator SenderRole = "initiator"
	SenderRoleExpert    SenderRole = "expert"
)

type AssignmentStatus string

const (
	AssignmentStatusActive AssignmentStatus = "active"
)

type Conversation struct {
	Status ConversationStatus
}

type Message struct {
	SenderRole SenderRole
}

type ExpertAssignment struct {
	Status AssignmentStatus
}

func bad() {
	c := &Conversation{}
	c.Status = "closed" // want "enum field Status assigned string literal"

	m := &Message{}
	m.SenderRole = "admin" // want "enum field SenderRole assigned string literal"

	_ = ExpertAssignment{Status: "pending"} // want "enum field Status set to string literal"

	if c.Status == "waiting" { // want "enum compared with string literal"
		return
	}
}

func good() {
	c := &Conversation{}
	c.Status = ConversationStatusActive

	m := &Message{SenderRole: SenderRoleExpert}
	_ = m

	if c.Status == ConversationStatusWaiting {
		return
	}
}

func alsoGood() {
	role := SenderRoleInitiator
	m := &Message{SenderRole: role}
	_ = m
}
