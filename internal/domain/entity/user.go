package entity

// UserState is the position of an operator in the bot conversation.
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // idle
	StateAwaitingPhoto UserState = "awaiting_photo" // /check sent, waiting for a connector photo
	StateProcessing    UserState = "processing"     // inspection in progress
)

// User is a bot operator.
type User struct {
	ID          int64         // Telegram user ID
	ChatID      int64         // Telegram chat ID
	State       UserState     // conversation state
	LastVerdict WiringVerdict // verdict of the previous inspection
	Inspections int           // completed inspections
}

// NewUser creates an operator in the main menu.
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState moves the operator to another conversation state.
func (u *User) SetState(state UserState) {
	u.State = state
}

// RecordInspection stores the verdict of a finished inspection.
func (u *User) RecordInspection(v WiringVerdict) {
	u.LastVerdict = v
	u.Inspections++
}
